package folio

import (
	"sync"
	"time"

	"github.com/nikmish/folio/content"
)

// BlogCache is an in-memory cache of published blogs and their tag set with
// TTL. Public blog pages, the feed, and the sitemap read through it; admin
// mutations invalidate it.
type BlogCache struct {
	mu      sync.RWMutex
	blogs   []content.Blog
	tags    []string
	fetched time.Time
	ttl     time.Duration
	svc     *content.Service
}

// NewBlogCache creates a BlogCache backed by the content service.
func NewBlogCache(svc *content.Service, ttl time.Duration) *BlogCache {
	return &BlogCache{svc: svc, ttl: ttl}
}

func (c *BlogCache) valid() bool {
	return c.blogs != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *BlogCache) Invalidate() {
	c.mu.Lock()
	c.blogs = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *BlogCache) load() error {
	if c.valid() {
		return nil
	}
	blogs, err := c.svc.PublishedBlogs("", "")
	if err != nil {
		return err
	}
	tags, err := c.svc.AllBlogTags()
	if err != nil {
		return err
	}
	c.blogs = blogs
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached blogs and tags after ensuring the cache is
// fresh. It tries a read lock first; only takes a write lock for a reload.
func (c *BlogCache) ensureLoaded() ([]content.Blog, []string, error) {
	c.mu.RLock()
	if c.valid() {
		blogs, tags := c.blogs, c.tags
		c.mu.RUnlock()
		return blogs, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.blogs, c.tags, nil
}

// Published returns cached published blogs.
func (c *BlogCache) Published() ([]content.Blog, error) {
	blogs, _, err := c.ensureLoaded()
	return blogs, err
}

// Tags returns the cached tag set.
func (c *BlogCache) Tags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// Get returns one cached published blog by id, or content.ErrNotFound.
func (c *BlogCache) Get(id string) (*content.Blog, error) {
	blogs, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		if blogs[i].ID == id {
			return &blogs[i], nil
		}
	}
	return nil, content.ErrNotFound
}
