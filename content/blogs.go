package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nikmish/folio/docstore"
)

// PreviewMaxLen bounds the stored blog preview text.
const PreviewMaxLen = 300

// DefaultReadTime is the fallback read-time estimate in minutes.
const DefaultReadTime = 5

// BlogAuthor is the denormalized author identity stamped on a blog at
// creation. It is a snapshot, not a live reference.
type BlogAuthor struct {
	ID       string
	Username string
	Name     string
}

// BlogInput carries the admin editor fields. Publish reflects which submit
// button was pressed: true forces the published status regardless of the
// Status field. CoverImagePath is the already-stored upload path; an empty
// value keeps the current cover.
type BlogInput struct {
	Title          string
	Content        string
	Preview        string
	Tags           []string
	Status         string
	Publish        bool
	ReadTime       int
	CoverImagePath string
	IsActive       bool
}

// GetBlog returns one blog by id.
func (s *Service) GetBlog(id string) (*Blog, error) {
	doc, err := s.store.Get(ColBlogs, id)
	if err != nil {
		return nil, fmt.Errorf("load blog %s: %w", id, err)
	}
	var b Blog
	if err := decode(doc, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBlog stores a new blog stamped with the author snapshot. A blog
// created directly as published gets its published date now.
func (s *Service) CreateBlog(in BlogInput, author BlogAuthor) (*Blog, error) {
	b := &Blog{
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		AuthorName:     author.Name,
	}
	if err := applyBlogInput(b, in); err != nil {
		return nil, err
	}
	doc, err := s.store.Insert(ColBlogs, b)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	b.attach(doc)
	return b, nil
}

// UpdateBlog applies the editor input to an existing blog. The published
// date is written once, on the first transition to published, and never
// cleared afterwards. When the input carries a new cover path the previous
// file is released after the record is written.
func (s *Service) UpdateBlog(id string, in BlogInput) (*Blog, error) {
	b, err := s.GetBlog(id)
	if err != nil {
		return nil, err
	}
	oldCover := b.CoverImagePath
	if err := applyBlogInput(b, in); err != nil {
		return nil, err
	}
	if err := s.store.Update(ColBlogs, id, b); err != nil {
		return nil, fmt.Errorf("update blog %s: %w", id, err)
	}
	if in.CoverImagePath != "" && oldCover != "" && oldCover != b.CoverImagePath {
		s.releaseFile(oldCover)
	}
	return b, nil
}

func applyBlogInput(b *Blog, in BlogInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return &ValidationError{Field: "blog title"}
	}
	b.Title = title
	b.Content = in.Content
	b.Preview = truncate(strings.TrimSpace(in.Preview), PreviewMaxLen)
	b.Tags = cleanList(in.Tags)
	status := in.Status
	if in.Publish {
		status = StatusPublished
	}
	if status != StatusPublished {
		status = StatusDraft
	}
	b.Status = status
	if b.Status == StatusPublished && b.PublishedDate == nil {
		now := time.Now().UTC()
		b.PublishedDate = &now
	}
	b.ReadTime = in.ReadTime
	if b.ReadTime <= 0 {
		b.ReadTime = DefaultReadTime
	}
	if in.CoverImagePath != "" {
		b.CoverImagePath = in.CoverImagePath
	}
	b.IsActive = in.IsActive
	return nil
}

// DeleteBlog removes the blog and releases its cover image.
func (s *Service) DeleteBlog(id string) (*Blog, error) {
	b, err := s.GetBlog(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ColBlogs, id); err != nil {
		return nil, fmt.Errorf("delete blog %s: %w", id, err)
	}
	if b.CoverImagePath != "" {
		s.releaseFile(b.CoverImagePath)
	}
	return b, nil
}

// ToggleBlogActive flips a blog's public visibility without touching its
// draft/published status.
func (s *Service) ToggleBlogActive(id string) (*Blog, error) {
	b, err := s.GetBlog(id)
	if err != nil {
		return nil, err
	}
	b.IsActive = !b.IsActive
	if err := s.store.Update(ColBlogs, id, b); err != nil {
		return nil, fmt.Errorf("update blog %s: %w", id, err)
	}
	return b, nil
}

// PublishedBlogs lists publicly visible blogs newest-published first. An
// optional search matches title, preview, or content case-insensitively. An
// optional tag narrows to blogs carrying that tag; tag storage is a list
// field the store cannot filter natively, so the tag test runs here after
// the query. That is a known scalability limit of this layout.
func (s *Service) PublishedBlogs(search, tag string) ([]Blog, error) {
	filters := []docstore.Filter{
		docstore.Eq("status", StatusPublished),
		docstore.Eq("is_active", true),
	}
	if search != "" {
		filters = append(filters, docstore.Or(
			docstore.IContains("title", search),
			docstore.IContains("preview", search),
			docstore.IContains("content", search),
		))
	}
	blogs, err := s.findBlogs(filters...)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		kept := blogs[:0]
		for _, b := range blogs {
			if hasTag(b.Tags, tag) {
				kept = append(kept, b)
			}
		}
		blogs = kept
	}
	sortByPublished(blogs)
	return blogs, nil
}

// AllBlogs lists every blog for the admin manager, optionally narrowed to a
// status, newest first by creation.
func (s *Service) AllBlogs(status string) ([]Blog, error) {
	var filters []docstore.Filter
	if status != "" {
		filters = append(filters, docstore.Eq("status", status))
	}
	blogs, err := s.findBlogs(filters...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs, nil
}

// RelatedBlogs returns up to limit other published blogs for the detail
// page, newest-published first.
func (s *Service) RelatedBlogs(excludeID string, limit int) ([]Blog, error) {
	blogs, err := s.PublishedBlogs("", "")
	if err != nil {
		return nil, err
	}
	related := blogs[:0:0]
	for _, b := range blogs {
		if b.ID == excludeID {
			continue
		}
		related = append(related, b)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// AllBlogTags returns the distinct tags across published visible blogs,
// sorted alphabetically, for the listing filter bar.
func (s *Service) AllBlogTags() ([]string, error) {
	blogs, err := s.PublishedBlogs("", "")
	if err != nil {
		return nil, err
	}
	set := map[string]bool{}
	for _, b := range blogs {
		for _, t := range b.Tags {
			set[t] = true
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

// BlogCount counts all blogs.
func (s *Service) BlogCount() (int, error) {
	return s.store.Count(ColBlogs)
}

// PublishedBlogCount counts blogs with published status.
func (s *Service) PublishedBlogCount() (int, error) {
	return s.store.Count(ColBlogs, docstore.Eq("status", StatusPublished))
}

// DraftBlogCount counts blogs with draft status.
func (s *Service) DraftBlogCount() (int, error) {
	return s.store.Count(ColBlogs, docstore.Eq("status", StatusDraft))
}

func (s *Service) findBlogs(filters ...docstore.Filter) ([]Blog, error) {
	docs, err := s.store.Find(ColBlogs, filters...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return decodeAll[Blog](docs)
}

func sortByPublished(blogs []Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		pi, pj := blogs[i].PublishedDate, blogs[j].PublishedDate
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// truncate cuts s at max runes without splitting a multibyte character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
