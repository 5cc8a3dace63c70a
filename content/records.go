package content

import (
	"time"

	"github.com/nikmish/folio/docstore"
)

// Collection names. These double as the persisted document schema contract:
// renaming a collection or a JSON field breaks existing databases.
const (
	ColProfile            = "profile"
	ColSkillCategories    = "skill_categories"
	ColSkills             = "skills"
	ColResearchCategories = "research_categories"
	ColResearchEntries    = "research_entries"
	ColProjects           = "projects"
	ColBlogs              = "blogs"
	ColHomePage           = "home_page"
	ColAboutPage          = "about_page"
	ColContactPage        = "contact_page"
	ColEducation          = "education"
	ColExperiences        = "experiences"
	ColAchievements       = "achievements"
	ColInterests          = "interests"
	ColCoreValues         = "core_values"
	ColContactSubmissions = "contact_submissions"
)

// Blog status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// UncategorizedLabel groups items whose category reference is empty.
const UncategorizedLabel = "Uncategorized"

// Meta carries store-assigned identity and timestamps. It is excluded from
// the JSON body; the store owns these values.
type Meta struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (m *Meta) attach(d docstore.Document) {
	m.ID = d.ID
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
}

type attachable interface {
	attach(docstore.Document)
}

// decode unmarshals a document into out and attaches store metadata.
func decode(d docstore.Document, out attachable) error {
	if err := d.Decode(out); err != nil {
		return err
	}
	out.attach(d)
	return nil
}

// decodeAll decodes a list of documents into typed records.
func decodeAll[T any, PT interface {
	*T
	attachable
}](docs []docstore.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var item T
		if err := decode(d, PT(&item)); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Category is an admin-managed grouping for skills and research entries.
// Both category collections share this shape.
type Category struct {
	Meta
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// Skill is a single skill, optionally referenced to a skill category. The
/// reference is weak: deleting the category clears it to null.
type Skill struct {
	Meta
	Name        string  `json:"name"`
	CategoryID  *string `json:"category_id"`
	IsActive    bool    `json:"is_active"`
	Proficiency int     `json:"proficiency"`
	Icon        string  `json:"icon"`
}

// DisplayProficiency clamps the stored proficiency into 0-100 for rendering.
func (s Skill) DisplayProficiency() int {
	return clampPercent(s.Proficiency)
}

// ResearchEntry is a publication or research item. A nil IsActive means the
// record predates the flag and counts as active.
type ResearchEntry struct {
	Meta
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Publication string  `json:"publication"`
	Link        string  `json:"link"`
	CategoryID  *string `json:"category_id"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// Active reports the effective activation state, treating an absent flag as
// active.
func (r ResearchEntry) Active() bool {
	return boolOr(r.IsActive, true)
}

// Project is a portfolio project entry.
type Project struct {
	Meta
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	ImagePath   string   `json:"image_path,omitempty"`
	GithubLink  string   `json:"github_link"`
	DemoLink    string   `json:"demo_link"`
	IsFeatured  bool     `json:"is_featured"`
	IsActive    bool     `json:"is_active"`
}

// Blog is a blog post. Author identity is denormalized at write time, not a
// live reference.
type Blog struct {
	Meta
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Preview        string     `json:"preview"`
	CoverImagePath string     `json:"cover_image_path,omitempty"`
	Tags           []string   `json:"tags"`
	Status         string     `json:"status"`
	IsActive       bool       `json:"is_active"`
	ReadTime       int        `json:"read_time"`
	AuthorID       string     `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	AuthorName     string     `json:"author_name"`
	PublishedDate  *time.Time `json:"published_date"`
}

// Published reports whether the post is visible on the public site.
func (b Blog) Published() bool {
	return b.Status == StatusPublished && b.IsActive
}

// Profile is the site owner's identity record. Singleton by convention only.
type Profile struct {
	Meta
	Name       string `json:"name"`
	Role       string `json:"role"`
	Bio        string `json:"bio"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ImagePath  string `json:"image_path,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`
	Github     string `json:"github"`
	Linkedin   string `json:"linkedin"`
	Twitter    string `json:"twitter"`
}

// Education is an ordered education entry for the about page.
type Education struct {
	Meta
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// Active treats records created before the flag existed as active.
func (e Education) Active() bool { return boolOr(e.IsActive, true) }

// Experience is an ordered work-experience entry for the about page.
type Experience struct {
	Meta
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
	IsActive     bool   `json:"is_active"`
}

// Achievement is an ordered achievement entry for the about page.
type Achievement struct {
	Meta
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

// Interest is an ordered interest card for the about page.
type Interest struct {
	Meta
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// Active treats records created before the flag existed as active.
func (i Interest) Active() bool { return boolOr(i.IsActive, true) }

// CoreValue is an ordered core-value card for the about page.
type CoreValue struct {
	Meta
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// Active treats records created before the flag existed as active.
func (v CoreValue) Active() bool { return boolOr(v.IsActive, true) }

// ContactSubmission is a message from the public contact form. Immutable
// except for the read flag and admin notes.
type ContactSubmission struct {
	Meta
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	IsRead      bool      `json:"is_read"`
	Notes       string    `json:"notes"`
}

/// boolOr is the typed default-extraction helper for optional flags: absent
// fields fall back to def instead of zero.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
