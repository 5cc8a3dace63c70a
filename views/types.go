package views

import "github.com/nikmish/folio/content"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Flash is a one-shot notice popped from the session after a redirect.
// Level is one of "success", "warning", "error".
type Flash struct {
	Level   string
	Message string
}

// HeroStat is one headline counter for the home and about hero sections.
type HeroStat struct {
	Label string
	Value string
}

// AdminPage carries the chrome every admin template needs.
type AdminPage struct {
	CSRF    string
	Flashes []Flash
}

// HomeData feeds the public home page.
type HomeData struct {
	Profile          *content.Profile
	Page             *content.HomePage
	FeaturedProjects []content.Project
	FeaturedSkills   []content.Skill
	SkillGroups      []content.SkillGroup
	Stats            []HeroStat
}

// AboutData feeds the public about page.
type AboutData struct {
	Profile      *content.Profile
	Page         *content.AboutPage
	Educations   []content.Education
	Experiences  []content.Experience
	Achievements []content.Achievement
	Interests    []content.Interest
	CoreValues   []content.CoreValue
	Research     []content.ResearchGroup
	Stats        []HeroStat
}

// SkillsData feeds the public skills page.
type SkillsData struct {
	Groups []content.SkillGroup
}

// ProjectListData feeds the public project listing.
type ProjectListData struct {
	Projects   []content.Project
	Search     string
	Pagination content.Pagination
}

// ProjectDetailData feeds a single project page.
type ProjectDetailData struct {
	Project *content.Project
	Related []content.Project
}

// BlogListData feeds the public blog listing.
type BlogListData struct {
	Blogs      []content.Blog
	Tags       []string
	Search     string
	ActiveTag  string
	Pagination content.Pagination
}

// BlogDetailData feeds a single blog page.
type BlogDetailData struct {
	Blog    *content.Blog
	Related []content.Blog
}

// ContactData feeds the public contact page. FieldError names the first
// missing form field after a rejected submission.
type ContactData struct {
	Profile    *content.Profile
	Page       *content.ContactPage
	Sent       bool
	FieldError string
}

// DashboardData feeds the admin landing page.
type DashboardData struct {
	AdminPage
	Stats          content.DashboardStats
	RecentProjects []content.Project
	RecentBlogs    []content.Blog
}

// BlogManagerData feeds the admin blog list.
type BlogManagerData struct {
	AdminPage
	Blogs        []content.Blog
	StatusFilter string
	Pagination   content.Pagination
}

// BlogEditorData feeds the admin blog editor. Blog is nil when creating.
type BlogEditorData struct {
	AdminPage
	Blog *content.Blog
}

// ProjectManagerData feeds the admin project list.
type ProjectManagerData struct {
	AdminPage
	Projects []content.Project
}

// ProjectEditorData feeds the admin project editor. Project is nil when
// creating.
type ProjectEditorData struct {
	AdminPage
	Project *content.Project
}

// SkillManagerData feeds the combined skills + categories manager.
type SkillManagerData struct {
	AdminPage
	Categories []content.Category
	Skills     []content.Skill
	// CategoryNames maps category ids to display names for the table.
	CategoryNames map[string]string
}

// ResearchManagerData feeds the research categories + entries manager.
type ResearchManagerData struct {
	AdminPage
	Categories     []content.Category
	Entries        []content.ResearchEntry
	CategoryFilter string
	Search         string
	Pagination     content.Pagination
	CategoryNames  map[string]string
}

// AboutItemsData feeds the about-page list-item manager.
type AboutItemsData struct {
	AdminPage
	Educations   []content.Education
	Experiences  []content.Experience
	Achievements []content.Achievement
	Interests    []content.Interest
	CoreValues   []content.CoreValue
}

// PageManagerData feeds the singleton page-config managers. Exactly one of
// the page fields is set, matching the manager being rendered.
type PageManagerData struct {
	AdminPage
	Home    *content.HomePage
	About   *content.AboutPage
	Contact *content.ContactPage
}

// ProfileData feeds the admin profile manager. Profile is nil before the
// first save.
type ProfileData struct {
	AdminPage
	Profile *content.Profile
}

// SubmissionListData feeds the contact-submission inbox.
type SubmissionListData struct {
	AdminPage
	Submissions []content.ContactSubmission
	Filter      string
	Search      string
	Unread      int
	Pagination  content.Pagination
}

// SubmissionDetailData feeds a single submission view.
type SubmissionDetailData struct {
	AdminPage
	Submission *content.ContactSubmission
}
