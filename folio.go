// Package folio is a personal-portfolio CMS built with Go, Echo, and templ.
// It serves a public site (home, about, skills, projects, blog, contact) and
// an admin panel with CRUD over structured content documents.
//
// Users provide their own templ templates via the ViewFuncs struct, and
// folio handles the handler logic, middleware, and storage.
package folio

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/docstore"
	"github.com/nikmish/folio/views"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home     func(views.HomeData) templ.Component
	About    func(views.AboutData) templ.Component
	Skills   func(views.SkillsData) templ.Component
	Projects func(views.ProjectListData) templ.Component
	Project  func(views.ProjectDetailData) templ.Component
	Blog     func(views.BlogListData) templ.Component
	BlogPost func(views.BlogDetailData) templ.Component
	Contact  func(views.ContactData) templ.Component

	AdminLogin       func(showError bool, csrfToken string) templ.Component
	AdminDashboard   func(views.DashboardData) templ.Component
	AdminBlogs       func(views.BlogManagerData) templ.Component
	AdminBlogEditor  func(views.BlogEditorData) templ.Component
	AdminProjects    func(views.ProjectManagerData) templ.Component
	AdminProjectForm func(views.ProjectEditorData) templ.Component
	AdminSkills      func(views.SkillManagerData) templ.Component
	AdminResearch    func(views.ResearchManagerData) templ.Component
	AdminAboutItems  func(views.AboutItemsData) templ.Component
	AdminPageConfig  func(views.PageManagerData) templ.Component
	AdminProfile     func(views.ProfileData) templ.Component
	AdminInbox       func(views.SubmissionListData) templ.Component
	AdminMessage     func(views.SubmissionDetailData) templ.Component

	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central folio application. It wires together the document
// store, content service, file store, cache, handlers, middleware, and
// user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *docstore.Store
	Content *content.Service
	Files   *DiskStore
	Cache   *BlogCache
	Views   ViewFuncs
	Log     *logrus.Logger

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     vf,
		Log:       logrus.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, content service, middleware, routes, and
// starts the server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := docstore.Open(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: open store: %w", err)
	}
	a.Store = store

	a.Files = NewDiskStore(a.Config.MediaDir)

	svc, err := content.NewService(store, a.Files, a.Log)
	if err != nil {
		return fmt.Errorf("folio: init content service: %w", err)
	}
	a.Content = svc

	a.Cache = NewBlogCache(svc, a.Config.BlogCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets and uploaded media
	e.Static("/public", a.staticDir)
	e.Static("/media", a.Config.MediaDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/skills/", a.handleSkills)
	e.GET("/projects/", a.handleProjects)
	e.GET("/projects/:id/", a.handleProject)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:id/", a.handleBlogPost)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	// Admin auth
	e.GET("/admin/", a.handleAdmin)
	a.mutating("/admin/login/", a.handleAdminLogin, "/admin/")
	a.mutating("/admin/logout/", handleAdminLogout, "/admin/")

	// Blogs
	e.GET("/admin/blogs/", a.requireAdmin(a.handleAdminBlogs))
	e.GET("/admin/blogs/new/", a.requireAdmin(a.handleAdminBlogEditor))
	e.POST("/admin/blogs/new/", a.requireAdmin(a.handleAdminBlogCreate))
	e.GET("/admin/blogs/:id/", a.requireAdmin(a.handleAdminBlogEditor))
	e.POST("/admin/blogs/:id/", a.requireAdmin(a.handleAdminBlogUpdate))
	a.adminMutation("/admin/blogs/:id/delete/", a.handleAdminBlogDelete, "/admin/blogs/")
	a.adminMutation("/admin/blogs/:id/toggle/", a.handleAdminBlogToggle, "/admin/blogs/")

	// Projects
	e.GET("/admin/projects/", a.requireAdmin(a.handleAdminProjects))
	e.GET("/admin/projects/new/", a.requireAdmin(a.handleAdminProjectEditor))
	e.POST("/admin/projects/new/", a.requireAdmin(a.handleAdminProjectCreate))
	e.GET("/admin/projects/:id/", a.requireAdmin(a.handleAdminProjectEditor))
	e.POST("/admin/projects/:id/", a.requireAdmin(a.handleAdminProjectUpdate))
	a.adminMutation("/admin/projects/:id/delete/", a.handleAdminProjectDelete, "/admin/projects/")
	a.adminMutation("/admin/projects/:id/toggle/", a.handleAdminProjectToggle, "/admin/projects/")
	a.adminMutation("/admin/projects/:id/feature/", a.handleAdminProjectFeature, "/admin/projects/")

	// Skills and skill categories
	e.GET("/admin/skills/", a.requireAdmin(a.handleAdminSkills))
	a.adminMutation("/admin/skills/new/", a.handleAdminSkillCreate, "/admin/skills/")
	a.adminMutation("/admin/skills/:id/", a.handleAdminSkillUpdate, "/admin/skills/")
	a.adminMutation("/admin/skills/:id/delete/", a.handleAdminSkillDelete, "/admin/skills/")
	a.adminMutation("/admin/skills/:id/toggle/", a.handleAdminSkillToggle, "/admin/skills/")
	a.adminMutation("/admin/skills/categories/new/", a.handleAdminSkillCategorySave, "/admin/skills/")
	a.adminMutation("/admin/skills/categories/:id/", a.handleAdminSkillCategorySave, "/admin/skills/")
	a.adminMutation("/admin/skills/categories/:id/delete/", a.handleAdminSkillCategoryDelete, "/admin/skills/")
	a.adminMutation("/admin/skills/categories/:id/toggle/", a.handleAdminSkillCategoryToggle, "/admin/skills/")

	// Research categories and entries
	e.GET("/admin/research/", a.requireAdmin(a.handleAdminResearch))
	a.adminMutation("/admin/research/categories/new/", a.handleAdminResearchCategorySave, "/admin/research/")
	a.adminMutation("/admin/research/categories/:id/", a.handleAdminResearchCategorySave, "/admin/research/")
	a.adminMutation("/admin/research/categories/:id/delete/", a.handleAdminResearchCategoryDelete, "/admin/research/")
	a.adminMutation("/admin/research/categories/:id/toggle/", a.handleAdminResearchCategoryToggle, "/admin/research/")
	a.adminMutation("/admin/research/entries/new/", a.handleAdminResearchEntryCreate, "/admin/research/")
	a.adminMutation("/admin/research/entries/:id/", a.handleAdminResearchEntryUpdate, "/admin/research/")
	a.adminMutation("/admin/research/entries/:id/delete/", a.handleAdminResearchEntryDelete, "/admin/research/")
	a.adminMutation("/admin/research/entries/:id/toggle/", a.handleAdminResearchEntryToggle, "/admin/research/")

	// About-page list items; :kind is education|experience|achievement|interest|value
	e.GET("/admin/about/items/", a.requireAdmin(a.handleAdminAboutItems))
	a.adminMutation("/admin/about/:kind/new/", a.handleAdminAboutItemSave, "/admin/about/items/")
	a.adminMutation("/admin/about/:kind/:id/", a.handleAdminAboutItemSave, "/admin/about/items/")
	a.adminMutation("/admin/about/:kind/:id/delete/", a.handleAdminAboutItemDelete, "/admin/about/items/")
	a.adminMutation("/admin/about/:kind/:id/toggle/", a.handleAdminAboutItemToggle, "/admin/about/items/")

	// Singleton page managers
	e.GET("/admin/pages/home/", a.requireAdmin(a.handleAdminHomePage))
	a.adminMutation("/admin/pages/home/save/", a.handleAdminHomePageSave, "/admin/pages/home/")
	e.GET("/admin/pages/about/", a.requireAdmin(a.handleAdminAboutPage))
	a.adminMutation("/admin/pages/about/save/", a.handleAdminAboutPageSave, "/admin/pages/about/")
	e.GET("/admin/pages/contact/", a.requireAdmin(a.handleAdminContactPage))
	a.adminMutation("/admin/pages/contact/save/", a.handleAdminContactPageSave, "/admin/pages/contact/")

	// Profile
	e.GET("/admin/profile/", a.requireAdmin(a.handleAdminProfile))
	a.adminMutation("/admin/profile/save/", a.handleAdminProfileSave, "/admin/profile/")
	a.adminMutation("/admin/profile/remove-resume/", a.handleAdminRemoveResume, "/admin/profile/")

	// Contact submissions
	e.GET("/admin/messages/", a.requireAdmin(a.handleAdminInbox))
	e.GET("/admin/messages/:id/", a.requireAdmin(a.handleAdminMessage))
	a.adminMutation("/admin/messages/:id/notes/", a.handleAdminMessageNotes, "/admin/messages/")
	a.adminMutation("/admin/messages/:id/toggle-read/", a.handleAdminMessageToggleRead, "/admin/messages/")
	a.adminMutation("/admin/messages/:id/delete/", a.handleAdminMessageDelete, "/admin/messages/")
	a.adminMutation("/admin/messages/bulk/", a.handleAdminMessageBulk, "/admin/messages/")
}

// mutating registers a POST-only route. A GET to the same path redirects to
// fallback with no side effects, so links and prefetchers can never mutate.
func (a *App) mutating(path string, h echo.HandlerFunc, fallback string) {
	a.Echo.POST(path, h)
	a.Echo.GET(path, func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, fallback)
	})
}

// adminMutation is mutating plus the session gate.
func (a *App) adminMutation(path string, h echo.HandlerFunc, fallback string) {
	a.mutating(path, a.requireAdmin(h), fallback)
}

func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		return next(c)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
