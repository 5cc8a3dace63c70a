package folio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	profile, err := a.Content.Profile()
	if err != nil {
		return err
	}
	page, err := a.Content.HomePage()
	if err != nil {
		return err
	}
	featured, err := a.Content.FeaturedProjects()
	if err != nil {
		return err
	}
	groups, err := a.Content.ActiveSkillsByCategory()
	if err != nil {
		return err
	}
	skills, err := a.Content.FeaturedSkills(4)
	if err != nil {
		return err
	}
	stats, err := a.heroStats(page)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(views.HomeData{
		Profile:          profile,
		Page:             page,
		FeaturedProjects: featured,
		FeaturedSkills:   skills,
		SkillGroups:      groups,
		Stats:            stats,
	}))
}

// heroStats builds the home hero counters: project and skill totals plus the
// optional custom stat configured on the home page.
func (a *App) heroStats(page *content.HomePage) ([]views.HeroStat, error) {
	if page == nil || !page.StatsVisible() {
		return nil, nil
	}
	projects, err := a.Content.ActiveProjectCount()
	if err != nil {
		return nil, err
	}
	skills, err := a.Content.ActiveSkillCount()
	if err != nil {
		return nil, err
	}
	stats := []views.HeroStat{
		{Label: "Projects", Value: strconv.Itoa(projects)},
		{Label: "Skills", Value: strconv.Itoa(skills)},
	}
	if page.CustomStatLabel != "" && page.CustomStatValue != "" {
		stats = append(stats, views.HeroStat{Label: page.CustomStatLabel, Value: page.CustomStatValue})
	}
	return stats, nil
}

func (a *App) handleAbout(c echo.Context) error {
	profile, err := a.Content.Profile()
	if err != nil {
		return err
	}
	page, err := a.Content.AboutPage()
	if err != nil {
		return err
	}
	data := views.AboutData{Profile: profile, Page: page}

	if page.EducationVisible() {
		if data.Educations, err = a.Content.Educations(true); err != nil {
			return err
		}
	}
	if page.ExperiencesVisible() {
		if data.Experiences, err = a.Content.Experiences(true); err != nil {
			return err
		}
	}
	if page.AchievementsVisible() {
		if data.Achievements, err = a.Content.Achievements(true); err != nil {
			return err
		}
	}
	if page.InterestsVisible() {
		if data.Interests, err = a.Content.Interests(true); err != nil {
			return err
		}
	}
	if page.ValuesVisible() {
		if data.CoreValues, err = a.Content.CoreValues(true); err != nil {
			return err
		}
	}
	if data.Research, err = a.Content.ActiveResearchGroups(); err != nil {
		return err
	}
	if page.StatsSectionVisible() {
		home, err := a.Content.PeekHomePage()
		if err != nil {
			return err
		}
		if data.Stats, err = a.heroStats(home); err != nil {
			return err
		}
	}
	return Render(c, a.Views.About(data))
}

func (a *App) handleSkills(c echo.Context) error {
	groups, err := a.Content.ActiveSkillsByCategory()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Skills(views.SkillsData{Groups: groups}))
}

func (a *App) handleProjects(c echo.Context) error {
	search := c.QueryParam("search")
	projects, err := a.Content.ActiveProjects(search)
	if err != nil {
		return err
	}
	page, pagination := content.Paginate(projects, queryPage(c), content.PageSizePublic)
	return Render(c, a.Views.Projects(views.ProjectListData{
		Projects:   page,
		Search:     search,
		Pagination: pagination,
	}))
}

func (a *App) handleProject(c echo.Context) error {
	p, err := a.Content.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if !p.IsActive {
		return echo.ErrNotFound
	}
	related, err := a.Content.RelatedProjects(p.ID, 3)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Project(views.ProjectDetailData{Project: p, Related: related}))
}

func (a *App) handleBlog(c echo.Context) error {
	search := c.QueryParam("search")
	tag := c.QueryParam("tag")

	var blogs []content.Blog
	var err error
	if search == "" && tag == "" {
		blogs, err = a.Cache.Published()
	} else {
		blogs, err = a.Content.PublishedBlogs(search, tag)
	}
	if err != nil {
		return err
	}
	tags, err := a.Cache.Tags()
	if err != nil {
		return err
	}
	page, pagination := content.Paginate(blogs, queryPage(c), content.PageSizePublic)
	return Render(c, a.Views.Blog(views.BlogListData{
		Blogs:      page,
		Tags:       tags,
		Search:     search,
		ActiveTag:  tag,
		Pagination: pagination,
	}))
}

func (a *App) handleBlogPost(c echo.Context) error {
	b, err := a.Cache.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	related, err := a.Content.RelatedBlogs(b.ID, 3)
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogPost(views.BlogDetailData{Blog: b, Related: related}))
}

func (a *App) handleContact(c echo.Context) error {
	return a.renderContact(c, views.ContactData{Sent: c.QueryParam("sent") == "1"})
}

func (a *App) handleContactSubmit(c echo.Context) error {
	in := content.SubmissionInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}
	_, err := a.Content.CreateSubmission(in)
	if err != nil {
		var ve *content.ValidationError
		if errors.As(err, &ve) {
			if isAjax(c) {
				return c.JSON(http.StatusBadRequest, map[string]any{
					"success": false,
					"field":   ve.Field,
					"error":   ve.Error(),
				})
			}
			return a.renderContact(c, views.ContactData{FieldError: ve.Field})
		}
		return err
	}
	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}
	return c.Redirect(http.StatusSeeOther, "/contact/?sent=1")
}

func (a *App) renderContact(c echo.Context, data views.ContactData) error {
	profile, err := a.Content.Profile()
	if err != nil {
		return err
	}
	page, err := a.Content.ContactPage()
	if err != nil {
		return err
	}
	data.Profile = profile
	data.Page = page
	return Render(c, a.Views.Contact(data))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.WithField("error", err.Error()).Error("server error")
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
