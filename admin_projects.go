package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminProjects(c echo.Context) error {
	projects, err := a.Content.AllProjects()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminProjects(views.ProjectManagerData{
		AdminPage: a.adminPage(c),
		Projects:  projects,
	}))
}

func (a *App) handleAdminProjectEditor(c echo.Context) error {
	data := views.ProjectEditorData{AdminPage: a.adminPage(c)}
	if id := c.Param("id"); id != "" {
		p, err := a.Content.GetProject(id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return echo.ErrNotFound
			}
			return err
		}
		data.Project = p
	}
	return Render(c, a.Views.AdminProjectForm(data))
}

func (a *App) handleAdminProjectCreate(c echo.Context) error {
	in, err := a.projectInput(c)
	if err != nil {
		return a.projectFormError(c, err, "/admin/projects/new/")
	}
	if _, err := a.Content.CreateProject(in); err != nil {
		return a.projectFormError(c, err, "/admin/projects/new/")
	}
	flash(c, "success", "Project created")
	return c.Redirect(http.StatusSeeOther, "/admin/projects/")
}

func (a *App) handleAdminProjectUpdate(c echo.Context) error {
	id := c.Param("id")
	in, err := a.projectInput(c)
	if err != nil {
		return a.projectFormError(c, err, "/admin/projects/"+id+"/")
	}
	if _, err := a.Content.UpdateProject(id, in); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.projectFormError(c, err, "/admin/projects/"+id+"/")
	}
	flash(c, "success", "Project saved")
	return c.Redirect(http.StatusSeeOther, "/admin/projects/")
}

func (a *App) handleAdminProjectDelete(c echo.Context) error {
	if _, err := a.Content.DeleteProject(c.Param("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Project deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/projects/")
}

func (a *App) handleAdminProjectToggle(c echo.Context) error {
	p, err := a.Content.ToggleProjectActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if p.IsActive {
		flash(c, "success", "Project activated")
	} else {
		flash(c, "success", "Project deactivated")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/projects/")
}

func (a *App) handleAdminProjectFeature(c echo.Context) error {
	p, err := a.Content.ToggleProjectFeatured(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if p.IsFeatured {
		flash(c, "success", "Project featured")
	} else {
		flash(c, "success", "Project unfeatured")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/projects/")
}

func (a *App) projectInput(c echo.Context) (content.ProjectInput, error) {
	in := content.ProjectInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		TechStack:   SplitTags(c.FormValue("tech_stack")),
		GithubLink:  c.FormValue("github_link"),
		DemoLink:    c.FormValue("demo_link"),
		IsFeatured:  formBool(c, "is_featured"),
		IsActive:    formBool(c, "is_active"),
	}
	file, err := c.FormFile("image")
	if err == nil {
		path, err := a.storeImageUpload(file, "projects", cardImageWidth)
		if err != nil {
			return in, err
		}
		in.ImagePath = path
	}
	return in, nil
}

func (a *App) projectFormError(c echo.Context, err error, back string) error {
	if content.IsValidation(err) || errors.Is(err, ErrUploadTooLarge) {
		flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, back)
	}
	return err
}
