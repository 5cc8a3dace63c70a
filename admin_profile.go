package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminProfile(c echo.Context) error {
	profile, err := a.Content.Profile()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminProfile(views.ProfileData{
		AdminPage: a.adminPage(c),
		Profile:   profile,
	}))
}

func (a *App) handleAdminProfileSave(c echo.Context) error {
	in := content.ProfileInput{
		Name:     c.FormValue("name"),
		Role:     c.FormValue("role"),
		Bio:      c.FormValue("bio"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Github:   c.FormValue("github"),
		Linkedin: c.FormValue("linkedin"),
		Twitter:  c.FormValue("twitter"),
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := a.storeImageUpload(file, "profile", cardImageWidth)
		if err != nil {
			return a.profileFormError(c, err)
		}
		in.ImagePath = path
	}
	if file, err := c.FormFile("resume"); err == nil {
		path, err := a.storeFileUpload(file, "resumes")
		if err != nil {
			return a.profileFormError(c, err)
		}
		in.ResumePath = path
	}
	if _, err := a.Content.SaveProfile(in); err != nil {
		return a.profileFormError(c, err)
	}
	flash(c, "success", "Profile saved")
	return c.Redirect(http.StatusSeeOther, "/admin/profile/")
}

func (a *App) handleAdminRemoveResume(c echo.Context) error {
	if _, err := a.Content.RemoveResume(); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Resume removed")
	return c.Redirect(http.StatusSeeOther, "/admin/profile/")
}

func (a *App) profileFormError(c echo.Context, err error) error {
	if content.IsValidation(err) || errors.Is(err, ErrUploadTooLarge) {
		flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/admin/profile/")
	}
	return err
}
