package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminAboutItems(c echo.Context) error {
	data := views.AboutItemsData{AdminPage: a.adminPage(c)}
	var err error
	if data.Educations, err = a.Content.Educations(false); err != nil {
		return err
	}
	if data.Experiences, err = a.Content.Experiences(false); err != nil {
		return err
	}
	if data.Achievements, err = a.Content.Achievements(false); err != nil {
		return err
	}
	if data.Interests, err = a.Content.Interests(false); err != nil {
		return err
	}
	if data.CoreValues, err = a.Content.CoreValues(false); err != nil {
		return err
	}
	return Render(c, a.Views.AdminAboutItems(data))
}

// handleAdminAboutItemSave creates (no id) or updates one about-page list
// item. The :kind segment selects which list.
func (a *App) handleAdminAboutItemSave(c echo.Context) error {
	id := c.Param("id")
	var err error
	switch c.Param("kind") {
	case "education":
		_, err = a.Content.SaveEducation(id, content.EducationInput{
			Degree:      c.FormValue("degree"),
			Institution: c.FormValue("institution"),
			Year:        c.FormValue("year"),
			Description: c.FormValue("description"),
			Order:       formInt(c, "order", 0),
			IsActive:    formBool(c, "is_active"),
		})
	case "experience":
		_, err = a.Content.SaveExperience(id, content.ExperienceInput{
			Role:         c.FormValue("role"),
			Organization: c.FormValue("organization"),
			Period:       c.FormValue("period"),
			Description:  c.FormValue("description"),
			Order:        formInt(c, "order", 0),
			IsActive:     formBool(c, "is_active"),
		})
	case "achievement":
		_, err = a.Content.SaveAchievement(id, content.AchievementInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Year:        c.FormValue("year"),
			Order:       formInt(c, "order", 0),
			IsActive:    formBool(c, "is_active"),
		})
	case "interest":
		_, err = a.Content.SaveInterest(id, cardInput(c))
	case "value":
		_, err = a.Content.SaveCoreValue(id, cardInput(c))
	default:
		return echo.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		if content.IsValidation(err) {
			flash(c, "error", err.Error())
			return c.Redirect(http.StatusSeeOther, "/admin/about/items/")
		}
		return err
	}
	flash(c, "success", "Item saved")
	return c.Redirect(http.StatusSeeOther, "/admin/about/items/")
}

func (a *App) handleAdminAboutItemDelete(c echo.Context) error {
	id := c.Param("id")
	var err error
	switch c.Param("kind") {
	case "education":
		err = a.Content.DeleteEducation(id)
	case "experience":
		err = a.Content.DeleteExperience(id)
	case "achievement":
		err = a.Content.DeleteAchievement(id)
	case "interest":
		err = a.Content.DeleteInterest(id)
	case "value":
		err = a.Content.DeleteCoreValue(id)
	default:
		return echo.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Item deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/about/items/")
}

func (a *App) handleAdminAboutItemToggle(c echo.Context) error {
	id := c.Param("id")
	var active bool
	switch c.Param("kind") {
	case "education":
		e, err := a.Content.ToggleEducationActive(id)
		if err != nil {
			return aboutToggleError(err)
		}
		active = e.Active()
	case "experience":
		e, err := a.Content.ToggleExperienceActive(id)
		if err != nil {
			return aboutToggleError(err)
		}
		active = e.IsActive
	case "achievement":
		ach, err := a.Content.ToggleAchievementActive(id)
		if err != nil {
			return aboutToggleError(err)
		}
		active = ach.IsActive
	case "interest":
		i, err := a.Content.ToggleInterestActive(id)
		if err != nil {
			return aboutToggleError(err)
		}
		active = i.Active()
	case "value":
		v, err := a.Content.ToggleCoreValueActive(id)
		if err != nil {
			return aboutToggleError(err)
		}
		active = v.Active()
	default:
		return echo.ErrNotFound
	}
	if active {
		flash(c, "success", "Item activated")
	} else {
		flash(c, "success", "Item deactivated")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/about/items/")
}

func aboutToggleError(err error) error {
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	return err
}

func cardInput(c echo.Context) content.CardInput {
	return content.CardInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Icon:        c.FormValue("icon"),
		Color:       c.FormValue("color"),
		Order:       formInt(c, "order", 0),
		IsActive:    formBool(c, "is_active"),
	}
}
