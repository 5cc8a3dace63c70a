package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminSkills(c echo.Context) error {
	categories, err := a.Content.SkillCategories(false)
	if err != nil {
		return err
	}
	skills, err := a.Content.AllSkills()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminSkills(views.SkillManagerData{
		AdminPage:     a.adminPage(c),
		Categories:    categories,
		Skills:        skills,
		CategoryNames: categoryNameMap(categories),
	}))
}

func (a *App) handleAdminSkillCreate(c echo.Context) error {
	sk, err := a.Content.CreateSkill(skillInput(c))
	if err != nil {
		return a.skillFormError(c, err)
	}
	a.flashSkillSaved(c, sk)
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillUpdate(c echo.Context) error {
	sk, err := a.Content.UpdateSkill(c.Param("id"), skillInput(c))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.skillFormError(c, err)
	}
	a.flashSkillSaved(c, sk)
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillDelete(c echo.Context) error {
	sk, err := a.Content.DeleteSkill(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Skill "+sk.Name+" deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillToggle(c echo.Context) error {
	sk, err := a.Content.ToggleSkillActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		if errors.Is(err, content.ErrInactiveParent) {
			flash(c, "warning", "Cannot activate "+sk.Name+": its category is inactive")
			return c.Redirect(http.StatusSeeOther, "/admin/skills/")
		}
		return err
	}
	if sk.IsActive {
		flash(c, "success", "Skill "+sk.Name+" activated")
	} else {
		flash(c, "success", "Skill "+sk.Name+" deactivated")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillCategorySave(c echo.Context) error {
	cat, err := a.Content.SaveSkillCategory(c.Param("id"), categoryInput(c))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.skillFormError(c, err)
	}
	flash(c, "success", "Category "+cat.Name+" saved")
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillCategoryDelete(c echo.Context) error {
	cat, err := a.Content.DeleteSkillCategory(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Category "+cat.Name+" deleted; its skills are now uncategorized")
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) handleAdminSkillCategoryToggle(c echo.Context) error {
	cat, err := a.Content.ToggleSkillCategoryActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if cat.IsActive {
		flash(c, "success", "Category "+cat.Name+" activated")
	} else {
		flash(c, "warning", "Category "+cat.Name+" deactivated along with its skills")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/skills/")
}

func (a *App) flashSkillSaved(c echo.Context, sk *content.Skill) {
	// The service silently downgrades a skill saved as active under an
	// inactive category; surface that to the admin.
	if !sk.IsActive && formBool(c, "is_active") {
		flash(c, "warning", "Skill "+sk.Name+" saved as inactive: its category is inactive")
		return
	}
	flash(c, "success", "Skill "+sk.Name+" saved")
}

func (a *App) skillFormError(c echo.Context, err error) error {
	if content.IsValidation(err) {
		flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/admin/skills/")
	}
	return err
}

func skillInput(c echo.Context) content.SkillInput {
	return content.SkillInput{
		Name:        c.FormValue("name"),
		CategoryID:  c.FormValue("category_id"),
		Proficiency: formInt(c, "proficiency", 0),
		Icon:        c.FormValue("icon"),
		IsActive:    formBool(c, "is_active"),
	}
}

func categoryInput(c echo.Context) content.CategoryInput {
	return content.CategoryInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Order:       formInt(c, "order", 0),
		IsActive:    formBool(c, "is_active"),
	}
}

func categoryNameMap(categories []content.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}
