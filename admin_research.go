package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminResearch(c echo.Context) error {
	categories, err := a.Content.ResearchCategories(false)
	if err != nil {
		return err
	}
	categoryFilter := c.QueryParam("category")
	search := c.QueryParam("q")
	entries, err := a.Content.AdminResearchEntries(categoryFilter, search)
	if err != nil {
		return err
	}
	pageEntries, pagination := content.Paginate(entries, queryPage(c), content.PageSizePublic)
	return Render(c, a.Views.AdminResearch(views.ResearchManagerData{
		AdminPage:      a.adminPage(c),
		Categories:     categories,
		Entries:        pageEntries,
		CategoryFilter: categoryFilter,
		Search:         search,
		Pagination:     pagination,
		CategoryNames:  categoryNameMap(categories),
	}))
}

func (a *App) handleAdminResearchCategorySave(c echo.Context) error {
	cat, err := a.Content.SaveResearchCategory(c.Param("id"), categoryInput(c))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.researchFormError(c, err)
	}
	flash(c, "success", "Category "+cat.Name+" saved")
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchCategoryDelete(c echo.Context) error {
	cat, err := a.Content.DeleteResearchCategory(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Category "+cat.Name+" deleted; its entries are now uncategorized")
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchCategoryToggle(c echo.Context) error {
	cat, err := a.Content.ToggleResearchCategoryActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if cat.IsActive {
		flash(c, "success", "Category "+cat.Name+" activated")
	} else {
		flash(c, "warning", "Category "+cat.Name+" deactivated along with its entries")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchEntryCreate(c echo.Context) error {
	entry, err := a.Content.CreateResearchEntry(researchEntryInput(c))
	if err != nil {
		return a.researchFormError(c, err)
	}
	flash(c, "success", "Entry "+entry.Title+" created")
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchEntryUpdate(c echo.Context) error {
	entry, err := a.Content.UpdateResearchEntry(c.Param("id"), researchEntryInput(c))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.researchFormError(c, err)
	}
	flash(c, "success", "Entry "+entry.Title+" saved")
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchEntryDelete(c echo.Context) error {
	entry, err := a.Content.DeleteResearchEntry(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Entry "+entry.Title+" deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) handleAdminResearchEntryToggle(c echo.Context) error {
	entry, err := a.Content.ToggleResearchEntryActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		if errors.Is(err, content.ErrInactiveParent) {
			flash(c, "warning", "Cannot activate "+entry.Title+": its category is inactive")
			return c.Redirect(http.StatusSeeOther, "/admin/research/")
		}
		return err
	}
	if entry.Active() {
		flash(c, "success", "Entry "+entry.Title+" activated")
	} else {
		flash(c, "success", "Entry "+entry.Title+" deactivated")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/research/")
}

func (a *App) researchFormError(c echo.Context, err error) error {
	if content.IsValidation(err) {
		flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, "/admin/research/")
	}
	return err
}

func researchEntryInput(c echo.Context) content.ResearchEntryInput {
	return content.ResearchEntryInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Publication: c.FormValue("publication"),
		Link:        c.FormValue("link"),
		CategoryID:  c.FormValue("category_id"),
	}
}
