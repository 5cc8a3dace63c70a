package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminHomePage(c echo.Context) error {
	page, err := a.Content.HomePage()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminPageConfig(views.PageManagerData{
		AdminPage: a.adminPage(c),
		Home:      page,
	}))
}

func (a *App) handleAdminHomePageSave(c echo.Context) error {
	page, err := a.Content.HomePage()
	if err != nil {
		return err
	}
	page.HeroTitle = c.FormValue("hero_title")
	page.HeroSubtitle = c.FormValue("hero_subtitle")
	page.HeroDescription = c.FormValue("hero_description")
	page.ShowHeroTitle = formFlag(c, "show_hero_title")
	page.ShowHeroSubtitle = formFlag(c, "show_hero_subtitle")
	page.ShowHeroDescription = formFlag(c, "show_hero_description")
	page.ShowStats = formFlag(c, "show_stats")
	page.CustomStatLabel = c.FormValue("custom_stat_label")
	page.CustomStatValue = c.FormValue("custom_stat_value")
	page.ShowSkillsSummary = formFlag(c, "show_skills_summary")
	page.CtaTitle = c.FormValue("cta_title")
	page.CtaDescription = c.FormValue("cta_description")
	page.CtaButtonText = c.FormValue("cta_button_text")
	page.ShowCtaSection = formFlag(c, "show_cta_section")
	if err := a.Content.SaveHomePage(page); err != nil {
		return err
	}
	flash(c, "success", "Home page saved")
	return c.Redirect(http.StatusSeeOther, "/admin/pages/home/")
}

func (a *App) handleAdminAboutPage(c echo.Context) error {
	page, err := a.Content.AboutPage()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminPageConfig(views.PageManagerData{
		AdminPage: a.adminPage(c),
		About:     page,
	}))
}

func (a *App) handleAdminAboutPageSave(c echo.Context) error {
	page, err := a.Content.AboutPage()
	if err != nil {
		return err
	}
	page.PageTitle = c.FormValue("page_title")
	page.Introduction = c.FormValue("introduction")
	page.ShowPageTitle = formFlag(c, "show_page_title")
	page.ShowIntroduction = formFlag(c, "show_introduction")
	page.ShowStatsSection = formFlag(c, "show_stats_section")
	page.ShowEducation = formFlag(c, "show_education")
	page.ShowInterests = formFlag(c, "show_interests")
	page.ShowValues = formFlag(c, "show_values")
	page.ShowExperiences = formFlag(c, "show_experiences")
	page.ShowAchievements = formFlag(c, "show_achievements")
	page.InterestsTitle = c.FormValue("interests_title")
	page.InterestsSubtitle = c.FormValue("interests_subtitle")
	page.ValuesTitle = c.FormValue("values_title")
	page.ValuesSubtitle = c.FormValue("values_subtitle")
	if err := a.Content.SaveAboutPage(page); err != nil {
		return err
	}
	flash(c, "success", "About page saved")
	return c.Redirect(http.StatusSeeOther, "/admin/pages/about/")
}

func (a *App) handleAdminContactPage(c echo.Context) error {
	page, err := a.Content.ContactPage()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminPageConfig(views.PageManagerData{
		AdminPage: a.adminPage(c),
		Contact:   page,
	}))
}

func (a *App) handleAdminContactPageSave(c echo.Context) error {
	page, err := a.Content.ContactPage()
	if err != nil {
		return err
	}
	page.PageTitle = c.FormValue("page_title")
	page.PageSubtitle = c.FormValue("page_subtitle")
	page.ShowPageTitle = formFlag(c, "show_page_title")
	page.ShowPageSubtitle = formFlag(c, "show_page_subtitle")
	page.ConnectTitle = c.FormValue("connect_title")
	page.ConnectDescription = c.FormValue("connect_description")
	page.ShowConnectSection = formFlag(c, "show_connect_section")
	page.CtaTitle = c.FormValue("cta_title")
	page.CtaDescription = c.FormValue("cta_description")
	page.CtaButtonText = c.FormValue("cta_button_text")
	page.ShowCtaSection = formFlag(c, "show_cta_section")
	page.ShowContactInfo = formFlag(c, "show_contact_info")
	page.ShowContactForm = formFlag(c, "show_contact_form")
	page.ShowPhone = formFlag(c, "show_phone")
	page.ShowLocation = formFlag(c, "show_location")
	page.LocationText = c.FormValue("location_text")
	if err := a.Content.SaveContactPage(page); err != nil {
		return err
	}
	flash(c, "success", "Contact page saved")
	return c.Redirect(http.StatusSeeOther, "/admin/pages/contact/")
}

// formFlag reads a checkbox into the pointer form the page records use.
// Unchecked boxes are absent from the form, so a save always pins every
// flag explicitly.
func formFlag(c echo.Context, field string) *bool {
	v := formBool(c, field)
	return &v
}
