package content

import "errors"

// Page-configuration records. Each collection holds at most one document.
// Visibility flags are pointers so that documents written before a flag
// existed read as visible instead of hidden; the *Visible accessors are also
// safe on a nil receiver, which the public site uses when the singleton has
// never been created.

// HomePage controls the text and section visibility of the home page.
type HomePage struct {
	Meta
	HeroTitle           string `json:"hero_title"`
	HeroSubtitle        string `json:"hero_subtitle"`
	HeroDescription     string `json:"hero_description"`
	ShowHeroTitle       *bool  `json:"show_hero_title,omitempty"`
	ShowHeroSubtitle    *bool  `json:"show_hero_subtitle,omitempty"`
	ShowHeroDescription *bool  `json:"show_hero_description,omitempty"`

	ShowStats       *bool  `json:"show_stats,omitempty"`
	CustomStatLabel string `json:"custom_stat_label"`
	CustomStatValue string `json:"custom_stat_value"`

	ShowSkillsSummary *bool `json:"show_skills_summary,omitempty"`

	CtaTitle       string `json:"cta_title"`
	CtaDescription string `json:"cta_description"`
	CtaButtonText  string `json:"cta_button_text"`
	ShowCtaSection *bool  `json:"show_cta_section,omitempty"`
}

func (p *HomePage) HeroTitleVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowHeroTitle, true)
}

func (p *HomePage) HeroSubtitleVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowHeroSubtitle, true)
}

func (p *HomePage) HeroDescriptionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowHeroDescription, true)
}

func (p *HomePage) StatsVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowStats, true)
}

func (p *HomePage) SkillsSummaryVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowSkillsSummary, true)
}

func (p *HomePage) CtaSectionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowCtaSection, true)
}

// CtaTitleOr returns the configured CTA title or def when unset.
func (p *HomePage) CtaTitleOr(def string) string {
	if p == nil || p.CtaTitle == "" {
		return def
	}
	return p.CtaTitle
}

// CtaDescriptionOr returns the configured CTA description or def when unset.
func (p *HomePage) CtaDescriptionOr(def string) string {
	if p == nil || p.CtaDescription == "" {
		return def
	}
	return p.CtaDescription
}

// CtaButtonTextOr returns the configured CTA button label or def when unset.
func (p *HomePage) CtaButtonTextOr(def string) string {
	if p == nil || p.CtaButtonText == "" {
		return def
	}
	return p.CtaButtonText
}

func defaultHomePage() HomePage {
	return HomePage{
		HeroTitle:       "Your Name",
		HeroSubtitle:    "Developer | Creator",
		HeroDescription: "Write a short introduction here.",
		CustomStatLabel: "Tech Stack",
		CustomStatValue: "5+",
		CtaTitle:        "Let's Work Together",
		CtaDescription:  "Have a project in mind? Let's create something amazing together.",
		CtaButtonText:   "Get In Touch",
	}
}

// AboutPage controls the text and section visibility of the about page.
type AboutPage struct {
	Meta
	PageTitle    string `json:"page_title"`
	Introduction string `json:"introduction"`

	ShowPageTitle    *bool `json:"show_page_title,omitempty"`
	ShowIntroduction *bool `json:"show_introduction,omitempty"`
	ShowStatsSection *bool `json:"show_stats_section,omitempty"`
	ShowEducation    *bool `json:"show_education,omitempty"`
	ShowInterests    *bool `json:"show_interests,omitempty"`
	ShowValues       *bool `json:"show_values,omitempty"`
	ShowExperiences  *bool `json:"show_experiences_section,omitempty"`
	ShowAchievements *bool `json:"show_achievements_section,omitempty"`

	InterestsTitle    string `json:"interests_title"`
	InterestsSubtitle string `json:"interests_subtitle"`
	ValuesTitle       string `json:"values_title"`
	ValuesSubtitle    string `json:"values_subtitle"`
}

func (p *AboutPage) PageTitleVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowPageTitle, true)
}

func (p *AboutPage) IntroductionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowIntroduction, true)
}

func (p *AboutPage) StatsSectionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowStatsSection, true)
}

func (p *AboutPage) EducationVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowEducation, true)
}

func (p *AboutPage) InterestsVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowInterests, true)
}

func (p *AboutPage) ValuesVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowValues, true)
}

func (p *AboutPage) ExperiencesVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowExperiences, true)
}

func (p *AboutPage) AchievementsVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowAchievements, true)
}

func defaultAboutPage() AboutPage {
	return AboutPage{
		PageTitle:         "About Me",
		Introduction:      "<p>Write your introduction here...</p>",
		InterestsTitle:    "Interests & Passion",
		InterestsSubtitle: "What drives me",
		ValuesTitle:       "Core Values",
		ValuesSubtitle:    "Principles I live by",
	}
}

// ContactPage controls the text and section visibility of the contact page.
type ContactPage struct {
	Meta
	PageTitle    string `json:"page_title"`
	PageSubtitle string `json:"page_subtitle"`

	ShowPageTitle    *bool `json:"show_page_title,omitempty"`
	ShowPageSubtitle *bool `json:"show_page_subtitle,omitempty"`

	ConnectTitle       string `json:"connect_title"`
	ConnectDescription string `json:"connect_description"`
	ShowConnectSection *bool  `json:"show_connect_section,omitempty"`

	CtaTitle       string `json:"cta_title"`
	CtaDescription string `json:"cta_description"`
	CtaButtonText  string `json:"cta_button_text"`
	ShowCtaSection *bool  `json:"show_cta_section,omitempty"`

	ShowContactInfo *bool  `json:"show_contact_info,omitempty"`
	ShowContactForm *bool  `json:"show_contact_form,omitempty"`
	ShowPhone       *bool  `json:"show_phone,omitempty"`
	ShowLocation    *bool  `json:"show_location,omitempty"`
	LocationText    string `json:"location_text"`
}

func (p *ContactPage) PageTitleVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowPageTitle, true)
}

func (p *ContactPage) PageSubtitleVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowPageSubtitle, true)
}

// PageHeaderVisible reports whether the header block renders at all.
func (p *ContactPage) PageHeaderVisible() bool {
	return p.PageTitleVisible() || p.PageSubtitleVisible()
}

func (p *ContactPage) ConnectSectionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowConnectSection, true)
}

func (p *ContactPage) CtaSectionVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowCtaSection, true)
}

func (p *ContactPage) ContactInfoVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowContactInfo, true)
}

func (p *ContactPage) ContactFormVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowContactForm, true)
}

func (p *ContactPage) PhoneVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowPhone, true)
}

func (p *ContactPage) LocationVisible() bool {
	if p == nil {
		return true
	}
	return boolOr(p.ShowLocation, true)
}

func defaultContactPage() ContactPage {
	return ContactPage{
		PageTitle:          "Get In Touch",
		PageSubtitle:       "Have a project in mind or want to collaborate? I'd love to hear from you!",
		ConnectTitle:       "Let's Connect",
		ConnectDescription: "<p>Write your connect description here...</p>",
		CtaTitle:           "Ready to Start a Project?",
		CtaDescription:     "Let's work together to bring your ideas to life.",
		CtaButtonText:      "View My Work",
	}
}

// HomePage returns the home-page configuration, creating it on first access.
func (s *Service) HomePage() (*HomePage, error) {
	doc, err := s.getOrCreateSingleton(ColHomePage, defaultHomePage())
	if err != nil {
		return nil, err
	}
	var page HomePage
	if err := decode(doc, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SaveHomePage persists the home-page configuration.
func (s *Service) SaveHomePage(page *HomePage) error {
	id, err := s.saveSingleton(ColHomePage, page.ID, page)
	if err != nil {
		return err
	}
	page.ID = id
	return nil
}

// AboutPage returns the about-page configuration, creating it on first access.
func (s *Service) AboutPage() (*AboutPage, error) {
	doc, err := s.getOrCreateSingleton(ColAboutPage, defaultAboutPage())
	if err != nil {
		return nil, err
	}
	var page AboutPage
	if err := decode(doc, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SaveAboutPage persists the about-page configuration.
func (s *Service) SaveAboutPage(page *AboutPage) error {
	id, err := s.saveSingleton(ColAboutPage, page.ID, page)
	if err != nil {
		return err
	}
	page.ID = id
	return nil
}

// ContactPage returns the contact-page configuration, creating it on first
// access.
func (s *Service) ContactPage() (*ContactPage, error) {
	doc, err := s.getOrCreateSingleton(ColContactPage, defaultContactPage())
	if err != nil {
		return nil, err
	}
	var page ContactPage
	if err := decode(doc, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SaveContactPage persists the contact-page configuration.
func (s *Service) SaveContactPage(page *ContactPage) error {
	id, err := s.saveSingleton(ColContactPage, page.ID, page)
	if err != nil {
		return err
	}
	page.ID = id
	return nil
}

// PeekHomePage returns the home-page configuration without creating it, or
// nil when it does not exist yet. Public pages use this so a first visit
// does not write anything.
func (s *Service) PeekHomePage() (*HomePage, error) {
	return peekSingleton[HomePage](s, ColHomePage)
}

// PeekAboutPage returns the about-page configuration without creating it.
func (s *Service) PeekAboutPage() (*AboutPage, error) {
	return peekSingleton[AboutPage](s, ColAboutPage)
}

// PeekContactPage returns the contact-page configuration without creating it.
func (s *Service) PeekContactPage() (*ContactPage, error) {
	return peekSingleton[ContactPage](s, ColContactPage)
}

func peekSingleton[T any, PT interface {
	*T
	attachable
}](s *Service, kind string) (*T, error) {
	doc, err := s.store.FindOne(kind)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var page T
	if err := decode(doc, PT(&page)); err != nil {
		return nil, err
	}
	return &page, nil
}
