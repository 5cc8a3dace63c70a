package content

import (
	"fmt"
	"sort"
	"strings"
)

// EducationInput carries the admin-form fields for an education entry.
type EducationInput struct {
	Degree      string
	Institution string
	Year        string
	Description string
	Order       int
	IsActive    bool
}

// ExperienceInput carries the admin-form fields for an experience entry.
type ExperienceInput struct {
	Role         string
	Organization string
	Period       string
	Description  string
	Order        int
	IsActive     bool
}

// AchievementInput carries the admin-form fields for an achievement.
type AchievementInput struct {
	Title       string
	Description string
	Year        string
	Order       int
	IsActive    bool
}

// CardInput carries the shared form fields of interest and core-value cards.
type CardInput struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Order       int
	IsActive    bool
}

// Educations lists education entries, optionally only the publicly visible
// ones, in display order.
func (s *Service) Educations(activeOnly bool) ([]Education, error) {
	items, err := findOrdered[Education](s, ColEducation, func(e Education) int { return e.Order })
	if err != nil {
		return nil, err
	}
	if activeOnly {
		items = keep(items, Education.Active)
	}
	return items, nil
}

// GetEducation returns one education entry by id.
func (s *Service) GetEducation(id string) (*Education, error) {
	return getItem[Education](s, ColEducation, id)
}

// SaveEducation creates (empty id) or updates an education entry.
func (s *Service) SaveEducation(id string, in EducationInput) (*Education, error) {
	degree := strings.TrimSpace(in.Degree)
	if degree == "" {
		return nil, &ValidationError{Field: "education degree"}
	}
	e, err := loadOrNew[Education](s, ColEducation, id)
	if err != nil {
		return nil, err
	}
	e.Degree = degree
	e.Institution = strings.TrimSpace(in.Institution)
	e.Year = strings.TrimSpace(in.Year)
	e.Description = strings.TrimSpace(in.Description)
	e.Order = in.Order
	e.IsActive = boolPtr(in.IsActive)
	return saveItem(s, ColEducation, id, e)
}

// DeleteEducation removes an education entry.
func (s *Service) DeleteEducation(id string) error {
	return deleteItem(s, ColEducation, id)
}

// ToggleEducationActive flips an education entry's visibility. Entries that
// predate the flag count as active, so their first toggle deactivates.
func (s *Service) ToggleEducationActive(id string) (*Education, error) {
	e, err := getItem[Education](s, ColEducation, id)
	if err != nil {
		return nil, err
	}
	e.IsActive = boolPtr(!e.Active())
	return saveItem(s, ColEducation, id, e)
}

// Experiences lists experience entries in display order.
func (s *Service) Experiences(activeOnly bool) ([]Experience, error) {
	items, err := findOrdered[Experience](s, ColExperiences, func(e Experience) int { return e.Order })
	if err != nil {
		return nil, err
	}
	if activeOnly {
		items = keep(items, func(e Experience) bool { return e.IsActive })
	}
	return items, nil
}

// GetExperience returns one experience entry by id.
func (s *Service) GetExperience(id string) (*Experience, error) {
	return getItem[Experience](s, ColExperiences, id)
}

// SaveExperience creates (empty id) or updates an experience entry.
func (s *Service) SaveExperience(id string, in ExperienceInput) (*Experience, error) {
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return nil, &ValidationError{Field: "experience role"}
	}
	e, err := loadOrNew[Experience](s, ColExperiences, id)
	if err != nil {
		return nil, err
	}
	e.Role = role
	e.Organization = strings.TrimSpace(in.Organization)
	e.Period = strings.TrimSpace(in.Period)
	e.Description = strings.TrimSpace(in.Description)
	e.Order = in.Order
	e.IsActive = in.IsActive
	return saveItem(s, ColExperiences, id, e)
}

// DeleteExperience removes an experience entry.
func (s *Service) DeleteExperience(id string) error {
	return deleteItem(s, ColExperiences, id)
}

// ToggleExperienceActive flips an experience entry's visibility.
func (s *Service) ToggleExperienceActive(id string) (*Experience, error) {
	e, err := getItem[Experience](s, ColExperiences, id)
	if err != nil {
		return nil, err
	}
	e.IsActive = !e.IsActive
	return saveItem(s, ColExperiences, id, e)
}

// Achievements lists achievements in display order.
func (s *Service) Achievements(activeOnly bool) ([]Achievement, error) {
	items, err := findOrdered[Achievement](s, ColAchievements, func(a Achievement) int { return a.Order })
	if err != nil {
		return nil, err
	}
	if activeOnly {
		items = keep(items, func(a Achievement) bool { return a.IsActive })
	}
	return items, nil
}

// GetAchievement returns one achievement by id.
func (s *Service) GetAchievement(id string) (*Achievement, error) {
	return getItem[Achievement](s, ColAchievements, id)
}

// SaveAchievement creates (empty id) or updates an achievement.
func (s *Service) SaveAchievement(id string, in AchievementInput) (*Achievement, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "achievement title"}
	}
	a, err := loadOrNew[Achievement](s, ColAchievements, id)
	if err != nil {
		return nil, err
	}
	a.Title = title
	a.Description = strings.TrimSpace(in.Description)
	a.Year = strings.TrimSpace(in.Year)
	a.Order = in.Order
	a.IsActive = in.IsActive
	return saveItem(s, ColAchievements, id, a)
}

// DeleteAchievement removes an achievement.
func (s *Service) DeleteAchievement(id string) error {
	return deleteItem(s, ColAchievements, id)
}

// ToggleAchievementActive flips an achievement's visibility.
func (s *Service) ToggleAchievementActive(id string) (*Achievement, error) {
	a, err := getItem[Achievement](s, ColAchievements, id)
	if err != nil {
		return nil, err
	}
	a.IsActive = !a.IsActive
	return saveItem(s, ColAchievements, id, a)
}

// Interests lists interest cards in display order.
func (s *Service) Interests(activeOnly bool) ([]Interest, error) {
	items, err := findOrdered[Interest](s, ColInterests, func(i Interest) int { return i.Order })
	if err != nil {
		return nil, err
	}
	if activeOnly {
		items = keep(items, Interest.Active)
	}
	return items, nil
}

// GetInterest returns one interest card by id.
func (s *Service) GetInterest(id string) (*Interest, error) {
	return getItem[Interest](s, ColInterests, id)
}

// SaveInterest creates (empty id) or updates an interest card.
func (s *Service) SaveInterest(id string, in CardInput) (*Interest, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "interest title"}
	}
	it, err := loadOrNew[Interest](s, ColInterests, id)
	if err != nil {
		return nil, err
	}
	it.Title = title
	it.Description = strings.TrimSpace(in.Description)
	it.Icon = strings.TrimSpace(in.Icon)
	it.Color = strings.TrimSpace(in.Color)
	it.Order = in.Order
	it.IsActive = boolPtr(in.IsActive)
	return saveItem(s, ColInterests, id, it)
}

// DeleteInterest removes an interest card.
func (s *Service) DeleteInterest(id string) error {
	return deleteItem(s, ColInterests, id)
}

// ToggleInterestActive flips an interest card's visibility.
func (s *Service) ToggleInterestActive(id string) (*Interest, error) {
	it, err := getItem[Interest](s, ColInterests, id)
	if err != nil {
		return nil, err
	}
	it.IsActive = boolPtr(!it.Active())
	return saveItem(s, ColInterests, id, it)
}

// CoreValues lists core-value cards in display order.
func (s *Service) CoreValues(activeOnly bool) ([]CoreValue, error) {
	items, err := findOrdered[CoreValue](s, ColCoreValues, func(v CoreValue) int { return v.Order })
	if err != nil {
		return nil, err
	}
	if activeOnly {
		items = keep(items, CoreValue.Active)
	}
	return items, nil
}

// GetCoreValue returns one core-value card by id.
func (s *Service) GetCoreValue(id string) (*CoreValue, error) {
	return getItem[CoreValue](s, ColCoreValues, id)
}

// SaveCoreValue creates (empty id) or updates a core-value card.
func (s *Service) SaveCoreValue(id string, in CardInput) (*CoreValue, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "core value title"}
	}
	v, err := loadOrNew[CoreValue](s, ColCoreValues, id)
	if err != nil {
		return nil, err
	}
	v.Title = title
	v.Description = strings.TrimSpace(in.Description)
	v.Icon = strings.TrimSpace(in.Icon)
	v.Color = strings.TrimSpace(in.Color)
	v.Order = in.Order
	v.IsActive = boolPtr(in.IsActive)
	return saveItem(s, ColCoreValues, id, v)
}

// DeleteCoreValue removes a core-value card.
func (s *Service) DeleteCoreValue(id string) error {
	return deleteItem(s, ColCoreValues, id)
}

// ToggleCoreValueActive flips a core-value card's visibility.
func (s *Service) ToggleCoreValueActive(id string) (*CoreValue, error) {
	v, err := getItem[CoreValue](s, ColCoreValues, id)
	if err != nil {
		return nil, err
	}
	v.IsActive = boolPtr(!v.Active())
	return saveItem(s, ColCoreValues, id, v)
}

// getItem loads and decodes one document of an about-page list collection.
func getItem[T any, PT interface {
	*T
	attachable
}](s *Service, collection, id string) (PT, error) {
	doc, err := s.store.Get(collection, id)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", collection, id, err)
	}
	item := PT(new(T))
	if err := decode(doc, item); err != nil {
		return nil, err
	}
	return item, nil
}

// loadOrNew returns the stored item for a non-empty id or a zero value for
// an empty one.
func loadOrNew[T any, PT interface {
	*T
	attachable
}](s *Service, collection, id string) (PT, error) {
	if id == "" {
		return PT(new(T)), nil
	}
	return getItem[T, PT](s, collection, id)
}

// saveItem inserts (empty id) or updates the item and returns it attached.
func saveItem[T any, PT interface {
	*T
	attachable
}](s *Service, collection, id string, item PT) (PT, error) {
	if id == "" {
		doc, err := s.store.Insert(collection, item)
		if err != nil {
			return nil, fmt.Errorf("insert into %s: %w", collection, err)
		}
		item.attach(doc)
		return item, nil
	}
	if err := s.store.Update(collection, id, item); err != nil {
		return nil, fmt.Errorf("update %s %s: %w", collection, id, err)
	}
	return item, nil
}

func deleteItem(s *Service, collection, id string) error {
	if err := s.store.Delete(collection, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", collection, id, err)
	}
	return nil
}

// findOrdered lists a collection sorted by display order ascending. Ties
// keep insertion order, which the store returns oldest first.
func findOrdered[T any, PT interface {
	*T
	attachable
}](s *Service, collection string, orderOf func(T) int) ([]T, error) {
	docs, err := s.store.Find(collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	items, err := decodeAll[T, PT](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return orderOf(items[i]) < orderOf(items[j])
	})
	return items, nil
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
