package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nikmish/folio/docstore"
)

// categoryPair names a category collection and the item collection whose
// documents weakly reference it through category_id. Skills and research
// entries share one cascade algorithm over their respective pairs.
type categoryPair struct {
	categories string
	items      string
}

var (
	skillPair    = categoryPair{categories: ColSkillCategories, items: ColSkills}
	researchPair = categoryPair{categories: ColResearchCategories, items: ColResearchEntries}
)

// CategoryInput carries the admin-form fields for creating or updating a
// category.
type CategoryInput struct {
	Name        string
	Description string
	Order       int
	IsActive    bool
}

func (s *Service) getCategory(p categoryPair, id string) (*Category, error) {
	doc, err := s.store.Get(p.categories, id)
	if err != nil {
		return nil, fmt.Errorf("load category %s: %w", id, err)
	}
	var cat Category
	if err := decode(doc, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// saveCategory validates, assigns the slug on first save, and persists.
func (s *Service) saveCategory(p categoryPair, id string, in CategoryInput) (*Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "category name"}
	}

	var cat *Category
	if id != "" {
		existing, err := s.getCategory(p, id)
		if err != nil {
			return nil, err
		}
		cat = existing
	} else {
		cat = &Category{}
	}
	cat.Name = name
	cat.Description = strings.TrimSpace(in.Description)
	cat.Order = in.Order
	cat.IsActive = in.IsActive
	if err := s.assignSlug(p.categories, cat); err != nil {
		return nil, err
	}

	if cat.ID == "" {
		doc, err := s.store.Insert(p.categories, cat)
		if err != nil {
			return nil, fmt.Errorf("insert category: %w", err)
		}
		cat.attach(doc)
		return cat, nil
	}
	if err := s.store.Update(p.categories, cat.ID, cat); err != nil {
		return nil, fmt.Errorf("update category %s: %w", cat.ID, err)
	}
	return cat, nil
}

// toggleCategoryActive flips a category's activation flag. Deactivation
// cascades: every item referencing the category is forced inactive.
// Activation never cascades; items must be reactivated individually.
func (s *Service) toggleCategoryActive(p categoryPair, id string) (*Category, error) {
	cat, err := s.getCategory(p, id)
	if err != nil {
		return nil, err
	}
	cat.IsActive = !cat.IsActive
	if err := s.store.Update(p.categories, cat.ID, cat); err != nil {
		return nil, fmt.Errorf("update category %s: %w", cat.ID, err)
	}
	if !cat.IsActive {
		n, err := s.forEachItemOf(p, id, func(fields map[string]any) {
			fields["is_active"] = false
		})
		if err != nil {
			return nil, err
		}
		s.info(logrus.Fields{"category": cat.Name, "items": n}, "cascade-deactivated category items")
	}
	return cat, nil
}

// deleteCategory clears the category reference on every dependent item (the
// items themselves are neither deleted nor deactivated), then removes the
// category document.
func (s *Service) deleteCategory(p categoryPair, id string) (*Category, error) {
	cat, err := s.getCategory(p, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.forEachItemOf(p, id, func(fields map[string]any) {
		fields["category_id"] = nil
	}); err != nil {
		return nil, err
	}
	if err := s.store.Delete(p.categories, id); err != nil {
		return nil, fmt.Errorf("delete category %s: %w", id, err)
	}
	return cat, nil
}

// forEachItemOf applies mutate to every item referencing categoryID and
// writes each back. Returns the number of items touched.
func (s *Service) forEachItemOf(p categoryPair, categoryID string, mutate func(map[string]any)) (int, error) {
	docs, err := s.store.Find(p.items, docstore.Eq("category_id", categoryID))
	if err != nil {
		return 0, fmt.Errorf("list items of category %s: %w", categoryID, err)
	}
	for _, d := range docs {
		fields, err := d.Map()
		if err != nil {
			return 0, err
		}
		mutate(fields)
		if err := s.store.Update(p.items, d.ID, fields); err != nil {
			return 0, fmt.Errorf("update item %s: %w", d.ID, err)
		}
	}
	return len(docs), nil
}

// categoryBlocksActivation reports whether activating an item must be
// refused because its referenced category exists and is inactive. A missing
// or already-deleted category never blocks.
func (s *Service) categoryBlocksActivation(p categoryPair, categoryID *string) (bool, error) {
	if categoryID == nil || *categoryID == "" {
		return false, nil
	}
	cat, err := s.getCategory(p, *categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return !cat.IsActive, nil
}

// listCategories returns every category of a pair ordered by display order
// descending, then name — the configured admin ordering.
func (s *Service) listCategories(p categoryPair, activeOnly bool) ([]Category, error) {
	var filters []docstore.Filter
	if activeOnly {
		filters = append(filters, docstore.Eq("is_active", true))
	}
	docs, err := s.store.Find(p.categories, filters...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.categories, err)
	}
	cats, err := decodeAll[Category](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order > cats[j].Order
		}
		return cats[i].Name < cats[j].Name
	})
	return cats, nil
}
