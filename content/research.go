package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nikmish/folio/docstore"
)

// ResearchEntryInput carries the admin-form fields for a research entry.
type ResearchEntryInput struct {
	Title       string
	Description string
	Publication string
	Link        string
	CategoryID  string
}

// ResearchGroup is one research category and its publicly visible entries.
type ResearchGroup struct {
	Category Category
	Entries  []ResearchEntry
}

// ResearchCategories lists research categories in display order.
func (s *Service) ResearchCategories(activeOnly bool) ([]Category, error) {
	return s.listCategories(researchPair, activeOnly)
}

// SaveResearchCategory creates (empty id) or updates a research category.
func (s *Service) SaveResearchCategory(id string, in CategoryInput) (*Category, error) {
	return s.saveCategory(researchPair, id, in)
}

// ToggleResearchCategoryActive flips a research category's visibility,
// cascading deactivation to its entries. Activation does not cascade; each
// entry must be reactivated on its own.
func (s *Service) ToggleResearchCategoryActive(id string) (*Category, error) {
	return s.toggleCategoryActive(researchPair, id)
}

// DeleteResearchCategory removes the category after clearing the reference
// on every entry that points at it.
func (s *Service) DeleteResearchCategory(id string) (*Category, error) {
	return s.deleteCategory(researchPair, id)
}

// GetResearchEntry returns one research entry by id.
func (s *Service) GetResearchEntry(id string) (*ResearchEntry, error) {
	doc, err := s.store.Get(ColResearchEntries, id)
	if err != nil {
		return nil, fmt.Errorf("load research entry %s: %w", id, err)
	}
	var entry ResearchEntry
	if err := decode(doc, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateResearchEntry stores a new research entry. New entries always carry
// an explicit activation flag; only legacy records may lack one.
func (s *Service) CreateResearchEntry(in ResearchEntryInput) (*ResearchEntry, error) {
	entry, err := researchEntryFromInput(&ResearchEntry{}, in)
	if err != nil {
		return nil, err
	}
	entry.IsActive = boolPtr(true)
	doc, err := s.store.Insert(ColResearchEntries, entry)
	if err != nil {
		return nil, fmt.Errorf("insert research entry: %w", err)
	}
	entry.attach(doc)
	return entry, nil
}

// UpdateResearchEntry applies the form input to an existing entry.
func (s *Service) UpdateResearchEntry(id string, in ResearchEntryInput) (*ResearchEntry, error) {
	entry, err := s.GetResearchEntry(id)
	if err != nil {
		return nil, err
	}
	entry, err = researchEntryFromInput(entry, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ColResearchEntries, id, entry); err != nil {
		return nil, fmt.Errorf("update research entry %s: %w", id, err)
	}
	return entry, nil
}

func researchEntryFromInput(entry *ResearchEntry, in ResearchEntryInput) (*ResearchEntry, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "research entry title"}
	}
	entry.Title = title
	entry.Description = strings.TrimSpace(in.Description)
	entry.Publication = strings.TrimSpace(in.Publication)
	entry.Link = strings.TrimSpace(in.Link)
	if in.CategoryID == "" {
		entry.CategoryID = nil
	} else {
		entry.CategoryID = strPtr(in.CategoryID)
	}
	return entry, nil
}

// ToggleResearchEntryActive flips an entry's effective activation state. An
// absent flag counts as active, so the first toggle of a legacy record
// deactivates it. Activation under an inactive category fails with
// ErrInactiveParent.
func (s *Service) ToggleResearchEntryActive(id string) (*ResearchEntry, error) {
	entry, err := s.GetResearchEntry(id)
	if err != nil {
		return nil, err
	}
	target := !entry.Active()
	if target {
		blocked, err := s.categoryBlocksActivation(researchPair, entry.CategoryID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return entry, fmt.Errorf("activate research entry %q: %w", entry.Title, ErrInactiveParent)
		}
	}
	entry.IsActive = boolPtr(target)
	if err := s.store.Update(ColResearchEntries, id, entry); err != nil {
		return nil, fmt.Errorf("update research entry %s: %w", id, err)
	}
	return entry, nil
}

// DeleteResearchEntry removes an entry. A missing id is ErrNotFound.
func (s *Service) DeleteResearchEntry(id string) (*ResearchEntry, error) {
	entry, err := s.GetResearchEntry(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ColResearchEntries, id); err != nil {
		return nil, fmt.Errorf("delete research entry %s: %w", id, err)
	}
	return entry, nil
}

// ActiveResearchGroups produces the public about-page projection: active
// categories in display order, each with the entries that are effectively
// active (explicit flag true, or no flag at all on legacy records).
func (s *Service) ActiveResearchGroups() ([]ResearchGroup, error) {
	cats, err := s.listCategories(researchPair, true)
	if err != nil {
		return nil, err
	}
	var groups []ResearchGroup
	for _, cat := range cats {
		docs, err := s.store.Find(ColResearchEntries,
			docstore.Eq("category_id", cat.ID),
			activeOrLegacy(),
		)
		if err != nil {
			return nil, fmt.Errorf("list entries of %s: %w", cat.Name, err)
		}
		entries, err := decodeAll[ResearchEntry](docs)
		if err != nil {
			return nil, err
		}
		groups = append(groups, ResearchGroup{Category: cat, Entries: entries})
	}
	return groups, nil
}

// ActiveResearchCount counts effectively active research entries.
func (s *Service) ActiveResearchCount() (int, error) {
	return s.store.Count(ColResearchEntries, activeOrLegacy())
}

// AdminResearchEntries lists entries for the admin manager, newest first,
// optionally narrowed to one category and a free-text search over title,
// description, and publication.
func (s *Service) AdminResearchEntries(categoryID, search string) ([]ResearchEntry, error) {
	var filters []docstore.Filter
	if categoryID != "" {
		filters = append(filters, docstore.Eq("category_id", categoryID))
	}
	if search != "" {
		filters = append(filters, docstore.Or(
			docstore.IContains("title", search),
			docstore.IContains("description", search),
			docstore.IContains("publication", search),
		))
	}
	docs, err := s.store.Find(ColResearchEntries, filters...)
	if err != nil {
		return nil, fmt.Errorf("list research entries: %w", err)
	}
	entries, err := decodeAll[ResearchEntry](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// activeOrLegacy matches documents whose is_active flag is true, null, or
// absent. Legacy records predate the flag; whether they should be backfilled
// instead is unresolved, so both paths stay.
func activeOrLegacy() docstore.Filter {
	return docstore.Or(
		docstore.Eq("is_active", true),
		docstore.Eq("is_active", nil),
	)
}
