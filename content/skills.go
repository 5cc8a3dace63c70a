package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nikmish/folio/docstore"
)

// SkillInput carries the admin-form fields for creating or updating a skill.
type SkillInput struct {
	Name        string
	CategoryID  string // empty means uncategorized
	Proficiency int
	Icon        string
	IsActive    bool
}

// SkillGroup is one category's worth of active skills for the public page.
type SkillGroup struct {
	Name   string
	Skills []Skill
}

// SkillCategories lists skill categories in display order.
func (s *Service) SkillCategories(activeOnly bool) ([]Category, error) {
	return s.listCategories(skillPair, activeOnly)
}

// GetSkillCategory returns one skill category by id.
func (s *Service) GetSkillCategory(id string) (*Category, error) {
	return s.getCategory(skillPair, id)
}

// SaveSkillCategory creates (empty id) or updates a skill category,
// assigning a unique slug on first save.
func (s *Service) SaveSkillCategory(id string, in CategoryInput) (*Category, error) {
	return s.saveCategory(skillPair, id, in)
}

// ToggleSkillCategoryActive flips a category's visibility, cascading
// deactivation to its skills.
func (s *Service) ToggleSkillCategoryActive(id string) (*Category, error) {
	return s.toggleCategoryActive(skillPair, id)
}

// DeleteSkillCategory removes the category after clearing the reference on
// every skill that points at it.
func (s *Service) DeleteSkillCategory(id string) (*Category, error) {
	return s.deleteCategory(skillPair, id)
}

// GetSkill returns one skill by id.
func (s *Service) GetSkill(id string) (*Skill, error) {
	doc, err := s.store.Get(ColSkills, id)
	if err != nil {
		return nil, fmt.Errorf("load skill %s: %w", id, err)
	}
	var sk Skill
	if err := decode(doc, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}

// CreateSkill stores a new skill. An inactive category downgrades the
// requested active state rather than failing: the cascade invariant holds
// from the first write.
func (s *Service) CreateSkill(in SkillInput) (*Skill, error) {
	sk, err := s.skillFromInput(&Skill{}, in)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.Insert(ColSkills, sk)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	sk.attach(doc)
	return sk, nil
}

// UpdateSkill applies the form input to an existing skill.
func (s *Service) UpdateSkill(id string, in SkillInput) (*Skill, error) {
	sk, err := s.GetSkill(id)
	if err != nil {
		return nil, err
	}
	sk, err = s.skillFromInput(sk, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ColSkills, id, sk); err != nil {
		return nil, fmt.Errorf("update skill %s: %w", id, err)
	}
	return sk, nil
}

func (s *Service) skillFromInput(sk *Skill, in SkillInput) (*Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "skill name"}
	}
	sk.Name = name
	sk.Proficiency = clampPercent(in.Proficiency)
	sk.Icon = strings.TrimSpace(in.Icon)
	if in.CategoryID == "" {
		sk.CategoryID = nil
	} else {
		sk.CategoryID = strPtr(in.CategoryID)
	}
	sk.IsActive = in.IsActive
	if in.IsActive {
		blocked, err := s.categoryBlocksActivation(skillPair, sk.CategoryID)
		if err != nil {
			return nil, err
		}
		if blocked {
			sk.IsActive = false
		}
	}
	return sk, nil
}

// ToggleSkillActive flips a skill's activation flag. Activating a skill
// whose category is inactive fails with ErrInactiveParent and leaves the
// skill untouched.
func (s *Service) ToggleSkillActive(id string) (*Skill, error) {
	sk, err := s.GetSkill(id)
	if err != nil {
		return nil, err
	}
	target := !sk.IsActive
	if target {
		blocked, err := s.categoryBlocksActivation(skillPair, sk.CategoryID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return sk, fmt.Errorf("activate skill %q: %w", sk.Name, ErrInactiveParent)
		}
	}
	sk.IsActive = target
	if err := s.store.Update(ColSkills, id, sk); err != nil {
		return nil, fmt.Errorf("update skill %s: %w", id, err)
	}
	return sk, nil
}

// DeleteSkill removes a skill. A missing id is ErrNotFound.
func (s *Service) DeleteSkill(id string) (*Skill, error) {
	sk, err := s.GetSkill(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ColSkills, id); err != nil {
		return nil, fmt.Errorf("delete skill %s: %w", id, err)
	}
	return sk, nil
}

// AllSkills lists every skill for the admin manager, sorted by category name
// (case-insensitive, uncategorized last) then proficiency descending.
func (s *Service) AllSkills() ([]Skill, error) {
	docs, err := s.store.Find(ColSkills)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	skills, err := decodeAll[Skill](docs)
	if err != nil {
		return nil, err
	}
	names, err := s.categoryNames(skillPair)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(skills, func(i, j int) bool {
		ni, nj := skillGroupKey(skills[i], names), skillGroupKey(skills[j], names)
		if ni != nj {
			return ni < nj
		}
		return skills[i].Proficiency > skills[j].Proficiency
	})
	return skills, nil
}

// ActiveSkillsByCategory produces the public skills projection: only skills
// that are active themselves and whose category, if any, is active; grouped
// by category display name with categories in display order and
// uncategorized skills last; proficiency descending within a group.
func (s *Service) ActiveSkillsByCategory() ([]SkillGroup, error) {
	cats, err := s.listCategories(skillPair, true)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.Find(ColSkills, docstore.Eq("is_active", true))
	if err != nil {
		return nil, fmt.Errorf("list active skills: %w", err)
	}
	skills, err := decodeAll[Skill](docs)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]Skill)
	var uncategorized []Skill
	activeIDs := make(map[string]bool, len(cats))
	for _, c := range cats {
		activeIDs[c.ID] = true
	}
	for _, sk := range skills {
		if sk.CategoryID == nil || *sk.CategoryID == "" {
			uncategorized = append(uncategorized, sk)
			continue
		}
		if activeIDs[*sk.CategoryID] {
			byCategory[*sk.CategoryID] = append(byCategory[*sk.CategoryID], sk)
		}
		// Skills under an inactive or dangling category are hidden entirely.
	}

	var groups []SkillGroup
	for _, c := range cats {
		group := byCategory[c.ID]
		if len(group) == 0 {
			continue
		}
		sortByProficiency(group)
		groups = append(groups, SkillGroup{Name: c.Name, Skills: group})
	}
	if len(uncategorized) > 0 {
		sortByProficiency(uncategorized)
		groups = append(groups, SkillGroup{Name: UncategorizedLabel, Skills: uncategorized})
	}
	return groups, nil
}

// FeaturedSkills returns the top active skills by proficiency, considering
// only skills visible on the public site.
func (s *Service) FeaturedSkills(limit int) ([]Skill, error) {
	groups, err := s.ActiveSkillsByCategory()
	if err != nil {
		return nil, err
	}
	var all []Skill
	for _, g := range groups {
		all = append(all, g.Skills...)
	}
	sortByProficiency(all)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ActiveSkillCount counts publicly visible skills.
func (s *Service) ActiveSkillCount() (int, error) {
	groups, err := s.ActiveSkillsByCategory()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, g := range groups {
		n += len(g.Skills)
	}
	return n, nil
}

func sortByProficiency(skills []Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Proficiency > skills[j].Proficiency
	})
}

func (s *Service) categoryNames(p categoryPair) (map[string]string, error) {
	cats, err := s.listCategories(p, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

// skillGroupKey sorts uncategorized skills after every named category.
func skillGroupKey(sk Skill, names map[string]string) string {
	if sk.CategoryID == nil || *sk.CategoryID == "" {
		return "\xff" + strings.ToLower(UncategorizedLabel)
	}
	name, ok := names[*sk.CategoryID]
	if !ok {
		return "\xff" + strings.ToLower(UncategorizedLabel)
	}
	return strings.ToLower(name)
}

// SkillCategoryName resolves a skill's category display name, falling back
// to the uncategorized sentinel.
func (s *Service) SkillCategoryName(sk Skill) (string, error) {
	if sk.CategoryID == nil || *sk.CategoryID == "" {
		return UncategorizedLabel, nil
	}
	cat, err := s.getCategory(skillPair, *sk.CategoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return UncategorizedLabel, nil
		}
		return "", err
	}
	return cat.Name, nil
}
