package content

import (
	"fmt"
	"strings"

	"github.com/nikmish/folio/docstore"
)

// Slugify converts a display name to a URL-safe slug: lowercase, with runs
// of non-alphanumeric characters collapsed to a single hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// assignSlug derives a unique slug for a category on first save only; an
// existing slug is never regenerated. Collisions with other documents are
// resolved by appending -1, -2, ... The category's own document never counts
// as a collision, so re-saving an unchanged category keeps its slug.
func (s *Service) assignSlug(collection string, cat *Category) error {
	if cat.Slug != "" {
		return nil
	}
	base := Slugify(cat.Name)
	if base == "" {
		base = "category"
	}
	candidate := base
	for n := 1; ; n++ {
		docs, err := s.store.Find(collection, docstore.Eq("slug", candidate))
		if err != nil {
			return fmt.Errorf("check slug %q: %w", candidate, err)
		}
		taken := false
		for _, d := range docs {
			if d.ID != cat.ID {
				taken = true
				break
			}
		}
		if !taken {
			cat.Slug = candidate
			return nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
