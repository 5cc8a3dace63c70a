package views

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nikmish/folio/content"
)

// FormatDate renders a timestamp the way the public templates show dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// PublishedDate renders a blog's published date, falling back to its
// creation date for drafts shown in the admin.
func PublishedDate(b content.Blog) string {
	if b.PublishedDate != nil {
		return FormatDate(*b.PublishedDate)
	}
	return FormatDate(b.CreatedAt)
}

// ReadTime renders the read-time badge text.
func ReadTime(minutes int) string {
	if minutes <= 0 {
		minutes = content.DefaultReadTime
	}
	return fmt.Sprintf("%d min read", minutes)
}

// JoinTags joins tags with ", " for form fields and meta keywords.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// PathEscape wraps url.PathEscape for use in templ expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// MediaURL maps a stored file path to its public URL. Empty paths stay
// empty so templates can fall back to placeholders.
func MediaURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + strings.TrimPrefix(path, "/")
}

// ProficiencyWidth renders a CSS width for a skill bar.
func ProficiencyWidth(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%d%%", pct)
}

// StatusBadgeClass returns CSS classes for a blog status pill.
func StatusBadgeClass(status string) string {
	base := "inline-flex items-center rounded px-2 py-0.5 text-[11px] font-semibold uppercase tracking-wide"
	if status == content.StatusPublished {
		return base + " bg-emerald-100 text-emerald-800"
	}
	return base + " bg-stone-200 text-stone-700"
}

// FlashClass returns CSS classes for a flash notice by level.
func FlashClass(level string) string {
	base := "rounded border px-3 py-2 text-sm"
	switch level {
	case "success":
		return base + " border-emerald-300 bg-emerald-50 text-emerald-800"
	case "warning":
		return base + " border-amber-300 bg-amber-50 text-amber-800"
	default:
		return base + " border-red-300 bg-red-50 text-red-800"
	}
}

// Excerpt returns the blog preview, falling back to a trimmed slice of the
// body when no preview was written.
func Excerpt(b content.Blog) string {
	if b.Preview != "" {
		return b.Preview
	}
	body := strings.TrimSpace(stripTags(b.Content))
	runes := []rune(body)
	if len(runes) > content.PreviewMaxLen {
		return string(runes[:content.PreviewMaxLen])
	}
	return body
}

// stripTags removes HTML tags well enough for excerpt text. The editor
// produces simple markup, so a linear scan is sufficient.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
