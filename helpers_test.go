package folio

import (
	"reflect"
	"testing"
)

func TestBuildURL(t *testing.T) {
	cases := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"blog", "abc"}, "https://example.com/blog/abc/"},
		{"https://example.com/", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"a b"}, "https://example.com/a%20b/"},
	}
	for _, tc := range cases {
		if got := BuildURL(tc.base, tc.segments...); got != tc.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tc.base, tc.segments, got, tc.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"go, web,  cms", []string{"go", "web", "cms"}},
		{"solo", []string{"solo"}},
		{" , ,", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if got := SplitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
