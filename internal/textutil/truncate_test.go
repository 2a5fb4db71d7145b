package textutil_test

import (
	"strings"
	"testing"

	"moviemood/internal/textutil"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"needs ellipsis", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "..."},
		{"zero max", "hello", 0, ""},
		{"empty input", "", 10, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.Truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateMultibyte(t *testing.T) {
	in := strings.Repeat("é", 20)
	got := textutil.Truncate(in, 10)
	if got != strings.Repeat("é", 7)+"..." {
		t.Fatalf("Truncate multibyte = %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := textutil.CollapseWhitespace("  the   dark\tknight \n"); got != "the dark knight" {
		t.Fatalf("CollapseWhitespace = %q", got)
	}
	if got := textutil.CollapseWhitespace("   "); got != "" {
		t.Fatalf("CollapseWhitespace(blank) = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := textutil.TitleCase("the  dark   knight"); got != "The Dark Knight" {
		t.Fatalf("TitleCase = %q", got)
	}
	if got := textutil.TitleCase(""); got != "" {
		t.Fatalf("TitleCase(empty) = %q", got)
	}
}
