package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Go  1.24 发布了!  ", "go-124-发布了"},
		{"A/B Testing_guide", "a-b-testing-guide"},
		{"---", ""},
		{"Tips & Tricks (2026)", "tips-tricks-2026"},
		{"already-slugged", "already-slugged"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugify_idempotent(t *testing.T) {
	s := Slugify("The Quick Brown Fox")
	if Slugify(s) != s {
		t.Errorf("Slugify not idempotent: %q -> %q", s, Slugify(s))
	}
}
