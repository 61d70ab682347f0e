package slug_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

func FuzzSlugify(f *testing.F) {
	for _, seed := range []string{
		"",
		"My Test String!!!1!1",
		"  --test_-_cool",
		"Æúű--cool?",
		"user@example.com",
		"You & Me",
		"北京 😀 𝐇𝐞𝐥𝐥𝐨",
		"\x00\xff\xfe",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, sep := range []string{"-", "_", "--"} {
			for _, expand := range []bool{false, true} {
				got, err := slug.Slugify(input, slug.Separator(sep), slug.ExpandSymbols(expand))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != "" && !slug.IsValid(got, sep) {
					t.Fatalf("Slugify(%q, %q) = %q is not a valid slug", input, sep, got)
				}
				if got != strings.ToLower(got) {
					t.Fatalf("Slugify(%q) = %q contains uppercase letters", input, got)
				}

				again, err := slug.Slugify(got, slug.Separator(sep), slug.ExpandSymbols(expand))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if again != got {
					t.Fatalf("not idempotent: %q -> %q -> %q", input, got, again)
				}
			}
		}

		replaced := slug.Make(input,
			slug.CustomReplace(map[string]string{"C++": "cpp", "%": "percent", "-": "", "€": "Euro Sign"}),
			slug.StripChars("$'"),
		)
		if replaced != "" && !slug.IsValid(replaced, "-") {
			t.Fatalf("with replacements %q -> %q is not a valid slug", input, replaced)
		}

		if got := slug.Make(input, slug.Separator("x")); strings.Trim(got, "abcdefghijklmnopqrstuvwxyz0123456789") != "" {
			t.Fatalf("letter separator produced %q from %q", got, input)
		}

		upper := slug.Make(input, slug.Uppercase())
		if upper != strings.ToUpper(upper) {
			t.Fatalf("Uppercase produced lowercase letters: %q", upper)
		}
	})
}
