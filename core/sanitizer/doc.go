// Package sanitizer cleans user input held in struct fields, with a focus on
// deriving slugs from titles and names.
//
// Fields opt in through a comma-separated "sanitize" tag. Sanitizers run left
// to right:
//
//	type Post struct {
//		Title string   `sanitize:"trim,text"`
//		Slug  string   `sanitize:"slug,max:60"`
//		Key   string   `sanitize:"slug:_"`
//		Tags  []string `sanitize:"slug"`
//		Skip  string   `sanitize:"-"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&post); err != nil {
//		return err
//	}
//
// Nested structs and pointers to structs are walked recursively. Slices of
// strings are sanitized element by element. Unexported fields are skipped.
//
// # Built-in sanitizers
//
//   - trim, lower, upper, title, trim_lower, text, no_spaces, single_line, no_control
//   - alphanum, digits, username
//   - slug, kebab: ASCII slug joined by "-" (see package slug)
//   - snake: ASCII slug joined by "_"
//   - slug_symbols: slug with "&" and "@" spelled as words
//   - slug:<sep>: slug with a custom separator
//   - max:<n>: keep at most n runes
//
// Unknown names are ignored. A malformed parameter or an invalid slug
// separator makes SanitizeStruct return an error naming the field.
//
// # Custom Sanitization Rules
//
//	sanitizer.RegisterSanitizer("prefix_post", func(s string) string {
//		return "post-" + s
//	})
//
// The string helpers (ToSlug, ToSnakeCase, SingleLine, ...) are also usable directly.
package sanitizer
