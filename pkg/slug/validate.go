package slug

import "strings"

// IsValid reports whether s is a well-formed slug for separator sep: one or
// more runs of ASCII letters and digits joined by single separators, with no
// separator at either end.
//
// Slugify accepts separators that contain letters or digits, but such slugs
// cannot be split back into words, so IsValid reports false for them.
func IsValid(s, sep string) bool {
	if s == "" || validateSeparator(sep) != nil {
		return false
	}
	for i := 0; i < len(sep); i++ {
		if isAlnum(sep[i]) {
			return false
		}
	}
	for _, word := range strings.Split(s, sep) {
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if !isAlnum(word[i]) {
				return false
			}
		}
	}
	return true
}
