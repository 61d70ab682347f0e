package slug

import (
	"unicode"
	"unicode/utf8"

	"github.com/rainycape/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// Transliterator maps a single non-ASCII code point to an ASCII approximation.
// It returns false when it has no substitute; the slug then breaks the word
// at that position. An empty substitute with true drops the code point.
type Transliterator interface {
	Transliterate(r rune) (string, bool)
}

// TransliteratorFunc adapts a plain function to the Transliterator interface.
type TransliteratorFunc func(r rune) (string, bool)

// Transliterate calls f(r).
func (f TransliteratorFunc) Transliterate(r rune) (string, bool) {
	return f(r)
}

// Chain returns a Transliterator that asks each of ts in order and uses the
// first substitute found.
func Chain(ts ...Transliterator) Transliterator {
	return TransliteratorFunc(func(r rune) (string, bool) {
		for _, t := range ts {
			if t == nil {
				continue
			}
			if s, ok := t.Transliterate(r); ok {
				return s, true
			}
		}
		return "", false
	})
}

// Map builds a Transliterator from a fixed table. Runes missing from m have
// no substitute.
func Map(m map[rune]string) Transliterator {
	return TransliteratorFunc(func(r rune) (string, bool) {
		s, ok := m[r]
		return s, ok
	})
}

var (
	nonspacingMarks = runes.In(unicode.Mn)

	defaultTransliterator = Unidecode()
)

// Unidecode returns the default transliterator. It drops combining marks,
// looks the rune up in the unidecode tables ("é" → "e", "遊" → "You") and falls
// back to the ASCII part of the NFKD decomposition, which covers styled
// letters and digits outside the tables ("𝐀" → "A", "①" → "1").
func Unidecode() Transliterator {
	return Chain(
		TransliteratorFunc(dropMarks),
		TransliteratorFunc(lookupTable),
		TransliteratorFunc(decompose),
	)
}

func dropMarks(r rune) (string, bool) {
	if nonspacingMarks.Contains(r) {
		return "", true
	}
	return "", false
}

// The unidecode tables cover the Basic Multilingual Plane only.
func lookupTable(r rune) (string, bool) {
	if r > 0xFFFF {
		return "", false
	}
	s := unidecode.Unidecode(string(r))
	if s == "" {
		return "", false
	}
	return s, true
}

func decompose(r rune) (string, bool) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	d := norm.NFKD.Bytes(buf[:n])

	out := make([]byte, 0, len(d))
	for _, c := range d {
		if c < utf8.RuneSelf {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return "", false
	}
	return string(out), true
}
