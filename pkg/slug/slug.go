package slug

import (
	"crypto/rand"
	"slices"
	"strings"
	"unicode/utf8"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify converts text into an ASCII slug made of letters, digits and the
// configured separator. The result never starts or ends with the separator
// and never contains it twice in a row. Text without letters or digits
// yields an empty string.
//
// The only failures are invalid options, reported as errors matching
// ErrInvalidArgument.
func Slugify(text string, opts ...Option) (string, error) {
	o := applyOptions(opts)
	if err := o.validate(); err != nil {
		return "", err
	}
	return o.slugify(text).s, nil
}

// Make is like Slugify but panics on invalid options.
// Use it with constant options known to be valid.
func Make(text string, opts ...Option) string {
	s, err := Slugify(text, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// segmented is a slug together with the byte offsets where each separator
// starts. Truncation cuts by these offsets, so separators made of letters or
// digits are never mistaken for word bytes.
type segmented struct {
	s    string
	seps []int
}

func (o options) slugify(text string) segmented {
	seg := build(text, o)
	if o.suffixLength > 0 {
		return withSuffix(seg, o)
	}
	return seg.truncate(o.maxLength, len(o.separator))
}

// truncate cuts the slug to max bytes. A cut inside or right after a
// separator drops that separator.
func (g segmented) truncate(max, sepLen int) segmented {
	if max <= 0 || len(g.s) <= max {
		return g
	}
	end := max
	n := 0
	for _, p := range g.seps {
		if p >= max {
			break
		}
		if p+sepLen >= max {
			end = p
			break
		}
		n++
	}
	return segmented{s: g.s[:end], seps: g.seps[:n]}
}

// join appends word after a separator. An empty slug yields just word.
func (g segmented) join(sep, word string) segmented {
	if g.s == "" {
		return segmented{s: word}
	}
	return segmented{
		s:    g.s + sep + word,
		seps: append(slices.Clip(g.seps), len(g.s)),
	}
}

// builder holds the state of one pass. lastSep starts true so the output
// never begins with a separator.
type builder struct {
	buf     []byte
	seps    []int
	sep     string
	mode    CaseMode
	tr      Transliterator
	lastSep bool
}

func build(text string, o options) segmented {
	if o.stripChars != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, text)
	}

	b := builder{
		buf:     make([]byte, 0, len(text)),
		sep:     o.separator,
		mode:    o.caseMode,
		tr:      o.transliterator,
		lastSep: true,
	}
	rep := newReplacer(o.wordReplacements())

	for i := 0; i < len(text); {
		if from, to, ok := rep.match(text[i:]); ok {
			b.writeWord(to)
			i += len(from)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		b.writeRune(r)
		i += size
	}

	if b.lastSep && len(b.seps) > 0 {
		last := b.seps[len(b.seps)-1]
		b.buf = b.buf[:last]
		b.seps = b.seps[:len(b.seps)-1]
	}
	return segmented{s: string(b.buf), seps: b.seps}
}

func (b *builder) writeRune(r rune) {
	if r < utf8.RuneSelf {
		b.writeByte(byte(r))
		return
	}
	sub, ok := b.tr.Transliterate(r)
	if !ok {
		b.breakWord()
		return
	}
	for i := 0; i < len(sub); i++ {
		b.writeByte(sub[i])
	}
}

func (b *builder) writeByte(c byte) {
	switch {
	case c >= 'a' && c <= 'z':
		if b.mode == CaseUpper {
			c -= 'a' - 'A'
		}
		b.emit(c)
	case c >= 'A' && c <= 'Z':
		if b.mode == CaseLower {
			c += 'a' - 'A'
		}
		b.emit(c)
	case c >= '0' && c <= '9':
		b.emit(c)
	default:
		b.breakWord()
	}
}

func (b *builder) emit(c byte) {
	b.buf = append(b.buf, c)
	b.lastSep = false
}

// writeWord emits w as a standalone word, transliterating any non-ASCII runes.
func (b *builder) writeWord(w string) {
	b.breakWord()
	for _, r := range w {
		b.writeRune(r)
	}
	b.breakWord()
}

func (b *builder) breakWord() {
	if b.lastSep {
		return
	}
	b.seps = append(b.seps, len(b.buf))
	b.buf = append(b.buf, b.sep...)
	b.lastSep = true
}

// replacer finds CustomReplace keys, longest first, indexed by first byte.
type replacer struct {
	keys  map[byte][]string
	words map[string]string
}

func newReplacer(words map[string]string) replacer {
	if len(words) == 0 {
		return replacer{}
	}
	keys := make(map[byte][]string)
	for from := range words {
		keys[from[0]] = append(keys[from[0]], from)
	}
	for _, list := range keys {
		slices.SortFunc(list, func(a, b string) int {
			if len(a) != len(b) {
				return len(b) - len(a)
			}
			return strings.Compare(a, b)
		})
	}
	return replacer{keys: keys, words: words}
}

func (r replacer) match(s string) (from, to string, ok bool) {
	if r.keys == nil {
		return "", "", false
	}
	for _, key := range r.keys[s[0]] {
		if strings.HasPrefix(s, key) {
			return key, r.words[key], true
		}
	}
	return "", "", false
}

// withSuffix joins base and a random suffix, cutting base so the whole fits
// MaxLength. If even the suffix does not fit it is cut instead.
func withSuffix(base segmented, o options) segmented {
	suffix := randomSuffix(o.suffixLength, o.caseMode == CaseUpper)
	if o.maxLength > 0 {
		budget := o.maxLength - len(o.separator) - len(suffix)
		if budget <= 0 {
			return segmented{s: suffix[:min(len(suffix), o.maxLength)]}
		}
		base = base.truncate(budget, len(o.separator))
	}
	return base.join(o.separator, suffix)
}

// randomSuffix draws n characters uniformly from suffixAlphabet. Bytes at or
// above the largest multiple of the alphabet size are rejected.
func randomSuffix(n int, upper bool) string {
	const limit = 256 - 256%len(suffixAlphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		_, _ = rand.Read(buf)
		for _, v := range buf {
			if int(v) >= limit {
				continue
			}
			c := suffixAlphabet[int(v)%len(suffixAlphabet)]
			if upper && c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			out = append(out, c)
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
