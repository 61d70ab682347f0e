package slug

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultSeparator joins words when no Separator option is given.
const DefaultSeparator = "-"

// CaseMode controls how ASCII letters are cased in the output.
type CaseMode uint8

const (
	// CaseLower folds A-Z to lowercase. It is the zero value.
	CaseLower CaseMode = iota
	// CasePreserve keeps ASCII letters as they arrive, including the
	// transliterator's own casing for non-ASCII input.
	CasePreserve
	// CaseUpper folds a-z to uppercase.
	CaseUpper
)

// String returns the name accepted by ParseCase.
func (m CaseMode) String() string {
	switch m {
	case CaseLower:
		return "lower"
	case CasePreserve:
		return "preserve"
	case CaseUpper:
		return "upper"
	default:
		return fmt.Sprintf("CaseMode(%d)", uint8(m))
	}
}

// ParseCase converts "lower", "preserve" or "upper" (case-insensitive) into a
// CaseMode. An empty string yields CaseLower.
func ParseCase(s string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lower":
		return CaseLower, nil
	case "preserve":
		return CasePreserve, nil
	case "upper":
		return CaseUpper, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCase, s)
	}
}

// symbolWords is the replacement set enabled by ExpandSymbols.
var symbolWords = map[string]string{
	"@": "at",
	"&": "and",
}

type options struct {
	separator      string
	caseMode       CaseMode
	expandSymbols  bool
	replacements   map[string]string
	stripChars     string
	maxLength      int
	suffixLength   int
	transliterator Transliterator
}

func defaultOptions() options {
	return options{
		separator:      DefaultSeparator,
		caseMode:       CaseLower,
		transliterator: defaultTransliterator,
	}
}

func (o options) validate() error {
	if err := validateSeparator(o.separator); err != nil {
		return err
	}
	if o.caseMode > CaseUpper {
		return fmt.Errorf("%w: %s", ErrInvalidCase, o.caseMode)
	}
	if o.maxLength < 0 || o.suffixLength < 0 {
		return ErrInvalidLength
	}
	return nil
}

// The whole separator is emitted as one unit, so it may contain letters and
// digits ("x", "-1"). Only an empty or non-ASCII separator is rejected.
func validateSeparator(sep string) error {
	if sep == "" {
		return ErrInvalidSeparator
	}
	for i := 0; i < len(sep); i++ {
		if sep[i] >= 0x80 {
			return fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
		}
	}
	return nil
}

// wordReplacements merges the ExpandSymbols preset with CustomReplace
// entries. Custom entries win.
func (o options) wordReplacements() map[string]string {
	if !o.expandSymbols {
		return o.replacements
	}
	if len(o.replacements) == 0 {
		return symbolWords
	}
	merged := maps.Clone(symbolWords)
	maps.Copy(merged, o.replacements)
	return merged
}

// Option configures a single Slugify call.
type Option func(*options)

// Separator sets the string placed between words. Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Case sets the case mode.
func Case(mode CaseMode) Option {
	return func(o *options) {
		o.caseMode = mode
	}
}

// Lowercase is shorthand for Case(CaseLower).
func Lowercase() Option { return Case(CaseLower) }

// Uppercase is shorthand for Case(CaseUpper).
func Uppercase() Option { return Case(CaseUpper) }

// PreserveCase is shorthand for Case(CasePreserve).
func PreserveCase() Option { return Case(CasePreserve) }

// ExpandSymbols spells "@" as "at" and "&" as "and" instead of treating them
// as word breaks. It is a preset of CustomReplace; explicit CustomReplace
// entries for the same keys take precedence.
func ExpandSymbols(enabled bool) Option {
	return func(o *options) {
		o.expandSymbols = enabled
	}
}

// CustomReplace substitutes whole substrings of the input before they reach
// the transliterator. Each replacement becomes a word of its own:
//
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{"C++": "cpp", "&": "and"}))
//	// "cpp-and-go"
//
// Keys match case-sensitively and the longest key wins at each position. An
// empty value turns the key into a word break. Repeated calls merge.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		if len(replacements) == 0 {
			return
		}
		if o.replacements == nil {
			o.replacements = make(map[string]string, len(replacements))
		}
		for from, to := range replacements {
			if from != "" {
				o.replacements[from] = to
			}
		}
	}
}

// StripChars removes every rune in chars from the input without leaving a
// word break, so "$100.00" with StripChars("$.") becomes "10000". Stripping
// runs before CustomReplace matching. Repeated calls accumulate.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars += chars
	}
}

// MaxLength caps the slug at n bytes. Zero disables the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// WithSuffix appends a random alphanumeric suffix of n characters.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLength = n
	}
}

// WithTransliterator replaces the default transliterator. Nil restores the default.
func WithTransliterator(t Transliterator) Option {
	return func(o *options) {
		if t == nil {
			t = defaultTransliterator
		}
		o.transliterator = t
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
