package slug

// Config provides environment-based configuration for slug generation.
type Config struct {
	Separator     string `env:"SLUG_SEPARATOR" envDefault:"-"`
	Case          string `env:"SLUG_CASE" envDefault:"lower"`
	ExpandSymbols bool   `env:"SLUG_EXPAND_SYMBOLS" envDefault:"false"`
	// Replacements is a comma-separated from:to list, e.g. "C++:cpp,%:percent".
	Replacements map[string]string `env:"SLUG_REPLACE"`
	StripChars   string            `env:"SLUG_STRIP_CHARS"`
	MaxLength    int               `env:"SLUG_MAX_LENGTH" envDefault:"0"`
	SuffixLength int               `env:"SLUG_SUFFIX_LENGTH" envDefault:"0"`
	// MaxAttempts bounds the counter used by Allocator.
	MaxAttempts int `env:"SLUG_MAX_ATTEMPTS" envDefault:"100"`
}

// DefaultConfig returns the configuration Slugify uses without options.
func DefaultConfig() Config {
	return Config{
		Separator:   DefaultSeparator,
		Case:        CaseLower.String(),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Options converts the configuration into Slugify options and validates them.
// Zero values leave the defaults in place.
func (c Config) Options() ([]Option, error) {
	mode, err := ParseCase(c.Case)
	if err != nil {
		return nil, err
	}

	opts := []Option{Case(mode), ExpandSymbols(c.ExpandSymbols)}
	if len(c.Replacements) > 0 {
		opts = append(opts, CustomReplace(c.Replacements))
	}
	if c.StripChars != "" {
		opts = append(opts, StripChars(c.StripChars))
	}
	if c.Separator != "" {
		opts = append(opts, Separator(c.Separator))
	}
	if c.MaxLength != 0 {
		opts = append(opts, MaxLength(c.MaxLength))
	}
	if c.SuffixLength != 0 {
		opts = append(opts, WithSuffix(c.SuffixLength))
	}

	if err := applyOptions(opts).validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewAllocatorFromConfig creates an Allocator whose slugs follow cfg.
func NewAllocatorFromConfig(store Store, cfg Config, opts ...AllocatorOption) (*Allocator, error) {
	slugOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	allocOpts := []AllocatorOption{WithSlugOptions(slugOpts...)}
	if cfg.MaxAttempts > 0 {
		allocOpts = append(allocOpts, WithMaxAttempts(cfg.MaxAttempts))
	}
	allocOpts = append(allocOpts, opts...)

	return NewAllocator(store, allocOpts...)
}
