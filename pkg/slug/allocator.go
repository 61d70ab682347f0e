package slug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// DefaultMaxAttempts is how many candidates Allocate tries before giving up.
const DefaultMaxAttempts = 100

// Store records which slugs are taken within a scope (a table, a tenant, a
// parent resource). Reserve must be atomic: of two concurrent calls for the
// same scope and slug exactly one returns true.
type Store interface {
	Reserve(ctx context.Context, scope, slug string) (bool, error)
	Release(ctx context.Context, scope, slug string) error
}

// Allocator hands out slugs that are unique within a scope by appending a
// counter: "title", "title-2", "title-3".
type Allocator struct {
	store       Store
	slugOpts    []Option
	maxAttempts int
	logger      *slog.Logger
}

// AllocatorOption configures an Allocator.
type AllocatorOption func(*Allocator)

// WithSlugOptions sets the options used to build the base slug.
func WithSlugOptions(opts ...Option) AllocatorOption {
	return func(a *Allocator) {
		a.slugOpts = append(a.slugOpts, opts...)
	}
}

// WithMaxAttempts bounds the number of candidates tried per call.
func WithMaxAttempts(n int) AllocatorOption {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithLogger sets the logger for collision diagnostics.
func WithLogger(logger *slog.Logger) AllocatorOption {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAllocator creates an Allocator backed by store.
func NewAllocator(store Store, opts ...AllocatorOption) (*Allocator, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	a := &Allocator{
		store:       store,
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := applyOptions(a.slugOpts).validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Allocate slugifies text and reserves the first free candidate in scope.
func (a *Allocator) Allocate(ctx context.Context, scope, text string) (string, error) {
	o := applyOptions(a.slugOpts)
	base := o.slugify(text)
	if base.s == "" {
		return "", ErrEmptySlug
	}

	for n := 1; n <= a.maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := numbered(base, o, n)
		ok, err := a.store.Reserve(ctx, scope, candidate)
		if err != nil {
			return "", fmt.Errorf("slug: reserve %q: %w", candidate, err)
		}
		if ok {
			return candidate, nil
		}

		a.logger.DebugContext(ctx, "slug taken",
			slog.String("scope", scope),
			slog.String("slug", candidate),
			slog.Int("attempt", n),
		)
	}

	return "", fmt.Errorf("%w: %q after %d attempts", ErrNoUniqueSlug, base.s, a.maxAttempts)
}

// Release frees a slug previously returned by Allocate.
func (a *Allocator) Release(ctx context.Context, scope, slug string) error {
	if err := a.store.Release(ctx, scope, slug); err != nil {
		return fmt.Errorf("slug: release %q: %w", slug, err)
	}
	return nil
}

// numbered returns base for n == 1 and base+sep+n otherwise, shortening base
// so the result stays within MaxLength.
func numbered(base segmented, o options, n int) string {
	if n == 1 {
		return base.s
	}
	counter := strconv.Itoa(n)
	if max := o.maxLength; max > 0 && len(base.s)+len(o.separator)+len(counter) > max {
		if budget := max - len(o.separator) - len(counter); budget > 0 {
			base = base.truncate(budget, len(o.separator))
		} else {
			base = segmented{}
		}
	}
	return base.join(o.separator, counter).s
}
