package slug_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("default config matches default behavior", func(t *testing.T) {
		t.Parallel()
		opts, err := slug.DefaultConfig().Options()
		require.NoError(t, err)
		assert.Equal(t, slug.Make("My Test String!!!1!1"), slug.Make("My Test String!!!1!1", opts...))
	})

	t.Run("zero config is usable", func(t *testing.T) {
		t.Parallel()
		opts, err := slug.Config{}.Options()
		require.NoError(t, err)
		assert.Equal(t, "hello-world", slug.Make("Hello World", opts...))
	})

	t.Run("applies every field", func(t *testing.T) {
		t.Parallel()
		opts, err := slug.Config{
			Separator:     "_",
			Case:          "upper",
			ExpandSymbols: true,
			MaxLength:     10,
		}.Options()
		require.NoError(t, err)
		assert.Equal(t, "YOU_AND_ME", slug.Make("You & Me", opts...))
		assert.Equal(t, "VERY_LONG", slug.Make("Very long title", opts...))
	})

	t.Run("suffix length", func(t *testing.T) {
		t.Parallel()
		opts, err := slug.Config{SuffixLength: 4}.Options()
		require.NoError(t, err)
		assert.Regexp(t, `^title-[a-z0-9]{4}$`, slug.Make("Title", opts...))
	})

	t.Run("invalid case", func(t *testing.T) {
		t.Parallel()
		_, err := slug.Config{Case: "camel"}.Options()
		assert.ErrorIs(t, err, slug.ErrInvalidCase)
	})

	t.Run("invalid separator", func(t *testing.T) {
		t.Parallel()
		_, err := slug.Config{Separator: "·"}.Options()
		assert.ErrorIs(t, err, slug.ErrInvalidSeparator)
	})

	t.Run("replacements and stripped chars", func(t *testing.T) {
		t.Parallel()
		opts, err := slug.Config{
			Replacements: map[string]string{"C++": "cpp", "%": "percent"},
			StripChars:   "$:",
		}.Options()
		require.NoError(t, err)
		assert.Equal(t, "cpp-100-percent", slug.Make("C++ 100%", opts...))
		assert.Equal(t, "price-100-00", slug.Make("Price: $100.00", opts...))
	})

	t.Run("negative length", func(t *testing.T) {
		t.Parallel()
		_, err := slug.Config{MaxLength: -5}.Options()
		assert.ErrorIs(t, err, slug.ErrInvalidLength)
	})
}

func TestNewAllocatorFromConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := slug.NewAllocatorFromConfig(slug.NewMemoryStore(), slug.Config{Separator: ".", MaxAttempts: 1})
	require.NoError(t, err)

	got, err := a.Allocate(ctx, "", "Hello World")
	require.NoError(t, err)
	assert.Equal(t, "hello.world", got)

	_, err = a.Allocate(ctx, "", "Hello World")
	assert.ErrorIs(t, err, slug.ErrNoUniqueSlug)

	_, err = slug.NewAllocatorFromConfig(slug.NewMemoryStore(), slug.Config{Case: "nope"})
	assert.ErrorIs(t, err, slug.ErrInvalidArgument)
}
