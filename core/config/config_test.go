package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/core/config"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

type testConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"default"`
	Count int    `env:"CONFIG_TEST_COUNT" envDefault:"3"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

// Tests here mutate process environment and the package cache, so they do
// not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_NAME", "first")
	var first testConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("CONFIG_TEST_NAME", "second")
	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name, "second load must come from cache")

	config.Reset()
	var third testConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)

	assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilTarget)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoad_SlugConfig(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("SLUG_SEPARATOR", "_")
	t.Setenv("SLUG_CASE", "upper")
	t.Setenv("SLUG_EXPAND_SYMBOLS", "true")

	var cfg slug.Config
	config.MustLoad(&cfg)
	assert.Equal(t, 100, cfg.MaxAttempts)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "TOM_AND_JERRY", slug.Make("Tom & Jerry", opts...))
}
