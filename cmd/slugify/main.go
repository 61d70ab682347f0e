// Command slugify turns lines of text into slugs.
//
//	slugify "Hello World"            # hello-world
//	cat titles.txt | slugify -s _    # one slug per input line
//	slugify --unique --store redis --scope posts "Hello World"
//	slugify --check --store postgres  # READY when the database answers
//	slugify --replace "C++=cpp" --strip "'" "C++ isn't Go"  # cpp-isnt-go
//
// Defaults come from SLUG_*, REDIS_*, PG_* and MONGODB_* environment variables (a .env
// file in the working directory is honoured). Slugs go to stdout, logs to stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/slugkit/core/config"
	"github.com/dmitrymomot/slugkit/core/health"
	"github.com/dmitrymomot/slugkit/core/logger"
	"github.com/dmitrymomot/slugkit/integration/database/mongo"
	"github.com/dmitrymomot/slugkit/integration/database/pg"
	"github.com/dmitrymomot/slugkit/integration/database/redis"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

var version = "dev"

const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
	storeMongo    = "mongo"
)

var (
	errUnknownStore       = errors.New("unknown store")
	errInvalidReplacement = errors.New(`replacement must look like "from=to"`)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "slugify:", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	defaults := slug.DefaultConfig()
	if err := config.Load(&defaults); err != nil {
		fmt.Fprintln(stderr, "slugify: ignoring environment:", err)
		defaults = slug.DefaultConfig()
	}

	return &cli.App{
		Name:      "slugify",
		Usage:     "convert text to URL and filename safe slugs",
		ArgsUsage: "[text...]",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Usage:   "string placed between words",
				Value:   defaults.Separator,
			},
			&cli.StringFlag{
				Name:  "case",
				Usage: "letter case: lower, preserve or upper",
				Value: defaults.Case,
			},
			&cli.BoolFlag{
				Name:  "expand-symbols",
				Usage: `spell out "@" as "at" and "&" as "and"`,
				Value: defaults.ExpandSymbols,
			},
			&cli.StringSliceFlag{
				Name:  "replace",
				Usage: `replace a substring with a word before transliteration, as "from=to" (repeatable)`,
			},
			&cli.StringFlag{
				Name:  "strip",
				Usage: "characters to delete before transliteration",
				Value: defaults.StripChars,
			},
			&cli.IntFlag{
				Name:  "max-length",
				Usage: "maximum slug length in bytes, 0 for no limit",
				Value: defaults.MaxLength,
			},
			&cli.IntFlag{
				Name:  "suffix",
				Usage: "append a random suffix of this many characters",
				Value: defaults.SuffixLength,
			},
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "append a counter to slugs already taken in the store",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "reservation store for --unique: memory, redis, postgres or mongo",
				Value: storeMemory,
			},
			&cli.StringFlag{
				Name:  "scope",
				Usage: "uniqueness scope for --unique",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "only verify that --store is reachable and exit",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Action: func(cctx *cli.Context) error {
			cfg := defaults
			cfg.Separator = cctx.String("separator")
			cfg.Case = cctx.String("case")
			cfg.ExpandSymbols = cctx.Bool("expand-symbols")
			cfg.MaxLength = cctx.Int("max-length")
			cfg.SuffixLength = cctx.Int("suffix")
			cfg.StripChars = cctx.String("strip")
			if cctx.IsSet("replace") {
				r, err := parseReplacements(cctx.StringSlice("replace"))
				if err != nil {
					return err
				}
				cfg.Replacements = maps.Clone(defaults.Replacements)
				if cfg.Replacements == nil {
					cfg.Replacements = r
				} else {
					maps.Copy(cfg.Replacements, r)
				}
			}
			return run(cctx, cfg)
		},
	}
}

// parseReplacements turns "from=to" pairs into a map. The value may be empty.
func parseReplacements(pairs []string) (map[string]string, error) {
	r := make(map[string]string, len(pairs))
	for _, p := range pairs {
		from, to, ok := strings.Cut(p, "=")
		if !ok || from == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidReplacement, p)
		}
		r[from] = to
	}
	return r, nil
}

func run(cctx *cli.Context, cfg slug.Config) error {
	ctx := cctx.Context
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithOutput(cctx.App.ErrWriter),
		logger.WithLevel(level),
		logger.WithAttr(logger.Component("slugify")),
	)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	next := func(_ context.Context, text string) (string, error) {
		return slug.Slugify(text, opts...)
	}

	if cctx.Bool("unique") || cctx.Bool("check") {
		kind := cctx.String("store")
		b, err := openBackend(ctx, kind, log)
		if err != nil {
			return err
		}
		defer b.close()

		if cctx.Bool("check") {
			if err := health.Readiness(ctx, log, health.Check{Name: kind, Fn: b.check}); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cctx.App.Writer, "READY")
			return err
		}

		alloc, err := slug.NewAllocatorFromConfig(b.store, cfg, slug.WithLogger(log))
		if err != nil {
			return err
		}
		scope := cctx.String("scope")
		next = func(ctx context.Context, text string) (string, error) {
			s, err := alloc.Allocate(ctx, scope, text)
			if errors.Is(err, slug.ErrEmptySlug) {
				log.WarnContext(ctx, "input has no letters or digits", logger.Key("input", text))
				return "", nil
			}
			return s, err
		}
	}

	out := bufio.NewWriter(cctx.App.Writer)
	defer out.Flush()

	var n int
	emit := func(text string) error {
		s, err := next(ctx, text)
		if err != nil {
			return err
		}
		n++
		log.DebugContext(ctx, "slug generated", logger.Slug(s), logger.Scope(cctx.String("scope")))
		_, err = fmt.Fprintln(out, s)
		return err
	}

	if cctx.Args().Present() {
		for _, text := range cctx.Args().Slice() {
			if err := emit(text); err != nil {
				return err
			}
		}
	} else {
		sc := bufio.NewScanner(cctx.App.Reader)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(sc.Text()); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	log.DebugContext(ctx, "done", logger.Count("slugs", n))
	return nil
}

// backend is an opened reservation store.
type backend struct {
	store slug.Store
	check func(context.Context) error
	close func()
}

// openBackend connects the reservation store named by kind.
func openBackend(ctx context.Context, kind string, log *slog.Logger) (*backend, error) {
	switch kind {
	case storeMemory, "":
		return &backend{
			store: slug.NewMemoryStore(),
			check: func(context.Context) error { return nil },
			close: func() {},
		}, nil

	case storeRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "connected", logger.Store(kind))
		return &backend{
			store: redis.NewSlugStoreFromConfig(client, cfg),
			check: redis.Healthcheck(client),
			close: func() { _ = client.Close() },
		}, nil

	case storePostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		store, err := pg.NewSlugStore(pool, "")
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.DebugContext(ctx, "connected", logger.Store(kind))
		return &backend{
			store: store,
			check: pg.Healthcheck(pool),
			close: pool.Close,
		}, nil

	case storeMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "connected", logger.Store(kind))
		client := db.Client()
		return &backend{
			store: mongo.NewSlugStoreFromConfig(db, cfg),
			check: mongo.Healthcheck(client),
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownStore, kind)
}
