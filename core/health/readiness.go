package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/slugkit/core/logger"
)

// ErrNotReady is returned by Readiness when any check fails.
var ErrNotReady = errors.New("health: dependency not ready")

// Check is a named dependency check, such as redis.Healthcheck(client).
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness runs every check in order and logs each failure.
// It returns nil if all pass, otherwise ErrNotReady joined with the failures.
//
// Example:
//
//	err := health.Readiness(ctx, log,
//		health.Check{Name: "postgres", Fn: pg.Healthcheck(pool)},
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	)
func Readiness(ctx context.Context, log *slog.Logger, checks ...Check) error {
	if log == nil {
		log = logger.Discard()
	}

	var errs []error
	for _, c := range checks {
		if c.Fn == nil {
			continue
		}
		if err := c.Fn(ctx); err != nil {
			log.ErrorContext(ctx, "readiness check failed", logger.Component(c.Name), logger.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}
		log.DebugContext(ctx, "readiness check passed", logger.Component(c.Name))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrNotReady}, errs...)...)
	}
	return nil
}
