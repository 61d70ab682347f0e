// Package health runs dependency checks for command line tools and services.
//
// Readiness executes named checks, typically the Healthcheck functions of the
// redis and pg integration packages, logs every failure and reports them as
// a single error matching ErrNotReady:
//
//	if err := health.Readiness(ctx, log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	); err != nil {
//		return err
//	}
package health
