// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory with environment presets and a set of attribute helpers
// for common logging scenarios.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/slugkit/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("slugify"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("slugify"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("slug allocated",
//		logger.Component("allocator"),
//		logger.Scope("posts"),
//		logger.Slug("hello-world-2"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty values, which slog
// skips, so callers need no nil checks:
//
//	log.Error("reserve failed", logger.Error(err)) // err may be nil
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//
// Use Discard when a component requires a logger but the output is irrelevant.
package logger
