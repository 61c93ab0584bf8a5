// Package logger builds log/slog loggers from functional options and adds
// attributes taken from context.Context to every record.
//
// New is the single factory. Options select the format (text or json), the
// minimum level, static attributes and ContextExtractor callbacks. The
// resulting handler is wrapped in LogHandlerDecorator, which runs the
// extractors on each Handle call so request-scoped values such as the request
// id are always current.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "formrulesd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form invalid",
//		logger.Schema("signup"),
//		logger.ErrorCount(2),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty Attr for nil errors, which slog drops, so
// callers can pass them unconditionally.
package logger
