// Package logger builds *slog.Logger values for the directory service.
//
// New assembles a JSON or text handler from functional options, wraps it in
// LogHandlerDecorator so request-scoped values (the request ID, for example)
// are pulled out of the context on every record, and returns the logger:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "userdir"),
//		logger.WithFile("/var/log/userdir/app.log"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "fetch failed", logger.Error(err))
//
// WithEnvironment selects text output at debug level for development and
// JSON at info level for staging and production. WithFile sends output to a
// size-rotated file (gopkg.in/natefinch/lumberjack.v2) instead of stdout.
//
// The helpers in attr.go keep attribute keys consistent across packages.
package logger
