// Package logger builds the slog loggers used across formguard and holds
// the attribute helpers that keep field names consistent in every record.
//
// New takes functional options. WithEnvironment picks a preset per APP_ENV
// value: text at debug level for development, JSON at info for staging and
// production. Later options such as WithLevel override the preset:
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "formguard"),
//		logger.WithFile(logger.FileConfig{Path: "/var/log/formguard.log", MaxSizeMB: 50}),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated",
//		logger.Form("patient-login"),
//		logger.Valid(false),
//		logger.ErrorCount(2),
//	)
//
// Context extractors run on every *Context call, so request-scoped values
// such as the request id land on each record without threading a logger
// through handlers. WithFile mirrors output into a lumberjack-rotated file.
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be passed without a nil check.
package logger
