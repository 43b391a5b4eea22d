// Package requestid tags every request with a correlation id.
//
// Middleware reuses a well-formed incoming X-Request-ID header (letters,
// digits, dash and underscore, up to 128 characters) or mints a UUIDv7,
// stores it in the request context and echoes it in the response. Error
// toasts and log records pick it up from the context:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
