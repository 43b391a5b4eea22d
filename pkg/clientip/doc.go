// Package clientip resolves the address of the client behind an HTTP
// request.
//
// Forwarding headers are trivially spoofed, so they are honoured only when
// the service is told it runs behind a trusted proxy (TRUST_PROXY=true).
// The resolved address keys the field-check rate limit and is attached to
// log records:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
