// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID header when Valid reports
// it well-formed and generates a UUID otherwise. The id travels in the request
// context (WithContext, FromContext) and is echoed back in the response.
// LoggerExtractor adds it to log records as "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	handler := formhttp.NewRouter(reg, formhttp.WithMiddleware(requestid.Middleware))
package requestid
