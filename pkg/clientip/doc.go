// Package clientip resolves the address of the client behind an HTTP request.
//
// GetIP checks the proxy headers listed in Headers before RemoteAddr.
// Middleware stores the result in the request context and LoggerExtractor adds
// it to log records as "client_ip". Only deploy behind proxies that overwrite
// these headers; clients can otherwise forge them.
package clientip
