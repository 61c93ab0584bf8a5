// Package formhttp serves rule-set schemas over HTTP.
//
// NewRouter mounts three routes on a chi router: a listing of schema names, the
// definition of a single schema, and a validation endpoint that binds the request
// body and runs it through the named schema.
//
//	reg := ruleset.NewRegistry()
//	_ = reg.LoadFS(ctx, os.DirFS("rules"))
//
//	handler := formhttp.NewRouter(reg,
//		formhttp.WithLogger(log),
//		formhttp.WithMiddleware(requestid.Middleware),
//	)
//
// # Responses
//
// A passing body yields 200 with {"valid":true}. A failing body yields 422 with
// {"errors":{...}}, fields listed in schema order. Requests that cannot be
// validated get {"error":"..."} with 404 for unknown schemas, 415 for missing or
// unsupported content types, 413 for oversized bodies and 400 for malformed ones.
//
// # Binding
//
// Bind accepts application/json objects, application/x-www-form-urlencoded and
// multipart/form-data. Form fields sent once become strings; repeated fields
// become string lists, so length limits count their elements.
package formhttp
