// Package api provides the HTTP API layer for the keyword analysis service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// The OpenAPI 3.0 spec is generated automatically (JSON at /openapi.json,
// interactive docs at /docs), and request validation is driven by struct
// tags on the DTO types.
//
// Middleware covers request logging with unique request ids, per-IP rate
// limiting and Prometheus metrics; CORS is configured on the router.
//
// Errors follow RFC 7807; domain errors are mapped to HTTP status codes in
// handlers/errors.go.
package api
