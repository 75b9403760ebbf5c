// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logruslog: Structured logger implementation on logrus
//
// Infrastructure components are designed to be pluggable, configurable and
// testable; the transport client owns retries and timeouts so that callers
// in core stay free of retry policy.
package infrastructure
