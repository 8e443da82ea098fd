// Package pkglog configures slog for gobrc.
//
// Logs are JSON on stderr so stdout stays free for the result line. Records
// carry the service name and, when the context has one, a correlation ID (an
// HTTP request ID or a job ID).
package pkglog
