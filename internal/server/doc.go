// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// bounded by the configured timeout, and release of shared resources such as
// the database pool once in-flight requests have drained.
package server
