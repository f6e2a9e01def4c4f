package server

// Server is the lifecycle of the diner HTTP server.
//
// RunServer blocks until a stop signal arrives and the server has drained.
// Shutdown stops accepting requests, waits for in-flight ones within the
// configured timeout and releases the database pool.
type Server interface {
	RunServer()
	Shutdown()
}
