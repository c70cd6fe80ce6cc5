package server

// Server is a transport server whose lifetime is owned by the caller.
type Server interface {
	// RunServer blocks until a stop signal arrives or serving fails, and
	// returns the serving error, if any.
	RunServer() error

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
