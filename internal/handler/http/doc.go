// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, request tracing, optional caller
// identity, metrics, access logging, and response compression are handled in
// this package before requests are delegated to the service layer.
//
// Every JSON response uses the [models.Response] envelope; the envelope code
// always equals the HTTP status.
package http
