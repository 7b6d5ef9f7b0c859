// Package controller holds the HTTP middlewares and helper handlers shared by
// the API server: CORS handling, request-scoped access logging with request
// IDs, and the pprof debug mux.
package controller
