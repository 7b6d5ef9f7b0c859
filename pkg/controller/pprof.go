package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a ServeMux with the net/http/pprof handlers mounted at its
// root, intended to be nested under a debug path on the main server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
