package httpserver

import (
	"net/http"
	"time"
)

// New builds the HTTP server for the decision engine. The write timeout
// leaves headroom for a full screening fan-out, where the slowest simulated
// provider alone can take three seconds before its own timeout converts it
// to an ERROR entry.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
