package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

const readHeaderTimeout = 5 * time.Second

// New creates an HTTP server for router listening on addr.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
