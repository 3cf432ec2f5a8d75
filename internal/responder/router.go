package responder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
)

const (
	echoChunkSize   = 32 * 1024
	contentType     = "text/plain; charset=utf-8"
	unavailableBody = "SERVICE UNAVAILABLE"
	notFoundBody    = "Not Found\n"
)

var _ http.Handler = (*Router)(nil)

// Router dispatches requests by exact path to the echo or error handler,
// falling back to 404. It counts every request it dispatches.
type Router struct {
	routes   RouteTable
	numCalls atomic.Uint64
	logger   *slog.Logger
}

// NewRouter creates a router over a route table
func NewRouter(routes RouteTable, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default().WithGroup("responder.Router")
	}
	return &Router{
		routes: routes,
		logger: logger,
	}
}

// Calls returns the number of requests dispatched so far
func (rt *Router) Calls() uint64 {
	return rt.numCalls.Load()
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	calls := rt.numCalls.Add(1)
	w.Header().Set("Content-Type", contentType)

	kind, ok := rt.routes.Lookup(r.URL.Path)
	if !ok {
		rt.handleNotFound(w, r)
		return
	}

	switch kind {
	case HandlerEcho:
		rt.handleEcho(w, r, calls)
	case HandlerError:
		rt.handleError(w, r)
	default:
		rt.handleNotFound(w, r)
	}
}

// handleEcho sends the 200 status before reading the body, then writes a
// "Served - " line back for every chunk read. calls includes this request.
func (rt *Router) handleEcho(w http.ResponseWriter, r *http.Request, calls uint64) {
	rc := http.NewResponseController(w)
	// Reading the body after the headers are flushed needs full duplex on HTTP/1.x.
	fullDuplex := rc.EnableFullDuplex() == nil

	w.WriteHeader(http.StatusOK)
	if fullDuplex {
		_ = rc.Flush()
	}

	buf := make([]byte, echoChunkSize)
	for {
		n, err := r.Body.Read(buf)
		if n > 0 {
			if _, werr := fmt.Fprintf(w, "Served - %s\n", buf[:n]); werr != nil {
				rt.logger.Warn("Failed to write echo response", "error", werr)
				return
			}
			if fullDuplex {
				_ = rc.Flush()
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rt.logger.Warn("Failed to read request body", "error", err)
			return
		}
	}

	headers, err := json.Marshal(requestHeaders(r))
	if err != nil {
		rt.logger.Warn("Failed to encode request headers", "error", err)
	}
	rt.logger.Info("Echoing "+r.Method+" request", "calls", calls)
	rt.logger.Info("Request headers", "headers", string(headers))
}

func (rt *Router) handleError(w http.ResponseWriter, _ *http.Request) {
	rt.logger.Info("Generating error - 503 Service Unavailable")
	w.WriteHeader(http.StatusServiceUnavailable)
	if _, err := io.WriteString(w, unavailableBody); err != nil {
		rt.logger.Warn("Failed to write error response", "error", err)
	}
}

func (rt *Router) handleNotFound(w http.ResponseWriter, r *http.Request) {
	rt.logger.Warn("Not found", "url", r.URL.String())
	w.WriteHeader(http.StatusNotFound)
	if _, err := io.WriteString(w, notFoundBody); err != nil {
		rt.logger.Warn("Failed to write not found response", "error", err)
	}
}

// requestHeaders flattens the request headers into lowercase names, including
// the Host header that net/http moves onto the request itself.
func requestHeaders(r *http.Request) map[string]string {
	out := make(map[string]string, len(r.Header)+1)
	if r.Host != "" {
		out["host"] = r.Host
	}
	for name, values := range r.Header {
		out[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return out
}
