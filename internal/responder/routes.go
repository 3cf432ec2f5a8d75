package responder

import (
	"slices"
	"strings"
)

// HandlerKind identifies which fixed handler serves a route
type HandlerKind int

const (
	HandlerEcho HandlerKind = iota
	HandlerError
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerEcho:
		return "echo"
	case HandlerError:
		return "error"
	default:
		return "unknown"
	}
}

// RouteTable maps exact request paths to handlers. It is never modified
// after NewRouteTable returns.
type RouteTable map[string]HandlerKind

// NewRouteTable routes each extra path to echo, then installs the built-in
// /echo and /error routes so that neither can be overridden.
func NewRouteTable(extraPaths []string) RouteTable {
	rt := make(RouteTable, len(extraPaths)+2)
	for _, p := range extraPaths {
		if p = strings.TrimSpace(p); p != "" {
			rt[p] = HandlerEcho
		}
	}
	rt[EchoPath] = HandlerEcho
	rt[ErrorPath] = HandlerError
	return rt
}

// Lookup returns the handler for an exact path
func (rt RouteTable) Lookup(path string) (HandlerKind, bool) {
	kind, ok := rt[path]
	return kind, ok
}

// Paths returns the routed paths in sorted order
func (rt RouteTable) Paths() []string {
	paths := make([]string, 0, len(rt))
	for p := range rt {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
