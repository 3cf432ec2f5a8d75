package responder

import (
	"strconv"
	"strings"

	"github.com/atlanticdynamic/interval-workloads/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

const (
	// DefaultPort is used when PORT is unset, zero, or not a valid port number
	DefaultPort = 8080

	// EchoPath and ErrorPath are always routed, whatever RECEIVE_PATHS holds
	EchoPath  = "/echo"
	ErrorPath = "/error"
)

// Config is the resolved responder configuration
type Config struct {
	Port          int
	PortDefaulted bool
	ReceivePaths  []string
}

// NewConfig resolves the raw PORT and RECEIVE_PATHS values
func NewConfig(rawPort, rawPaths string) *Config {
	port, defaulted := ParsePort(rawPort)
	return &Config{
		Port:          port,
		PortDefaulted: defaulted,
		ReceivePaths:  ParseReceivePaths(rawPaths),
	}
}

// ParsePort returns the listen port and whether the default was used.
func ParsePort(raw string) (int, bool) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port <= 0 || port > 65535 {
		return DefaultPort, true
	}
	return port, false
}

// ParseReceivePaths splits a comma-separated path list. Entries are trimmed
// and empty ones dropped; an empty list yields just the echo path.
func ParseReceivePaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return []string{EchoPath}
	}
	return paths
}

// Address is the listen address on all interfaces
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// Tree renders the configuration along with the route table it produces
func (c *Config) Tree() *tree.Tree {
	port := strconv.Itoa(c.Port)
	if c.PortDefaulted {
		port = fancy.DefaultedText(port)
	}

	routes := NewRouteTable(c.ReceivePaths)
	paths := routes.Paths()
	branch := fancy.BranchNode("Routes", "("+strconv.Itoa(len(paths))+")")
	for _, p := range paths {
		branch.Child(fancy.RouteText(p) + " → " + fancy.HandlerText(routes[p].String()))
	}

	return fancy.RootTree("Responder").Child(
		fancy.KeyValue("Port", port),
		branch,
	)
}

func (c *Config) String() string {
	return c.Tree().String()
}
