package sender

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/atlanticdynamic/interval-workloads/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

const (
	DefaultHost   = "http://localhost:8080"
	DefaultPath   = "/echo"
	DefaultMethod = "GET"
)

// Options are the per-request settings applied to every attempt
type Options struct {
	Path    string            `json:"path"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Config is the resolved sender configuration
type Config struct {
	Host    string
	Options Options

	target *url.URL
}

// NewConfig resolves the raw HOST, REQUEST_PATH, METHOD and HEADERS values.
// Empty values fall back to their defaults. The method is upper-cased.
func NewConfig(host, path, method, headers string) (*Config, error) {
	if host = strings.TrimSpace(host); host == "" {
		host = DefaultHost
	}
	if path == "" {
		path = DefaultPath
	}
	if method = strings.ToUpper(strings.TrimSpace(method)); method == "" {
		method = DefaultMethod
	}

	parsed, err := ParseHeaders(headers)
	if err != nil {
		return nil, err
	}

	target, err := resolveTarget(host, path)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host: host,
		Options: Options{
			Path:    path,
			Method:  method,
			Headers: parsed,
		},
		target: target,
	}, nil
}

// ParseHeaders parses comma-separated "Name:Value" pairs. Each pair is split
// on its first colon and both sides are trimmed. Returns nil when raw holds
// no entries.
func ParseHeaders(raw string) (map[string]string, error) {
	var headers map[string]string
	for _, entry := range strings.Split(raw, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		name, value, found := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, entry)
		}

		if headers == nil {
			headers = make(map[string]string)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

// resolveTarget keeps the scheme and authority of host and takes the path
// and query from path.
func resolveTarget(host, path string) (*url.URL, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidHost, host)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	return &url.URL{
		Scheme:   base.Scheme,
		User:     base.User,
		Host:     base.Host,
		Path:     ref.Path,
		RawPath:  ref.RawPath,
		RawQuery: ref.RawQuery,
	}, nil
}

// TargetURL is the URL every request is sent to
func (c *Config) TargetURL() string {
	return c.target.String()
}

// OptionsJSON renders the request options for logging
func (c *Config) OptionsJSON() string {
	data, err := json.Marshal(c.Options)
	if err != nil {
		return fmt.Sprintf("%+v", c.Options)
	}
	return string(data)
}

// Tree renders the configuration for the config subcommand
func (c *Config) Tree() *tree.Tree {
	names := make([]string, 0, len(c.Options.Headers))
	for name := range c.Options.Headers {
		names = append(names, name)
	}
	slices.Sort(names)

	headers := fancy.BranchNode("Headers", fmt.Sprintf("(%d)", len(names)))
	for _, name := range names {
		headers.Child(fancy.KeyValue(name, c.Options.Headers[name]))
	}

	return fancy.RootTree("Sender").Child(
		fancy.KeyValue("Host", c.Host),
		fancy.KeyValue("Target", fancy.RouteText(c.TargetURL())),
		fancy.KeyValue("Method", c.Options.Method),
		headers,
	)
}

func (c *Config) String() string {
	return c.Tree().String()
}
