// Package dlrn provides a high-level interface to the DLRN build metadata
// published over HTTP by an RDO trunk repository server.
//
// DLRN publishes three resources per release under predictable URLs: a
// `commit.yaml` manifest behind a named symlink describing the most recent
// build, a `versions.csv` report inside each build directory, and a
// `status_report.csv` summarizing the state of every package. This package
// fetches and reshapes those resources; it performs no caching and issues a
// fresh request on every accessor call.
package dlrn

import (
	"net/http"
	"strings"

	"github.com/apex/log"
	yaml "gopkg.in/yaml.v2"

	"github.com/release-depot/dlrn/api"
)

// DefaultLink is the symlink DLRN maintains for the most recent consistent
// build set.
const DefaultLink = "current"

// A Client reads build metadata for a single release on a DLRN host. The
// commit record for the configured symlink is resolved once, when the client
// is constructed; everything else is fetched on demand.
type Client struct {
	// URL is the base URL of the release, i.e. the host URL joined with the
	// release name.
	URL     string
	Release string

	link   string
	log    log.Interface
	commit Commit
}

// An Option adjusts the construction of a Client.
type Option func(*Client)

// WithLink overrides the symlink name used to locate commit.yaml. The default
// is DefaultLink.
func WithLink(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.link = name
		}
	}
}

// WithLogger sets the logger the client reports fetch problems to. The
// default is the apex/log root logger.
func WithLogger(logger log.Interface) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// New constructs a Client for a release on a DLRN host and immediately
// resolves its commit record from `<url>/<release>/<link>/commit.yaml`. A
// client is always returned: if the manifest cannot be fetched, or its latest
// entry is not a successful build, the commit record is left empty and a
// warning is logged.
func New(url, release string, options ...Option) *Client {
	c := &Client{
		URL:     joinURL(url, release),
		Release: release,
		link:    DefaultLink,
		log:     log.Log,
	}
	for _, option := range options {
		option(c)
	}
	c.fetchCommit()
	return c
}

// fetchText GETs a URL and returns its body. The boolean is false on
// connection failure (logged as a warning) and on any non-200 status.
func (c *Client) fetchText(url string) (string, bool) {
	body, code, err := api.Get(url)
	if err != nil {
		c.log.WithError(err).Warnf("could not fetch %s", url)
		return "", false
	}
	if code != http.StatusOK {
		return "", false
	}
	return body, true
}

// fetchYAML GETs a URL and unmarshals the body into v. The boolean is false
// when the fetch itself failed; a fetched but malformed document returns an
// error instead.
func (c *Client) fetchYAML(url string, v interface{}) (bool, error) {
	raw, ok := c.fetchText(url)
	if !ok {
		return false, nil
	}
	return true, yaml.Unmarshal([]byte(raw), v)
}

// joinURL joins URL segments with single slashes. Unlike path.Join it does
// not collapse the scheme's double slash or clean empty segments.
func joinURL(base string, elem ...string) string {
	parts := append([]string{strings.TrimSuffix(base, "/")}, elem...)
	return strings.Join(parts, "/")
}
