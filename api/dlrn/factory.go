package dlrn

import (
	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/release-depot/dlrn/config"
)

// ErrUnknownHost is the cause of NewFromConfig errors for hosts that have no
// entry in the loaded configuration.
var ErrUnknownHost = errors.New("host is not present in the DLRN configuration")

// A FactoryOption adjusts how NewFromConfig resolves and constructs a Client.
type FactoryOption func(*factorySettings)

type factorySettings struct {
	configFiles []string
	link        string
	log         log.Interface
}

// WithConfigFiles adds configuration files to load on top of the default
// dlrn.yml.
func WithConfigFiles(paths ...string) FactoryOption {
	return func(s *factorySettings) {
		s.configFiles = append(s.configFiles, paths...)
	}
}

// WithLinkOverride overrides the symlink name from the host's configuration.
func WithLinkOverride(name string) FactoryOption {
	return func(s *factorySettings) {
		s.link = name
	}
}

// WithFactoryLogger sets the logger passed on to the constructed Client.
func WithFactoryLogger(logger log.Interface) FactoryOption {
	return func(s *factorySettings) {
		s.log = logger
	}
}

// NewFromConfig resolves a host's settings from the DLRN configuration files
// and constructs a Client for it. It fails when no configuration can be read
// or when the host has no entry.
func NewFromConfig(host string, options ...FactoryOption) (*Client, error) {
	settings := factorySettings{log: log.Log}
	for _, option := range options {
		option(&settings)
	}

	cfg, err := config.Load(settings.configFiles...)
	if err != nil {
		return nil, err
	}

	entry, ok := cfg[host]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHost, "host %q", host)
	}

	link := entry.Link
	if settings.link != "" {
		link = settings.link
	}

	return New(entry.URL, entry.Release,
		WithLink(link),
		WithLogger(settings.log),
	), nil
}
