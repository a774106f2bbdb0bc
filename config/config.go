// Package config implements host configuration for DLRN servers.
//
// Configuration files map host names to the base URL, release, and symlink
// name used to query them. The default file is `dlrn.yml`; additional files
// may be layered on top, and later files override earlier ones per host.
// YAML, TOML, and JSON files are accepted, selected by extension.
package config

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/release-depot/dlrn/files"
)

// DefaultFilename is the configuration file loaded before any overrides.
const DefaultFilename = "dlrn.yml"

// ErrNoConfig is returned by Load when no configuration file could be read.
var ErrNoConfig = errors.New("no DLRN configuration file found")

// A Host holds the settings needed to query one DLRN server.
type Host struct {
	// URL is the base URL of the server, up to but not including the release.
	URL string `yaml:"url" toml:"url" json:"url"`
	// Release is the release name appended to URL for every lookup.
	Release string `yaml:"release" toml:"release" json:"release"`
	// Link is the symlink name identifying the selected build, e.g. "current"
	// or "consistent".
	Link string `yaml:"link" toml:"link" json:"link"`
}

// A File maps host names to their settings.
type File map[string]Host

// Load reads the default configuration file plus any override files and
// merges them, later files winning per host. Override entries may be bare
// file names, resolved against the search path, or explicit paths. Files that
// do not exist are skipped; Load fails only when a file is malformed or when
// nothing at all could be read.
func Load(overrides ...string) (File, error) {
	names := append([]string{DefaultFilename}, overrides...)

	merged := File{}
	loaded := 0
	for _, name := range names {
		path, ok := locate(name)
		if !ok {
			continue
		}

		var f File
		if err := read(&f, path); err != nil {
			return nil, errors.Wrapf(err, "could not read configuration file %s", path)
		}
		for host, settings := range f {
			merged[host] = settings
		}
		loaded++
	}

	if loaded == 0 {
		return nil, ErrNoConfig
	}
	return merged, nil
}

// SearchPaths returns the directories probed for bare configuration file
// names: the working directory, then the per-user config directory.
func SearchPaths() []string {
	paths := []string{"."}
	home, err := homedir.Dir()
	if err == nil {
		paths = append(paths, filepath.Join(home, ".config", "dlrn"))
	}
	return paths
}

func locate(name string) (string, bool) {
	// Explicit paths are used as given.
	if strings.ContainsRune(name, os.PathSeparator) {
		ok, err := files.Exists(name)
		return name, err == nil && ok
	}

	for _, dir := range SearchPaths() {
		path := filepath.Join(dir, name)
		if ok, err := files.Exists(path); err == nil && ok {
			return path, true
		}
	}
	return "", false
}

func read(v *File, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return files.ReadTOML(v, path)
	case ".json":
		return files.ReadJSON(v, path)
	default:
		return files.ReadYAML(v, path)
	}
}
