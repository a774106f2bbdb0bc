package dlrn_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/release-depot/dlrn/api/dlrn"
	"github.com/release-depot/dlrn/config"
)

func writeHostConfig(t *testing.T, url string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "dlrn-factory-")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "hosts.yml")
	contents := "centos9:\n  url: " + url + "\n  release: release\n  link: current\n"
	assert.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestNewFromConfig(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/release/current/commit.yaml", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(successManifest))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	path := writeHostConfig(t, ts.URL)
	c, err := dlrn.NewFromConfig("centos9", dlrn.WithConfigFiles(path))
	assert.NoError(t, err)
	assert.Equal(t, ts.URL+"/release", c.URL)
	assert.Equal(t, "foo", c.Commit().Name)
}

func TestNewFromConfigLinkOverride(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/release/consistent/commit.yaml", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(successManifest))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	path := writeHostConfig(t, ts.URL)
	c, err := dlrn.NewFromConfig("centos9",
		dlrn.WithConfigFiles(path),
		dlrn.WithLinkOverride("consistent"),
	)
	assert.NoError(t, err)
	assert.Equal(t, "foo", c.Commit().Name)
}

func TestNewFromConfigUnknownHost(t *testing.T) {
	path := writeHostConfig(t, "https://example.com")
	_, err := dlrn.NewFromConfig("no-such-host", dlrn.WithConfigFiles(path))
	assert.Error(t, err)
	assert.NotEqual(t, config.ErrNoConfig, err)
}

func TestNewFromConfigNoConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "dlrn-factory-empty-")
	assert.NoError(t, err)
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.RemoveAll(dir)
	})

	_, err = dlrn.NewFromConfig("centos9")
	assert.Equal(t, config.ErrNoConfig, err)
}
