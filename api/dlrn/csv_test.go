package dlrn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
)

func collectRows(rows *Rows) []map[string]string {
	var collected []map[string]string
	for {
		row, ok := rows.Next()
		if !ok {
			return collected
		}
		collected = append(collected, row)
	}
}

func TestParseCSVYieldsOneMapPerDataRow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Project,Status,Pkg_NVR\nfoo,SUCCESS,foo-1.0-1\nbar,FAILED,bar-2.0-1\n"))
	}))
	defer ts.Close()

	rows := collectRows(testClient(ts.URL).parseCSV(ts.URL))
	assert.Equal(t, []map[string]string{
		{"Project": "foo", "Status": "SUCCESS", "Pkg_NVR": "foo-1.0-1"},
		{"Project": "bar", "Status": "FAILED", "Pkg_NVR": "bar-2.0-1"},
	}, rows)
}

func TestParseCSVRewritesSpacesToUnderscores(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Project,Pkg NVR\nfoo,foo 1.0 1\n"))
	}))
	defer ts.Close()

	rows := collectRows(testClient(ts.URL).parseCSV(ts.URL))
	assert.Equal(t, []map[string]string{
		{"Project": "foo", "Pkg_NVR": "foo_1.0_1"},
	}, rows)
}

func TestParseCSVShortRecordsOmitTrailingKeys(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Project,Status,Pkg_NVR\nfoo,SUCCESS\n"))
	}))
	defer ts.Close()

	rows := collectRows(testClient(ts.URL).parseCSV(ts.URL))
	assert.Equal(t, []map[string]string{
		{"Project": "foo", "Status": "SUCCESS"},
	}, rows)
}

func TestParseCSVFetchFailureYieldsNoRowsAndLogsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer ts.Close()

	handler := memory.New()
	c := testClient(ts.URL)
	c.log = &log.Logger{Handler: handler, Level: log.DebugLevel}

	rows := collectRows(c.parseCSV(ts.URL + "/status_report.csv"))
	assert.Empty(t, rows)

	found := false
	for _, entry := range handler.Entries {
		if entry.Level == log.ErrorLevel {
			found = true
		}
	}
	assert.True(t, found, "expected an error-level log entry")
}

func TestParseCSVIsLazyAndForwardOnly(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("Project\nfoo\nbar\n"))
	}))
	defer ts.Close()

	c := testClient(ts.URL)

	rows := c.parseCSV(ts.URL)
	first, ok := rows.Next()
	assert.True(t, ok)
	assert.Equal(t, "foo", first["Project"])

	// A second iteration requires a fresh fetch.
	assert.Equal(t, 1, requests)
	_ = collectRows(c.parseCSV(ts.URL))
	assert.Equal(t, 2, requests)
}
