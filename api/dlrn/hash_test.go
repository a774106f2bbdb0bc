package dlrn

import (
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func testClient(base string) *Client {
	return &Client{URL: base, log: log.Log}
}

func TestBuildURLWithAllHashes(t *testing.T) {
	c := testClient("https://example.com/centos9-master")
	got := c.buildURL(Hashes{
		Commit:   "1234567890abcdef",
		Dist:     "fedcba0987654321",
		Extended: "00112233445566",
	})
	assert.Equal(t, "https://example.com/centos9-master/12/34/1234567890abcdef_fedcba09_00112233", got)
}

func TestBuildURLOmitsAbsentSuffixes(t *testing.T) {
	c := testClient("https://example.com/release")

	testcases := []struct {
		name   string
		hashes Hashes
		want   string
	}{
		{"no dist or extended", Hashes{Commit: "1234567890abcdef"},
			"https://example.com/release/12/34/1234567890abcdef"},
		{"dist only", Hashes{Commit: "1234567890abcdef", Dist: "fedcba0987654321"},
			"https://example.com/release/12/34/1234567890abcdef_fedcba09"},
		{"extended only", Hashes{Commit: "1234567890abcdef", Extended: "00112233445566"},
			"https://example.com/release/12/34/1234567890abcdef_00112233"},
		{"sentinel dist and extended", Hashes{Commit: "1234567890abcdef", Dist: "None", Extended: "None"},
			"https://example.com/release/12/34/1234567890abcdef"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.buildURL(tc.hashes))
		})
	}
}

func TestBuildURLDoesNotPanicOnShortHashes(t *testing.T) {
	c := testClient("https://example.com/release")

	assert.Equal(t, "https://example.com/release/ab/c/abc", c.buildURL(Hashes{Commit: "abc"}))
	assert.Equal(t, "https://example.com/release///", c.buildURL(Hashes{Commit: ""}))
	assert.Equal(t, "https://example.com/release/12/34/123456_ab", c.buildURL(Hashes{Commit: "123456", Dist: "ab"}))
}

func TestNormalizeHash(t *testing.T) {
	assert.Equal(t, "", normalizeHash("None"))
	assert.Equal(t, "", normalizeHash(""))
	assert.Equal(t, "abcd1234", normalizeHash("abcd1234"))
}
