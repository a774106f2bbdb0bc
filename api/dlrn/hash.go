package dlrn

// absentHash is the literal string DLRN publishes when a dist or extended
// hash does not apply to a build. It is normalized to the empty string at
// every parse boundary, so internal code only ever checks for "".
const absentHash = "None"

// Hashes is the triple of hashes that locates a build directory on a DLRN
// server. Commit is always set for a resolvable build; Dist and Extended may
// be empty.
type Hashes struct {
	Commit   string
	Dist     string
	Extended string
}

// normalizeHash maps DLRN's "None" sentinel to the empty string.
func normalizeHash(hash string) string {
	if hash == absentHash {
		return ""
	}
	return hash
}

// prefix returns at most the first n bytes of s. DLRN hashes are hex, so
// byte slicing is safe; the clamp keeps malformed or empty hashes from
// panicking.
func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// buildURL computes the sharded storage URL of a build directory, in the
// format `<base>/AB/CD/ABCD123[_DIST8][_EXT8]` where ABCD123 is the commit
// hash and DIST8/EXT8 are the first eight characters of the dist and extended
// hashes. The two-level prefix mirrors the directory layout DLRN uses to
// limit fan-out. Absent hashes contribute no suffix.
func (c *Client) buildURL(h Hashes) string {
	leaf := h.Commit
	for _, extra := range []string{h.Dist, h.Extended} {
		if extra != "" && extra != absentHash {
			leaf += "_" + prefix(extra, 8)
		}
	}
	first := prefix(h.Commit, 2)
	second := ""
	if len(h.Commit) > 2 {
		second = prefix(h.Commit[2:], 2)
	}
	return joinURL(c.URL, first, second, leaf)
}
