package dlrn

// GetFailures fetches the release's status_report.csv and returns, for every
// package whose build status is FAILED, the URL of its build directory. The
// map is empty when the report cannot be fetched; it is recomputed on every
// call.
func (c *Client) GetFailures() map[string]string {
	endpoint := joinURL(c.URL, "status_report.csv")

	failed := make(map[string]string)
	rows := c.parseCSV(endpoint)
	for {
		row, ok := rows.Next()
		if !ok {
			break
		}
		if row["Status"] != "FAILED" {
			continue
		}
		failed[row["Project"]] = c.buildURL(Hashes{
			Commit:   normalizeHash(row["Source_Sha"]),
			Dist:     normalizeHash(row["Dist_Sha"]),
			Extended: normalizeHash(row["Extended_Sha"]),
		})
	}
	return failed
}
