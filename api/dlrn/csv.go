package dlrn

import (
	"encoding/csv"
	"io"
	"strings"
)

// Rows iterates over the records of a remote CSV report. Iteration is lazy
// and forward-only; a fresh Rows is produced for every fetch, so there is no
// restart and no caching.
type Rows struct {
	reader *csv.Reader
	header []string
}

// parseCSV fetches a CSV resource and returns a lazy row iterator. A fetch
// failure is logged as an error and yields an iterator over zero rows.
//
// DLRN reports separate records with newlines but may also carry literal
// spaces inside cells (notably in NVR fields), so spaces are rewritten to
// underscores before the text is split and parsed.
func (c *Client) parseCSV(url string) *Rows {
	data, ok := c.fetchText(url)
	if !ok {
		c.log.Errorf("could not fetch %s", url)
		return &Rows{}
	}

	lines := strings.Fields(strings.ReplaceAll(data, " ", "_"))
	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	return &Rows{reader: reader}
}

// Next returns the next record as a map keyed by the header row's field
// names, or false when the input is exhausted. Malformed records are skipped.
// Records shorter than the header simply omit the trailing keys.
func (r *Rows) Next() (map[string]string, bool) {
	if r.reader == nil {
		return nil, false
	}
	if r.header == nil {
		header, err := r.reader.Read()
		if err != nil {
			r.reader = nil
			return nil, false
		}
		r.header = header
	}

	for {
		record, err := r.reader.Read()
		if err == io.EOF {
			r.reader = nil
			return nil, false
		}
		if err != nil {
			continue
		}

		row := make(map[string]string, len(r.header))
		for i, name := range r.header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		return row, true
	}
}
