package ewpayload

import (
	"context"
	"io"

	"github.com/jRubio4/EW-Payload-Plotter/internal/logscan"
	"github.com/jRubio4/EW-Payload-Plotter/internal/series"
)

// Entry is one decoded uplink of a log.
type Entry struct {
	logscan.Entry `yaml:",inline"`

	Result Result `json:"result" yaml:"result"`
}

// Failure is a log uplink that could not be decoded.
type Failure struct {
	Line  int    `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

// Series is a named time series extracted from a log.
type Series = series.Series

// Batch is the outcome of DecodeLog.
type Batch struct {
	Product  Product   `json:"product" yaml:"product"`
	Entries  []Entry   `json:"entries" yaml:"entries"`
	Series   []Series  `json:"series" yaml:"series"`
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
	// Skipped counts uplink lines whose timestamp could not be parsed.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// DecodeLog scans a gateway log for "Byte string (hex):" lines, decodes
// each uplink and collects the plotted series. Uplinks that fail to decode
// are reported in Failures and do not stop the scan.
func DecodeLog(ctx context.Context, r io.Reader, p Product, opts DecodeOptions) (Batch, error) {
	if _, err := MinLength(p); err != nil {
		return Batch{}, err
	}
	if _, err := opts.toInternal(ctx); err != nil {
		return Batch{}, err
	}
	batch := Batch{Product: p}
	collector := series.NewCollector(p)
	scanner := logscan.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Batch{}, err
		}
		entry := scanner.Entry()
		res, err := Decode(ctx, entry.Hex, p, opts)
		if err != nil {
			batch.Failures = append(batch.Failures, Failure{Line: entry.Line, Error: err.Error()})
			continue
		}
		collector.Add(entry.Timestamp, res.Fields)
		batch.Entries = append(batch.Entries, Entry{Entry: entry, Result: res})
	}
	if err := scanner.Err(); err != nil {
		return Batch{}, err
	}
	batch.Series = collector.Series()
	batch.Skipped = scanner.Skipped()
	return batch, nil
}
