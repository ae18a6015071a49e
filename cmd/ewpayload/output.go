package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jRubio4/EW-Payload-Plotter/pkg/ewpayload"
)

func writeResult(w io.Writer, result ewpayload.Result, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(w, result)
	case "yaml":
		return writeYAML(w, result)
	case "", "table":
		return writeTable(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeBatch(w io.Writer, batch ewpayload.Batch, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		return writeJSON(w, batch)
	case "yaml":
		return writeYAML(w, batch)
	case "csv":
		return writeSeriesCSV(w, batch.Series)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTable(w io.Writer, result ewpayload.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Product\t%s\n", result.Product)
	fmt.Fprintf(tw, "Bytes\t%d\n", result.ByteCount)
	fs := result.FieldSet()
	for _, name := range fs.Names() {
		value, err := fs.Display(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, value)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(tw, "Warning\t%s\n", warning)
	}
	return tw.Flush()
}

// writeSeriesCSV emits one row per point in long format.
func writeSeriesCSV(w io.Writer, series []ewpayload.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "timestamp", "value"}); err != nil {
		return err
	}
	for _, s := range series {
		for _, p := range s.Points {
			row := []string{
				s.Name,
				p.Time.UTC().Format(time.RFC3339Nano),
				strconv.FormatFloat(p.Value, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
