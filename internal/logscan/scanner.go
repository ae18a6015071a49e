// Package logscan extracts uplink hex strings and their timestamps from
// gateway log files.
package logscan

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"time"
)

// TimestampLayout matches "yyyy-MM-dd HH:mm:ss,SSS".
const TimestampLayout = "2006-01-02 15:04:05,000"

var linePattern = regexp.MustCompile(`\[(.*?)\].*?Byte string \(hex\):\s*([0-9a-fA-F]+)`)

// Entry is one uplink found in a log.
type Entry struct {
	Line      int       `json:"line" yaml:"line"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Hex       string    `json:"hex" yaml:"hex"`
}

// Scanner iterates over the uplink lines of a log. Lines that do not carry
// an uplink are ignored; uplink lines with a bad timestamp are counted as
// skipped.
type Scanner struct {
	sc      *bufio.Scanner
	line    int
	entry   Entry
	skipped int
	err     error
}

// NewScanner returns a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{sc: sc}
}

// Scan advances to the next uplink entry.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		m := linePattern.FindStringSubmatch(s.sc.Text())
		if m == nil {
			continue
		}
		ts, err := ParseTimestamp(m[1])
		if err != nil {
			s.skipped++
			continue
		}
		s.entry = Entry{Line: s.line, Timestamp: ts, Hex: m[2]}
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("read log line %d: %w", s.line+1, err)
	}
	return false
}

// Entry returns the entry found by the last call to Scan.
func (s *Scanner) Entry() Entry { return s.entry }

// Skipped counts uplink lines dropped for an unparseable timestamp.
func (s *Scanner) Skipped() int { return s.skipped }

// Err returns the first read error.
func (s *Scanner) Err() error { return s.err }

// ParseTimestamp parses a log timestamp in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse log timestamp %q: %w", s, err)
	}
	return ts, nil
}

// ScanAll reads every uplink entry of r.
func ScanAll(r io.Reader) ([]Entry, int, error) {
	s := NewScanner(r)
	var entries []Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Skipped(), s.Err()
}
