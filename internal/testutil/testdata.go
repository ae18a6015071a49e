package testutil

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadCompactJSON returns a JSON fixture with insignificant whitespace
// removed and key order preserved, for byte-exact comparison.
func LoadCompactJSON(t *testing.T, rel string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, readTestdata(t, rel)); err != nil {
		t.Fatalf("compact %s: %v", rel, err)
	}
	return buf.String()
}

// LoadHex returns a trimmed hex string from testdata relative path.
func LoadHex(t *testing.T, rel string) string {
	t.Helper()
	data := readTestdata(t, rel)
	return strings.TrimSpace(string(data))
}

// LoadFrame returns the bytes of a hex fixture.
func LoadFrame(t *testing.T, rel string) []byte {
	t.Helper()
	b, err := hex.DecodeString(LoadHex(t, rel))
	if err != nil {
		t.Fatalf("hex decode %s: %v", rel, err)
	}
	return b
}

// Open returns a reader over a testdata file; the file is closed when the
// test ends.
func Open(t *testing.T, rel string) *os.File {
	t.Helper()
	for _, path := range candidates(rel) {
		if f, err := os.Open(path); err == nil {
			t.Cleanup(func() { f.Close() })
			return f
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	for _, path := range candidates(rel) {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}

func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
		filepath.Join("..", "..", "..", "testdata", rel),
	}
}
