package sdi12

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
	"github.com/jRubio4/EW-Payload-Plotter/internal/testutil"
)

func TestDriverProcessGolden(t *testing.T) {
	for _, name := range []string{"two_groups", "truncated_group"} {
		f, err := frame.Parse(testutil.LoadFrame(t, "sdi12/"+name+".hex"))
		if err != nil {
			t.Fatalf("%s: frame.Parse: %v", name, err)
		}
		rec, err := (Driver{}).Process(context.Background(), &f)
		if err != nil {
			t.Fatalf("%s: Process: %v", name, err)
		}
		got, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if want := testutil.LoadCompactJSON(t, "sdi12/"+name+".json"); string(got) != want {
			t.Fatalf("%s mismatch:\n got %s\nwant %s", name, got, want)
		}
	}
}

func TestTruncatedGroupIsNotAnError(t *testing.T) {
	f, err := frame.Parse(testutil.LoadFrame(t, "sdi12/truncated_group.hex"))
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}
	rec, err := (Driver{}).Process(context.Background(), &f)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, ok := rec.Get(records.MeasurementName(2, 1)); ok {
		t.Fatalf("group 2 must not yield fields")
	}
	notes := rec.Notes()
	if len(notes) != 1 || !strings.Contains(notes[0], "incomplete measurement block") {
		t.Fatalf("unexpected notes: %v", notes)
	}
}

func TestTemperatureIsUnscaled(t *testing.T) {
	raw := make([]byte, MinLength)
	raw[offsetTemperature], raw[offsetTemperature+1] = 0x08, 0x66
	f, _ := frame.Parse(raw)
	rec, _ := (Driver{}).Process(context.Background(), &f)
	v, _ := rec.Get(records.Temperature)
	if v.Kind() != records.KindUint || v.String() != "2150" {
		t.Fatalf("temperature must stay raw, got %v (%s)", v, v.Kind())
	}
}

func TestParseBlock(t *testing.T) {
	onePoint := []byte{0x00, 0x00, 0xC0, 0x3F} // 1.5
	cases := []struct {
		name       string
		data       []byte
		groups     int
		wantPoints []int
		incomplete bool
		trailing   int
	}{
		{"empty declared none", nil, 0, nil, false, 0},
		{"declared but missing", nil, 1, nil, true, 0},
		{"two complete", append(append([]byte{0x01}, onePoint...), append([]byte{0x01}, onePoint...)...), 2, []int{1, 1}, false, 0},
		{"high nibble ignored", append([]byte{0xF1}, onePoint...), 1, []int{1}, false, 0},
		{"cut inside point", append([]byte{0x02}, append(onePoint, 0x00, 0x00, 0xC0)...), 1, []int{1}, true, 3},
		{"extra trailing bytes", append(append([]byte{0x01}, onePoint...), 0xAA), 1, []int{1}, false, 1},
		{"zero point group", []byte{0x00, 0x01}, 2, []int{0, 0}, true, 0},
	}
	for _, tc := range cases {
		blk := ParseBlock(tc.data, tc.groups)
		if len(blk.Groups) != len(tc.wantPoints) {
			t.Fatalf("%s: groups=%d want %d", tc.name, len(blk.Groups), len(tc.wantPoints))
		}
		for i, n := range tc.wantPoints {
			if len(blk.Groups[i]) != n {
				t.Fatalf("%s: group %d has %d points, want %d", tc.name, i+1, len(blk.Groups[i]), n)
			}
		}
		if blk.Incomplete != tc.incomplete {
			t.Fatalf("%s: incomplete=%v", tc.name, blk.Incomplete)
		}
		if blk.Trailing != tc.trailing {
			t.Fatalf("%s: trailing=%d want %d", tc.name, blk.Trailing, tc.trailing)
		}
	}
}
