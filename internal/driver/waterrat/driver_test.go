package waterrat

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
	"github.com/jRubio4/EW-Payload-Plotter/internal/testutil"
)

func TestDriverProcess(t *testing.T) {
	f, err := frame.Parse(testutil.LoadFrame(t, "waterrat/sydney_tilt.hex"))
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}
	rec, err := (Driver{}).Process(context.Background(), &f)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := testutil.LoadCompactJSON(t, "waterrat/sydney_tilt.json"); string(got) != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestLatitudeFixedPoint(t *testing.T) {
	raw := make([]byte, MinLength)
	// 12.3456 degrees as 123456 ten-thousandths
	copy(raw[offsetLatitude:], []byte{0x00, 0x01, 0xE2, 0x40})
	f, err := frame.Parse(raw)
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}
	rec, _ := (Driver{}).Process(context.Background(), &f)
	v, _ := rec.Get(records.GPSLatitude)
	if lat, ok := v.Float64(); !ok || lat != 12.3456 {
		t.Fatalf("latitude mismatch: %v", v)
	}
}

func TestAllZeroFrame(t *testing.T) {
	f, err := frame.Parse(make([]byte, MinLength))
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}
	rec, err := (Driver{}).Process(context.Background(), &f)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.Len() != 14 {
		t.Fatalf("expected 14 fields, got %d", rec.Len())
	}
	if v, _ := rec.Get(records.AlarmFlags); v.String() != "None" {
		t.Fatalf("alarm flags mismatch: %v", v)
	}
	if v, _ := rec.Get(records.DeviceIMEI); v.String() != "0000000000000000" {
		t.Fatalf("device id mismatch: %v", v)
	}
}
