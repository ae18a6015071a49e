package analog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/options"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
	"github.com/jRubio4/EW-Payload-Plotter/internal/testutil"
)

func TestDriverProcessSubtypes(t *testing.T) {
	f, err := frame.Parse(testutil.LoadFrame(t, "analog/sensor.hex"))
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}
	cases := []struct {
		subtype options.Subtype
		golden  string
	}{
		{options.SubtypeEFS, "analog/sensor_efs.json"},
		{options.SubtypeWLM, "analog/sensor_wlm.json"},
		{options.SubtypeRG, "analog/sensor_rg.json"},
		{"", "analog/sensor_wlm.json"},
	}
	for _, tc := range cases {
		ctx := options.WithAnalogSubtype(context.Background(), tc.subtype)
		rec, err := (Driver{}).Process(ctx, &f)
		if err != nil {
			t.Fatalf("Process(%s): %v", tc.subtype, err)
		}
		got, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if want := testutil.LoadCompactJSON(t, tc.golden); string(got) != want {
			t.Fatalf("subtype %q mismatch:\n got %s\nwant %s", tc.subtype, got, want)
		}
	}
}

func TestSubtypeRoutesSameRawValues(t *testing.T) {
	raw := make([]byte, MinLength)
	raw[offsetAnalog], raw[offsetAnalog+1] = 0x01, 0x00
	raw[offsetPulse], raw[offsetPulse+1] = 0x00, 0x07
	f, err := frame.Parse(raw)
	if err != nil {
		t.Fatalf("frame.Parse: %v", err)
	}

	efs, _ := (Driver{}).Process(options.WithAnalogSubtype(context.Background(), options.SubtypeEFS), &f)
	rg, _ := (Driver{}).Process(options.WithAnalogSubtype(context.Background(), options.SubtypeRG), &f)

	if v, _ := efs.Get(records.FenceVoltage); v.String() != "256" {
		t.Fatalf("EFS fence voltage mismatch: %v", v)
	}
	if v, _ := efs.Get(records.PulseCount); !v.IsNotUsed() {
		t.Fatalf("EFS pulse count must be unused: %v", v)
	}
	if _, ok := efs.Get(records.RainCount); ok {
		t.Fatalf("EFS must not carry rain count")
	}
	if v, _ := rg.Get(records.RainGaugeValue); !v.IsNotUsed() {
		t.Fatalf("RG rain gauge value must be unused: %v", v)
	}
	if v, _ := rg.Get(records.RainCount); v.String() != "7" {
		t.Fatalf("RG rain count mismatch: %v", v)
	}
	if _, ok := rg.Get(records.FenceVoltage); ok {
		t.Fatalf("RG must not carry fence voltage")
	}
}

func TestLabelsForUnknownSubtype(t *testing.T) {
	if got := LabelsFor("PIR"); got != LabelsFor(options.SubtypeWLM) {
		t.Fatalf("unknown subtype must fall back to WLM, got %+v", got)
	}
}
