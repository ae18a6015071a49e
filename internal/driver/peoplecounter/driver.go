package peoplecounter

import (
	"context"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

const (
	MinLength = 26

	offsetBattery     = 16
	offsetTemperature = 18
	offsetRSRP        = 20
	offsetRSRQ        = 21
	offsetCounter1    = 22
	offsetCounter2    = 24
)

// Driver decodes people-counter uplinks.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "peoplecounter" }

// Process builds the people-counter field record.
func (Driver) Process(_ context.Context, f *frame.Frame) (*records.Record, error) {
	b := f.Raw
	r := records.New()
	r.Set(records.DeviceIMEI, records.Text(f.Header.DeviceID))
	r.Set(records.FrameCount, records.Uint(uint64(f.Header.FrameCount)))
	r.Set(records.FWIdentifier, records.Text(f.Header.FirmwareID))
	r.Set(records.PayloadVersion, records.Uint(uint64(f.Header.PayloadVersion)))
	r.Set(records.Battery, records.Float(codec.Scale(codec.U16At(b, offsetBattery), codec.BatteryDivisor)))
	r.Set(records.Temperature, records.Float(codec.Scale(codec.U16At(b, offsetTemperature), codec.TemperatureDivisor)))
	r.Set(records.RSRP, records.Uint(uint64(b[offsetRSRP])))
	r.Set(records.RSRQ, records.Uint(uint64(b[offsetRSRQ])))
	r.Set(records.Counter1, records.Uint(uint64(codec.U16At(b, offsetCounter1))))
	r.Set(records.Counter2, records.Uint(uint64(codec.U16At(b, offsetCounter2))))
	return r, nil
}
