package sdi12

import (
	"context"
	"fmt"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

const (
	MinLength = 23

	offsetBattery      = 16
	offsetTemperature  = 18
	offsetRSRP         = 20
	offsetRSRQ         = 21
	offsetMeasurements = 22
	offsetBlock        = 23
)

// Driver decodes SDI-12 logger uplinks.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "sdi12" }

// Process builds the SDI-12 field record followed by one float field per
// measurement data point.
func (Driver) Process(_ context.Context, f *frame.Frame) (*records.Record, error) {
	b := f.Raw
	groups := b[offsetMeasurements]

	r := records.New()
	r.Set(records.DeviceIMEI, records.Text(f.Header.DeviceID))
	r.Set(records.FrameCount, records.Uint(uint64(f.Header.FrameCount)))
	r.Set(records.FWIdentifier, records.Text(f.Header.FirmwareID))
	r.Set(records.PayloadVersion, records.Uint(uint64(f.Header.PayloadVersion)))
	r.Set(records.Battery, records.Float(codec.Scale(codec.U16At(b, offsetBattery), codec.BatteryDivisor)))
	// The logger reports temperature unscaled, unlike the other products.
	r.Set(records.Temperature, records.Uint(uint64(codec.U16At(b, offsetTemperature))))
	r.Set(records.RSRP, records.Uint(uint64(b[offsetRSRP])))
	r.Set(records.RSRQ, records.Uint(uint64(b[offsetRSRQ])))
	r.Set(records.NumberOfMeasurements, records.Uint(uint64(groups)))

	block := ParseBlock(b[offsetBlock:], int(groups))
	for g, points := range block.Groups {
		for i, v := range points {
			r.Set(records.MeasurementName(g+1, i+1), records.Float(float64(v)))
		}
	}
	if block.Incomplete {
		r.Note(fmt.Sprintf("incomplete measurement block: %d of %d groups decoded, %d trailing bytes",
			block.Complete, groups, block.Trailing))
	}
	return r, nil
}
