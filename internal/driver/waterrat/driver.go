package waterrat

import (
	"context"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/alarm"
	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

const (
	// MinLength covers the header plus the GPS and radio fields up to RSRQ.
	MinLength = 31

	offsetGPS         = 13
	offsetAlarm       = 15
	offsetTilt        = 16
	offsetBattery     = 17
	offsetTemperature = 19
	offsetLatitude    = 21
	offsetLongitude   = 25
	offsetRSRP        = 29
	offsetRSRQ        = 30
)

// Driver decodes WaterRat water-level/tilt uplinks.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "waterrat" }

// Process builds the WaterRat field record.
func (Driver) Process(_ context.Context, f *frame.Frame) (*records.Record, error) {
	b := f.Raw
	gps := b[offsetGPS]

	r := records.New()
	r.Set(records.DeviceIMEI, records.Text(f.Header.DeviceID))
	r.Set(records.FrameCount, records.Uint(uint64(f.Header.FrameCount)))
	r.Set(records.FWIdentifier, records.Text(f.Header.FirmwareID))
	r.Set(records.GPSSatellites, records.Uint(uint64(gps>>4)))
	r.Set(records.GPSState, records.Uint(uint64(gps&0x0F)))
	r.Set(records.PayloadVersion, records.Uint(uint64(f.Header.PayloadVersion)))
	r.Set(records.AlarmFlags, records.Text(alarm.Decode(b[offsetAlarm], true).String()))
	r.Set(records.TiltAngle, records.Float(codec.Scale(b[offsetTilt], codec.TiltDivisor)))
	r.Set(records.Battery, records.Float(codec.Scale(codec.U16At(b, offsetBattery), codec.BatteryDivisor)))
	r.Set(records.Temperature, records.Float(codec.Scale(codec.U16At(b, offsetTemperature), codec.TemperatureDivisor)))
	r.Set(records.GPSLatitude, records.Float(codec.Scale(codec.I32At(b, offsetLatitude), codec.GPSDivisor)))
	r.Set(records.GPSLongitude, records.Float(codec.Scale(codec.I32At(b, offsetLongitude), codec.GPSDivisor)))
	r.Set(records.RSRP, records.Uint(uint64(b[offsetRSRP])))
	r.Set(records.RSRQ, records.Uint(uint64(b[offsetRSRQ])))
	return r, nil
}
