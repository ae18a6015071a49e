package analog

import (
	"context"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/alarm"
	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/options"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

const (
	MinLength = 35

	offsetAlarm       = 15
	offsetBattery     = 17
	offsetTemperature = 19
	offsetRSRP        = 29
	offsetRSRQ        = 30
	offsetAnalog      = 31
	offsetPulse       = 33
)

// Labels names the analog and pulse slots for one device subtype and says
// which of them carries a reading.
type Labels struct {
	Analog    string
	Pulse     string
	UseAnalog bool
	UsePulse  bool
}

// LabelsFor returns the slot labels of a subtype. Unknown subtypes fall back
// to the water level monitor layout.
func LabelsFor(s options.Subtype) Labels {
	switch s {
	case options.SubtypeEFS:
		return Labels{Analog: records.FenceVoltage, Pulse: records.PulseCount, UseAnalog: true}
	case options.SubtypeRG:
		return Labels{Analog: records.RainGaugeValue, Pulse: records.RainCount, UsePulse: true}
	default:
		return Labels{Analog: records.WaterLevel, Pulse: records.PulseCount, UseAnalog: true}
	}
}

// Driver decodes the analog/pulse sensor family (EFS, WLM, RG).
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "analog" }

// Process builds the Analog field record. The subtype is read from ctx.
func (Driver) Process(ctx context.Context, f *frame.Frame) (*records.Record, error) {
	b := f.Raw
	labels := LabelsFor(options.AnalogSubtype(ctx))
	analogValue := codec.U16At(b, offsetAnalog)
	pulseCount := codec.U16At(b, offsetPulse)

	r := records.New()
	r.Set(records.DeviceIMEI, records.Text(f.Header.DeviceID))
	r.Set(records.FrameCount, records.Uint(uint64(f.Header.FrameCount)))
	r.Set(records.FWIdentifier, records.Text(f.Header.FirmwareID))
	r.Set(records.PayloadVersion, records.Uint(uint64(f.Header.PayloadVersion)))
	r.Set(records.AlarmFlags, records.Text(alarm.Decode(b[offsetAlarm], false).String()))
	r.Set(records.DigitalPinEvent, records.NotUsed())
	r.Set(records.Battery, records.Float(codec.Scale(codec.U16At(b, offsetBattery), codec.BatteryDivisor)))
	r.Set(records.Temperature, records.Float(codec.Scale(codec.U16At(b, offsetTemperature), codec.TemperatureDivisor)))
	r.Set(records.GPSLat, records.NotUsed())
	r.Set(records.GPSLon, records.NotUsed())
	r.Set(records.RSRP, records.Uint(uint64(b[offsetRSRP])))
	r.Set(records.RSRQ, records.Uint(uint64(b[offsetRSRQ])))
	r.Set(labels.Analog, slot(labels.UseAnalog, analogValue))
	r.Set(labels.Pulse, slot(labels.UsePulse, pulseCount))
	return r, nil
}

func slot(used bool, v uint16) records.Value {
	if !used {
		return records.NotUsed()
	}
	return records.Uint(uint64(v))
}
