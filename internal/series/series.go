// Package series turns decoded uplinks into named numeric time series for
// plotting.
package series

import (
	"time"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

// Series names that do not match a single record field.
const (
	AnalogValue = "Analog Value"
	PulseCount  = "Pulse Count"
)

// Point is one sample.
type Point struct {
	Time  time.Time `json:"x" yaml:"x"`
	Value float64   `json:"y" yaml:"y"`
}

// Series is a named sequence of samples in arrival order.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Label  string  `json:"label" yaml:"label"`
	Points []Point `json:"points" yaml:"points"`
}

type source struct {
	name  string
	label string
	// fields are tried in order; the first numeric one wins.
	fields []string
	// gps points are kept only when latitude and longitude are both set.
	gps bool
}

var commonSources = []source{
	{name: records.FrameCount, label: "Frame Count", fields: []string{records.FrameCount}},
	{name: records.Battery, label: "Battery Voltage (V)", fields: []string{records.Battery}},
	{name: records.Temperature, label: "Temperature (°C)", fields: []string{records.Temperature}},
}

var productSources = map[driver.Product][]source{
	driver.WaterRat: {
		{name: records.TiltAngle, label: "Tilt Angle (°)", fields: []string{records.TiltAngle}},
		{name: records.GPSLatitude, label: "GPS Latitude (°)", fields: []string{records.GPSLatitude}, gps: true},
		{name: records.GPSLongitude, label: "GPS Longitude (°)", fields: []string{records.GPSLongitude}, gps: true},
	},
	driver.Analog: {
		{name: AnalogValue, label: "Analog Value (mV)", fields: []string{records.FenceVoltage, records.WaterLevel, records.RainGaugeValue}},
		{name: PulseCount, label: "Pulse Count", fields: []string{records.PulseCount, records.RainCount}},
	},
	driver.PeopleCounter: {
		{name: records.Counter1, label: "Counter 1", fields: []string{records.Counter1}},
		{name: records.Counter2, label: "Counter 2", fields: []string{records.Counter2}},
	},
}

// Collector accumulates the series plotted for one product.
type Collector struct {
	sources []source
	series  []Series
	samples int
}

// NewCollector prepares the series for a product: Frame Count, Battery and
// Temperature for every product, plus the product's own readings.
func NewCollector(p driver.Product) *Collector {
	srcs := append(append([]source(nil), commonSources...), productSources[p]...)
	c := &Collector{sources: srcs, series: make([]Series, len(srcs))}
	for i, src := range srcs {
		c.series[i] = Series{Name: src.name, Label: src.label, Points: []Point{}}
	}
	return c
}

// Add records the plotted fields of one decoded uplink.
func (c *Collector) Add(ts time.Time, rec *records.Record) {
	c.samples++
	gpsOK := hasFix(rec)
	for i, src := range c.sources {
		if src.gps && !gpsOK {
			continue
		}
		if v, ok := firstNumeric(rec, src.fields); ok {
			c.series[i].Points = append(c.series[i].Points, Point{Time: ts, Value: v})
		}
	}
}

// Samples returns the number of uplinks added.
func (c *Collector) Samples() int { return c.samples }

// Series returns the collected series in display order.
func (c *Collector) Series() []Series {
	out := make([]Series, len(c.series))
	copy(out, c.series)
	return out
}

// Lookup returns the series with the given name.
func (c *Collector) Lookup(name string) (Series, bool) {
	for _, s := range c.series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

func hasFix(rec *records.Record) bool {
	lat, okLat := firstNumeric(rec, []string{records.GPSLatitude})
	lon, okLon := firstNumeric(rec, []string{records.GPSLongitude})
	return okLat && okLon && lat != 0 && lon != 0
}

func firstNumeric(rec *records.Record, fields []string) (float64, bool) {
	for _, name := range fields {
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		if f, ok := v.Float64(); ok {
			return f, true
		}
	}
	return 0, false
}
