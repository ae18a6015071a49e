package records

var unitSuffix = map[string]string{
	Battery:        " V",
	Temperature:    " °C",
	TiltAngle:      "°",
	GPSLatitude:    "°",
	GPSLongitude:   "°",
	FenceVoltage:   " V",
	WaterLevel:     " mV",
	RainGaugeValue: " mV",
	RainCount:      " mm",
}

// Display renders the value with the unit the field is reported in.
// RSRP and RSRQ are transmitted as magnitudes of negative dBm readings.
func (f Field) Display() string {
	if f.Value.IsNotUsed() || !f.Value.IsNumeric() {
		return f.Value.String()
	}
	switch f.Name {
	case RSRP, RSRQ:
		return "-" + f.Value.String() + " dBm"
	}
	return f.Value.String() + unitSuffix[f.Name]
}
