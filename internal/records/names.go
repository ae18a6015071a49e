package records

import "fmt"

// Field names are part of the output contract: hosts look values up by them.
const (
	DeviceIMEI     = "Device IMEI"
	FrameCount     = "Frame Count"
	FWIdentifier   = "FW Identifier"
	PayloadVersion = "Payload Version"
	AlarmFlags     = "Alarm Flags"
	Battery        = "Battery"
	Temperature    = "Temperature"
	RSRP           = "RSRP"
	RSRQ           = "RSRQ"

	GPSSatellites = "GPS Satellites"
	GPSState      = "GPS State"
	TiltAngle     = "Tilt Angle"
	GPSLatitude   = "GPS Latitude"
	GPSLongitude  = "GPS Longitude"

	DigitalPinEvent = "Digital Pin Event"
	GPSLat          = "GPS Lat"
	GPSLon          = "GPS Lon"
	FenceVoltage    = "Fence Voltage"
	WaterLevel      = "Water Level"
	RainGaugeValue  = "Rain Gauge Value"
	PulseCount      = "Pulse Count"
	RainCount       = "Rain Count"

	NumberOfMeasurements = "Number of Measurements"

	Counter1 = "Counter 1"
	Counter2 = "Counter 2"
)

// MeasurementName labels data point i of SDI-12 measurement group g, both
// counted from one.
func MeasurementName(group, point int) string {
	return fmt.Sprintf("Measurement %d Data %d", group, point)
}
