package entities

import "strings"

// SensorRoot is the bus path namespace hwmon sensor objects live under
const SensorRoot = "/xyz/openbmc_project/sensors/"

// SensorDesc identifies one sensor object on the message bus
type SensorDesc struct {
	Service string `mapstructure:"service" json:"service"`
	Object  string `mapstructure:"object" json:"object"`
}

// Name returns the last component of the sensor object path
func (d SensorDesc) Name() string {
	if i := strings.LastIndex(d.Object, "/"); i >= 0 {
		return d.Object[i+1:]
	}
	return d.Object
}

// Type returns the sensor type path component under the sensor namespace,
// or an empty string for objects outside it. The type is only meaningful
// when another path component follows it.
func (d SensorDesc) Type() string {
	if !strings.HasPrefix(d.Object, SensorRoot) {
		return ""
	}
	rest := d.Object[len(SensorRoot):]
	if i := strings.Index(rest, "/"); i > 0 {
		return rest[:i]
	}
	return ""
}

// MatchesType reports whether the sensor belongs to the given type.
// An empty type matches every sensor.
func (d SensorDesc) MatchesType(sensorType string) bool {
	if len(sensorType) == 0 {
		return true
	}
	return d.Type() == sensorType
}

// DefaultSensors returns the built-in sensor table, used when the
// configuration file supplies none. Expand as necessary
func DefaultSensors() []SensorDesc {
	return []SensorDesc{
		{
			Service: "xyz.openbmc_project.HwmonTempSensor",
			Object:  "/xyz/openbmc_project/sensors/temperature/Temp",
		},
	}
}
