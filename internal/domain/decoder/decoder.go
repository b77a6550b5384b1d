// Package decoder turns the dynamically typed property bag returned by a
// sensor object's GetAll call into a SensorReading. Properties outside the
// sensor contract are consumed and discarded; a malformed Value or
// threshold property aborts the whole decode.
package decoder

import (
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

type role int

const (
	roleIgnore role = iota
	roleValue
	roleLowerCritical
	roleUpperCritical
	roleLowerWarning
	roleUpperWarning
)

// dispatch maps property names to their role. The property set is
// protocol-defined and closed; names not listed here are skipped.
var dispatch = map[string]role{
	"Value":             roleValue,
	"CriticalAlarmLow":  roleLowerCritical,
	"CriticalAlarmHigh": roleUpperCritical,
	"WarningAlarmLow":   roleLowerWarning,
	"WarningAlarmHigh":  roleUpperWarning,
}

// Decode folds a property bag into a SensorReading. Entry order does not
// matter. Decoding fails with ErrMissingValue when no Value property is
// present, with UnsupportedValueTypeError when the value is neither
// integer nor double typed, with MalformedThresholdFlagError when an alarm
// property is not boolean, and with a wrapped decode error when a
// variant's payload contradicts its own signature. No partial reading is
// ever returned.
func Decode(entries []entities.PropertyEntry) (*entities.SensorReading, error) {
	reading := &entities.SensorReading{}
	valueSet := false

	for _, entry := range entries {
		switch r := dispatch[entry.Name]; r {
		case roleValue:
			if err := decodeValue(entry.Value, reading); err != nil {
				return nil, err
			}
			valueSet = true

		case roleLowerCritical, roleUpperCritical, roleLowerWarning, roleUpperWarning:
			set, err := decodeThreshold(entry)
			if err != nil {
				return nil, err
			}
			*thresholdFlag(reading, r) = set

		case roleIgnore:
			// unrecognized property, skip
		}
	}

	if !valueSet {
		return nil, ErrMissingValue
	}
	return reading, nil
}

// decodeValue inspects the variant's declared type tag before touching
// its payload and stores the reading in the matching representation
func decodeValue(v dbus.Variant, reading *entities.SensorReading) error {
	switch tag := v.Signature().String(); tag {
	case "x":
		x, ok := v.Value().(int64)
		if !ok {
			return errors.Errorf("value variant declares 'x' but holds %T", v.Value())
		}
		reading.Kind = entities.IntegerKind
		reading.IntegerValue = x

	case "d":
		d, ok := v.Value().(float64)
		if !ok {
			return errors.Errorf("value variant declares 'd' but holds %T", v.Value())
		}
		reading.Kind = entities.FloatKind
		reading.FloatValue = d

	default:
		return &UnsupportedValueTypeError{Tag: tag}
	}
	return nil
}

func decodeThreshold(entry entities.PropertyEntry) (bool, error) {
	if entry.Value.Signature().String() != "b" {
		return false, &MalformedThresholdFlagError{Name: entry.Name}
	}
	set, ok := entry.Value.Value().(bool)
	if !ok {
		return false, errors.Errorf("threshold variant declares 'b' but holds %T", entry.Value.Value())
	}
	return set, nil
}

func thresholdFlag(r *entities.SensorReading, ro role) *bool {
	switch ro {
	case roleLowerCritical:
		return &r.LowerCritical
	case roleUpperCritical:
		return &r.UpperCritical
	case roleLowerWarning:
		return &r.LowerWarning
	default:
		return &r.UpperWarning
	}
}
