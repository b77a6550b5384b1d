package decoder

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

func entry(name string, value interface{}) entities.PropertyEntry {
	return entities.PropertyEntry{Name: name, Value: dbus.MakeVariant(value)}
}

func TestDecodeFloatValue(t *testing.T) {
	reading, err := Decode([]entities.PropertyEntry{
		entry("Value", 36.5),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.FloatKind, reading.Kind)
	assert.Equal(t, 36.5, reading.FloatValue)
	assert.False(t, reading.AnyThreshold())
}

func TestDecodeIntegerValue(t *testing.T) {
	reading, err := Decode([]entities.PropertyEntry{
		entry("Value", int64(42)),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.IntegerKind, reading.Kind)
	assert.Equal(t, int64(42), reading.IntegerValue)
}

func TestDecodeThresholdFlags(t *testing.T) {
	cases := []struct {
		name  string
		flags map[string]bool
		want  entities.SensorReading
	}{
		{
			name:  "none raised",
			flags: map[string]bool{"CriticalAlarmLow": false, "WarningAlarmHigh": false},
			want:  entities.SensorReading{},
		},
		{
			name:  "lower critical only",
			flags: map[string]bool{"CriticalAlarmLow": true},
			want:  entities.SensorReading{LowerCritical: true},
		},
		{
			name: "all four raised",
			flags: map[string]bool{
				"CriticalAlarmLow": true, "CriticalAlarmHigh": true,
				"WarningAlarmLow": true, "WarningAlarmHigh": true,
			},
			want: entities.SensorReading{
				LowerCritical: true, UpperCritical: true,
				LowerWarning: true, UpperWarning: true,
			},
		},
		{
			name:  "mixed subset",
			flags: map[string]bool{"CriticalAlarmHigh": true, "WarningAlarmLow": true, "CriticalAlarmLow": false},
			want:  entities.SensorReading{UpperCritical: true, LowerWarning: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// flags precede the value in whatever order the map yields,
			// entry order must not matter
			entries := make([]entities.PropertyEntry, 0, len(tc.flags)+1)
			for name, set := range tc.flags {
				entries = append(entries, entry(name, set))
			}
			entries = append(entries, entry("Value", 1.0))

			reading, err := Decode(entries)
			require.NoError(t, err)

			tc.want.Kind = entities.FloatKind
			tc.want.FloatValue = 1.0
			assert.Equal(t, &tc.want, reading)
		})
	}
}

func TestDecodeMissingValue(t *testing.T) {
	cases := []struct {
		name    string
		entries []entities.PropertyEntry
	}{
		{name: "empty bag", entries: nil},
		{
			name: "flags but no value",
			entries: []entities.PropertyEntry{
				entry("CriticalAlarmLow", true),
				entry("WarningAlarmHigh", false),
			},
		},
		{
			name: "only unrecognized properties",
			entries: []entities.PropertyEntry{
				entry("Unit", "C"),
				entry("Scale", int64(-3)),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reading, err := Decode(tc.entries)
			assert.Nil(t, reading)
			assert.Equal(t, ErrMissingValue, err)
		})
	}
}

func TestDecodeUnsupportedValueType(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		tag   string
	}{
		{name: "string value", value: "36.5", tag: "s"},
		{name: "unsigned value", value: uint32(42), tag: "u"},
		{name: "boolean value", value: true, tag: "b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reading, err := Decode([]entities.PropertyEntry{
				entry("Value", tc.value),
			})
			assert.Nil(t, reading)

			var unsupported *UnsupportedValueTypeError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tc.tag, unsupported.Tag)
		})
	}
}

func TestDecodeMalformedThresholdFlag(t *testing.T) {
	reading, err := Decode([]entities.PropertyEntry{
		entry("Value", 36.5),
		entry("CriticalAlarmLow", 1.0),
	})
	assert.Nil(t, reading)

	var malformed *MalformedThresholdFlagError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "CriticalAlarmLow", malformed.Name)
}

func TestDecodeSkipsUnrecognizedProperties(t *testing.T) {
	reading, err := Decode([]entities.PropertyEntry{
		entry("Unit", "C"),
		entry("Value", 36.5),
		entry("Scale", int64(-3)),
		entry("MaxValue", 127.0),
		entry("Functional", true),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.FloatKind, reading.Kind)
	assert.Equal(t, 36.5, reading.FloatValue)
	assert.False(t, reading.AnyThreshold())
}

func TestDecodeFullReply(t *testing.T) {
	reading, err := Decode([]entities.PropertyEntry{
		entry("CriticalAlarmHigh", false),
		entry("Value", 72.25),
		entry("WarningAlarmLow", true),
		entry("Unit", "C"),
	})
	require.NoError(t, err)
	assert.Equal(t, &entities.SensorReading{
		Kind:         entities.FloatKind,
		FloatValue:   72.25,
		LowerWarning: true,
	}, reading)
}
