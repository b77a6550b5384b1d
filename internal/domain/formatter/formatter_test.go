package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

func TestValue(t *testing.T) {
	cases := []struct {
		name    string
		reading entities.SensorReading
		want    string
	}{
		{
			name:    "integer reading",
			reading: entities.SensorReading{Kind: entities.IntegerKind, IntegerValue: 42},
			want:    "42",
		},
		{
			name:    "negative integer reading",
			reading: entities.SensorReading{Kind: entities.IntegerKind, IntegerValue: -17},
			want:    "-17",
		},
		{
			name:    "float reading keeps six fractional digits",
			reading: entities.SensorReading{Kind: entities.FloatKind, FloatValue: 36.5},
			want:    "36.500000",
		},
		{
			name:    "float reading",
			reading: entities.SensorReading{Kind: entities.FloatKind, FloatValue: 72.25},
			want:    "72.250000",
		},
		{
			name:    "oversized float truncates to buffer capacity",
			reading: entities.SensorReading{Kind: entities.FloatKind, FloatValue: 123456789.5},
			want:    "123456789.5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Value(&tc.reading)
			assert.Equal(t, tc.want, got)
			assert.True(t, len(got) <= 11)
		})
	}
}

func TestThresholds(t *testing.T) {
	cases := []struct {
		name    string
		reading entities.SensorReading
		want    string
	}{
		{
			name:    "no alarms",
			reading: entities.SensorReading{},
			want:    "ok",
		},
		{
			name:    "single alarm",
			reading: entities.SensorReading{UpperWarning: true},
			want:    "uw",
		},
		{
			name:    "fixed priority order",
			reading: entities.SensorReading{LowerCritical: true, UpperWarning: true},
			want:    "lc,uw",
		},
		{
			name: "all alarms raised",
			reading: entities.SensorReading{
				LowerCritical: true, UpperCritical: true,
				LowerWarning: true, UpperWarning: true,
			},
			want: "lc,uc,lw,uw",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Thresholds(&tc.reading))
		})
	}
}
