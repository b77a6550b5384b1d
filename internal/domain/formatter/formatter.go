// Package formatter renders decoded sensor readings as the two compact
// strings downstream consumers expect.
package formatter

import (
	"strconv"
	"strings"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

// valueCapacity bounds the rendered value string. Consumers keep readings
// in fixed 12-byte buffers (11 characters plus terminator); overly long
// values are truncated rather than rejected.
const valueCapacity = 11

// Value renders the numeric reading. Float readings keep six fractional
// digits, integer readings render as plain base-10.
func Value(r *entities.SensorReading) string {
	var s string
	switch r.Kind {
	case entities.IntegerKind:
		s = strconv.FormatInt(r.IntegerValue, 10)
	default:
		s = strconv.FormatFloat(r.FloatValue, 'f', 6, 64)
	}
	if len(s) > valueCapacity {
		s = s[:valueCapacity]
	}
	return s
}

// thresholdLabels lists the alarm short codes in their fixed output
// order. Consumers pattern-match on this ordering.
var thresholdLabels = []struct {
	flag  func(*entities.SensorReading) bool
	label string
}{
	{func(r *entities.SensorReading) bool { return r.LowerCritical }, "lc"},
	{func(r *entities.SensorReading) bool { return r.UpperCritical }, "uc"},
	{func(r *entities.SensorReading) bool { return r.LowerWarning }, "lw"},
	{func(r *entities.SensorReading) bool { return r.UpperWarning }, "uw"},
}

// Thresholds renders the short codes of every raised alarm, comma
// separated, or "ok" when none are raised.
func Thresholds(r *entities.SensorReading) string {
	var codes []string
	for _, l := range thresholdLabels {
		if l.flag(r) {
			codes = append(codes, l.label)
		}
	}
	if len(codes) == 0 {
		return "ok"
	}
	return strings.Join(codes, ",")
}
