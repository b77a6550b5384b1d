package entities

import (
	"strconv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// ValueKind tells which wire representation a sensor value arrived in.
// Sensor objects report their reading either as a double or as a 64-bit
// signed integer, and formatting differs between the two.
type ValueKind int

const (
	FloatKind ValueKind = iota
	IntegerKind
)

func (k ValueKind) String() string {
	if k == IntegerKind {
		return "integer"
	}
	return "float"
}

// SensorReading holds a decoded sensor value together with its threshold
// alarm states. Immutable once the decode has produced it.
type SensorReading struct {
	Kind          ValueKind `json:"kind"`
	FloatValue    float64   `json:"floatValue"`
	IntegerValue  int64     `json:"integerValue"`
	LowerCritical bool      `json:"lowerCritical,omitempty"`
	UpperCritical bool      `json:"upperCritical,omitempty"`
	LowerWarning  bool      `json:"lowerWarning,omitempty"`
	UpperWarning  bool      `json:"upperWarning,omitempty"`
}

// AnyThreshold reports whether any alarm flag is raised
func (r *SensorReading) AnyThreshold() bool {
	return r.LowerCritical || r.UpperCritical || r.LowerWarning || r.UpperWarning
}

// ThresholdsEqual reports whether both readings carry the same alarm flags
func (r *SensorReading) ThresholdsEqual(o *SensorReading) bool {
	return r.LowerCritical == o.LowerCritical &&
		r.UpperCritical == o.UpperCritical &&
		r.LowerWarning == o.LowerWarning &&
		r.UpperWarning == o.UpperWarning
}

// PropertyEntry is a single name/variant pair from a GetAll reply.
// Entries are transient and not retained past the decode step that
// consumes them.
type PropertyEntry struct {
	Name  string
	Value dbus.Variant
}

// ReadingEvent wraps a decoded reading for storage and publishing
type ReadingEvent struct {
	EventId    string         `json:"eventId"`
	Service    string         `json:"service"`
	Object     string         `json:"object"`
	SensorType string         `json:"sensorType,omitempty"`
	Reading    *SensorReading `json:"reading"`
	Timestamp  string         `json:"timestampMs"`
}

// CreateTimestampMs returns UNIX time in milliseconds
func CreateTimestampMs(t time.Time) string {
	return strconv.Itoa(int(t.UnixNano() / int64(time.Millisecond)))
}

// NewReadingEvent creates an event envelope for a freshly decoded reading
func NewReadingEvent(desc SensorDesc, reading *SensorReading) *ReadingEvent {
	return &ReadingEvent{
		EventId:    uuid.New().String(),
		Service:    desc.Service,
		Object:     desc.Object,
		SensorType: desc.Type(),
		Reading:    reading,
		Timestamp:  CreateTimestampMs(time.Now().Local()),
	}
}
