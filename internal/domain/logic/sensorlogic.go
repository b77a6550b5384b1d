package logic

import (
	"github.com/pkg/errors"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/decoder"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/interfaces"
)

// SensorLogic queries sensor objects over the bus and fans decoded
// readings out to storage and publishing tasks. Queries run strictly
// sequentially; no state is shared between them beyond the per-object
// alarm history used for transition detection.
type SensorLogic struct {
	bus      interfaces.PropertyGetter
	store    []interfaces.Task
	alarm    interfaces.Task
	previous map[string]*entities.SensorReading
}

func NewSensorLogic(bus interfaces.PropertyGetter, store []interfaces.Task, alarm interfaces.Task) *SensorLogic {
	return &SensorLogic{
		bus:      bus,
		store:    store,
		alarm:    alarm,
		previous: make(map[string]*entities.SensorReading),
	}
}

// QuerySensor performs one GetAll call on the sensor object and decodes
// the reply into a reading
func (l *SensorLogic) QuerySensor(desc entities.SensorDesc) (*entities.SensorReading, error) {
	entries, err := l.bus.GetAllProperties(desc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read properties of %s", desc.Object)
	}
	return decoder.Decode(entries)
}

// Process queries one sensor and hands the decoded reading to every
// storage task. The alarm task additionally runs when the threshold
// flags differ from the previous observation of the same object, or on
// first observation with any flag raised.
func (l *SensorLogic) Process(desc entities.SensorDesc) error {
	reading, err := l.QuerySensor(desc)
	if err != nil {
		return err
	}

	event := entities.NewReadingEvent(desc, reading)
	for _, t := range l.store {
		t.Run(event)
	}

	if l.alarm != nil && l.alarmTransition(desc.Object, reading) {
		l.alarm.Run(event)
	}
	l.previous[desc.Object] = reading

	return nil
}

func (l *SensorLogic) alarmTransition(object string, reading *entities.SensorReading) bool {
	prev, seen := l.previous[object]
	if !seen {
		return reading.AnyThreshold()
	}
	return !reading.ThresholdsEqual(prev)
}
