package tasks

import (
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/interfaces"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/broker"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/logger"
)

type PublishReadingTask struct {
	pub *broker.Publisher
}

func NewPublishReadingTask(pub *broker.Publisher) interfaces.Task {
	if pub == nil {
		logger.Error("broker publisher is nil", "caller", "PublishReadingTask")
	}
	return &PublishReadingTask{pub: pub}
}

// Run sends the reading event to the broker
func (t *PublishReadingTask) Run(event *entities.ReadingEvent) {
	if err := t.pub.PublishReading(event); err != nil {
		logger.Error("error publishing reading event", "error", err,
			"object", event.Object, "caller", "PublishReadingTask")
	}
}
