package interfaces

import "github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"

type Task interface {
	Run(event *entities.ReadingEvent)
}
