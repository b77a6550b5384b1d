package tasks

import (
	"context"
	"time"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/formatter"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/interfaces"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/database"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/logger"
)

type StoreAlarmEventMySqlTask struct {
	conn *database.Connection
}

func NewStoreAlarmEventMySqlTask(conn *database.Connection) interfaces.Task {
	if conn == nil {
		logger.Error("database connection is nil", "caller", "StoreAlarmEventMySqlTask")
	}
	return &StoreAlarmEventMySqlTask{conn: conn}
}

// Run records a threshold alarm transition in the history table
func (t *StoreAlarmEventMySqlTask) Run(event *entities.ReadingEvent) {
	go func() {
		if event.Reading == nil {
			logger.Error("no reading in event", "caller", "StoreAlarmEventMySqlTask")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		insertQueryText :=
			`insert into sensor_alarm_events
				(event_id, service, object, value, thresholds, created_at)
			values (?, ?, ?, ?, ?, now())`
		_, err := t.conn.Db.ExecContext(ctx, insertQueryText,
			event.EventId, event.Service, event.Object,
			formatter.Value(event.Reading), formatter.Thresholds(event.Reading))
		if err != nil {
			logger.Error("error inserting alarm event", "error", err,
				"caller", "StoreAlarmEventMySqlTask")
		}
	}()
}
