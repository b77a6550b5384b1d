package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	_ "github.com/influxdata/influxdb1-client" // this is important because of the bug in go mod
	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/interfaces"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/logger"
)

// StoreReadingInfluxTask structure
type StoreReadingInfluxTask struct {
	connURL  string
	username string
	password string
	database string
}

// NewStoreReadingInfluxTask constructs StoreReadingInfluxTask
// and returns task interface
func NewStoreReadingInfluxTask() interfaces.Task {
	return &StoreReadingInfluxTask{
		connURL: fmt.Sprintf("http://%s:%d",
			viper.GetString("db.sensor.host"),
			viper.GetInt("db.sensor.port")),
		username: viper.GetString("db.sensor.username"),
		password: viper.GetString("db.sensor.password"),
		database: viper.GetString("db.sensor.database"),
	}
}

// Run sends the decoded reading via HTTP to InfluxDB database
func (t *StoreReadingInfluxTask) Run(event *entities.ReadingEvent) {
	if event.Reading == nil {
		logger.Error("no reading in event", "caller", "StoreReadingInfluxTask")
		return
	}

	// Create InfluxDB client
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     t.connURL,
		Username: t.username,
		Password: t.password,
	})
	if err != nil {
		logger.Error("error creating InfluxDB client", "error", err,
			"caller", "StoreReadingInfluxTask")
		return
	}
	defer c.Close()

	// Create a new point batch
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  t.database,
		Precision: "ms",
	})
	if err != nil {
		logger.Error("error creating batch point", "error", err,
			"caller", "StoreReadingInfluxTask")
		return
	}

	// Create a point and add it to a batch
	desc := entities.SensorDesc{Service: event.Service, Object: event.Object}
	name := "sensor_" + strings.ReplaceAll(desc.Name(), "-", "_")
	tags := map[string]string{
		"service": event.Service,
		"object":  event.Object,
	}
	if len(event.SensorType) != 0 {
		tags["type"] = event.SensorType
	}
	reading := event.Reading
	fields := map[string]interface{}{
		"lower_critical": reading.LowerCritical,
		"upper_critical": reading.UpperCritical,
		"lower_warning":  reading.LowerWarning,
		"upper_warning":  reading.UpperWarning,
	}
	switch reading.Kind {
	case entities.IntegerKind:
		fields["value_int"] = reading.IntegerValue
	default:
		fields["value_float"] = reading.FloatValue
	}
	pt, err := client.NewPoint(name, tags, fields, time.Now())
	if err != nil {
		logger.Error("error creating new point", "error", err,
			"caller", "StoreReadingInfluxTask")
		return
	}
	logger.Debug("New point value", "value", pt,
		"caller", "StoreReadingInfluxTask")
	bp.AddPoint(pt)

	// Write the batch
	err = c.Write(bp)
	if err != nil {
		logger.Error("error writing point to InfluxDB", "error", err,
			"caller", "StoreReadingInfluxTask")
	}
}
