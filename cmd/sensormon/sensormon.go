package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/formatter"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/interfaces"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/logic"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/logic/tasks"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/application"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/broker"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/database"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/logger"
	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/propbus"
)

func init() {
	// using standard library "flag" package
	flag.String("type", "", "only query sensors of this type (e.g. temperature)")
	flag.Bool("monitor", false, "collect readings periodically instead of a one-shot query")

	application.Init("../../configs/sensormon.dev.yaml")
}

func main() {
	// Assemble sensor table, preferring the configuration file over the
	// built-in list
	sensors := entities.DefaultSensors()
	var configured []entities.SensorDesc
	if err := viper.UnmarshalKey("sensors", &configured); err != nil {
		logger.Fatal("error reading sensor table from config", "error", err)
	}
	if len(configured) > 0 {
		sensors = configured
	}

	sensorType := viper.GetString("type")

	// Open message bus connection
	bus := propbus.NewConnection(viper.GetString("dbus.bus"))
	if err := bus.Open(); err != nil {
		logger.Fatal("can't connect to message bus", "error", err)
	}

	var failed bool
	if viper.GetBool("monitor") {
		runMonitor(bus, sensors, sensorType)
	} else {
		failed = !runQuery(bus, sensors, sensorType)
	}

	if err := bus.Close(); err != nil {
		logger.Error("error while closing bus connection", "error", err)
	}
	if failed {
		os.Exit(1)
	}
}

// runQuery performs one sequential pass over the sensor table and prints
// one line per sensor. Returns false if any queried object failed to
// decode; the remaining objects are still queried.
func runQuery(bus *propbus.Connection, sensors []entities.SensorDesc, sensorType string) bool {
	l := logic.NewSensorLogic(bus, nil, nil)
	ok := true
	for _, desc := range sensors {
		if !desc.MatchesType(sensorType) {
			continue
		}
		reading, err := l.QuerySensor(desc)
		if err != nil {
			logger.Error("failed to read sensor object",
				"object", desc.Object, "error", err)
			ok = false
			continue
		}
		fmt.Printf("%s: %s %s\n", desc.Object,
			formatter.Value(reading), formatter.Thresholds(reading))
	}
	return ok
}

// runMonitor queries the sensor table on a fixed interval and fans
// readings out to the configured backends until interrupted
func runMonitor(bus *propbus.Connection, sensors []entities.SensorDesc, sensorType string) {
	store := []interfaces.Task{tasks.NewStoreReadingInfluxTask()}

	// Alarm transition history is optional
	var alarm interfaces.Task
	if viper.IsSet("db.cloud.host") {
		conn := database.NewDatabaseConnection(
			viper.GetString("db.cloud.user"),
			viper.GetString("db.cloud.password"),
			viper.GetString("db.cloud.host"),
			viper.GetString("db.cloud.database"),
			viper.GetInt("db.cloud.port"))
		if err := conn.Init(); err != nil {
			logger.Fatal("error connecting to database", "error", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error("error while closing database connection", "error", err)
			}
		}()
		alarm = tasks.NewStoreAlarmEventMySqlTask(conn)
	}

	// Broker publishing is optional as well
	if viper.IsSet("amqp.host") {
		pub := broker.NewPublisher(
			viper.GetString("amqp.protocol"),
			viper.GetString("amqp.user"),
			viper.GetString("amqp.password"),
			viper.GetString("amqp.host"),
			viper.GetInt("amqp.port"))
		if err := pub.Open(); err != nil {
			logger.Fatal("could not open broker", "error", err)
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Error("error while closing broker connection", "error", err)
			}
		}()
		store = append(store, tasks.NewPublishReadingTask(pub))
	}

	l := logic.NewSensorLogic(bus, store, alarm)

	collect := func() {
		for _, desc := range sensors {
			if !desc.MatchesType(sensorType) {
				continue
			}
			if err := l.Process(desc); err != nil {
				logger.Error("failed to read sensor object",
					"object", desc.Object, "error", err)
			}
		}
	}

	interval := viper.GetDuration("monitor.interval")
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Set interrupt handler
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Sensor monitor started", "interval", interval.String())
	collect()
	for {
		select {
		case <-done:
			logger.Info("User interrupted program. Bye!")
			return
		case <-ticker.C:
			collect()
		}
	}
}
