package broker

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

const exchangeName = "sensors.readings"

// Publisher sends reading events to a RabbitMQ topic exchange.
// The collector only ever produces events, so there is no consumer side.
type Publisher struct {
	Protocol string
	User     string
	Password string
	Host     string
	Port     int
	Conn     *amqp.Connection
	Ch       *amqp.Channel
}

func NewPublisher(protocol, user, password, host string, port int) *Publisher {
	return &Publisher{
		Protocol: protocol,
		User:     user,
		Password: password,
		Host:     host,
		Port:     port,
	}
}

// Open connection, channel and exchange on the broker
func (p *Publisher) Open() error {
	var err error
	connUrl := fmt.Sprintf("%s://%s:%s@%s:%d/", p.Protocol, p.User, p.Password, p.Host, p.Port)

	p.Conn, err = amqp.Dial(connUrl)
	if err != nil {
		return errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	p.Ch, err = p.Conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open a channel")
	}

	err = p.Ch.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return errors.Wrap(err, "failed to declare an exchange")
	}

	return nil
}

// PublishReading marshals the reading event to JSON and sends it with a
// routing key carrying the sensor type
func (p *Publisher) PublishReading(event *entities.ReadingEvent) error {
	if p.Ch == nil {
		return errors.New("no broker channel open")
	}

	buffer, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "error marshalling reading event to JSON")
	}

	sensorType := event.SensorType
	if len(sensorType) == 0 {
		sensorType = "unknown"
	}
	routingKey := fmt.Sprintf("sensors.%s.reading", sensorType)

	err = p.Ch.Publish(
		exchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: event.EventId,
			Body:          buffer,
		})
	if err != nil {
		return errors.Wrap(err, "failed to publish a message")
	}

	return nil
}

// Close releases broker channel and connection
func (p *Publisher) Close() error {
	if p.Ch != nil {
		if err := p.Ch.Close(); err != nil {
			return errors.Wrap(err, "failed closing broker channel")
		}
	}
	if p.Conn != nil {
		if err := p.Conn.Close(); err != nil {
			return errors.Wrap(err, "failed closing broker connection")
		}
	}
	return nil
}
