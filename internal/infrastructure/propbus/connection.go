// Package propbus adapts a D-Bus connection to the property queries the
// sensor logic needs. It performs exactly one call shape: GetAll on the
// properties interface of a sensor object.
package propbus

import (
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"
)

const propertiesInterface = "org.freedesktop.DBus.Properties"

// Connection wraps a message bus connection used for sensor queries
type Connection struct {
	busName string
	conn    *dbus.Conn
}

// NewConnection creates a connection holder for the named bus,
// "system" or "session"
func NewConnection(busName string) *Connection {
	return &Connection{busName: busName}
}

// Open connects to the configured message bus
func (c *Connection) Open() error {
	var (
		conn *dbus.Conn
		err  error
	)
	switch c.busName {
	case "session":
		conn, err = dbus.SessionBus()
	default:
		conn, err = dbus.SystemBus()
	}
	if err != nil {
		return errors.Wrap(err, "failed to connect to message bus")
	}
	c.conn = conn
	return nil
}

// GetAllProperties performs a single synchronous GetAll call on the
// sensor object, with an empty interface filter so threshold states and
// value arrive in one reply. The call blocks until the remote object
// answers; there is no timeout and no retry.
func (c *Connection) GetAllProperties(desc entities.SensorDesc) ([]entities.PropertyEntry, error) {
	if c.conn == nil {
		return nil, errors.New("no bus connection open")
	}

	var props map[string]dbus.Variant
	obj := c.conn.Object(desc.Service, dbus.ObjectPath(desc.Object))
	if err := obj.Call(propertiesInterface+".GetAll", 0, "").Store(&props); err != nil {
		return nil, errors.Wrapf(err, "GetAll call failed for %s", desc.Object)
	}

	entries := make([]entities.PropertyEntry, 0, len(props))
	for name, value := range props {
		entries = append(entries, entities.PropertyEntry{Name: name, Value: value})
	}
	return entries, nil
}

// Close releases the bus connection
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return errors.Wrap(err, "failed closing bus connection")
	}
	return nil
}
