package interfaces

import "github.com/AcroManiac/bmc-sensor-monitor/internal/domain/entities"

// PropertyGetter performs a single synchronous "retrieve all properties"
// call on a sensor object and returns its property bag as delivered
type PropertyGetter interface {
	GetAllProperties(desc entities.SensorDesc) ([]entities.PropertyEntry, error)
}
