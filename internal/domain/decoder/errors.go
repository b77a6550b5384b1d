package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingValue is returned when a property bag carries no Value entry.
// A reading without a value is meaningless and must never reach the caller.
var ErrMissingValue = errors.New("property bag has no Value entry")

// UnsupportedValueTypeError reports a Value property whose wire type is
// neither a 64-bit signed integer nor a double
type UnsupportedValueTypeError struct {
	Tag string
}

func (e *UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("unsupported sensor value type %q, expected 'd' or 'x'", e.Tag)
}

// MalformedThresholdFlagError reports a threshold property that was not
// boolean-typed, which means the remote object violates the sensor
// interface contract
type MalformedThresholdFlagError struct {
	Name string
}

func (e *MalformedThresholdFlagError) Error() string {
	return fmt.Sprintf("threshold property %s is not boolean-typed", e.Name)
}
