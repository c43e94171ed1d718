package smooth

import "errors"

// MaxAnalogChannelIndex is the largest 0-based analog column the analog
// pass accepts, mirroring the 8-bit channel numbering of the container.
const MaxAnalogChannelIndex = 255

var (
	// ErrConfiguration classifies recoverable request failures: rejected
	// filter designs, empty domain sets and channel numbers beyond
	// MaxAnalogChannelIndex.
	ErrConfiguration = errors.New("configuration error")

	// ErrNoDomains is returned when a request selects no domain.
	ErrNoDomains = &ConfigurationError{Msg: "No data selected to filter"}
)

const invalidChannelMsg = "Invalid channel number"

// ConfigurationError is a recoverable failure caused by the request or
// the session metadata. The run is aborted and nothing should be written.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
