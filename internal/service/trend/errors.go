package trend

import "errors"

var (
	// ErrCalculation is returned when a derived percentage is not finite
	ErrCalculation = errors.New("calculation error")

	// ErrInvalidWindow is returned for non-positive or inverted moving-average windows
	ErrInvalidWindow = errors.New("invalid moving average window")
)
