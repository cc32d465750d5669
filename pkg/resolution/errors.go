package resolution

import "errors"

// Sentinel errors for common error conditions.
var (
	// ErrNoProfile is returned when the hardware reports no usable profile
	// at any quality level from the requested preset downward.
	ErrNoProfile = errors.New("resolution: no capture profile available")

	// ErrNoStillSizes is returned when the sensor reports no still-capture
	// output sizes for the queried image format.
	ErrNoStillSizes = errors.New("resolution: no still capture sizes reported")

	// ErrUnknownPreset is returned when a preset name cannot be parsed.
	ErrUnknownPreset = errors.New("resolution: unknown preset")
)
