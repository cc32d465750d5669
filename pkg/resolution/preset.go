// Package resolution maps platform-independent resolution presets onto the
// best capture profile the camera hardware actually reports. It owns the
// preset-to-quality ladder walk and the preview/capture size selection; it
// does not open capture sessions or touch encoder pipelines.
package resolution

import "fmt"

// Preset is a platform-independent resolution request, ordered from least
// to most demanding.
type Preset int

const (
	PresetLow Preset = iota
	PresetMedium
	PresetHigh
	PresetVeryHigh
	PresetUltraHigh
	PresetMax
)

var presetNames = map[Preset]string{
	PresetLow:       "low",
	PresetMedium:    "medium",
	PresetHigh:      "high",
	PresetVeryHigh:  "veryHigh",
	PresetUltraHigh: "ultraHigh",
	PresetMax:       "max",
}

// String returns the wire name of the preset.
func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// ParsePreset converts a wire name back into a Preset.
func ParsePreset(s string) (Preset, error) {
	for p, name := range presetNames {
		if name == s {
			return p, nil
		}
	}
	return PresetLow, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// PresetNames returns all preset names, least to most demanding.
func PresetNames() []string {
	names := make([]string, 0, len(presetNames))
	for p := PresetLow; p <= PresetMax; p++ {
		names = append(names, presetNames[p])
	}
	return names
}
