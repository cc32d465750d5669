// Package camera exposes the resolved capture configuration for a camera
// session. It sits between the resolution resolver and the components that
// actually open capture sessions: they read the Config, we never touch the
// session itself.
package camera

import "github.com/camkit/go-camera/pkg/resolution"

// Config holds the session parameters derived from a resolved preset.
type Config struct {
	Preset        string `json:"preset"`
	Quality       string `json:"quality"`
	PreviewWidth  int    `json:"preview_width"`
	PreviewHeight int    `json:"preview_height"`
	CaptureWidth  int    `json:"capture_width"`
	CaptureHeight int    `json:"capture_height"`
	FrameRate     int    `json:"frame_rate"`
	VideoBitrate  int    `json:"video_bitrate"`
	AudioBitrate  int    `json:"audio_bitrate"`

	// JPEGQuality is the still-capture encode quality (1-100). Not derived
	// from the hardware profile; API-tunable.
	JPEGQuality int `json:"jpeg_quality"`
}

// DefaultJPEGQuality is used when no override has been applied.
const DefaultJPEGQuality = 85

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.PreviewWidth <= 0 || c.PreviewHeight <= 0 {
		errors = append(errors, "preview size must be positive")
	}
	if c.CaptureWidth <= 0 || c.CaptureHeight <= 0 {
		errors = append(errors, "capture size must be positive")
	}
	if c.FrameRate < 1 || c.FrameRate > 120 {
		errors = append(errors, "frame_rate must be between 1 and 120")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errors = append(errors, "jpeg_quality must be between 1 and 100")
	}
	if _, err := resolution.ParsePreset(c.Preset); err != nil {
		errors = append(errors, "unknown preset: "+c.Preset)
	}

	return errors
}

func configFrom(f *resolution.Feature, jpegQuality int) Config {
	cfg := Config{
		Preset:      f.Value().String(),
		JPEGQuality: jpegQuality,
	}
	if rp := f.RecordingProfile(); rp != nil {
		cfg.Quality = rp.Quality.String()
		cfg.FrameRate = rp.FrameRate
		cfg.VideoBitrate = rp.VideoBitrate
		cfg.AudioBitrate = rp.AudioBitrate
	}
	preview := f.PreviewSize()
	capture := f.CaptureSize()
	cfg.PreviewWidth = preview.Width
	cfg.PreviewHeight = preview.Height
	cfg.CaptureWidth = capture.Width
	cfg.CaptureHeight = capture.Height
	return cfg
}
