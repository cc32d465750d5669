// Package config provides environment configuration helpers for go-camera
// commands.
package config

import (
	"os"
	"strings"
)

// Defaults for the camera daemon.
const (
	DefaultPort    = "8080"
	DefaultCameras = "0"
	DefaultPreset  = "max"
)

// Port returns the HTTP port from CAMERA_PORT, or the default.
func Port() string {
	if port := os.Getenv("CAMERA_PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// Cameras returns the comma-separated camera id list from CAMERA_IDS,
// or the default single camera.
func Cameras() []string {
	ids := os.Getenv("CAMERA_IDS")
	if ids == "" {
		ids = DefaultCameras
	}
	parts := strings.Split(ids, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Preset returns the initial resolution preset name from CAMERA_PRESET,
// or the default.
func Preset() string {
	if preset := os.Getenv("CAMERA_PRESET"); preset != "" {
		return preset
	}
	return DefaultPreset
}

// MaxResolutionCapture reports whether still captures should use the
// sensor's maximum JPEG size instead of the video frame size.
// Set CAMERA_MAX_RES_CAPTURE=1 to enable.
func MaxResolutionCapture() bool {
	switch os.Getenv("CAMERA_MAX_RES_CAPTURE") {
	case "1", "true", "yes":
		return true
	}
	return false
}

// LogLevel returns the log level from LOG_LEVEL, defaulting to info.
func LogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
