package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/camera"
	"github.com/camkit/go-camera/pkg/hub"
	"github.com/camkit/go-camera/pkg/resolution"
)

// CameraInfo summarizes one registered camera.
type CameraInfo struct {
	Camera    string `json:"camera"`
	Supported bool   `json:"supported"`
	Preset    string `json:"preset"`
}

// ConfigEvent is the payload broadcast when a camera's config changes.
type ConfigEvent struct {
	Camera string        `json:"camera"`
	Config camera.Config `json:"config"`
}

// ProfilesResponse is the full capability table for one camera.
type ProfilesResponse struct {
	Camera     string                        `json:"camera"`
	Profiles   []resolution.RecordingProfile `json:"profiles"`
	StillSizes []resolution.Size             `json:"still_sizes"`
}

// handleListPresets returns the preset names, least to most demanding.
func (s *Server) handleListPresets(c *fiber.Ctx) error {
	return c.JSON(resolution.PresetNames())
}

// handleListCameras returns all registered cameras.
func (s *Server) handleListCameras(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]CameraInfo, 0, len(s.order))
	for _, name := range s.order {
		m := s.managers[name]
		infos = append(infos, CameraInfo{
			Camera:    name,
			Supported: m.Supported(),
			Preset:    m.Preset().String(),
		})
	}
	return c.JSON(infos)
}

// handleGetCamera returns the resolved session config for one camera.
func (s *Server) handleGetCamera(c *fiber.Ctx) error {
	m, ok := s.manager(c.Params("name"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "unknown camera"})
	}
	if !m.Supported() {
		return c.Status(409).JSON(fiber.Map{"error": "camera does not support resolution configuration"})
	}
	return c.JSON(m.Snapshot())
}

// handleGetProfiles returns every quality tier the hardware reports,
// best first, plus the JPEG still-capture sizes.
func (s *Server) handleGetProfiles(c *fiber.Ctx) error {
	name := c.Params("name")
	m, ok := s.manager(name)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "unknown camera"})
	}
	if !m.Supported() {
		return c.Status(409).JSON(fiber.Map{"error": "camera does not support resolution configuration"})
	}

	cameraID := m.Feature().CameraID()
	resp := ProfilesResponse{
		Camera:     name,
		Profiles:   make([]resolution.RecordingProfile, 0, 8),
		StillSizes: s.provider.StillCaptureSizes(cameraID, resolution.FormatJPEG),
	}
	for q := resolution.QualityHigh; q >= resolution.QualityLow; q-- {
		if rp, ok := s.provider.Profile(cameraID, q); ok {
			resp.Profiles = append(resp.Profiles, rp)
		}
	}
	return c.JSON(resp)
}

// SetPresetRequest is the request body for switching presets.
type SetPresetRequest struct {
	Preset string `json:"preset"`
}

// handleSetPreset switches a camera to a new resolution preset.
func (s *Server) handleSetPreset(c *fiber.Ctx) error {
	m, ok := s.manager(c.Params("name"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "unknown camera"})
	}

	var req SetPresetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	preset, err := resolution.ParsePreset(req.Preset)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := m.SetPreset(preset); err != nil {
		status := 500
		if errors.Is(err, resolution.ErrNoProfile) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.eventHub.BroadcastEvent(hub.EventResolutionChanged, ConfigEvent{
		Camera: c.Params("name"),
		Config: m.Snapshot(),
	}); err != nil {
		log.Warn("event broadcast failed", "err", err)
	}

	return c.JSON(m.Snapshot())
}

// handleEventsWS streams config-change events to websocket clients.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.eventHub, c)
	client.Run()
}
