package camera

import (
	"fmt"
	"sync"

	"github.com/camkit/go-camera/pkg/resolution"
)

// Manager owns the resolution feature for one camera and hands out the
// derived session config. It is the concurrency boundary: the resolver
// below it is single-owner, so all preset changes funnel through here.
type Manager struct {
	mu          sync.RWMutex
	feature     *resolution.Feature
	config      Config
	jpegQuality int

	// Callback when config changes (for applying to the capture session)
	OnConfigChange func(cfg Config) error
}

// NewManager wraps an already-constructed resolution feature.
func NewManager(f *resolution.Feature) *Manager {
	return &Manager{
		feature:     f,
		config:      configFrom(f, DefaultJPEGQuality),
		jpegQuality: DefaultJPEGQuality,
	}
}

// Snapshot returns the current session configuration.
func (m *Manager) Snapshot() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Supported reports whether the underlying camera id resolved to hardware.
func (m *Manager) Supported() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.feature.CheckIsSupported()
}

// Preset returns the current resolution preset.
func (m *Manager) Preset() resolution.Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.feature.Value()
}

// Feature returns the underlying resolution feature. Callers must not
// mutate it directly; use SetPreset.
func (m *Manager) Feature() *resolution.Feature {
	return m.feature
}

// SetPreset re-resolves the camera against a new preset and rebuilds the
// session config.
func (m *Manager) SetPreset(p resolution.Preset) error {
	m.mu.Lock()
	if err := m.feature.SetValue(p); err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = configFrom(m.feature, m.jpegQuality)
	cfg := m.config
	callback := m.OnConfigChange
	m.mu.Unlock()

	if callback != nil {
		if err := callback(cfg); err != nil {
			return fmt.Errorf("failed to apply config: %w", err)
		}
	}
	return nil
}

// UpdateConfig updates configuration from API-supplied parameters.
// Accepts "preset" (name) and "jpeg_quality" (1-100).
func (m *Manager) UpdateConfig(params map[string]any) error {
	if name, ok := params["preset"].(string); ok {
		preset, err := resolution.ParsePreset(name)
		if err != nil {
			return err
		}
		if err := m.SetPreset(preset); err != nil {
			return err
		}
	}

	if raw, ok := params["jpeg_quality"]; ok {
		q, ok := toInt(raw)
		if !ok || q < 1 || q > 100 {
			return fmt.Errorf("jpeg_quality must be between 1 and 100")
		}
		m.mu.Lock()
		m.jpegQuality = q
		m.config.JPEGQuality = q
		cfg := m.config
		callback := m.OnConfigChange
		m.mu.Unlock()

		if callback != nil {
			if err := callback(cfg); err != nil {
				return fmt.Errorf("failed to apply config: %w", err)
			}
		}
	}

	return nil
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	}
	return 0, false
}
