package resolution

import (
	"fmt"
	"strconv"

	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/feature"
)

// ladder is the descending preset-to-quality search order. A request enters
// at its preset's rung and falls through toward the bottom until a tier the
// hardware actually reports is found. QualityLow is the implicit final rung,
// checked after the table is exhausted.
var ladder = []struct {
	preset  Preset
	quality Quality
}{
	{PresetMax, QualityHigh},
	{PresetUltraHigh, Quality2160p},
	{PresetVeryHigh, Quality1080p},
	{PresetHigh, Quality720p},
	{PresetMedium, Quality480p},
	{PresetLow, QualityQVGA},
}

// ladderIndex returns the rung a preset enters the ladder at. Presets below
// the table (none today) enter past the end and only reach QualityLow.
func ladderIndex(p Preset) int {
	for i, rung := range ladder {
		if rung.preset == p {
			return i
		}
	}
	return len(ladder)
}

// BestAvailableProfile walks the quality ladder from the requested preset
// downward and returns the first profile the hardware reports. Asking for a
// higher quality than the device has never fails; only a device with no
// recognized profile at all returns ErrNoProfile.
//
// cameraID must be >= 0; a negative id is a programmer error and panics.
func BestAvailableProfile(provider Provider, cameraID int, preset Preset) (RecordingProfile, error) {
	if cameraID < 0 {
		panic("resolution: BestAvailableProfile requires a valid (>=0) camera identifier")
	}

	for i := ladderIndex(preset); i < len(ladder); i++ {
		if provider.HasProfile(cameraID, ladder[i].quality) {
			if rp, ok := provider.Profile(cameraID, ladder[i].quality); ok {
				return rp, nil
			}
		}
	}
	if provider.HasProfile(cameraID, QualityLow) {
		if rp, ok := provider.Profile(cameraID, QualityLow); ok {
			return rp, nil
		}
	}
	return RecordingProfile{}, fmt.Errorf("%w: camera %d, preset %s", ErrNoProfile, cameraID, preset)
}

// Feature resolves a Preset into concrete preview and capture sizes for one
// camera. It owns its state exclusively; callers must serialize SetValue.
type Feature struct {
	provider             Provider
	currentSetting       Preset
	cameraID             int
	maxResolutionCapture bool

	previewSize      Size
	captureSize      Size
	recordingProfile *RecordingProfile
}

// New creates a resolution feature for the named camera and resolves the
// initial preset. A camera name that does not parse as an integer silently
// degrades the feature to unsupported rather than failing; a camera whose
// hardware reports no profile at all returns ErrNoProfile.
func New(provider Provider, cameraName string, preset Preset, maxResolutionCapture bool) (*Feature, error) {
	f := &Feature{
		provider:             provider,
		currentSetting:       preset,
		cameraID:             -1,
		maxResolutionCapture: maxResolutionCapture,
	}

	id, err := strconv.Atoi(cameraName)
	if err != nil {
		log.Warn("camera name is not a numeric id, resolution unsupported", "camera", cameraName)
		return f, nil
	}
	f.cameraID = id

	if err := f.configure(); err != nil {
		return nil, err
	}
	return f, nil
}

// DebugName implements feature.Feature.
func (f *Feature) DebugName() string {
	return "ResolutionFeature"
}

// CheckIsSupported reports whether the camera id resolved to real hardware.
func (f *Feature) CheckIsSupported() bool {
	return f.cameraID >= 0
}

// UpdateBuilder is a no-op: resolution is applied when the capture session
// is configured, not per frame.
func (f *Feature) UpdateBuilder(b *feature.RequestBuilder) {}

// Value returns the current preset.
func (f *Feature) Value() Preset {
	return f.currentSetting
}

// SetValue updates the preset and synchronously re-resolves the sizes.
// This is the only mutation path.
func (f *Feature) SetValue(preset Preset) error {
	f.currentSetting = preset
	return f.configure()
}

// PreviewSize returns the resolved preview frame size.
func (f *Feature) PreviewSize() Size {
	return f.previewSize
}

// CaptureSize returns the resolved still-capture size.
func (f *Feature) CaptureSize() Size {
	return f.captureSize
}

// RecordingProfile returns the resolved profile, or nil when the feature is
// unsupported or not yet configured.
func (f *Feature) RecordingProfile() *RecordingProfile {
	return f.recordingProfile
}

// CameraID returns the parsed camera id, or -1 when unsupported.
func (f *Feature) CameraID() int {
	return f.cameraID
}

func (f *Feature) configure() error {
	if !f.CheckIsSupported() {
		return nil
	}

	profile, err := BestAvailableProfile(f.provider, f.cameraID, f.currentSetting)
	if err != nil {
		return err
	}
	f.recordingProfile = &profile
	f.previewSize = profile.FrameSize()

	if f.maxResolutionCapture {
		best, err := BestCaptureSize(f.provider.StillCaptureSizes(f.cameraID, FormatJPEG))
		if err != nil {
			return fmt.Errorf("camera %d: %w", f.cameraID, err)
		}
		f.captureSize = best
	} else {
		f.captureSize = f.previewSize
	}

	log.Info("resolution configured",
		"camera", f.cameraID,
		"preset", f.currentSetting,
		"quality", profile.Quality,
		"preview", f.previewSize,
		"capture", f.captureSize,
	)
	return nil
}

var _ feature.Feature = (*Feature)(nil)
