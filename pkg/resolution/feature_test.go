package resolution

import (
	"errors"
	"testing"
)

// fullTable builds a capability table with every quality tier present for
// camera 0, each with a distinct frame size so tests can tell tiers apart.
func fullTable() *StaticProvider {
	p := NewStaticProvider()
	tiers := []struct {
		quality Quality
		width   int
		height  int
	}{
		{QualityHigh, 3840, 2160},
		{Quality2160p, 3840, 2160},
		{Quality1080p, 1920, 1080},
		{Quality720p, 1280, 720},
		{Quality480p, 720, 480},
		{QualityQVGA, 320, 240},
		{QualityLow, 176, 144},
	}
	for _, tier := range tiers {
		p.AddProfile(RecordingProfile{
			CameraID:    0,
			Quality:     tier.quality,
			FrameWidth:  tier.width,
			FrameHeight: tier.height,
			FrameRate:   30,
		})
	}
	p.AddStillSizes(0, FormatJPEG,
		Size{Width: 640, Height: 480},
		Size{Width: 4000, Height: 3000},
		Size{Width: 1920, Height: 1080},
	)
	return p
}

func TestBestAvailableProfile_ExactMatch(t *testing.T) {
	provider := fullTable()

	tests := []struct {
		preset Preset
		want   Quality
	}{
		{PresetMax, QualityHigh},
		{PresetUltraHigh, Quality2160p},
		{PresetVeryHigh, Quality1080p},
		{PresetHigh, Quality720p},
		{PresetMedium, Quality480p},
		{PresetLow, QualityQVGA},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			rp, err := BestAvailableProfile(provider, 0, tt.preset)
			if err != nil {
				t.Fatalf("BestAvailableProfile() error = %v", err)
			}
			if rp.Quality != tt.want {
				t.Errorf("quality = %v, want %v", rp.Quality, tt.want)
			}
		})
	}
}

func TestBestAvailableProfile_FallsThrough(t *testing.T) {
	// Only 480p exists: everything from max down should land on it.
	provider := NewStaticProvider()
	provider.AddProfile(RecordingProfile{CameraID: 0, Quality: Quality480p, FrameWidth: 720, FrameHeight: 480})

	for _, preset := range []Preset{PresetMax, PresetUltraHigh, PresetVeryHigh, PresetHigh, PresetMedium} {
		t.Run(preset.String(), func(t *testing.T) {
			rp, err := BestAvailableProfile(provider, 0, preset)
			if err != nil {
				t.Fatalf("BestAvailableProfile() error = %v", err)
			}
			if rp.Quality != Quality480p {
				t.Errorf("quality = %v, want %v", rp.Quality, Quality480p)
			}
		})
	}
}

func TestBestAvailableProfile_ImplicitBottomRung(t *testing.T) {
	// Only the device-worst alias exists; even PresetLow should reach it.
	provider := NewStaticProvider()
	provider.AddProfile(RecordingProfile{CameraID: 0, Quality: QualityLow, FrameWidth: 176, FrameHeight: 144})

	rp, err := BestAvailableProfile(provider, 0, PresetLow)
	if err != nil {
		t.Fatalf("BestAvailableProfile() error = %v", err)
	}
	if rp.Quality != QualityLow {
		t.Errorf("quality = %v, want %v", rp.Quality, QualityLow)
	}
}

func TestBestAvailableProfile_NoProfile(t *testing.T) {
	provider := NewStaticProvider()

	_, err := BestAvailableProfile(provider, 0, PresetMax)
	if !errors.Is(err, ErrNoProfile) {
		t.Errorf("error = %v, want ErrNoProfile", err)
	}
}

func TestBestAvailableProfile_NegativeIDPanics(t *testing.T) {
	for _, preset := range []Preset{PresetLow, PresetMax} {
		t.Run(preset.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for negative camera id")
				}
			}()
			BestAvailableProfile(fullTable(), -1, preset)
		})
	}
}

func TestNew_ResolvesImmediately(t *testing.T) {
	f, err := New(fullTable(), "0", PresetHigh, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !f.CheckIsSupported() {
		t.Error("CheckIsSupported() = false, want true")
	}
	if got := f.PreviewSize(); got != (Size{Width: 1280, Height: 720}) {
		t.Errorf("PreviewSize() = %v, want 1280x720", got)
	}
	if rp := f.RecordingProfile(); rp == nil || rp.Quality != Quality720p {
		t.Errorf("RecordingProfile() = %v, want 720p", rp)
	}
}

func TestNew_NonNumericCameraUnsupported(t *testing.T) {
	f, err := New(fullTable(), "back", PresetHigh, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if f.CheckIsSupported() {
		t.Error("CheckIsSupported() = true, want false")
	}
	if !f.PreviewSize().IsZero() {
		t.Errorf("PreviewSize() = %v, want unset", f.PreviewSize())
	}
	if !f.CaptureSize().IsZero() {
		t.Errorf("CaptureSize() = %v, want unset", f.CaptureSize())
	}
	if f.RecordingProfile() != nil {
		t.Errorf("RecordingProfile() = %v, want nil", f.RecordingProfile())
	}
}

func TestNew_NoProfileSurfaced(t *testing.T) {
	_, err := New(NewStaticProvider(), "0", PresetHigh, false)
	if !errors.Is(err, ErrNoProfile) {
		t.Errorf("New() error = %v, want ErrNoProfile", err)
	}
}

func TestSetValue_Reconfigures(t *testing.T) {
	f, err := New(fullTable(), "0", PresetLow, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := f.SetValue(PresetVeryHigh); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}

	if f.Value() != PresetVeryHigh {
		t.Errorf("Value() = %v, want veryHigh", f.Value())
	}
	if got := f.PreviewSize(); got != (Size{Width: 1920, Height: 1080}) {
		t.Errorf("PreviewSize() = %v, want 1920x1080", got)
	}
}

func TestCaptureSize_PinnedToPreview(t *testing.T) {
	f, err := New(fullTable(), "0", PresetMedium, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if f.CaptureSize() != f.PreviewSize() {
		t.Errorf("CaptureSize() = %v, want preview size %v", f.CaptureSize(), f.PreviewSize())
	}
}

func TestCaptureSize_MaxResolution(t *testing.T) {
	f, err := New(fullTable(), "0", PresetMedium, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := Size{Width: 4000, Height: 3000}
	if f.CaptureSize() != want {
		t.Errorf("CaptureSize() = %v, want %v (largest JPEG size)", f.CaptureSize(), want)
	}
	if f.PreviewSize() == f.CaptureSize() {
		t.Error("capture size should be independent of preview size")
	}
}

func TestCaptureSize_MaxResolutionNoStillSizes(t *testing.T) {
	provider := NewStaticProvider()
	provider.AddProfile(RecordingProfile{CameraID: 0, Quality: Quality480p, FrameWidth: 720, FrameHeight: 480})

	_, err := New(provider, "0", PresetMedium, true)
	if !errors.Is(err, ErrNoStillSizes) {
		t.Errorf("New() error = %v, want ErrNoStillSizes", err)
	}
}
