package resolution

// ImageFormat keys the sensor's still-capture output-size tables.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatYUV420
	FormatRAW
)

// Provider abstracts the hardware capability tables so the resolver can be
// driven by real devices, remote daemons, or fakes in tests.
type Provider interface {
	// HasProfile reports whether the camera has a recording profile at the
	// given quality tier.
	HasProfile(cameraID int, q Quality) bool

	// Profile returns the recording profile for the given tier.
	Profile(cameraID int, q Quality) (RecordingProfile, bool)

	// StillCaptureSizes returns the sensor's supported output sizes for
	// still-image capture in the given format.
	StillCaptureSizes(cameraID int, f ImageFormat) []Size
}

// StaticProvider is an in-memory Provider backed by explicit tables. The
// device prober and the remote client both build one of these; tests build
// them directly.
type StaticProvider struct {
	profiles map[int]map[Quality]RecordingProfile
	stills   map[int]map[ImageFormat][]Size
}

// NewStaticProvider creates an empty capability table.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		profiles: make(map[int]map[Quality]RecordingProfile),
		stills:   make(map[int]map[ImageFormat][]Size),
	}
}

// AddProfile registers a recording profile under its camera id and quality.
func (p *StaticProvider) AddProfile(rp RecordingProfile) {
	byQuality, ok := p.profiles[rp.CameraID]
	if !ok {
		byQuality = make(map[Quality]RecordingProfile)
		p.profiles[rp.CameraID] = byQuality
	}
	byQuality[rp.Quality] = rp
}

// AddStillSizes registers still-capture output sizes for a camera and format.
func (p *StaticProvider) AddStillSizes(cameraID int, f ImageFormat, sizes ...Size) {
	byFormat, ok := p.stills[cameraID]
	if !ok {
		byFormat = make(map[ImageFormat][]Size)
		p.stills[cameraID] = byFormat
	}
	byFormat[f] = append(byFormat[f], sizes...)
}

// HasProfile implements Provider.
func (p *StaticProvider) HasProfile(cameraID int, q Quality) bool {
	_, ok := p.profiles[cameraID][q]
	return ok
}

// Profile implements Provider.
func (p *StaticProvider) Profile(cameraID int, q Quality) (RecordingProfile, bool) {
	rp, ok := p.profiles[cameraID][q]
	return rp, ok
}

// StillCaptureSizes implements Provider.
func (p *StaticProvider) StillCaptureSizes(cameraID int, f ImageFormat) []Size {
	return p.stills[cameraID][f]
}

// Merge copies another provider's tables into this one. Later entries win
// on conflict.
func (p *StaticProvider) Merge(other *StaticProvider) {
	for _, byQuality := range other.profiles {
		for _, rp := range byQuality {
			p.AddProfile(rp)
		}
	}
	for cameraID, byFormat := range other.stills {
		for f, sizes := range byFormat {
			p.AddStillSizes(cameraID, f, sizes...)
		}
	}
}

// Cameras returns the ids of all cameras with at least one profile.
func (p *StaticProvider) Cameras() []int {
	ids := make([]int, 0, len(p.profiles))
	for id := range p.profiles {
		ids = append(ids, id)
	}
	return ids
}

// Profiles returns all recording profiles for a camera, best tier first.
func (p *StaticProvider) Profiles(cameraID int) []RecordingProfile {
	byQuality := p.profiles[cameraID]
	out := make([]RecordingProfile, 0, len(byQuality))
	for q := QualityHigh; q >= QualityLow; q-- {
		if rp, ok := byQuality[q]; ok {
			out = append(out, rp)
		}
	}
	return out
}
