package device

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/resolution"
)

// tierCandidates are the frame sizes probed per quality tier, with the
// bitrate/framerate defaults recorded for tiers the driver accepts. The
// bitrates mirror common camcorder profile tables.
var tierCandidates = []struct {
	quality      resolution.Quality
	size         resolution.Size
	frameRate    int
	videoBitrate int
	audioBitrate int
}{
	{resolution.Quality2160p, resolution.Size{Width: 3840, Height: 2160}, 30, 48_000_000, 256_000},
	{resolution.Quality1080p, resolution.Size{Width: 1920, Height: 1080}, 30, 17_000_000, 192_000},
	{resolution.Quality720p, resolution.Size{Width: 1280, Height: 720}, 30, 8_000_000, 192_000},
	{resolution.Quality480p, resolution.Size{Width: 720, Height: 480}, 30, 5_000_000, 128_000},
	{resolution.QualityQVGA, resolution.Size{Width: 320, Height: 240}, 30, 1_000_000, 96_000},
}

// probeMax is the oversized request used to discover the sensor's native
// maximum: drivers clamp it to the largest size they can deliver.
var probeMax = resolution.Size{Width: 8192, Height: 8192}

// Probe resolves the camera's numeric id to its device path and builds its
// capability table by asking the driver to apply each candidate tier and
// reading back what it accepted.
func Probe(cameraID int) (*resolution.StaticProvider, error) {
	if cameraID < 0 {
		return nil, fmt.Errorf("device: invalid camera id %d", cameraID)
	}
	path, err := ResolvePath(strconv.Itoa(cameraID))
	if err != nil {
		return nil, err
	}
	return ProbePath(cameraID, path)
}

// ProbePath opens the capture device at path and builds its capability
// table under cameraID. Stable v4l2 ids go through ResolvePath first.
func ProbePath(cameraID int, path string) (*resolution.StaticProvider, error) {
	if cameraID < 0 {
		return nil, fmt.Errorf("device: invalid camera id %d", cameraID)
	}

	vc, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("device: open camera %d (%s): %w", cameraID, path, err)
	}
	defer vc.Close()
	if !vc.IsOpened() {
		return nil, fmt.Errorf("device: camera %d did not open", cameraID)
	}

	provider := resolution.NewStaticProvider()
	var accepted []resolution.RecordingProfile

	for _, c := range tierCandidates {
		got := applySize(vc, c.size)
		if got != c.size {
			log.Debug("tier not accepted", "camera", cameraID, "requested", c.size, "got", got)
			continue
		}
		profile := resolution.RecordingProfile{
			CameraID:     cameraID,
			Quality:      c.quality,
			FrameWidth:   c.size.Width,
			FrameHeight:  c.size.Height,
			FrameRate:    c.frameRate,
			VideoBitrate: c.videoBitrate,
			AudioBitrate: c.audioBitrate,
		}
		provider.AddProfile(profile)
		provider.AddStillSizes(cameraID, resolution.FormatJPEG, c.size)
		accepted = append(accepted, profile)
	}

	if len(accepted) == 0 {
		return nil, fmt.Errorf("device: camera %d accepted no candidate tier", cameraID)
	}

	// Device-relative aliases: best accepted tier doubles as QualityHigh,
	// worst as QualityLow.
	best := accepted[0]
	best.Quality = resolution.QualityHigh
	provider.AddProfile(best)
	worst := accepted[len(accepted)-1]
	worst.Quality = resolution.QualityLow
	provider.AddProfile(worst)

	// Ask for an impossible size to learn the sensor's native maximum.
	if native := applySize(vc, probeMax); !native.IsZero() && native != probeMax {
		if native.Area() > best.FrameSize().Area() {
			provider.AddStillSizes(cameraID, resolution.FormatJPEG, native)
		}
	}

	log.Info("camera probed", "camera", cameraID, "tiers", len(accepted))
	return provider, nil
}

// applySize requests a frame size from the driver and returns what it
// actually configured.
func applySize(vc *gocv.VideoCapture, s resolution.Size) resolution.Size {
	vc.Set(gocv.VideoCaptureFrameWidth, float64(s.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(s.Height))
	return resolution.Size{
		Width:  int(vc.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(vc.Get(gocv.VideoCaptureFrameHeight)),
	}
}
