package resolution

import "fmt"

// Quality identifies a tier in the hardware recording-profile table.
// QualityHigh and QualityLow are device-relative aliases for the best and
// worst tier the hardware supports; the rest name fixed frame heights.
type Quality int

const (
	QualityLow Quality = iota
	QualityQVGA
	Quality480p
	Quality720p
	Quality1080p
	Quality2160p
	QualityHigh
)

var qualityNames = map[Quality]string{
	QualityLow:   "low",
	QualityQVGA:  "qvga",
	Quality480p:  "480p",
	Quality720p:  "720p",
	Quality1080p: "1080p",
	Quality2160p: "2160p",
	QualityHigh:  "high",
}

// String returns the wire name of the quality tier.
func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// ParseQuality converts a wire name back into a Quality.
func ParseQuality(s string) (Quality, bool) {
	for q, name := range qualityNames {
		if name == s {
			return q, true
		}
	}
	return QualityLow, false
}

// RecordingProfile is a hardware-reported capture configuration for one
// quality tier on one camera. Treated as an immutable snapshot once read
// from the capability provider.
type RecordingProfile struct {
	CameraID     int     `json:"camera_id"`
	Quality      Quality `json:"quality"`
	FrameWidth   int     `json:"frame_width"`
	FrameHeight  int     `json:"frame_height"`
	FrameRate    int     `json:"frame_rate"`
	VideoBitrate int     `json:"video_bitrate"`
	AudioBitrate int     `json:"audio_bitrate"`
}

// FrameSize returns the video frame dimensions of the profile.
func (p RecordingProfile) FrameSize() Size {
	return Size{Width: p.FrameWidth, Height: p.FrameHeight}
}
