package device

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/camkit/go-camera/pkg/resolution"
)

// TableFile is the on-disk capability table format, for running against a
// known device without probing it.
type TableFile struct {
	Cameras []TableCamera `json:"cameras"`
}

// TableCamera is one camera's entry in a capability table file.
type TableCamera struct {
	CameraID   int                           `json:"camera_id"`
	Profiles   []resolution.RecordingProfile `json:"profiles"`
	StillSizes []resolution.Size             `json:"still_sizes"`
}

// LoadTable reads a JSON capability table into a provider.
func LoadTable(path string) (*resolution.StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("device: read table: %w", err)
	}
	var file TableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("device: parse table %s: %w", path, err)
	}

	provider := resolution.NewStaticProvider()
	for _, cam := range file.Cameras {
		for _, rp := range cam.Profiles {
			rp.CameraID = cam.CameraID
			provider.AddProfile(rp)
		}
		if len(cam.StillSizes) > 0 {
			provider.AddStillSizes(cam.CameraID, resolution.FormatJPEG, cam.StillSizes...)
		}
	}
	return provider, nil
}
