package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/camkit/go-camera/pkg/resolution"
)

func TestLoadTable(t *testing.T) {
	table := `{
	  "cameras": [
	    {
	      "camera_id": 0,
	      "profiles": [
	        {"quality": 4, "frame_width": 1920, "frame_height": 1080, "frame_rate": 30},
	        {"quality": 2, "frame_width": 720, "frame_height": 480, "frame_rate": 30}
	      ],
	      "still_sizes": [{"width": 4000, "height": 3000}]
	    }
	  ]
	}`

	path := filepath.Join(t.TempDir(), "table.json")
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}

	provider, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}

	rp, ok := provider.Profile(0, resolution.Quality1080p)
	if !ok {
		t.Fatal("1080p profile missing")
	}
	if rp.CameraID != 0 || rp.FrameWidth != 1920 {
		t.Errorf("profile = %+v", rp)
	}

	sizes := provider.StillCaptureSizes(0, resolution.FormatJPEG)
	if len(sizes) != 1 || sizes[0].Width != 4000 {
		t.Errorf("still sizes = %v", sizes)
	}
}

func TestLoadTable_Missing(t *testing.T) {
	if _, err := LoadTable("/nonexistent/table.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
