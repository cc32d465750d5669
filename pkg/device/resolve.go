// Package device builds capability tables from real capture hardware by
// probing it through OpenCV. The resulting tables back the resolution
// resolver the same way a vendor profile database would.
package device

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ResolvePath converts a camera identifier to a usable device path.
// Numeric ids map to /dev/video<N>; stable v4l2 ids are resolved through
// their by-id / by-path symlinks.
func ResolvePath(id string) (string, error) {
	// Already a full path
	if strings.HasPrefix(id, "/dev/") {
		return id, nil
	}

	// Plain numeric camera id
	if n, err := strconv.Atoi(id); err == nil && n >= 0 {
		return fmt.Sprintf("/dev/video%d", n), nil
	}

	// Stable USB ids
	if strings.HasPrefix(id, "usb-") {
		path := "/dev/v4l/by-id/" + id
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// Platform devices, and USB devices without a by-id entry
	if strings.HasPrefix(id, "platform-") || strings.HasPrefix(id, "usb-") {
		path := "/dev/v4l/by-path/" + id
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("device: no stable device path for id %q", id)
}
