package resolution

import "fmt"

// Size is a frame width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns width*height. int64 so large sensor outputs cannot overflow
// the comparison.
func (s Size) Area() int64 {
	return int64(s.Width) * int64(s.Height)
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// BestCaptureSize selects the size with the largest area from the sensor's
// still-capture output list. Equal areas are broken by preferring the larger
// width, so selection is deterministic for unusual sensor tables.
func BestCaptureSize(sizes []Size) (Size, error) {
	if len(sizes) == 0 {
		return Size{}, ErrNoStillSizes
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Area() > best.Area() || (s.Area() == best.Area() && s.Width > best.Width) {
			best = s
		}
	}
	return best, nil
}
