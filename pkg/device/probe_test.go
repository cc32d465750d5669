package device

import "testing"

func TestProbe_InvalidID(t *testing.T) {
	if _, err := Probe(-1); err == nil {
		t.Error("expected error for negative camera id")
	}
}

func TestProbePath_InvalidID(t *testing.T) {
	if _, err := ProbePath(-1, "/dev/video0"); err == nil {
		t.Error("expected error for negative camera id")
	}
}
