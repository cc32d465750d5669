package main

import "testing"

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "uuid", id: "6a1f0c2e-9b3d-4f70-8a11-2c5d7e9f0b4a", want: "6a1f0c2e"},
		{name: "exactly eight", id: "12345678", want: "12345678"},
		{name: "short", id: "abc", want: "abc"},
		{name: "empty", id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortID(tt.id); got != tt.want {
				t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
