package hub

import (
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	type payload struct {
		Camera string `json:"camera"`
	}

	msg, err := NewMessage(EventResolutionChanged, payload{Camera: "0"})
	if err != nil {
		t.Fatalf("NewMessage() error = %v", err)
	}

	if msg.ID == "" {
		t.Error("message id should be set")
	}
	if msg.Type != EventResolutionChanged {
		t.Errorf("type = %q, want %q", msg.Type, EventResolutionChanged)
	}
	if msg.Time == 0 {
		t.Error("timestamp should be set")
	}

	data, err := msg.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	parsed, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage() error = %v", err)
	}
	if parsed.ID != msg.ID {
		t.Errorf("parsed id = %q, want %q", parsed.ID, msg.ID)
	}

	var got payload
	if err := parsed.Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Camera != "0" {
		t.Errorf("payload camera = %q, want %q", got.Camera, "0")
	}
}

func TestNewMessage_NilPayload(t *testing.T) {
	msg, err := NewMessage(EventConfigChanged, nil)
	if err != nil {
		t.Fatalf("NewMessage() error = %v", err)
	}
	if msg.Payload != nil {
		t.Errorf("payload = %s, want empty", msg.Payload)
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := New("test")
	go h.Run()

	// A client that never drains its send buffer.
	slow := &Client{hub: h, send: make(chan []byte, 1)}
	h.register <- slow

	// Hammer ClientCount while the broadcast loop mutates the client set.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			h.ClientCount()
		}
	}()

	for i := 0; i < 10; i++ {
		if err := h.BroadcastEvent(EventConfigChanged, nil); err != nil {
			t.Fatalf("BroadcastEvent() error = %v", err)
		}
	}
	<-done

	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow client was not dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	h := New("test")
	// No Run loop and no clients: broadcast must queue or drop, not block.
	for i := 0; i < 300; i++ {
		if err := h.BroadcastEvent(EventConfigChanged, nil); err != nil {
			t.Fatalf("BroadcastEvent() error = %v", err)
		}
	}
	if h.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", h.ClientCount())
	}
}
