// Package remote talks to a camera daemon elsewhere on the network: it
// pulls capability tables over HTTP so remote cameras can be resolved
// locally, and subscribes to the daemon's config-change event feed.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/camkit/go-camera/internal/httpc"
	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/hub"
	"github.com/camkit/go-camera/pkg/resolution"
)

// Client talks to one camera daemon.
type Client struct {
	host string
	port string
	http *http.Client
}

// NewClient creates a client for the daemon at host:port.
func NewClient(host, port string) *Client {
	return &Client{
		host: host,
		port: port,
		http: httpc.Client,
	}
}

func (c *Client) apiURL(path string) string {
	return fmt.Sprintf("http://%s:%s%s", c.host, c.port, path)
}

// profilesResponse mirrors the daemon's /api/cameras/:name/profiles shape.
type profilesResponse struct {
	Camera     string                        `json:"camera"`
	Profiles   []resolution.RecordingProfile `json:"profiles"`
	StillSizes []resolution.Size             `json:"still_sizes"`
}

// FetchProvider downloads a remote camera's capability table into a static
// provider, so the resolution ladder can be walked locally.
func (c *Client) FetchProvider(ctx context.Context, cameraName string) (*resolution.StaticProvider, error) {
	url := c.apiURL("/api/cameras/" + cameraName + "/profiles")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: fetch profiles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote: fetch profiles: status %d: %s", resp.StatusCode, body)
	}

	var parsed profilesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("remote: decode profiles: %w", err)
	}

	provider := resolution.NewStaticProvider()
	for _, rp := range parsed.Profiles {
		provider.AddProfile(rp)
	}
	if len(parsed.Profiles) > 0 && len(parsed.StillSizes) > 0 {
		provider.AddStillSizes(parsed.Profiles[0].CameraID, resolution.FormatJPEG, parsed.StillSizes...)
	}
	return provider, nil
}

// SubscribeEvents dials the daemon's event feed and delivers envelopes on
// the returned channel until the context is cancelled or the connection
// drops. The channel is closed on exit.
func (c *Client) SubscribeEvents(ctx context.Context) (<-chan hub.Message, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	url := fmt.Sprintf("ws://%s:%s/ws/events", c.host, c.port)

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: dial events: %w", err)
	}

	events := make(chan hub.Message, 16)
	go func() {
		defer close(events)
		defer conn.Close()

		// Unblock the read loop when the caller gives up.
		go func() {
			<-ctx.Done()
			conn.Close()
		}()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					log.Warn("event stream closed", "err", err)
				}
				return
			}
			msg, err := hub.ParseMessage(data)
			if err != nil {
				log.Warn("bad event envelope", "err", err)
				continue
			}
			select {
			case events <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
