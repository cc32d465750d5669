// Package web provides the HTTP API for the camera daemon: resolved
// resolution state per camera, preset switching, and a websocket event feed.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/camera"
	"github.com/camkit/go-camera/pkg/hub"
	"github.com/camkit/go-camera/pkg/resolution"
)

// Server is the camera daemon API server.
type Server struct {
	app  *fiber.App
	port string

	provider resolution.Provider

	// Registered cameras, keyed by camera name
	managers map[string]*camera.Manager
	order    []string
	mu       sync.RWMutex

	// Hub for websocket event broadcast
	eventHub *hub.Hub
}

// NewServer creates the API server over a capability provider.
func NewServer(port string, provider resolution.Provider) *Server {
	s := &Server{
		port:     port,
		provider: provider,
		managers: make(map[string]*camera.Manager),
		eventHub: hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "go-camera",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/presets", s.handleListPresets)
	api.Get("/cameras", s.handleListCameras)
	api.Get("/cameras/:name", s.handleGetCamera)
	api.Get("/cameras/:name/profiles", s.handleGetProfiles)
	api.Post("/cameras/:name/preset", s.handleSetPreset)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Register adds a camera manager under its camera name and wires its config
// changes into the event feed.
func (s *Server) Register(name string, m *camera.Manager) {
	m.OnConfigChange = func(cfg camera.Config) error {
		return s.eventHub.BroadcastEvent(hub.EventConfigChanged, ConfigEvent{
			Camera: name,
			Config: cfg,
		})
	}

	s.mu.Lock()
	if _, exists := s.managers[name]; !exists {
		s.order = append(s.order, name)
	}
	s.managers[name] = m
	s.mu.Unlock()
}

// Start starts the server. Blocks until shutdown.
func (s *Server) Start() error {
	log.Info("camera API listening", "port", s.port)
	go s.eventHub.Run()
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// EventHub returns the event hub for external broadcasters.
func (s *Server) EventHub() *hub.Hub {
	return s.eventHub
}

func (s *Server) manager(name string) (*camera.Manager, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[name]
	return m, ok
}
