// Package web provides an optional monitor dashboard for the landmark
// stream. It is an observability side channel: consumers still receive
// their data over the UDP datagram path only.
package web

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/posecast/posecast/internal/log"
	"github.com/posecast/posecast/pkg/hub"
	"github.com/posecast/posecast/pkg/pose"
	"github.com/posecast/posecast/pkg/stream"
)

// StatsProvider exposes the stream's run counters to the dashboard.
type StatsProvider interface {
	Stats() stream.Snapshot
}

// landmarkFrame is the JSON message pushed to /ws/landmarks clients.
type landmarkFrame struct {
	Time   string    `json:"time"`
	Count  int       `json:"count"`
	Values []float64 `json:"values"`
}

// Server is the monitor dashboard server
type Server struct {
	app  *fiber.App
	addr string

	stats StatsProvider

	// Hub for websocket broadcast (thread-safe!)
	landmarkHub *hub.Hub
}

// NewServer creates a new monitor server listening on addr.
func NewServer(addr string, stats StatsProvider) *Server {
	s := &Server{
		addr:        addr,
		stats:       stats,
		landmarkHub: hub.New("landmarks"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "posecast monitor",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/schema", s.handleSchema)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/landmarks", websocket.New(s.handleLandmarksWS))

	s.app = app
	return s
}

// Start runs the hub and the HTTP listener. Blocks; call in a goroutine.
func (s *Server) Start() error {
	go s.landmarkHub.Run()
	log.Info("monitor dashboard listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown stops the HTTP listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// PublishPose broadcasts one transmitted coordinate list to monitor
// clients. Wire this to the streamer's OnPose callback.
func (s *Server) PublishPose(values []float64) {
	frame := landmarkFrame{
		Time:   time.Now().Format(time.RFC3339Nano),
		Count:  len(values) / 3,
		Values: values,
	}
	if err := s.landmarkHub.BroadcastJSON(frame); err != nil {
		log.Debug("landmark broadcast failed", "error", err)
	}
}

// handleStatus returns the current stream counters
func (s *Server) handleStatus(c *fiber.Ctx) error {
	snap := s.stats.Stats()
	return c.JSON(fiber.Map{
		"stream":          snap,
		"monitor_clients": s.landmarkHub.ClientCount(),
	})
}

// handleSchema returns the landmark names and skeleton topology, so a
// dashboard can label the positional values in each frame.
func (s *Server) handleSchema(c *fiber.Ctx) error {
	connections := make([][2]int, len(pose.Connections))
	for i, conn := range pose.Connections {
		connections[i] = [2]int{conn.A, conn.B}
	}
	return c.JSON(fiber.Map{
		"landmark_count": pose.LandmarkCount,
		"landmarks":      pose.LandmarkNames,
		"connections":    connections,
		"values_per":     3,
		"order":          "posX, posY, posZ per landmark, schema order",
	})
}

// handleLandmarksWS streams live landmark frames to one client
func (s *Server) handleLandmarksWS(conn *websocket.Conn) {
	client := hub.NewClient(s.landmarkHub, conn)
	client.Run()
}

// Addr returns the listen address, for logs.
func (s *Server) Addr() string {
	return fmt.Sprintf("http://%s", s.addr)
}
