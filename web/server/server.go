package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/renderer"
	"github.com/davel/go-realtime-tracer/pkg/scene"
)

// Server exposes rendered frames of the animated sphere scenes over HTTP
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// Handler returns the route table for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/stream", s.handleStream)
	return mux
}

// Start runs the server until it fails
func (s *Server) Start() error {
	s.logger.Printf("Serving on http://localhost:%d\n", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SceneInfo describes one built-in scene for clients
type SceneInfo struct {
	Name     string `json:"name"`
	Spheres  int    `json:"spheres"`
	Animated bool   `json:"animated"`
}

// handleScenes lists the built-in scenes and their object counts
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos := make([]SceneInfo, 0, len(scene.SceneNames()))
	for _, name := range scene.SceneNames() {
		sc, err := scene.CreateScene(name)
		if err != nil {
			continue
		}
		infos = append(infos, SceneInfo{
			Name:     name,
			Spheres:  len(sc.Spheres),
			Animated: sc.Animator != nil,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}
