// Package server exposes the sensor values over a small read-only HTTP API
// for the host platform to poll.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Worfje/home-assistant-ultimaker/sensor"
	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

// Config holds the listen address configuration.
type Config struct {
	Host string
	Port int
}

// Server serves the sensor API.
type Server struct {
	config     Config
	mux        *http.ServeMux
	httpServer *http.Server
	source     *ultimaker.DataSource
	sensors    []*sensor.Sensor
	printer    string
}

// New creates a server over the given data source and metric holders.
// printerHost is reported in the status endpoint only.
func New(cfg Config, source *ultimaker.DataSource, sensors []*sensor.Sensor, printerHost string) *Server {
	s := &Server{
		config:  cfg,
		mux:     http.NewServeMux(),
		source:  source,
		sensors: sensors,
		printer: printerHost,
	}

	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: corsMiddleware(s.mux),
	}

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/sensors", s.handleSensors)
	s.mux.HandleFunc("GET /api/sensors/{key}", s.handleSensor)
	s.mux.HandleFunc("GET /api/status", s.handleStatus)
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

// Handler returns the full request handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	log.Printf("Sensor server starting on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"result": "Ultimaker Status Bridge",
	})
}

// corsMiddleware adds CORS headers for frontend compatibility.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    status,
			"message": message,
		},
	})
}
