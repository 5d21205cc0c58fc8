package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Request limits for render and inspect parameters
const (
	minImageSize = 1
	maxImageSize = 2000
	maxSamples   = 10000
	maxDepth     = 1000
)

// Server handles web requests for the path tracer
type Server struct {
	port         int
	publisher    output.Publisher // nil disables publish=true
	renderConfig renderer.RenderConfig
	console      *Console
}

// NewServer creates a new web server. publisher may be nil.
func NewServer(port int, publisher output.Publisher) *Server {
	return &Server{
		port:         port,
		publisher:    publisher,
		renderConfig: renderer.DefaultRenderConfig(),
		console:      NewConsole(defaultConsoleCapacity),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Scene name (e.g., "default")
	Width           int    `json:"width"`           // Image width (0 = scene default)
	Height          int    `json:"height"`          // Image height (0 = scene default)
	SamplesPerPixel int    `json:"samplesPerPixel"` // Samples per pixel (0 = scene default)
	MaxDepth        int    `json:"maxDepth"`        // Maximum bounce depth (0 = scene default)
	Seed            int64  `json:"seed"`            // Random seed (unset = scene default, 0 is rejected)
	Publish         bool   `json:"publish"`         // Upload the render to object storage
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListSceneInfo())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.NewScene(sceneName, scene.Options{})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	config := sceneObj.GetSamplingConfig()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           config.Width,
			"height":          config.Height,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
			"seed":            config.Seed,
		},
		"limits": map[string]interface{}{
			"width":           map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":          map[string]int{"min": minImageSize, "max": maxImageSize},
			"samplesPerPixel": map[string]int{"min": 1, "max": maxSamples},
			"maxDepth":        map[string]int{"min": 1, "max": maxDepth},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses and validates query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "samples", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if value := query.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
		if req.Seed == 0 {
			return nil, fmt.Errorf("seed must be non-zero, omit it for the scene default")
		}
	}
	if value := query.Get("publish"); value != "" {
		if req.Publish, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("invalid publish: %s", value)
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// samplingOverrides returns the request's overrides of the scene sampling config
func (req *RenderRequest) samplingOverrides() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
