package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// handleRender renders a scene synchronously and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	if req.Publish && s.publisher == nil {
		writeError(w, http.StatusBadRequest, "Publishing is not configured on this server")
		return
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	logger := s.console.Logger(renderID)

	sceneObj, err := scene.NewScene(req.Scene, scene.Options{
		Sampling: req.samplingOverrides(),
		Logger:   logger,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	// A client that disconnects cancels the request context and stops the render
	img, stats, err := renderer.NewParallelRenderer(sceneObj, s.renderConfig, logger).Render(r.Context())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusServiceUnavailable, "Render cancelled")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Publish {
		key := fmt.Sprintf("%s/%s.png", req.Scene, renderID)
		if err := s.publisher.Publish(r.Context(), key, img); err != nil {
			logger.Printf("Publish failed: %v\n", err)
			writeError(w, http.StatusBadGateway, "Upload failed")
			return
		}
		w.Header().Set("X-Render-Key", key)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
