package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/davel/go-realtime-tracer/pkg/renderer"
	"github.com/davel/go-realtime-tracer/pkg/scene"
)

const (
	maxDimension  = 1920
	defaultWidth  = 320
	defaultHeight = 320
)

// frameRequest holds the validated parameters of a frame or stream request
type frameRequest struct {
	Scene     string
	Width     int
	Height    int
	FPS       int // stream only: frames per second
	MaxFrames int // stream only: stop after this many frames, 0 = until disconnect
}

// FrameUpdate is a single streamed frame sent via SSE
type FrameUpdate struct {
	FrameNumber int    `json:"frameNumber"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	PrimaryRays int    `json:"primaryRays"`
	Hits        int    `json:"hits"`
	RenderMs    int64  `json:"renderMs"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// parseFrameRequest validates query parameters, applying defaults and bounds
func (s *Server) parseFrameRequest(r *http.Request) (frameRequest, error) {
	req := frameRequest{
		Scene:  "default",
		Width:  defaultWidth,
		Height: defaultHeight,
		FPS:    10,
	}

	q := r.URL.Query()
	if v := q.Get("scene"); v != "" {
		req.Scene = v
	}

	var err error
	if req.Width, err = intParam(q.Get("width"), req.Width, 1, maxDimension); err != nil {
		return req, fmt.Errorf("invalid width: %w", err)
	}
	if req.Height, err = intParam(q.Get("height"), req.Height, 1, maxDimension); err != nil {
		return req, fmt.Errorf("invalid height: %w", err)
	}
	if req.FPS, err = intParam(q.Get("fps"), req.FPS, 1, 60); err != nil {
		return req, fmt.Errorf("invalid fps: %w", err)
	}
	if req.MaxFrames, err = intParam(q.Get("frames"), 0, 0, 100000); err != nil {
		return req, fmt.Errorf("invalid frames: %w", err)
	}

	if _, err := scene.CreateScene(req.Scene); err != nil {
		return req, err
	}
	return req, nil
}

func intParam(raw string, fallback, min, max int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, err
	}
	if n < min || n > max {
		return fallback, fmt.Errorf("%d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}

// handleFrame renders a single frame of the requested scene and returns it
// as a PNG
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseFrameRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sc, _ := scene.CreateScene(req.Scene)
	rend := renderer.NewRenderer(renderer.RenderOptions{Width: req.Width, Height: req.Height})
	camera := renderer.NewCamera(sc.Camera)

	frame := rend.NewFrame()
	stats := rend.RenderFrame(sc, camera, frame)
	s.logger.Printf("Rendered %s frame: %v\n", req.Scene, stats)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, frame); err != nil {
		s.logger.Printf("Error encoding frame: %v\n", err)
	}
}

// handleStream renders the animated scene continuously and streams frames as
// Server-Sent Events until the client disconnects or the frame limit hits
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseFrameRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.setSSEHeaders(w)
	ctx := r.Context()

	sc, _ := scene.CreateScene(req.Scene)
	rend := renderer.NewRenderer(renderer.RenderOptions{Width: req.Width, Height: req.Height})
	camera := renderer.NewCamera(sc.Camera)
	frame := rend.NewFrame()

	dt := 1.0 / float64(req.FPS)
	ticker := time.NewTicker(time.Second / time.Duration(req.FPS))
	defer ticker.Stop()

	startTime := time.Now()
	s.logger.Printf("Streaming %s at %dx%d, %d FPS\n", req.Scene, req.Width, req.Height, req.FPS)

	for frameNumber := 1; ; frameNumber++ {
		stats := rend.RenderFrame(sc, camera, frame)

		imageData, err := imageToBase64PNG(frame)
		if err != nil {
			s.sendSSEEvent(w, "error", fmt.Sprintf(`{"message":%q}`, err.Error()))
			return
		}

		update := FrameUpdate{
			FrameNumber: frameNumber,
			ImageData:   imageData,
			PrimaryRays: stats.PrimaryRays,
			Hits:        stats.Hits,
			RenderMs:    stats.Duration.Milliseconds(),
			ElapsedMs:   time.Since(startTime).Milliseconds(),
		}
		data, err := json.Marshal(update)
		if err != nil {
			return
		}
		if err := s.sendSSEEvent(w, "frame", string(data)); err != nil {
			return
		}

		if req.MaxFrames > 0 && frameNumber >= req.MaxFrames {
			s.sendSSEEvent(w, "complete", fmt.Sprintf(`{"frames":%d}`, frameNumber))
			return
		}

		// Advance the animation only between renders
		sc.Advance(dt)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent writes one SSE event and flushes it to the client
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// imageToBase64PNG converts an image to a base64-encoded PNG string
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
