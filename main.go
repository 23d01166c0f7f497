package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davel/go-realtime-tracer/pkg/renderer"
	"github.com/davel/go-realtime-tracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: "+strings.Join(scene.SceneNames(), ", "))
	width := flag.Int("width", 640, "Output width in pixels")
	height := flag.Int("height", 640, "Output height in pixels")
	frames := flag.Int("frames", 1, "Number of animation frames to render")
	workers := flag.Int("workers", 1, "Rows rendered in parallel (1 = serial)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Realtime Sphere Tracer")
		fmt.Println("Usage: tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/frame_<n>.png")
		return
	}

	selectedScene, err := scene.CreateScene(*sceneType)
	if err != nil {
		fmt.Printf("%v. Using default scene.\n", err)
		selectedScene = scene.NewDefaultScene()
		*sceneType = "default"
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	r := renderer.NewRenderer(renderer.RenderOptions{
		Width:      *width,
		Height:     *height,
		NumWorkers: *workers,
	})
	camera := renderer.NewCamera(selectedScene.Camera)
	frame := r.NewFrame()

	fmt.Printf("Rendering %d frame(s) of scene %q at %dx%d...\n", *frames, *sceneType, *width, *height)

	startTime := time.Now()
	for i := 0; i < *frames; i++ {
		stats := r.RenderFrame(selectedScene, camera, frame)

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", i))
		if err := savePNG(filename, frame); err != nil {
			fmt.Printf("Error saving frame %d: %v\n", i, err)
			return
		}
		fmt.Printf("Frame %d: %v -> %s\n", i, stats, filename)

		// Animation steps at the display rate the viewer uses
		selectedScene.Advance(1.0 / 60)
	}

	fmt.Printf("Completed in %v\n", time.Since(startTime))
}

func savePNG(filename string, img *image.RGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return nil
}
