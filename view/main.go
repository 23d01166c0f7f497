package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/davel/go-realtime-tracer/pkg/renderer"
	"github.com/davel/go-realtime-tracer/pkg/scene"
)

const windowTitle = "go-realtime-tracer"

func main() {
	// Optional .env carries the window defaults; flags override it
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using built-in defaults")
	}

	sceneType := flag.String("scene", envOr("RT_SCENE", "default"),
		"Scene type: "+strings.Join(scene.SceneNames(), ", "))
	width := flag.Int("width", envInt("RT_WIDTH", 640), "Render width in pixels")
	height := flag.Int("height", envInt("RT_HEIGHT", 640), "Render height in pixels")
	workers := flag.Int("workers", envInt("RT_WORKERS", 0), "Render workers (0 = one per CPU)")
	flag.Parse()

	selectedScene, err := scene.CreateScene(*sceneType)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(renderer.RenderOptions{
		Width:      *width,
		Height:     *height,
		NumWorkers: *workers,
	})

	game := NewGame(selectedScene, r)

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)

	log.Printf("Rendering scene %q at %dx%d", *sceneType, *width, *height)
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
