package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/davel/go-realtime-tracer/pkg/renderer"
	"github.com/davel/go-realtime-tracer/pkg/scene"
)

// Game drives the renderer from ebiten's fixed-rate loop: the scene advances
// once per tick, a full frame is traced per draw, and the resulting buffer is
// uploaded as a texture. The renderer itself knows nothing about the window.
type Game struct {
	scene    *scene.Scene
	camera   *renderer.Camera
	renderer *renderer.Renderer

	frame   *image.RGBA   // reused across frames
	texture *ebiten.Image // GPU-side copy of the frame

	stats      renderer.RenderStats
	frameCount int
}

// NewGame creates the viewer state for a scene
func NewGame(s *scene.Scene, r *renderer.Renderer) *Game {
	return &Game{
		scene:    s,
		camera:   renderer.NewCamera(s.Camera),
		renderer: r,
		frame:    r.NewFrame(),
	}
}

// Update advances the animation one tick. Runs strictly between renders, so
// the scene is never mutated while a frame is being traced.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.scene.Advance(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw traces the current frame and pushes it to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.stats = g.renderer.RenderFrame(g.scene, g.camera, g.frame)

	opts := g.renderer.Options()
	if g.texture == nil {
		g.texture = ebiten.NewImage(opts.Width, opts.Height)
	}
	g.texture.WritePixels(g.frame.Pix)
	screen.DrawImage(g.texture, nil)

	g.frameCount++
	if g.frameCount%15 == 0 {
		ebiten.SetWindowTitle(fmt.Sprintf("%s | %.1f FPS | %v", windowTitle, ebiten.ActualFPS(), g.stats))
	}
}

// Layout fixes the logical screen to the render resolution; the window may
// scale it but rays are only ever cast at the configured size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	opts := g.renderer.Options()
	return opts.Width, opts.Height
}
