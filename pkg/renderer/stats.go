package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a single rendered frame
type RenderStats struct {
	Width       int           // Frame width in pixels
	Height      int           // Frame height in pixels
	PrimaryRays int           // Rays cast, one per pixel
	Hits        int           // Rays that intersected an object
	Duration    time.Duration // Wall time spent rendering the frame
}

// FPS returns the frame rate this render time sustains, or 0 for an
// unmeasured frame
func (rs RenderStats) FPS() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(time.Second) / float64(rs.Duration)
}

// HitRatio returns the fraction of primary rays that hit an object
func (rs RenderStats) HitRatio() float64 {
	if rs.PrimaryRays == 0 {
		return 0
	}
	return float64(rs.Hits) / float64(rs.PrimaryRays)
}

// String formats the stats for log lines and window titles
func (rs RenderStats) String() string {
	return fmt.Sprintf("%dx%d | %d rays | %.0f%% hit | %.1fms (%.1f FPS)",
		rs.Width, rs.Height, rs.PrimaryRays, 100*rs.HitRatio(),
		float64(rs.Duration)/float64(time.Millisecond), rs.FPS())
}
