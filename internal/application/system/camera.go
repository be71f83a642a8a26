package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/ecs"
)

// Camera follows the player and maps world space (Y-up) to screen space (Y-down)
type Camera struct {
	Pos   mgl64.Vec2
	Scale float64 // 1 = ViewportHeight world units fill the screen height

	viewportHeight float64
	zoomMin        float64
	zoomMax        float64
	zoomSpeed      float64
}

// NewCamera creates a camera at the origin with scale 1
func NewCamera(viewportHeight, zoomMin, zoomMax, zoomSpeed float64) *Camera {
	return &Camera{
		Scale:          1,
		viewportHeight: viewportHeight,
		zoomMin:        zoomMin,
		zoomMax:        zoomMax,
		zoomSpeed:      zoomSpeed,
	}
}

// Update follows the player and applies the wheel zoom
func (c *Camera) Update(w *ecs.World, in InputState) {
	if p, ok := w.Player(); ok {
		c.Pos = p.Pos
	}
	c.Zoom(in.Scroll)
}

// Zoom scales by 1 - scroll*zoomSpeed, clamped to the zoom range
func (c *Camera) Zoom(scroll float64) {
	if scroll == 0 {
		return
	}
	c.Scale *= 1 - scroll*c.zoomSpeed
	c.Scale = max(c.zoomMin, min(c.Scale, c.zoomMax))
}

// PixelsPerUnit returns screen pixels per world unit for a screen height
func (c *Camera) PixelsPerUnit(screenH int) float64 {
	return float64(screenH) / (c.viewportHeight * c.Scale)
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(p mgl64.Vec2, screenW, screenH int) (float64, float64) {
	ppu := c.PixelsPerUnit(screenH)
	d := p.Sub(c.Pos)
	return float64(screenW)/2 + d.X()*ppu, float64(screenH)/2 - d.Y()*ppu
}

// ScreenToWorld converts screen pixels back to a world position
func (c *Camera) ScreenToWorld(sx, sy float64, screenW, screenH int) mgl64.Vec2 {
	ppu := c.PixelsPerUnit(screenH)
	return mgl64.Vec2{
		c.Pos.X() + (sx-float64(screenW)/2)/ppu,
		c.Pos.Y() - (sy-float64(screenH)/2)/ppu,
	}
}
