package playing

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/snowfort/internal/infrastructure/assets"
)

// sprite is a loaded image plus the color drawn while it is not ready
type sprite struct {
	handle   assets.Handle
	size     float64 // world units
	fallback color.Color
}

// drawSprite renders s centered on pos, rotated counter-clockwise by rotation
func (p *Playing) drawSprite(screen *ebiten.Image, s sprite, pos mgl64.Vec2, rotation float64) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	cam := p.sim.Camera
	x, y := cam.WorldToScreen(pos, sw, sh)
	px := s.size * cam.PixelsPerUnit(sh)
	if x+px < 0 || y+px < 0 || x-px > float64(sw) || y-px > float64(sh) {
		return
	}

	img, ok := p.assets.Image(s.handle)
	if !ok {
		ebitenutil.DrawRect(screen, x-px/2, y-px/2, px, px, s.fallback)
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(px/w, px/h)
	// screen Y points down, so world CCW is screen CW
	op.GeoM.Rotate(-rotation)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
