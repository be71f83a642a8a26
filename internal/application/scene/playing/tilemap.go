package playing

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/assets"
)

type chunkLayer struct {
	anchor  mgl64.Vec2
	tileset assets.Handle
	tiles   []terrain.Tile
	baked   *ebiten.Image
}

// TilemapRenderer draws chunk tiles from a shared tileset atlas.
// Each chunk is baked into one offscreen image the first time its
// tileset is ready; until then the chunk is simply not drawn.
type TilemapRenderer struct {
	assets  *assets.Manager
	index   terrain.SpatialIndex
	columns int
	chunks  map[terrain.ChunkCoord]*chunkLayer
}

var _ system.TilemapBackend = (*TilemapRenderer)(nil)

// NewTilemapRenderer creates a renderer for atlases with columns tiles per row
func NewTilemapRenderer(am *assets.Manager, index terrain.SpatialIndex, columns int) *TilemapRenderer {
	if columns <= 0 {
		columns = 1
	}
	return &TilemapRenderer{
		assets:  am,
		index:   index,
		columns: columns,
		chunks:  make(map[terrain.ChunkCoord]*chunkLayer),
	}
}

// PlaceTiles implements system.TilemapBackend
func (r *TilemapRenderer) PlaceTiles(c terrain.ChunkCoord, anchor mgl64.Vec2, tileset assets.Handle, tiles []terrain.Tile) {
	r.RemoveTiles(c)
	r.chunks[c] = &chunkLayer{anchor: anchor, tileset: tileset, tiles: tiles}
}

// RemoveTiles implements system.TilemapBackend
func (r *TilemapRenderer) RemoveTiles(c terrain.ChunkCoord) {
	layer, ok := r.chunks[c]
	if !ok {
		return
	}
	if layer.baked != nil {
		layer.baked.Deallocate()
	}
	delete(r.chunks, c)
}

// Len returns the number of chunks with tiles
func (r *TilemapRenderer) Len() int { return len(r.chunks) }

// Has reports whether c currently has tiles
func (r *TilemapRenderer) Has(c terrain.ChunkCoord) bool {
	_, ok := r.chunks[c]
	return ok
}

// Draw renders every visible chunk through cam
func (r *TilemapRenderer) Draw(screen *ebiten.Image, cam *system.Camera) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := r.index.ChunkWorldSize()
	ppu := cam.PixelsPerUnit(sh)

	for _, layer := range r.chunks {
		// top-left corner in screen space (world is Y-up)
		x, y := cam.WorldToScreen(layer.anchor.Add(mgl64.Vec2{0, size}), sw, sh)
		px := size * ppu
		if x > float64(sw) || y > float64(sh) || x+px < 0 || y+px < 0 {
			continue
		}
		if layer.baked == nil && !r.bake(layer) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(px/float64(layer.baked.Bounds().Dx()), px/float64(layer.baked.Bounds().Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(layer.baked, op)
	}
}

func (r *TilemapRenderer) bake(layer *chunkLayer) bool {
	atlas, ok := r.assets.Image(layer.tileset)
	if !ok {
		return false
	}
	tilePx := atlas.Bounds().Dx() / r.columns
	if tilePx <= 0 {
		return false
	}
	side := r.index.ChunkSide
	baked := ebiten.NewImage(side*tilePx, side*tilePx)
	for _, t := range layer.tiles {
		sx := (int(t.Index) % r.columns) * tilePx
		sy := (int(t.Index) / r.columns) * tilePx
		src := atlas.SubImage(image.Rect(sx, sy, sx+tilePx, sy+tilePx)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.Local.X*tilePx), float64((side-1-t.Local.Y)*tilePx))
		baked.DrawImage(src, op)
	}
	layer.baked = baked
	return true
}
