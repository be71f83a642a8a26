// Package termview draws the chunk streaming window in a terminal.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/snowfort/internal/domain/terrain"
)

// ChunkState is what the viewer knows about one chunk coordinate
type ChunkState int

const (
	ChunkAbsent ChunkState = iota // no container spawned
	ChunkEmpty                    // container without tiles
	ChunkLoaded                   // container with tiles
)

// ChunkSource reports chunk states to the viewer
type ChunkSource interface {
	ChunkState(c terrain.ChunkCoord) ChunkState
}

// Glyphs used per cell
const (
	GlyphPlayer = '@'
	GlyphLoaded = '#'
	GlyphEmpty  = '.'
	GlyphAbsent = ' '
)

var (
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLoaded = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// View renders one character per chunk, centered on the player chunk.
// Chunk Y grows upward, so higher chunks are drawn on earlier rows.
type View struct {
	screen tcell.Screen
}

// New wraps an initialized screen
func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw paints the chunk grid around center and a status line on the last row
func (v *View) Draw(src ChunkSource, center terrain.ChunkCoord, status string) {
	v.screen.Clear()
	w, h := v.screen.Size()
	rows := h - 1 // last row is the status line
	if rows < 1 || w < 1 {
		v.screen.Show()
		return
	}

	midX, midY := w/2, rows/2
	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < w; sx++ {
			c := terrain.ChunkCoord{X: center.X + sx - midX, Y: center.Y + midY - sy}
			r, style := cell(src.ChunkState(c))
			if c == center {
				r, style = GlyphPlayer, stylePlayer
			}
			v.screen.SetContent(sx, sy, r, nil, style)
		}
	}

	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
	v.screen.Show()
}

// ScreenToChunk returns the chunk drawn at screen cell (sx, sy)
func (v *View) ScreenToChunk(center terrain.ChunkCoord, sx, sy int) terrain.ChunkCoord {
	w, h := v.screen.Size()
	midX, midY := w/2, (h-1)/2
	return terrain.ChunkCoord{X: center.X + sx - midX, Y: center.Y + midY - sy}
}

func cell(s ChunkState) (rune, tcell.Style) {
	switch s {
	case ChunkLoaded:
		return GlyphLoaded, styleLoaded
	case ChunkEmpty:
		return GlyphEmpty, styleEmpty
	default:
		return GlyphAbsent, tcell.StyleDefault
	}
}
