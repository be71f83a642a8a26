package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/termview"
)

// storeSource reports ChunkStore containers to the terminal view
type storeSource struct {
	store *system.ChunkStore
}

func (s storeSource) ChunkState(c terrain.ChunkCoord) termview.ChunkState {
	chunk, ok := s.store.Lookup(c)
	switch {
	case !ok:
		return termview.ChunkAbsent
	case chunk.Loaded():
		return termview.ChunkLoaded
	default:
		return termview.ChunkEmpty
	}
}

// viewer moves the player one chunk per key press and redraws the window
type viewer struct {
	sim  *system.Simulation
	view *termview.View
	dt   float64
}

func newViewer(sim *system.Simulation, screen tcell.Screen, dt float64) *viewer {
	v := &viewer{sim: sim, view: termview.New(screen), dt: dt}
	v.sim.Step(system.InputState{}, v.dt)
	return v
}

// handle applies one terminal event. It returns false to quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.shift(0, 1)
		case tcell.KeyDown:
			v.shift(0, -1)
		case tcell.KeyLeft:
			v.shift(-1, 0)
		case tcell.KeyRight:
			v.shift(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				v.shift(0, 1)
			case 's':
				v.shift(0, -1)
			case 'a':
				v.shift(-1, 0)
			case 'd':
				v.shift(1, 0)
			case 'h':
				v.teleport(terrain.ChunkCoord{})
			case 'r':
				v.reload()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			center, _ := v.sim.PlayerChunk()
			v.teleport(v.view.ScreenToChunk(center, x, y))
		}
	}
	return true
}

func (v *viewer) shift(dx, dy int) {
	center, _ := v.sim.PlayerChunk()
	v.teleport(center.Add(dx, dy))
}

// teleport puts the player in the middle of chunk c and runs one tick
func (v *viewer) teleport(c terrain.ChunkCoord) {
	p, ok := v.sim.World.Player()
	if !ok {
		return
	}
	half := v.sim.Index.ChunkWorldSize() / 2
	p.Pos = v.sim.Index.ChunkToWorld(c).Add(mgl64.Vec2{half, half})
	v.sim.Step(system.InputState{}, v.dt)
}

// reload forgets every container and streams the window in from scratch
func (v *viewer) reload() {
	v.sim.Chunks.Reset()
	v.sim.Step(system.InputState{}, v.dt)
}

func (v *viewer) status() string {
	center, _ := v.sim.PlayerChunk()
	st := v.sim.LastReconcile
	return fmt.Sprintf(" chunk %s  loaded %d  containers %d  +%d ~%d -%d  [arrows/wasd move, click jump, h home, r reload, q quit]",
		center, v.sim.Chunks.LoadedCount(), v.sim.Chunks.Containers(),
		st.Spawned, st.Repopulated, st.Unloaded)
}

func (v *viewer) draw() {
	center, _ := v.sim.PlayerChunk()
	v.view.Draw(storeSource{store: v.sim.Chunks}, center, v.status())
}
