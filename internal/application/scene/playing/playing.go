// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/snowfort/internal/application/replay"
	"github.com/younwookim/snowfort/internal/application/scene"
	"github.com/younwookim/snowfort/internal/application/state"
	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/ecs"
	"github.com/younwookim/snowfort/internal/infrastructure/assets"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{200, 215, 230, 255}
	colorPlayer  = color.RGBA{60, 120, 220, 255}
	colorEnemy   = color.RGBA{200, 60, 60, 255}
	colorTower   = color.RGBA{90, 90, 110, 255}
	colorBullet  = color.RGBA{30, 30, 30, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
	colorHUD     = color.RGBA{20, 20, 40, 255}
)

const (
	enemySize  = 32.0
	bulletSize = 6.0
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Options configures a Playing scene
type Options struct {
	Config *config.GameConfig
	Level  *system.HomeLevel // optional authored home area
	Assets *assets.Manager
	Input  system.InputSource
	Stems  system.StemToggler // optional
	Log    logrus.FieldLogger

	// RecordPath enables input recording when non-empty
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	sim    *system.Simulation
	gen    *terrain.CachedGenerator
	tiles  *TilemapRenderer
	assets *assets.Manager
	input  system.InputSource
	log    logrus.FieldLogger
	state  state.GameState
	dt     float64

	tileset assets.Handle
	player  sprite
	enemy   sprite
	tower   sprite
	bullet  sprite

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(opts Options) (*Playing, error) {
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	input := opts.Input
	if input == nil {
		input = system.EbitenInput{}
	}

	gen, err := system.NewGenerator(cfg.World)
	if err != nil {
		return nil, err
	}

	am := opts.Assets
	tileset := am.Load(cfg.World.Tileset)
	index := system.NewSpatialIndex(cfg.World)
	tiles := NewTilemapRenderer(am, index, cfg.World.TilesetColumns)

	storeOpts := []system.ChunkStoreOption{system.WithBackend(tiles)}
	if opts.Level != nil {
		storeOpts = append(storeOpts, system.WithAuthoredLevel(opts.Level))
	}
	sim := system.NewSimulation(cfg, gen, system.TerrainConfig{
		Tileset:          tileset,
		DefaultTileIndex: terrain.TileIndex(cfg.World.DefaultTileIndex),
	}, log, storeOpts...)
	sim.Stems = opts.Stems

	if opts.Level != nil {
		if p, ok := sim.World.Player(); ok {
			p.Pos = opts.Level.Spawn
		}
	}

	p := &Playing{
		config:  cfg,
		sim:     sim,
		gen:     gen,
		tiles:   tiles,
		assets:  am,
		input:   input,
		log:     log,
		state:   state.StateLoading,
		dt:      1.0 / float64(cfg.Display.Framerate),
		tileset: tileset,
		player:  sprite{handle: am.Load(cfg.Player.Sprite), size: cfg.Player.Size, fallback: colorPlayer},
		enemy:   sprite{handle: am.Load(cfg.Enemy.Sprite), size: enemySize, fallback: colorEnemy},
		tower:   sprite{handle: am.Load(cfg.Combat.TowerSprite), size: cfg.Combat.TowerSize, fallback: colorTower},
		bullet:  sprite{handle: am.Load(cfg.Combat.BulletSprite), size: bulletSize, fallback: colorBullet},

		recordFilename: opts.RecordPath,
	}

	sim.Combat.OnKill = func(system.KillEvent) {
		p.log.WithField("kills", p.sim.Combat.Kills()).Debug("kill")
	}

	if opts.RecordPath != "" {
		level := cfg.World.HomeLevel
		p.recorder = replay.NewRecorder(p.input, cfg.World.Seed, level, p.dt)
		p.input = p.recorder
		p.log.WithFields(logrus.Fields{"path": opts.RecordPath, "seed": cfg.World.Seed}).Info("recording enabled")
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.state == state.StateLoading {
		if p.assets.State(p.tileset) == assets.StatePending {
			return nil, nil
		}
		if err := p.assets.Err(p.tileset); err != nil {
			p.log.WithError(err).Warn("tileset unavailable, terrain will stay invisible")
		}
		p.state = state.StatePlaying
	}
	if p.state == state.StateReplayEnded {
		return nil, nil
	}

	in := p.input.Poll()
	if in.WasJustPressed(system.ActionPause) {
		p.state = p.state.TogglePause()
	}
	if !p.state.Ticking() {
		return nil, nil
	}

	p.sim.Step(in, p.dt)

	if st := p.sim.LastReconcile; st.Changed() {
		center, _ := p.sim.PlayerChunk()
		p.log.WithFields(logrus.Fields{
			"center":      center.String(),
			"spawned":     st.Spawned,
			"repopulated": st.Repopulated,
			"unloaded":    st.Unloaded,
		}).Debug("chunk window moved")
	}

	if r, ok := p.input.(*replay.Replayer); ok && r.Done() {
		p.state = state.StateReplayEnded
		p.log.WithField("frames", r.TotalFrames()).Info("replay finished")
	}

	return nil, nil // nil = stay on this scene
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.tiles.Draw(screen, p.sim.Camera)

	w := p.sim.World
	w.Towers.Each(func(_ ecs.Handle, t *entity.Tower) bool {
		p.drawSprite(screen, p.tower, t.Pos, t.Rotation)
		return true
	})
	w.Enemies.Each(func(_ ecs.Handle, e *entity.Enemy) bool {
		p.drawSprite(screen, p.enemy, e.Pos, 0)
		return true
	})
	w.Bullets.Each(func(_ ecs.Handle, b *entity.Bullet) bool {
		p.drawSprite(screen, p.bullet, b.Pos, b.Rotation)
		return true
	})
	if pl, ok := w.Player(); ok {
		p.drawSprite(screen, p.player, pl.Pos, 0)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StateLoading:
		p.drawOverlay(screen, "LOADING")
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayEnded:
		p.drawOverlay(screen, "REPLAY FINISHED")
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	pos := mgl64.Vec2{}
	if pl, ok := p.sim.World.Player(); ok {
		pos = pl.Pos
	}
	chunk, _ := p.sim.PlayerChunk()
	lines := fmt.Sprintf(
		"pos %.0f,%.0f  chunk %s\nchunks %d/%d  towers %d  enemies %d  bullets %d  kills %d\nzoom %.2f",
		pos.X(), pos.Y(), chunk,
		p.sim.Chunks.LoadedCount(), p.sim.Chunks.Containers(),
		p.sim.World.Towers.Len(), p.sim.World.CountEnemies(), p.sim.Combat.BulletCount(), p.sim.Combat.Kills(),
		p.sim.Camera.Scale,
	)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, lines, hudFace, op)

	help := "WASD: Move | Space: Tower | 1-3: Stems | Wheel: Zoom | ESC: Pause"
	op = &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy()-20))
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, help, hudFace, op)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, msg string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DrawRect(screen, 0, 0, float64(sw), float64(sh), colorOverlay)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(sw)/2-60, float64(sh)/2-20)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, hudFace, op)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{"path": filename, "frames": p.recorder.FrameCount()}).Info("recording saved")
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithField("renderDistance", p.config.World.RenderDistance).Info("entering world")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	p.gen.Close()
	p.releaseAssets()
}

// releaseAssets drops the scene's references to its images
func (p *Playing) releaseAssets() {
	for _, s := range []sprite{p.player, p.enemy, p.tower, p.bullet} {
		p.assets.Release(s.handle)
	}
	p.assets.Release(p.tileset)
}

// Simulation exposes the running simulation
func (p *Playing) Simulation() *system.Simulation { return p.sim }

// State returns the current scene state
func (p *Playing) State() state.GameState { return p.state }
