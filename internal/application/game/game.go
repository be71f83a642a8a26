// Package game drives the active scene from ebiten's update loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/application/scene"
)

// ErrQuit is returned by a scene to end the game cleanly.
var ErrQuit = errors.New("quit")

// Option configures a Game
type Option func(*Game)

// WithDT sets the fixed timestep handed to scenes
func WithDT(dt float64) Option {
	return func(g *Game) { g.dt = dt }
}

// WithLogger routes scene transition logs to log
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) { g.log = log }
}

// Game implements ebiten.Game on top of a single active scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     logrus.FieldLogger
	closed  bool
}

// New creates a Game and enters the initial scene.
func New(initial scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene and applies any transition.
// A scene returning ErrQuit stops the loop with ebiten.Termination.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ErrQuit) {
		g.Close()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.log.WithField("dt", g.dt).Debug("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once. Call it after ebiten.RunGame returns
// so recordings are flushed when the window is closed.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// DT returns the fixed timestep
func (g *Game) DT() float64 { return g.dt }
