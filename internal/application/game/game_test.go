package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/snowfort/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(*ebiten.Image) { m.drawCalled++ }
func (m *mockScene) OnEnter()           { m.onEnterCalled++ }
func (m *mockScene) OnExit()            { m.onExitCalled++ }

func quiet() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, 1.0/60.0, g.DT())
}

func TestGame_WithDT(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, WithDT(0.02), WithLogger(quiet()))

	assert.NoError(t, g.Update())
	assert.Equal(t, 0.02, s.lastDT)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)

	g.Draw(nil)
	assert.Equal(t, 1, s.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 320, 240, WithLogger(quiet()))

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
	assert.Equal(t, 1, scene1.updateCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}
	assert.Equal(t, 5, s.updateCalled)
	assert.Equal(t, 0, s.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	g := New(&mockScene{updateErr: assert.AnError}, 320, 240)

	assert.ErrorIs(t, g.Update(), assert.AnError)
}

func TestGame_QuitTerminates(t *testing.T) {
	s := &mockScene{updateErr: fmt.Errorf("player left: %w", ErrQuit)}
	g := New(s, 320, 240)

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, s.onExitCalled, "quitting exits the scene")

	g.Close()
	assert.Equal(t, 1, s.onExitCalled, "Close after quit is a no-op")
}

func TestGame_CloseOnce(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)

	g.Close()
	g.Close()
	assert.Equal(t, 1, s.onExitCalled)
}
