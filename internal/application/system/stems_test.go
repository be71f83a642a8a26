package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStems struct {
	toggled []int
}

func (f *fakeStems) Toggle(i int) bool {
	f.toggled = append(f.toggled, i)
	return true
}

func TestToggleStems(t *testing.T) {
	f := &fakeStems{}

	ToggleStems(f, InputState{Pressed: ActionStem1 | ActionStem3})
	ToggleStems(f, InputState{Held: ActionStem2})

	assert.Equal(t, []int{0, 2}, f.toggled, "only presses toggle")
}

func TestToggleStems_NilToggler(t *testing.T) {
	assert.NotPanics(t, func() {
		ToggleStems(nil, InputState{Pressed: ActionStem1})
	})
}
