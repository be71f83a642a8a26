package replay

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snowfort/internal/application/system"
)

type scriptedInput struct {
	frames []system.InputState
	i      int
}

func (s *scriptedInput) Poll() system.InputState {
	if s.i >= len(s.frames) {
		return system.InputState{}
	}
	in := s.frames[s.i]
	s.i++
	return in
}

var script = []system.InputState{
	{Held: system.ActionUp},
	{Held: system.ActionUp | system.ActionRight, Pressed: system.ActionRight},
	{Pressed: system.ActionPlaceTower, Held: system.ActionPlaceTower},
	{Scroll: -1.5},
	{},
}

func TestRecorder_RecordsPolledFrames(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: script}, 7, "home", 1.0/60)

	for range script {
		rec.Poll()
	}

	assert.Equal(t, len(script), rec.FrameCount())
	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, uint32(7), data.Seed)
	assert.Equal(t, 2, data.Frames[2].F)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: script}, 1, "home", 1.0/60)
	rec.Poll()
	rec.Stop()

	in := rec.Poll()
	assert.Equal(t, script[1], in, "input still passes through")
	assert.Equal(t, 1, rec.FrameCount())
	assert.False(t, rec.IsRecording())
}

func TestReplay_RoundTrip(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: script}, 42, "home", 1.0/60)
	for range script {
		rec.Poll()
	}

	var buf bytes.Buffer
	data := rec.Data()
	require.NoError(t, Encode(&buf, &data))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, *decoded)

	r := NewReplayer(*decoded)
	assert.Equal(t, uint32(42), r.Seed())
	for i, want := range script {
		got, ok := r.Next()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := r.Next()
	assert.False(t, ok)
	assert.True(t, r.Done())
	assert.Equal(t, system.InputState{}, r.Poll())
}

func TestReplay_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack")
	rec := NewRecorder(&scriptedInput{frames: script}, 3, "home", 1.0/60)
	for range script {
		rec.Poll()
	}

	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, len(script))
	assert.Equal(t, "home", data.Level)
}

func TestReplay_SaveEmpty(t *testing.T) {
	rec := NewRecorder(&scriptedInput{}, 0, "home", 1.0/60)
	err := rec.Save(filepath.Join(t.TempDir(), "empty.msgpack"))
	assert.Error(t, err)
}

func TestReplay_LoadMissing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.msgpack"))
	assert.Error(t, err)
}

func TestReplay_DecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0xc1}))
	assert.Error(t, err)
}

func TestReplayer_Reset(t *testing.T) {
	r := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, Held: uint16(system.ActionDown)}}})
	r.Next()
	assert.Equal(t, 1, r.CurrentFrame())

	r.Reset()
	in, ok := r.Next()
	require.True(t, ok)
	assert.True(t, in.IsHeld(system.ActionDown))
	assert.Equal(t, 1, r.TotalFrames())
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.msgpack$`, GenerateFilename())
}
