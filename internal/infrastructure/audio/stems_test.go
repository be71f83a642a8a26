package audio

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func peak(s beep.Streamer) float64 {
	buf := make([][2]float64, 64)
	s.Stream(buf)
	top := 0.0
	for _, smp := range buf {
		if smp[0] > top {
			top = smp[0]
		}
	}
	return top
}

func TestStems_StartMuted(t *testing.T) {
	s := NewStems(-120, quietLogger())
	s.Add("bass", constant(0.5))

	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Enabled(0))
	assert.InDelta(t, 0, peak(s.Streamer()), 1e-6)
}

func TestStems_Toggle(t *testing.T) {
	s := NewStems(-120, quietLogger())
	s.Add("bass", constant(0.5))
	s.Add("drums", constant(0.25))

	assert.True(t, s.Toggle(0))
	assert.True(t, s.Enabled(0))
	assert.False(t, s.Enabled(1))
	assert.InDelta(t, 0.5, peak(s.Streamer()), 1e-3)

	assert.True(t, s.Toggle(1))
	assert.InDelta(t, 0.75, peak(s.Streamer()), 1e-3)

	assert.False(t, s.Toggle(0))
	assert.InDelta(t, 0.25, peak(s.Streamer()), 1e-3)
}

func TestStems_ToggleOutOfRange(t *testing.T) {
	s := NewStems(-120, quietLogger())
	s.Add("bass", constant(0.5))

	assert.False(t, s.Toggle(5))
	assert.False(t, s.Toggle(-1))
	assert.False(t, s.Enabled(5))
}

func TestLoadStems_MissingFile(t *testing.T) {
	_, err := LoadStems(fstest.MapFS{}, []string{"audio/none.wav"}, -120, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio/none.wav")
}

func TestLoadStems_NotWav(t *testing.T) {
	fsys := fstest.MapFS{"audio/bad.wav": {Data: []byte("garbage")}}

	_, err := LoadStems(fsys, []string{"audio/bad.wav"}, -120, quietLogger())
	assert.ErrorContains(t, err, "decode")
}

func TestLoadStems_Empty(t *testing.T) {
	s, err := LoadStems(fstest.MapFS{}, nil, -120, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.NoError(t, s.Close())
}
