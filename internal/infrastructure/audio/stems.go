// Package audio mixes the looping music stems the player can toggle.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

// SampleRate is the output rate every stem is resampled to
const SampleRate = beep.SampleRate(48000)

// BufferSize is the speaker buffer passed to speaker.Init
var BufferSize = SampleRate.N(time.Millisecond * 100)

type stem struct {
	name   string
	volume *effects.Volume
	on     bool
}

// Stems is a mixer of looping tracks that all play in sync.
// Each stem is either on (0 dB) or muted (mutedDB); muting keeps the
// stream position so toggling never desyncs the tracks.
type Stems struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	stems   []*stem
	closers []beep.StreamSeekCloser
	mutedDB float64
	log     logrus.FieldLogger
}

// NewStems creates an empty stem mixer
func NewStems(mutedDB float64, log logrus.FieldLogger) *Stems {
	return &Stems{
		mixer:   &beep.Mixer{},
		mutedDB: mutedDB,
		log:     log,
	}
}

// Add appends a stem. New stems start muted.
func (s *Stems) Add(name string, src beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vol := &effects.Volume{
		Streamer: src,
		Base:     10,
		Volume:   s.mutedDB / 20,
	}
	s.stems = append(s.stems, &stem{name: name, volume: vol})
	s.mixer.Add(vol)
}

// Len returns the number of stems
func (s *Stems) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stems)
}

// Enabled reports whether stem i is audible
func (s *Stems) Enabled(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.stems) {
		return false
	}
	return s.stems[i].on
}

// Toggle flips stem i between 0 dB and the muted level.
// Returns the new state; out-of-range indices are ignored.
func (s *Stems) Toggle(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.stems) {
		return false
	}
	st := s.stems[i]
	st.on = !st.on
	if st.on {
		st.volume.Volume = 0
	} else {
		st.volume.Volume = s.mutedDB / 20
	}

	state := "OFF"
	if st.on {
		state = "ON"
	}
	s.log.WithField("stem", st.name).Infof("Stem %d: %s", i+1, state)
	return st.on
}

// Streamer returns the mixed output for speaker.Play
func (s *Stems) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.mixer.Stream(samples)
	})
}

// Close releases decoded stem files
func (s *Stems) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	s.mixer.Clear()
	return errors.Join(errs...)
}

// LoadStems decodes every WAV in paths and loops it forever.
// Stems with a different sample rate are resampled to SampleRate.
func LoadStems(fsys fs.FS, paths []string, mutedDB float64, log logrus.FieldLogger) (*Stems, error) {
	s := NewStems(mutedDB, log)
	for _, p := range paths {
		f, err := fsys.Open(p)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to open stem %s: %w", p, err)
		}
		streamer, format, err := wav.Decode(f)
		if err != nil {
			_ = f.Close()
			_ = s.Close()
			return nil, fmt.Errorf("failed to decode stem %s: %w", p, err)
		}
		s.closers = append(s.closers, streamer)

		var src beep.Streamer = beep.Loop(-1, streamer)
		if format.SampleRate != SampleRate {
			src = beep.Resample(4, format.SampleRate, SampleRate, src)
		}
		s.Add(p, src)
		log.WithFields(logrus.Fields{"path": p, "rate": int(format.SampleRate)}).Debug("stem loaded")
	}
	return s, nil
}
