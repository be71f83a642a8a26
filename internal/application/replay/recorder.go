package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/snowfort/internal/application/system"
)

// Recorder wraps an InputSource and records every polled frame
type Recorder struct {
	src       system.InputSource
	data      ReplayData
	recording bool
}

// NewRecorder records input from src
func NewRecorder(src system.InputSource, seed uint32, level string, dt float64) *Recorder {
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			DT:        dt,
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// Poll implements system.InputSource
func (r *Recorder) Poll() system.InputState {
	in := r.src.Poll()
	if r.recording {
		r.data.Frames = append(r.data.Frames, toFrame(len(r.data.Frames), in))
	}
	return in
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return SaveReplay(filename, &r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.msgpack", time.Now().Format("20060102_150405"))
}
