// Package replay records and plays back per-frame logical input.
// Files are msgpack encoded.
package replay

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/snowfort/internal/application/system"
)

// Version is written into every replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F       int     `msgpack:"f"`           // Frame number
	Held    uint16  `msgpack:"h,omitempty"` // system.Action bitmask
	Pressed uint16  `msgpack:"p,omitempty"` // system.Action bitmask
	Scroll  float64 `msgpack:"s,omitempty"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `msgpack:"version"`
	Seed      uint32       `msgpack:"seed"`
	Level     string       `msgpack:"level"`
	StartTime string       `msgpack:"startTime"`
	DT        float64      `msgpack:"dt"`
	Frames    []FrameInput `msgpack:"frames"`
}

func toFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:       f,
		Held:    uint16(in.Held),
		Pressed: uint16(in.Pressed),
		Scroll:  in.Scroll,
	}
}

func (fi FrameInput) state() system.InputState {
	return system.InputState{
		Held:    system.Action(fi.Held),
		Pressed: system.Action(fi.Pressed),
		Scroll:  fi.Scroll,
	}
}

// Encode writes data to w
func Encode(w io.Writer, data *ReplayData) error {
	if err := msgpack.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// SaveReplay writes replay data to a file
func SaveReplay(filename string, data *ReplayData) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
