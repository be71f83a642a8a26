// Package assets loads images asynchronously and hands out shared handles.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp" // register BMP decoder
)

// Handle is an opaque reference to a loaded image. Zero is invalid.
type Handle uint64

// State is the load state of a handle
type State int

const (
	StateUnknown State = iota
	StatePending
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

type entry struct {
	path    string
	refs    int
	state   State
	decoded image.Image
	img     *ebiten.Image
	err     error
}

// Manager decodes images from an fs.FS in the background.
// Loading the same path twice shares one handle; Release drops a reference
// and frees the image when the last one is gone.
type Manager struct {
	mu      sync.Mutex
	fsys    fs.FS
	log     logrus.FieldLogger
	next    Handle
	byPath  map[string]Handle
	entries map[Handle]*entry
	wg      sync.WaitGroup
}

// NewManager creates a manager reading from fsys
func NewManager(fsys fs.FS, log logrus.FieldLogger) *Manager {
	return &Manager{
		fsys:    fsys,
		log:     log,
		byPath:  make(map[string]Handle),
		entries: make(map[Handle]*entry),
	}
}

// Load requests path and returns its handle immediately.
// Decoding continues in the background; poll Image or State.
func (m *Manager) Load(path string) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.byPath[path]; ok {
		m.entries[h].refs++
		return h
	}

	m.next++
	h := m.next
	m.byPath[path] = h
	m.entries[h] = &entry{path: path, refs: 1, state: StatePending}

	m.wg.Add(1)
	go m.decode(h, path)
	return h
}

func (m *Manager) decode(h Handle, path string) {
	defer m.wg.Done()

	img, err := m.readImage(path)

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[h]
	if !ok {
		return // released while loading
	}
	if err != nil {
		e.state = StateFailed
		e.err = err
		m.log.WithError(err).WithField("path", path).Warn("asset load failed")
		return
	}
	e.decoded = img
	e.state = StateReady
}

func (m *Manager) readImage(path string) (image.Image, error) {
	f, err := m.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// State returns the load state of h
func (m *Manager) State(h Handle) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[h]; ok {
		return e.state
	}
	return StateUnknown
}

// Err returns the load error for a failed handle
func (m *Manager) Err(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[h]; ok {
		return e.err
	}
	return nil
}

// Image returns the GPU image for h, uploading it on first use.
// Must be called from the game loop (Update or Draw).
func (m *Manager) Image(h Handle) (*ebiten.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[h]
	if !ok || e.state != StateReady {
		return nil, false
	}
	if e.img == nil {
		e.img = ebiten.NewImageFromImage(e.decoded)
		e.decoded = nil
	}
	return e.img, true
}

// Release drops one reference to h. The last release frees the image.
// Releasing an unknown handle is a no-op.
func (m *Manager) Release(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[h]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	if e.img != nil {
		e.img.Deallocate()
	}
	delete(m.entries, h)
	delete(m.byPath, e.path)
}

// Refs returns the reference count of h
func (m *Manager) Refs(h Handle) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[h]; ok {
		return e.refs
	}
	return 0
}

// Wait blocks until every pending load has finished
func (m *Manager) Wait() {
	m.wg.Wait()
}
