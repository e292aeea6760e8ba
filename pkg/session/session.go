// Package session owns the state of one Lumen window: the currently loaded
// image, if any, and the append-only log of results shown to the user.
package session

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/dixieflatline76/Lumen/util/log"
	"github.com/google/uuid"
)

// OpenedMessage is appended to the log after every successful open.
const OpenedMessage = "Image opened successfully!"

// ErrNoPath is returned by Open when the file selection was cancelled.
var ErrNoPath = errors.New("no file selected")

// LoadedImage is a decoded image together with the file it came from.
type LoadedImage struct {
	Path   string
	Pixels *image.NRGBA // 8 bits per channel, origin at (0, 0)
}

// Name returns the base name of the source file.
func (li *LoadedImage) Name() string {
	return filepath.Base(li.Path)
}

// State is either Empty or Loaded.
type State interface {
	isState()
}

// Empty is the state before the first successful open.
type Empty struct{}

// Loaded holds the current image.
type Loaded struct {
	Image *LoadedImage
}

func (Empty) isState()  {}
func (Loaded) isState() {}

// Session is the state of one application window. It is not safe for
// concurrent use; all calls are expected on the UI goroutine.
type Session struct {
	id      string
	state   State
	log     *Log
	decoder Decoder
}

// New creates an empty session that loads files with dec.
func New(dec Decoder) *Session {
	return &Session{
		id:      uuid.NewString(),
		state:   Empty{},
		log:     &Log{},
		decoder: dec,
	}
}

// ID uniquely identifies the session in application logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Log returns the session log.
func (s *Session) Log() *Log {
	return s.log
}

// Open decodes the file at path and makes it the current image, replacing
// any previous one. On any failure, including an empty path, the state and
// the log are left untouched.
func (s *Session) Open(path string) (*LoadedImage, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	img, err := s.decoder.Decode(path)
	if err != nil {
		log.Printf("session %s: failed to open %s: %v", s.id, path, err)
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	li := &LoadedImage{Path: path, Pixels: img}
	s.state = Loaded{Image: li}
	s.log.Append(OpenedMessage)
	log.Printf("session %s: opened %s (%dx%d)", s.id, path, img.Bounds().Dx(), img.Bounds().Dy())
	return li, nil
}

// Current returns the loaded image, or false when the session is empty.
func (s *Session) Current() (*LoadedImage, bool) {
	if l, ok := s.state.(Loaded); ok {
		return l.Image, true
	}
	return nil, false
}
