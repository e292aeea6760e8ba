// Package command maps the analysis actions of the main window onto the
// routines in package analysis. Each action is an ID in a fixed table; the
// dispatcher checks the session state, runs the handler and hands the outcome
// to a Presenter.
package command

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/dixieflatline76/Lumen/pkg/analysis"
	"github.com/dixieflatline76/Lumen/pkg/plot"
	"github.com/dixieflatline76/Lumen/pkg/session"
	"github.com/dixieflatline76/Lumen/util/log"
)

// NoImageWarning is shown when an action needs an image and none is loaded.
const NoImageWarning = "No image opened."

// ErrUnknownCommand is returned for IDs outside the dispatch table.
var ErrUnknownCommand = errors.New("unknown command")

// ID names an analysis action.
type ID int

const (
	Grayscale ID = iota
	Histograms
	Haralick
	HuMoments
	Classify
)

// IDs lists every action in the order the buttons appear.
func IDs() []ID {
	return []ID{Grayscale, Histograms, Haralick, HuMoments, Classify}
}

func (id ID) String() string {
	switch id {
	case Grayscale:
		return "grayscale"
	case Histograms:
		return "histograms"
	case Haralick:
		return "haralick"
	case HuMoments:
		return "hu-moments"
	case Classify:
		return "classify"
	default:
		return fmt.Sprintf("command(%d)", int(id))
	}
}

// Label is the button caption for the action.
func (id ID) Label() string {
	switch id {
	case Grayscale:
		return "Convert to Grayscale"
	case Histograms:
		return "Show Histograms"
	case Haralick:
		return "Compute Haralick Descriptors"
	case HuMoments:
		return "Compute Hu Moments"
	case Classify:
		return "Classify Image"
	default:
		return id.String()
	}
}

// Artifact is a rendered image the presenter shows in its own window.
type Artifact struct {
	Title string
	Image image.Image
}

// Outcome is what one action produced. Any field may be empty.
type Outcome struct {
	Lines     []string   // appended to the session log
	Artifacts []Artifact // shown one after another
	Warning   string     // shown as a non-fatal warning
}

// Presenter displays outcomes. Show must present the artifacts in order,
// each after the previous one is dismissed.
type Presenter interface {
	Warn(msg string)
	Show(artifacts ...Artifact)
}

// Handler runs one action. img is nil only for unguarded actions on an empty session.
type Handler func(ctx context.Context, img *session.LoadedImage) (Outcome, error)

// MomentsFunc computes the raw moments of an image.
type MomentsFunc func(img *image.NRGBA) (analysis.RawMoments, error)

// ClassifyFunc labels an image. It returns analysis.ErrNotImplemented while no
// classifier is available.
type ClassifyFunc func(img image.Image) (string, error)

// GrayMoments converts img to grayscale and computes its moments in Go.
func GrayMoments(img *image.NRGBA) (analysis.RawMoments, error) {
	return analysis.Moments(analysis.Grayscale(img)), nil
}

type entry struct {
	handler Handler
	guarded bool // requires a loaded image
}

// Dispatcher holds the action table.
type Dispatcher struct {
	table    map[ID]entry
	moments  MomentsFunc
	classify ClassifyFunc
	texture  analysis.TextureOptions
	plot     plot.Options
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMoments replaces the moment computation, e.g. with the OpenCV backend.
func WithMoments(fn MomentsFunc) Option {
	return func(d *Dispatcher) { d.moments = fn }
}

// WithClassifier replaces the classifier behind the Classify action.
func WithClassifier(fn ClassifyFunc) Option {
	return func(d *Dispatcher) { d.classify = fn }
}

// WithTextureOptions overrides the co-occurrence parameters.
func WithTextureOptions(o analysis.TextureOptions) Option {
	return func(d *Dispatcher) { d.texture = o }
}

// WithPlotOptions sets the histogram chart size.
func WithPlotOptions(o plot.Options) Option {
	return func(d *Dispatcher) { d.plot = o }
}

// NewDispatcher builds the table of the five analysis actions.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		moments:  GrayMoments,
		classify: analysis.Classify,
		texture:  analysis.DefaultTextureOptions(),
		plot:     plot.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.table = map[ID]entry{
		Grayscale:  {handler: d.grayscale, guarded: true},
		Histograms: {handler: d.histograms, guarded: true},
		Haralick:   {handler: d.haralick, guarded: true},
		HuMoments:  {handler: d.huMoments, guarded: true},
		Classify:   {handler: d.classifyImage, guarded: false},
	}
	return d
}

// Dispatch runs the action id against the session and returns its outcome.
// Guarded actions on an empty session yield NoImageWarning without running.
func (d *Dispatcher) Dispatch(ctx context.Context, id ID, s *session.Session) (Outcome, error) {
	e, ok := d.table[id]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %v", ErrUnknownCommand, id)
	}

	var img *session.LoadedImage
	switch st := s.State().(type) {
	case session.Loaded:
		img = st.Image
	case session.Empty:
		if e.guarded {
			return Outcome{Warning: NoImageWarning}, nil
		}
	}

	log.Debugf("session %s: dispatch %v", s.ID(), id)
	out, err := e.handler(ctx, img)
	if err != nil {
		return Outcome{}, fmt.Errorf("running %v: %w", id, err)
	}
	return out, nil
}

// Run dispatches id and applies the outcome: lines go to the session log,
// the warning and artifacts to p.
func (d *Dispatcher) Run(ctx context.Context, id ID, s *session.Session, p Presenter) error {
	out, err := d.Dispatch(ctx, id, s)
	if err != nil {
		return err
	}
	s.Log().Append(out.Lines...)
	if out.Warning != "" {
		p.Warn(out.Warning)
	}
	if len(out.Artifacts) > 0 {
		p.Show(out.Artifacts...)
	}
	return nil
}
