package shimmer

import (
	"log/slog"
	"time"

	"github.com/grindlemire/shimmer/internal/debug"
)

// RootKey is the key of the outermost placeholder a Loader renders.
const RootKey = "shimmer-root"

// State is the loader's lifecycle state.
type State uint8

const (
	// Idle renders the real children; no pulse runs.
	Idle State = iota
	// Shimmering renders placeholders bound to a running pulse.
	Shimmering
)

// String returns the state's name.
func (s State) String() string {
	if s == Shimmering {
		return "shimmering"
	}
	return "idle"
}

// LoaderProps are sampled on every render.
type LoaderProps struct {
	// IsLoading selects Shimmering over Idle.
	IsLoading bool
	// PulseDuration is the half-period of the oscillation. Zero means
	// DefaultPulseDuration.
	PulseDuration time.Duration
	// RightToLeft sets the writing direction of the outermost placeholder.
	RightToLeft bool
	// CustomLayout, when set, is shown verbatim while loading instead of
	// synthesized placeholders.
	CustomLayout Node
	// Children is the real content.
	Children Node
}

// Loader shows real content when it is available and a pulsing placeholder
// approximation of it while it is not. Render and Close must be called from
// the goroutine that owns rendering.
type Loader struct {
	state    State
	pulse    *Pulse
	duration time.Duration

	logger    *slog.Logger
	synthOpts []SynthOption
	pulseOpts []PulseOption
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used by the loader and everything it creates.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithSynthOptions passes options to every synthesis pass.
func WithSynthOptions(opts ...SynthOption) LoaderOption {
	return func(l *Loader) {
		l.synthOpts = append(l.synthOpts, opts...)
	}
}

// WithPulseOptions passes options to every pulse the loader starts.
func WithPulseOptions(opts ...PulseOption) LoaderOption {
	return func(l *Loader) {
		l.pulseOpts = append(l.pulseOpts, opts...)
	}
}

// WithRepaint registers a callback for every pulse frame, so the host can
// request a repaint. It is called from the pulse goroutine and must not block.
func WithRepaint(fn func()) LoaderOption {
	return func(l *Loader) {
		l.pulseOpts = append(l.pulseOpts, WithOnFrame(fn))
	}
}

// NewLoader creates an idle Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = debug.Logger()
	}
	return l
}

// Render returns what should be shown for props. Idle returns
// props.Children untouched. Shimmering returns a *Placeholder root carrying
// the writing direction and either the custom layout (verbatim) or the
// synthesized placeholders of props.Children.
func (l *Loader) Render(props LoaderProps) Node {
	if !props.IsLoading {
		l.stop()
		return props.Children
	}

	duration := props.PulseDuration
	if duration <= 0 {
		duration = DefaultPulseDuration
	}
	if l.state == Shimmering && duration != l.duration {
		l.stop()
	}
	if l.state == Idle {
		l.start(duration)
	}

	root := &Placeholder{
		Kind:      PlaceholderContainer,
		Key:       RootKey,
		Direction: LTR,
	}
	if props.RightToLeft {
		root.Direction = RTL
	}

	if props.CustomLayout != nil {
		root.Verbatim = props.CustomLayout
		return root
	}

	synthOpts := append([]SynthOption{WithLogger(l.logger)}, l.synthOpts...)
	root.Children = NewSynthesizer(l.pulse, synthOpts...).Synthesize(props.Children)
	return root
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	return l.state
}

// Pulse returns the running pulse, or nil when Idle.
func (l *Loader) Pulse() *Pulse {
	return l.pulse
}

// Close stops any running pulse. The loader is Idle afterwards and may be
// rendered again.
func (l *Loader) Close() {
	l.stop()
}

func (l *Loader) start(duration time.Duration) {
	opts := append([]PulseOption{WithPulseLogger(l.logger)}, l.pulseOpts...)
	opts = append(opts, WithHalfPeriod(duration))

	l.pulse = NewPulse(opts...)
	l.pulse.Start()
	l.duration = duration
	l.state = Shimmering
	l.logger.Debug("loader: shimmering", "pulse_duration", duration)
}

func (l *Loader) stop() {
	if l.state != Shimmering {
		return
	}
	l.pulse.Stop()
	l.pulse = nil
	l.duration = 0
	l.state = Idle
	l.logger.Debug("loader: idle")
}
