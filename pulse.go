package shimmer

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/shimmer/internal/debug"
)

const (
	// DefaultPulseDuration is the half-period of the opacity oscillation.
	DefaultPulseDuration = 600 * time.Millisecond
	// DefaultFrameInterval is how often a running pulse recomputes its value.
	DefaultFrameInterval = 33 * time.Millisecond
	// MinOpacity and MaxOpacity bound the oscillation.
	MinOpacity = 0.3
	MaxOpacity = 0.7
)

// PulseSource is what synthesized blocks read their opacity from.
type PulseSource interface {
	Opacity() float64
}

// StaticPulse is a PulseSource frozen at one opacity.
type StaticPulse float64

// Opacity returns the fixed opacity.
func (s StaticPulse) Opacity() float64 {
	return float64(s)
}

type pulseState uint8

const (
	pulseIdle pulseState = iota
	pulseRunning
	pulseStopped
)

// Pulse is a continuously looping value that rises from 0 to 1 over one
// half-period and falls back over the next, mapped onto an opacity range.
// The loop runs in its own goroutine between Start and Stop; it is the only
// writer of the value, and readers see an atomic snapshot.
type Pulse struct {
	half      time.Duration
	low, high float64
	frame     time.Duration
	now       func() time.Time
	onFrame   []func()
	logger    *slog.Logger

	value  atomic.Uint64 // math.Float64bits of the progress in [0,1]
	frames chan struct{}

	mu      sync.Mutex
	state   pulseState
	started time.Time
	stopCh  chan struct{}
	done    chan struct{}
}

var _ PulseSource = (*Pulse)(nil)

// PulseOption configures a Pulse.
type PulseOption func(*Pulse)

// WithHalfPeriod sets how long one rise (or one fall) takes.
// Non-positive durations fall back to DefaultPulseDuration.
func WithHalfPeriod(d time.Duration) PulseOption {
	return func(p *Pulse) {
		if d > 0 {
			p.half = d
		}
	}
}

// WithOpacityRange sets the opacity at the bottom and top of the wave.
func WithOpacityRange(low, high float64) PulseOption {
	return func(p *Pulse) {
		p.low, p.high = low, high
	}
}

// WithFrameInterval sets how often the loop recomputes the value.
func WithFrameInterval(d time.Duration) PulseOption {
	return func(p *Pulse) {
		if d > 0 {
			p.frame = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) PulseOption {
	return func(p *Pulse) {
		p.now = now
	}
}

// WithOnFrame registers a subscriber called from the loop goroutine after
// every frame. Subscribers must not block.
func WithOnFrame(fn func()) PulseOption {
	return func(p *Pulse) {
		if fn != nil {
			p.onFrame = append(p.onFrame, fn)
		}
	}
}

// WithPulseLogger sets the logger for lifecycle records.
func WithPulseLogger(logger *slog.Logger) PulseOption {
	return func(p *Pulse) {
		p.logger = logger
	}
}

// NewPulse creates a stopped pulse resting at the bottom of its range.
func NewPulse(opts ...PulseOption) *Pulse {
	p := &Pulse{
		half:   DefaultPulseDuration,
		low:    MinOpacity,
		high:   MaxOpacity,
		frame:  DefaultFrameInterval,
		now:    time.Now,
		frames: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = debug.Logger()
	}
	return p
}

// Start begins the loop. Only the first call on a fresh pulse has an
// effect; a stopped pulse never restarts.
func (p *Pulse) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != pulseIdle {
		return
	}
	p.state = pulseRunning
	p.started = p.now()
	p.stopCh = make(chan struct{})
	p.logger.Debug("pulse started", "half_period", p.half)
	go p.loop(p.stopCh)
}

// Stop cancels the loop and waits for it to exit. It is safe to call more
// than once and before Start.
func (p *Pulse) Stop() {
	p.mu.Lock()
	prev := p.state
	p.state = pulseStopped
	if prev == pulseRunning {
		close(p.stopCh)
	}
	p.mu.Unlock()

	switch prev {
	case pulseRunning:
		<-p.done
		p.logger.Debug("pulse stopped")
	case pulseIdle:
		close(p.done)
	}
}

// Running reports whether the loop is active.
func (p *Pulse) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == pulseRunning
}

// HalfPeriod returns the duration of one rise.
func (p *Pulse) HalfPeriod() time.Duration {
	return p.half
}

// Progress returns the current position of the wave in [0,1].
func (p *Pulse) Progress() float64 {
	return math.Float64frombits(p.value.Load())
}

// Opacity returns the current opacity in [low, high].
func (p *Pulse) Opacity() float64 {
	return p.low + (p.high-p.low)*p.Progress()
}

// Frames delivers a signal after each frame. Signals coalesce: a slow
// reader sees at most one pending frame.
func (p *Pulse) Frames() <-chan struct{} {
	return p.frames
}

// Done is closed once the pulse has stopped.
func (p *Pulse) Done() <-chan struct{} {
	return p.done
}

func (p *Pulse) loop(stopCh <-chan struct{}) {
	defer close(p.done)

	ticker := time.NewTicker(p.frame)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			p.advance()
		}
	}
}

// advance recomputes the value from elapsed time and notifies subscribers.
func (p *Pulse) advance() {
	p.value.Store(math.Float64bits(progressAt(p.now().Sub(p.started), p.half)))

	select {
	case p.frames <- struct{}{}:
	default:
	}
	for _, fn := range p.onFrame {
		fn()
	}
}

// progressAt evaluates the triangle wave: 0→1 over half, 1→0 over the next half.
func progressAt(elapsed, half time.Duration) float64 {
	if half <= 0 || elapsed <= 0 {
		return 0
	}
	phase := elapsed % (2 * half)
	if phase < half {
		return float64(phase) / float64(half)
	}
	return 2 - float64(phase)/float64(half)
}
