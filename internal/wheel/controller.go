package wheel

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// State is the controller's mode. Exactly one mutator owns the rotation
// angle in each state.
type State int

const (
	Idle State = iota
	Dragging
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

const (
	DefaultDuration      = 5 * time.Second
	DefaultFullTurns     = 10 * math.Pi
	DefaultEasingPower   = 3.0
	DefaultAmbientStep   = 0.002
	DefaultDragThreshold = 3.0
)

// EntrySource is read-only access to the ordered entry list.
type EntrySource interface {
	Entries() []string
}

// Rand supplies uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// SessionID identifies one spin. Frames carrying any other ID are ignored.
type SessionID uuid.UUID

func (id SessionID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id names no session.
func (id SessionID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// AmbientToken identifies one run of the idle rotation timer.
type AmbientToken uuid.UUID

// Session is the immutable description of an in-flight spin.
type Session struct {
	ID          SessionID
	StartAngle  float64
	TargetAngle float64
	StartTime   time.Time
	Duration    time.Duration
	Entries     []string
}

// Winner is the outcome of a completed spin.
type Winner struct {
	Session SessionID
	Index   int
	Entry   string
	// Angle is the un-normalized resting angle the winner was read from.
	Angle float64
}

// FrameResult reports what a frame did.
type FrameResult struct {
	// Applied is false when the frame belonged to a superseded session.
	Applied  bool
	Angle    float64
	Progress float64
	Done     bool
	Winner   Winner
}

// Next reports whether the host should schedule another frame.
func (r FrameResult) Next() bool {
	return r.Applied && !r.Done
}

// Controller owns the disc rotation and drives spins frame by frame.
// It is not safe for concurrent use: every call must come from the single
// goroutine that runs the host's frame loop.
type Controller struct {
	source EntrySource

	duration      time.Duration
	fullTurns     float64
	easingPower   float64
	ambientStep   float64
	dragThreshold float64
	rng           Rand
	sound         Sound
	onWinner      func(Winner)
	onSpinStart   func()
	logf          func(format string, args ...interface{})

	state   State
	angle   float64
	session *Session
	ambient AmbientToken

	dragStartAngle   float64
	dragStartPointer float64
	dragX, dragY     float64
	dragDistance     float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDuration sets the spin's real-time duration.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithFullTurns sets the whole-turn part of every spin. Values below 10π are raised to 10π.
func WithFullTurns(radians float64) Option {
	return func(c *Controller) {
		c.fullTurns = math.Max(radians, DefaultFullTurns)
	}
}

// WithEasingPower sets p in 1-(1-t)^p. Values below 3 are raised to 3.
func WithEasingPower(p float64) Option {
	return func(c *Controller) {
		c.easingPower = math.Max(p, DefaultEasingPower)
	}
}

// WithAmbientStep sets the idle rotation increment per ambient tick.
func WithAmbientStep(step float64) Option {
	return func(c *Controller) {
		if step > 0 {
			c.ambientStep = step
		}
	}
}

// WithDragThreshold sets the pointer displacement a drag must exceed to spin on release.
func WithDragThreshold(d float64) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.dragThreshold = d
		}
	}
}

func WithRand(r Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

func WithSound(s Sound) Option {
	return func(c *Controller) {
		if s != nil {
			c.sound = s
		}
	}
}

// WithOnWinner registers the winner sink, called exactly once per completed spin.
func WithOnWinner(fn func(Winner)) Option {
	return func(c *Controller) { c.onWinner = fn }
}

// WithOnSpinStart registers a hook that runs before the target is chosen.
// It may reorder the entry source; the entry count is read after it returns.
func WithOnSpinStart(fn func()) Option {
	return func(c *Controller) { c.onSpinStart = fn }
}

func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(c *Controller) { c.logf = logf }
}

// WithAngle sets the initial rotation.
func WithAngle(angle float64) Option {
	return func(c *Controller) { c.angle = angle }
}

// NewController creates an idle controller reading entries from source.
func NewController(source EntrySource, opts ...Option) *Controller {
	c := &Controller{
		source:        source,
		duration:      DefaultDuration,
		fullTurns:     DefaultFullTurns,
		easingPower:   DefaultEasingPower,
		ambientStep:   DefaultAmbientStep,
		dragThreshold: DefaultDragThreshold,
		rng:           globalRand{},
		sound:         nopSound{},
		logf:          func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Angle returns the current, un-normalized rotation.
func (c *Controller) Angle() float64 { return c.angle }

func (c *Controller) Duration() time.Duration { return c.duration }

// Session returns a copy of the active spin session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Slices returns the geometry to draw this frame. During a spin it is the
// layout captured when the spin started.
func (c *Controller) Slices() []Slice {
	if c.session != nil {
		return Layout(c.session.Entries)
	}
	return Layout(c.source.Entries())
}

// StartSpin begins a spin from the current angle. It returns false, with no
// state change, when a spin is already running or fewer than two entries exist.
func (c *Controller) StartSpin(now time.Time) (SessionID, bool) {
	if c.state == Spinning {
		c.logf("spin rejected: already spinning")
		return SessionID{}, false
	}
	if len(c.source.Entries()) < 2 {
		c.logf("spin rejected: %d entries", len(c.source.Entries()))
		return SessionID{}, false
	}

	if c.onSpinStart != nil {
		c.onSpinStart()
	}
	entries := append([]string(nil), c.source.Entries()...)
	if len(entries) < 2 {
		c.logf("spin rejected after start hook: %d entries", len(entries))
		return SessionID{}, false
	}

	c.cancelAmbient()
	c.state = Spinning
	c.sound.Stop(WinCue)
	c.sound.Play(SpinCue)

	start := c.angle
	c.session = &Session{
		ID:          SessionID(uuid.New()),
		StartAngle:  start,
		TargetAngle: start + c.fullTurns + c.rng.Float64()*TwoPi,
		StartTime:   now,
		Duration:    c.duration,
		Entries:     entries,
	}
	c.logf("spin %s started: %d entries, %.3f -> %.3f", c.session.ID, len(entries), start, c.session.TargetAngle)
	return c.session.ID, true
}

// Ease is the decelerating curve 1-(1-t)^power for t in [0, 1].
func Ease(t, power float64) float64 {
	return 1 - math.Pow(1-t, power)
}

// Frame advances the spin identified by id to time now. Frames for any
// other session leave all state untouched.
func (c *Controller) Frame(id SessionID, now time.Time) FrameResult {
	s := c.session
	if s == nil || s.ID != id || c.state != Spinning {
		return FrameResult{}
	}

	progress := float64(now.Sub(s.StartTime)) / float64(s.Duration)
	progress = math.Max(0, math.Min(1, progress))
	eased := Ease(progress, c.easingPower)
	c.angle = s.StartAngle + (s.TargetAngle-s.StartAngle)*eased

	res := FrameResult{Applied: true, Angle: c.angle, Progress: progress}
	if progress < 1 {
		return res
	}

	idx := ResolveWinner(c.angle, len(s.Entries))
	w := Winner{Session: s.ID, Index: idx, Entry: s.Entries[idx], Angle: c.angle}

	// The next spin starts from the normalized angle so rotation does not
	// grow without bound across spins.
	c.angle = Normalize(c.angle)
	c.state = Idle
	c.session = nil
	c.sound.Stop(SpinCue)
	c.sound.Play(WinCue)
	c.logf("spin %s finished: winner %d %q at %.3f", w.Session, w.Index, w.Entry, w.Angle)

	res.Angle = c.angle
	res.Done = true
	res.Winner = w
	if c.onWinner != nil {
		c.onWinner(w)
	}
	return res
}
