// Package notify presents transient task notifications.
//
// A Presenter shows one notification at a time. Each notification slides in,
// holds and slides out; the three phases together last the played clip's
// length plus a fixed extra display time. Completed and failed notifications
// pre-empt whatever is showing. An assigned notification requested while an
// outcome is on screen is parked in a single pending slot and shown after the
// outcome hides and a short delay has elapsed.
//
// The presenter has no goroutines or timers. The host advances it with Tick.
package notify

import (
	"log/slog"
	"time"

	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/types"
)

// Titles shown for outcome notifications
const (
	CompletedTitle = "Task Completed!"
	FailedTitle    = "Task Failed"
)

// Config holds the presenter timings and outcome sounds
type Config struct {
	ExtraDisplay   time.Duration
	SlideIn        time.Duration
	SlideOut       time.Duration
	DelayBetween   time.Duration
	CompletedSound *domain.AudioClip
	FailedSound    *domain.AudioClip
}

// DefaultConfig returns the stock timings
func DefaultConfig() Config {
	return Config{
		ExtraDisplay: 3 * time.Second,
		SlideIn:      300 * time.Millisecond,
		SlideOut:     300 * time.Millisecond,
		DelayBetween: 400 * time.Millisecond,
	}
}

// PhaseFunc is called after every phase change
type PhaseFunc func(phase types.Phase, n types.Notification)

// Presenter is the notification state machine
type Presenter struct {
	cfg    Config
	audio  AudioPlayer
	logger *slog.Logger

	phase   types.Phase
	elapsed time.Duration
	hold    time.Duration
	current types.Notification

	pending     *domain.Task
	waiting     bool
	waitElapsed time.Duration

	listeners []PhaseFunc
}

// New creates a hidden presenter. audio and logger may be nil.
func New(cfg Config, audio AudioPlayer, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Presenter{
		cfg:    cfg,
		audio:  audio,
		logger: logger,
		phase:  types.PhaseHidden,
	}
}

// OnPhaseChange registers fn to run after each phase transition
func (p *Presenter) OnPhaseChange(fn PhaseFunc) {
	p.listeners = append(p.listeners, fn)
}

// ShowAssigned announces a new current task. It is deferred into the pending
// slot while an outcome notification or the delay that follows it is running;
// a later request replaces an earlier pending one.
func (p *Presenter) ShowAssigned(task domain.Task) {
	if p.outcomeInFlight() || p.waiting {
		t := task
		p.pending = &t
		p.logger.Debug("assigned notification deferred", "task_id", task.ID, "phase", p.phase.String())
		return
	}

	p.cancel()
	p.start(types.Notification{
		Kind:        types.NotificationAssigned,
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
	}, task.Audio)
}

// ShowCompleted pre-empts the current notification with a completion message
func (p *Presenter) ShowCompleted(task domain.Task) {
	p.showOutcome(types.NotificationCompleted, CompletedTitle, task, p.cfg.CompletedSound)
}

// ShowFailed pre-empts the current notification with a failure message
func (p *Presenter) ShowFailed(task domain.Task) {
	p.showOutcome(types.NotificationFailed, FailedTitle, task, p.cfg.FailedSound)
}

// Hide forces the presenter to hidden and drops the pending notification
func (p *Presenter) Hide() {
	p.cancel()
	p.pending = nil
	p.logger.Debug("notifications hidden")
}

// SetExtraDisplayTime changes the extra time for notifications shown from now on
func (p *Presenter) SetExtraDisplayTime(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.cfg.ExtraDisplay = d
}

// Tick advances the state machine by dt. Time left over at the end of a phase
// is carried into the next one.
func (p *Presenter) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}

	if p.phase == types.PhaseHidden {
		if p.waiting {
			p.waitElapsed += dt
			p.flushPending()
		}
		return
	}

	p.elapsed += dt
	for p.phase != types.PhaseHidden {
		d := p.phaseDuration()
		if p.elapsed < d {
			return
		}
		p.elapsed -= d
		p.advance()
	}
}

// Phase returns the current animation phase
func (p *Presenter) Phase() types.Phase {
	return p.phase
}

// Visible reports whether a notification is on screen
func (p *Presenter) Visible() bool {
	return p.phase != types.PhaseHidden
}

// Current returns the notification on screen, if any
func (p *Presenter) Current() (types.Notification, bool) {
	if p.phase == types.PhaseHidden {
		return types.Notification{}, false
	}
	return p.current, true
}

// Pending returns the deferred assigned task, if any
func (p *Presenter) Pending() (domain.Task, bool) {
	if p.pending == nil {
		return domain.Task{}, false
	}
	return *p.pending, true
}

// HoldDuration returns the hold phase length of the current notification
func (p *Presenter) HoldDuration() time.Duration {
	return p.hold
}

// Elapsed returns the time spent in the current phase
func (p *Presenter) Elapsed() time.Duration {
	return p.elapsed
}

// Progress is how far the banner is slid in: 0 hidden, 1 fully shown
func (p *Presenter) Progress() float64 {
	switch p.phase {
	case types.PhaseSlidingIn:
		return fraction(p.elapsed, p.cfg.SlideIn)
	case types.PhaseHolding:
		return 1
	case types.PhaseSlidingOut:
		return 1 - fraction(p.elapsed, p.cfg.SlideOut)
	default:
		return 0
	}
}

// HoldFor returns max(0, audio + extra - slideIn - slideOut), so that the
// three phases together last audio + extra
func (p *Presenter) HoldFor(audio time.Duration) time.Duration {
	hold := audio + p.cfg.ExtraDisplay - p.cfg.SlideIn - p.cfg.SlideOut
	if hold < 0 {
		return 0
	}
	return hold
}

func (p *Presenter) showOutcome(kind types.NotificationKind, title string, task domain.Task, sound *domain.AudioClip) {
	p.cancel()
	p.start(types.Notification{
		Kind:        kind,
		TaskID:      task.ID,
		Title:       title,
		Description: task.Title,
	}, sound)
}

func (p *Presenter) outcomeInFlight() bool {
	return p.phase != types.PhaseHidden && p.current.Kind.IsOutcome()
}

// cancel stops whatever is running without completing it. The pending slot
// is kept.
func (p *Presenter) cancel() {
	if p.phase != types.PhaseHidden && p.audio != nil {
		p.audio.Stop()
	}
	p.waiting = false
	p.waitElapsed = 0
	p.elapsed = 0
	if p.phase != types.PhaseHidden {
		p.setPhase(types.PhaseHidden)
	}
}

func (p *Presenter) start(n types.Notification, clip *domain.AudioClip) {
	var audio time.Duration
	if clip != nil && p.audio != nil {
		audio = p.audio.Play(*clip)
	}
	n.AudioDuration = audio

	p.current = n
	p.hold = p.HoldFor(audio)
	p.elapsed = 0
	p.logger.Debug("notification shown",
		"kind", n.Kind.String(),
		"task_id", n.TaskID,
		"audio", audio,
		"hold", p.hold)
	p.setPhase(types.PhaseSlidingIn)
}

func (p *Presenter) phaseDuration() time.Duration {
	switch p.phase {
	case types.PhaseSlidingIn:
		return p.cfg.SlideIn
	case types.PhaseHolding:
		return p.hold
	case types.PhaseSlidingOut:
		return p.cfg.SlideOut
	default:
		return 0
	}
}

func (p *Presenter) advance() {
	switch p.phase {
	case types.PhaseSlidingIn:
		p.setPhase(types.PhaseHolding)
	case types.PhaseHolding:
		p.setPhase(types.PhaseSlidingOut)
	case types.PhaseSlidingOut:
		leftover := p.elapsed
		p.elapsed = 0
		p.setPhase(types.PhaseHidden)
		if p.pending != nil {
			p.waiting = true
			p.waitElapsed = leftover
			p.flushPending()
		}
	}
}

func (p *Presenter) flushPending() {
	if p.waitElapsed < p.cfg.DelayBetween {
		return
	}
	task := *p.pending
	p.pending = nil
	p.waiting = false
	p.waitElapsed = 0
	p.ShowAssigned(task)
}

func (p *Presenter) setPhase(phase types.Phase) {
	p.phase = phase
	for _, fn := range p.listeners {
		fn(phase, p.current)
	}
}

func fraction(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}
