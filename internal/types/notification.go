package types

import "time"

// NotificationKind distinguishes the content of a notification
type NotificationKind int

const (
	NotificationAssigned NotificationKind = iota
	NotificationCompleted
	NotificationFailed
)

// String returns the string representation of the kind
func (k NotificationKind) String() string {
	switch k {
	case NotificationAssigned:
		return "assigned"
	case NotificationCompleted:
		return "completed"
	case NotificationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsOutcome reports whether the kind pre-empts other notifications
func (k NotificationKind) IsOutcome() bool {
	return k == NotificationCompleted || k == NotificationFailed
}

// Phase is the animation phase of the notification presenter
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseSlidingIn
	PhaseHolding
	PhaseSlidingOut
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseSlidingIn:
		return "sliding_in"
	case PhaseHolding:
		return "holding"
	case PhaseSlidingOut:
		return "sliding_out"
	default:
		return "unknown"
	}
}

// Notification is the content currently owned by the presenter
type Notification struct {
	Kind        NotificationKind
	TaskID      int
	Title       string
	Description string
	// AudioDuration is the reported length of the clip played on show
	AudioDuration time.Duration
}
