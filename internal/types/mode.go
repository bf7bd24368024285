// Package types contains shared types used across the application.
package types

// Mode represents what the player is currently looking at
type Mode int

const (
	ModePlay Mode = iota
	ModeTasks
	ModeHelp
	ModeLevelDone
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "PLAY"
	case ModeTasks:
		return "TASKS"
	case ModeHelp:
		return "HELP"
	case ModeLevelDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}
