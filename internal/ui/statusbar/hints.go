package statusbar

import "github.com/riordanpawley/questlog/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModePlay:
		return "Space: complete  1-9: by id  Tab: next  t: tasks  ?: help  q: quit"
	case types.ModeTasks:
		return "Space: complete  Tab: next  t: close  x: dismiss  q: quit"
	case types.ModeHelp:
		return "?: close  q: quit"
	case types.ModeLevelDone:
		return "n: next level  r: re-arm events  q: quit"
	default:
		return ""
	}
}
