// Package banner renders the notification presenter's current notification.
package banner

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/types"
	"github.com/riordanpawley/questlog/internal/ui/styles"
)

// DefaultOffset is how many lines a banner travels while sliding
const DefaultOffset = 3

// Source is the read side of a notification presenter
type Source interface {
	Current() (types.Notification, bool)
	Progress() float64
}

// Renderer handles rendering of the notification banner
type Renderer struct {
	styles *styles.Styles
	offset int
}

// New creates a new Renderer with the given styles
func New(styles *styles.Styles) *Renderer {
	return &Renderer{
		styles: styles,
		offset: DefaultOffset,
	}
}

// WithOffset sets the slide distance in lines
func (r *Renderer) WithOffset(lines int) *Renderer {
	if lines < 0 {
		lines = 0
	}
	r.offset = lines
	return r
}

// Render renders the banner, pushed down by the slide offset.
// Returns empty string when nothing is visible.
func (r *Renderer) Render(src Source, width int) string {
	n, ok := src.Current()
	if !ok {
		return ""
	}

	bannerWidth := width / 2
	if bannerWidth > 50 {
		bannerWidth = 50 // Cap maximum banner width
	}
	if bannerWidth < 20 {
		bannerWidth = 20
	}

	body := r.styles.BannerTitle.Render(n.Title)
	if n.Description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, n.Description)
	}
	box := r.styleForKind(n.Kind).Width(bannerWidth).Render(body)

	shift := r.Shift(src.Progress())
	if shift == 0 {
		return box
	}
	return strings.Repeat("\n", shift) + box
}

// Shift returns the number of blank lines above the banner for a visibility
// progress in [0,1]
func (r *Renderer) Shift(progress float64) int {
	progress = math.Max(0, math.Min(1, progress))
	return int(math.Round((1 - progress) * float64(r.offset)))
}

// styleForKind returns the appropriate style for a notification kind
func (r *Renderer) styleForKind(kind types.NotificationKind) lipgloss.Style {
	switch kind {
	case types.NotificationCompleted:
		return r.styles.BannerCompleted
	case types.NotificationFailed:
		return r.styles.BannerFailed
	default:
		return r.styles.BannerAssigned
	}
}
