package notify

import (
	"time"

	"github.com/riordanpawley/questlog/internal/domain"
)

// AudioPlayer plays notification sounds.
// The presenter only needs the reported clip duration.
type AudioPlayer interface {
	// Play starts the clip and returns its duration
	Play(clip domain.AudioClip) time.Duration
	// Stop discards whatever is playing
	Stop()
}

// ClipPlayer is an AudioPlayer without an output device. It reports each
// clip's declared length and remembers what was played.
type ClipPlayer struct {
	played  []domain.AudioClip
	playing bool
}

// NewClipPlayer creates an empty ClipPlayer
func NewClipPlayer() *ClipPlayer {
	return &ClipPlayer{}
}

// Play records the clip and returns its length
func (c *ClipPlayer) Play(clip domain.AudioClip) time.Duration {
	c.played = append(c.played, clip)
	c.playing = true
	return clip.Length
}

// Stop marks playback as stopped
func (c *ClipPlayer) Stop() {
	c.playing = false
}

// Playing reports whether a clip was started and not stopped since
func (c *ClipPlayer) Playing() bool {
	return c.playing
}

// Played returns the clips played so far, oldest first
func (c *ClipPlayer) Played() []domain.AudioClip {
	out := make([]domain.AudioClip, len(c.played))
	copy(out, c.played)
	return out
}
