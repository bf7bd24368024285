package banner

import (
	"strings"
	"testing"
	"time"

	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/services/notify"
	"github.com/riordanpawley/questlog/internal/types"
	"github.com/riordanpawley/questlog/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	n        types.Notification
	visible  bool
	progress float64
}

func (f fakeSource) Current() (types.Notification, bool) { return f.n, f.visible }
func (f fakeSource) Progress() float64                   { return f.progress }

func TestRenderer_Render_Hidden(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render(fakeSource{}, 80)

	assert.Equal(t, "", result, "Hidden presenter should render nothing")
}

func TestRenderer_Render_Holding(t *testing.T) {
	renderer := New(styles.New())
	src := fakeSource{
		n:        types.Notification{Kind: types.NotificationAssigned, Title: "Learn to jump", Description: "Defeat Somnior"},
		visible:  true,
		progress: 1,
	}

	result := renderer.Render(src, 80)

	assert.Contains(t, result, "Learn to jump")
	assert.Contains(t, result, "Defeat Somnior")
	assert.False(t, strings.HasPrefix(result, "\n"), "fully visible banner is not shifted")
}

func TestRenderer_Render_Kinds(t *testing.T) {
	renderer := New(styles.New())

	kinds := []types.NotificationKind{
		types.NotificationAssigned,
		types.NotificationCompleted,
		types.NotificationFailed,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			src := fakeSource{n: types.Notification{Kind: kind, Title: "Title"}, visible: true, progress: 1}
			assert.Contains(t, renderer.Render(src, 80), "Title")
		})
	}
}

func TestRenderer_Shift(t *testing.T) {
	renderer := New(styles.New())

	tests := []struct {
		progress float64
		want     int
	}{
		{0, 3},
		{0.5, 2},
		{1, 0},
		{-1, 3},
		{2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, renderer.Shift(tt.progress), "progress %v", tt.progress)
	}
}

func TestRenderer_Render_Sliding(t *testing.T) {
	renderer := New(styles.New()).WithOffset(4)
	src := fakeSource{
		n:        types.Notification{Title: "Sliding"},
		visible:  true,
		progress: 0.5,
	}

	result := renderer.Render(src, 80)

	assert.True(t, strings.HasPrefix(result, "\n\n"), "half-way banner is pushed down two lines")
	assert.Contains(t, result, "Sliding")
}

func TestRenderer_Render_Presenter(t *testing.T) {
	p := notify.New(notify.DefaultConfig(), notify.NewClipPlayer(), nil)
	renderer := New(styles.New())

	p.ShowCompleted(*domain.NewTask(1, "Talk to Ethan", ""))
	p.Tick(time.Second)

	result := renderer.Render(p, 80)
	assert.Contains(t, result, notify.CompletedTitle)
	assert.Contains(t, result, "Talk to Ethan")
}
