package core

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	frames  [][]Event
	calls   []string
	missing string
	closed  bool
}

func (r *fakeRenderer) Name() string { return "fake" }

func (r *fakeRenderer) LoadSprite(file string) (Sprite, error) {
	if file == r.missing {
		return nil, errors.New("no such file")
	}
	return file, nil
}

func (r *fakeRenderer) Clear() { r.calls = append(r.calls, "clear") }

func (r *fakeRenderer) Present() { r.calls = append(r.calls, "present") }

func (r *fakeRenderer) Draw(sprite Sprite, x, y, width, height int) {
	r.calls = append(r.calls, fmt.Sprintf("draw %s %d,%d %dx%d", sprite, x, y, width, height))
}

func (r *fakeRenderer) PollEvents() []Event {
	if len(r.frames) == 0 {
		return nil
	}
	events := r.frames[0]
	r.frames = r.frames[1:]
	return events
}

func (r *fakeRenderer) Close() error {
	r.closed = true
	return nil
}

func newTestGame(t *testing.T, r *fakeRenderer) (*Game, *[]time.Duration) {
	g, err := NewGame(r, DefaultSettings())
	require.NoError(t, err)
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }
	return g, &slept
}

func TestNewGame(t *testing.T) {
	t.Run("should create ball and paddle from settings", func(t *testing.T) {
		g, _ := newTestGame(t, &fakeRenderer{})
		assert.Equal(t, StateRunning, g.State())
		assert.Equal(t, "dot.bmp", g.Ball().Sprite)
		assert.Equal(t, "paddle.bmp", g.Paddle().Sprite)
		assert.Equal(t, 270, g.Paddle().X)
		assert.Equal(t, 464, g.Paddle().Y)
	})
	t.Run("should fail fast when a sprite cannot be loaded", func(t *testing.T) {
		_, err := NewGame(&fakeRenderer{missing: "paddle.bmp"}, DefaultSettings())
		assert.ErrorContains(t, err, "paddle.bmp")
	})
	t.Run("should reject invalid settings", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Velocity = 0
		_, err := NewGame(&fakeRenderer{}, settings)
		assert.Error(t, err)
	})
}

func TestGameStep(t *testing.T) {
	t.Run("should clear, draw both, present and sleep in order", func(t *testing.T) {
		r := &fakeRenderer{}
		g, slept := newTestGame(t, r)
		g.Step()
		assert.Equal(t, []string{
			"clear",
			"draw dot.bmp 43,43 20x20",
			"draw paddle.bmp 270,464 100x16",
			"present",
		}, r.calls)
		assert.Equal(t, []time.Duration{100 * time.Millisecond}, *slept)
		assert.Equal(t, 1, g.Frame())
	})
	t.Run("should move the paddle with the latest event only", func(t *testing.T) {
		r := &fakeRenderer{frames: [][]Event{
			{KeyDown(KeyRight), KeyDown(KeyLeft)},
			{KeyDown(KeyLeft), {Type: EventOther}},
			{KeyDown(KeyRight)},
			{},
		}}
		g, _ := newTestGame(t, r)
		g.Step()
		assert.Equal(t, 247, g.Paddle().X)
		g.Step()
		assert.Equal(t, 247, g.Paddle().X)
		g.Step()
		assert.Equal(t, 270, g.Paddle().X)
		g.Step()
		assert.Equal(t, 270, g.Paddle().X)
	})
	t.Run("should finish the frame when quit is requested", func(t *testing.T) {
		r := &fakeRenderer{frames: [][]Event{{{Type: EventQuit}, KeyDown(KeyRight)}}}
		g, slept := newTestGame(t, r)
		g.Step()
		assert.Equal(t, StateTerminated, g.State())
		assert.Equal(t, OutcomeQuit, g.Outcome())
		assert.Equal(t, 293, g.Paddle().X)
		assert.Equal(t, 1, g.Frame())
		assert.Len(t, *slept, 1)
		assert.Equal(t, "present", r.calls[len(r.calls)-1])
	})
	t.Run("should do nothing once terminated", func(t *testing.T) {
		r := &fakeRenderer{frames: [][]Event{{{Type: EventQuit}}}}
		g, _ := newTestGame(t, r)
		g.Step()
		calls := len(r.calls)
		g.Step()
		assert.Len(t, r.calls, calls)
	})
}

func TestGameRun(t *testing.T) {
	t.Run("should end with a miss when nobody moves the paddle", func(t *testing.T) {
		r := &fakeRenderer{}
		g, _ := newTestGame(t, r)
		outcome := g.Run()
		assert.Equal(t, OutcomeBallMissed, outcome)
		assert.Equal(t, StateTerminated, g.State())
		assert.Equal(t, 480, g.Ball().Y)
		assert.Equal(t, 19, g.Frame())
		assert.Equal(t, "draw paddle.bmp 270,464 100x16", r.calls[len(r.calls)-1])
	})
	t.Run("should bounce off the paddle and keep running until quit", func(t *testing.T) {
		frames := make([][]Event, 25)
		for i := 0; i < 4; i++ {
			frames[i] = []Event{KeyDown(KeyRight)}
		}
		frames[24] = []Event{{Type: EventQuit}}
		r := &fakeRenderer{frames: frames}
		g, _ := newTestGame(t, r)
		outcome := g.Run()
		assert.Equal(t, OutcomeQuit, outcome)
		assert.Equal(t, 25, g.Frame())
		assert.Equal(t, 362, g.Paddle().X)
		assert.Equal(t, -1, g.Ball().DirY)
		assert.Less(t, g.Ball().Y, 457)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(OutcomeQuit))
	assert.Equal(t, -1, ExitCode(OutcomeBallMissed))
	assert.Equal(t, "ball missed", OutcomeBallMissed.String())
}
