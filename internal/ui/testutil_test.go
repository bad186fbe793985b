package ui

import (
	"image/color"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/geom"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

// fakeInput drives the input seams from a test.
type fakeInput struct {
	x, y int
	down bool
	keys map[ebiten.Key]bool
}

func installInput(t *testing.T) *fakeInput {
	t.Helper()
	in := &fakeInput{keys: map[ebiten.Key]bool{}}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.down },
		func(k ebiten.Key) bool { return in.keys[k] },
	)
	t.Cleanup(restore)
	return in
}

func (in *fakeInput) at(x, y int, down bool) { in.x, in.y, in.down = x, y, down }

type circleCall struct {
	c    geom.Pos
	r    float64
	col  color.Color
	fill bool
}

type lineCall struct{ a, b geom.Pos }

// drawLog records calls to the draw primitives instead of painting.
type drawLog struct {
	circles []circleCall
	lines   []lineCall
	labels  []string
}

func captureDraws(t *testing.T) *drawLog {
	t.Helper()
	l := &drawLog{}
	oldFill, oldStroke, oldLine, oldLabel := fillCircle, strokeCircle, strokeLine, drawLabel
	fillCircle = func(_ *ebiten.Image, c geom.Pos, r float64, col color.Color) {
		l.circles = append(l.circles, circleCall{c, r, col, true})
	}
	strokeCircle = func(_ *ebiten.Image, c geom.Pos, r, _ float64, col color.Color) {
		l.circles = append(l.circles, circleCall{c, r, col, false})
	}
	strokeLine = func(_ *ebiten.Image, a, b geom.Pos, _ float64, _ color.Color) {
		l.lines = append(l.lines, lineCall{a, b})
	}
	drawLabel = func(_ *ebiten.Image, s string, _, _ int) { l.labels = append(l.labels, s) }
	t.Cleanup(func() {
		fillCircle, strokeCircle, strokeLine, drawLabel = oldFill, oldStroke, oldLine, oldLabel
	})
	return l
}
