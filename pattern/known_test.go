package pattern

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/terezi/lifesat/geom"
)

func cells(k *KnownPattern, gen int) map[geom.Point]bool {
	out := map[geom.Point]bool{}
	b := k.Bounds()
	for y := b.Y.Lo; y <= b.Y.Hi; y++ {
		for x := b.X.Lo; x <= b.X.Hi; x++ {
			if k.State(geom.Point{X: x, Y: y, T: gen}) {
				out[geom.Point{X: x, Y: y}] = true
			}
		}
	}
	return out
}

func TestBlinkerRoundTrip(t *testing.T) {
	// A horizontal blinker alternates with its vertical phase.
	k := NewKnown("3o!", 4)
	horizontal := map[geom.Point]bool{{X: 0}: true, {X: 1}: true, {X: 2}: true}
	vertical := map[geom.Point]bool{{X: 1, Y: -1}: true, {X: 1, Y: 0}: true, {X: 1, Y: 1}: true}
	for gen := 0; gen <= 4; gen++ {
		want := horizontal
		if gen%2 == 1 {
			want = vertical
		}
		assert.Equal(t, want, cells(k, gen), "generation %d", gen)
	}
}

func TestBoatIsStillLife(t *testing.T) {
	k := NewKnown("2o$obo$bo!", 3)
	gen0 := cells(k, 0)
	assert.Len(t, gen0, 5)
	for gen := 1; gen <= 3; gen++ {
		assert.Equal(t, gen0, cells(k, gen), "generation %d", gen)
	}
}

func TestRLEHeaderAndComments(t *testing.T) {
	rle := "#C a blinker\nx = 3, y = 1, rule = B3/S23\n3o!"
	k := NewKnown(rle, 0)
	assert.Equal(t, map[geom.Point]bool{{X: 0}: true, {X: 1}: true, {X: 2}: true}, cells(k, 0))
}

func TestRLERunCounts(t *testing.T) {
	// 12 live cells in a row via a two-digit run count.
	k := NewKnown("12o!", 0)
	assert.Len(t, cells(k, 0), 12)
	assert.Equal(t, geom.Limits{Lo: 0, Hi: 11}, k.Bounds().X)
}

func TestShiftBy(t *testing.T) {
	k := NewKnown("o!", 0)
	k.ShiftBy(geom.Point{X: 3, Y: -2, T: 1})
	assert.True(t, k.State(geom.Point{X: 3, Y: -2, T: 1}))
	assert.False(t, k.State(geom.Point{X: 0, Y: 0, T: 0}))
	assert.Equal(t, geom.Limits{Lo: 3, Hi: 3}, k.Bounds().X)
	assert.Equal(t, geom.Limits{Lo: 1, Hi: 1}, k.Bounds().T)
}

func TestKnownPatternIsInertSubPattern(t *testing.T) {
	var sp SubPattern = NewKnown("3o!", 1)
	assert.NoError(t, sp.Build())
	assert.Zero(t, sp.NumVariables())
	assert.Nil(t, sp.Clauses(2))
	assert.Equal(t, 1, sp.CellValue(geom.Point{X: 1}))
	assert.Equal(t, 0, sp.CellValue(geom.Point{X: 1, Y: 2}))
	assert.True(t, sp.Known(geom.Point{X: 0}))
}

func TestPrintGen(t *testing.T) {
	var buf bytes.Buffer
	NewKnown("3o!", 0).PrintGen(&buf, 0)
	out := buf.String()
	assert.True(t, strings.Contains(out, "ooo"), "output %q should show the blinker row", out)
}
