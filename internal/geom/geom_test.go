package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"inverted range prefers lower bound", 5, 8, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi), 1e-9)
		})
	}
}

func TestScale(t *testing.T) {
	t.Run("identity at zoom 1", func(t *testing.T) {
		got := Scale(Rect{X: 3, Y: 4, W: 20, H: 10}, 1)
		assert.Equal(t, CellRect{X: 3, Y: 4, W: 20, H: 10}, got)
	})

	t.Run("zoom doubles cells", func(t *testing.T) {
		got := Scale(Rect{X: 1, Y: 1, W: 10, H: 5}, 2)
		assert.Equal(t, CellRect{X: 2, Y: 2, W: 20, H: 10}, got)
	})

	t.Run("adjacent rectangles share an edge", func(t *testing.T) {
		a := Scale(Rect{X: 0, Y: 0, W: 3.3, H: 1}, 1.5)
		b := Scale(Rect{X: 3.3, Y: 0, W: 3.3, H: 1}, 1.5)
		assert.Equal(t, a.X+a.W, b.X)
	})
}

func TestUnscale(t *testing.T) {
	assert.Equal(t, Point{X: 5, Y: 2.5}, Unscale(CellPoint{X: 10, Y: 5}, 2))
	assert.Equal(t, Point{X: 10, Y: 5}, Unscale(CellPoint{X: 10, Y: 5}, 0))
}

func TestCellRect_ContainsAndLocal(t *testing.T) {
	r := CellRect{X: 10, Y: 5, W: 4, H: 2}

	assert.True(t, r.Contains(CellPoint{X: 10, Y: 5}))
	assert.True(t, r.Contains(CellPoint{X: 13, Y: 6}))
	assert.False(t, r.Contains(CellPoint{X: 14, Y: 5}))
	assert.False(t, r.Contains(CellPoint{X: 10, Y: 7}))
	assert.Equal(t, CellPoint{X: 2, Y: 1}, r.Local(CellPoint{X: 12, Y: 6}))
}
