package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	assert.Equal(t, 1., POW(2.5, 0))
	assert.Equal(t, 8., POW(2., 3))
	assert.Equal(t, 0.25, POW(2., -2))
	assert.InDelta(t, math.Pow(1.7, 9), POW(1.7, 9), 1.e-10)
	assert.InDelta(t, math.Pow(1.3, 7), POW(1.3, 7), 1.e-12)
}

func TestFzero(t *testing.T) {
	// root of x^2 - 2 near 1.5
	f := func(x float64) (y float64) {
		y = x*x - 2.
		return
	}
	root := Fzero(f, 1.5)
	assert.InDelta(t, math.Sqrt2, root, 1.e-5)
}
