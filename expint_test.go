package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE1ReferenceValues(t *testing.T) {
	// Abramowitz & Stegun tables 5.1
	cases := []struct {
		x    float64
		want float64
	}{
		{0.1, 1.8229239584193906},
		{0.5, 0.5597735947899425},
		{1.0, 0.21938393439552029},
		{2.0, 0.04890051070808063},
		{5.0, 0.001148295591275326},
		{10.0, 4.156968929685325e-6},
	}
	for _, c := range cases {
		assert.InEpsilon(t, c.want, e1(c.x), 1e-9, "x=%g", c.x)
	}
}

func TestE1SmallArgumentAsymptote(t *testing.T) {
	// E1(x) -> -gamma - ln x as x -> 0
	for _, x := range []float64{1e-6, 1e-9, 1e-12} {
		assert.InEpsilon(t, -_euler_gamma-math.Log(x), e1(x), 1e-5, "x=%g", x)
	}
}

func TestE1ContinuousAcrossExpansionSwitch(t *testing.T) {
	// series below 1, continued fraction above
	below := e1(1.0 - 1e-9)
	above := e1(1.0 + 1e-9)
	assert.InEpsilon(t, below, above, 1e-7)
	assert.Greater(t, below, above)
}

func TestE1LargeArgumentUnderflowsToZero(t *testing.T) {
	assert.Equal(t, 0.0, e1(800.0))
	assert.Greater(t, e1(30.0), 0.0)
}

func TestE1RejectsNonPositiveArguments(t *testing.T) {
	assert.Panics(t, func() { e1(0.0) })
	assert.Panics(t, func() { e1(-1.0) })
}
