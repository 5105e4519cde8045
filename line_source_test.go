package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSourceResponse(t *testing.T) {
	k := 1.4
	alpha := 1.4 / 2.83e6

	assert.Equal(t, 0.0, line_source_response(0.07, 0.0, 30.0, k, alpha))
	assert.Equal(t, 0.0, line_source_response(0.07, -1.0, 30.0, k, alpha))

	// injection heats, extraction cools, same magnitude
	year := get_sec_per_year()
	warm := line_source_response(0.07, year, 30.0, k, alpha)
	cold := line_source_response(0.07, year, -30.0, k, alpha)
	assert.Greater(t, warm, 0.0)
	assert.InDelta(t, -warm, cold, 1e-12)

	// response decays with radius and grows with time
	assert.Greater(t, warm, line_source_response(5.0, year, 30.0, k, alpha))
	assert.Greater(t, line_source_response(0.07, 10.0*year, 30.0, k, alpha), warm)
}

func TestMirroredLineSourceReducesShallowResponse(t *testing.T) {
	k := 1.4
	alpha := 1.4 / 2.83e6
	h := 147.0
	year := get_sec_per_year()

	t_2d := line_source_response(0.07, 10.0*year, 30.0, k, alpha)

	// shallow depths feel the surface boundary
	t_shallow := mirrored_line_source_response(0.07, 5.0, 10.0*year, h, 30.0, k, alpha)
	assert.Less(t, t_shallow, t_2d)

	// mid depth is corrected less than shallow depth
	t_mid := mirrored_line_source_response(0.07, h/2.0, 10.0*year, h, 30.0, k, alpha)
	assert.Greater(t, t_mid, t_shallow)
	assert.Less(t, t_mid, t_2d)

	// at or below the bottom there is no image correction
	assert.Equal(t, t_2d, mirrored_line_source_response(0.07, h, 10.0*year, h, 30.0, k, alpha))
}

func TestDepthDeviationTableGrowsWithTime(t *testing.T) {
	k := 1.4
	alpha := 1.4 / 2.83e6
	year := get_sec_per_year()

	depths := []float64{5.0, 20.0}
	times := []float64{year, 10.0 * year, 25.0 * year}

	dev := depth_deviation_table(0.07, depths, times, 147.0, 30.0, k, alpha)
	require.Len(t, dev, 2)
	require.Len(t, dev[0], 3)

	for i := range depths {
		for j := range times {
			// boundary correction always reduces the 2D response
			assert.Less(t, dev[i][j], 0.0, "depth %g, time %g", depths[i], times[j])
			if j > 0 {
				assert.Less(t, dev[i][j], dev[i][j-1], "deviation must grow with time")
			}
		}
		// shallow depth deviates more than mid depth
		if i > 0 {
			assert.Greater(t, dev[i][2], dev[i-1][2])
		}
	}
}
