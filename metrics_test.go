package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAbsoluteError(t *testing.T) {
	assert.Equal(t, 0.0, mean_absolute_error([]float64{1.0, 2.0}, []float64{1.0, 2.0}))
	assert.InDelta(t, 1.5, mean_absolute_error([]float64{1.0, 2.0}, []float64{2.0, 0.0}), 1e-12)
	assert.Equal(t, 0.0, mean_absolute_error(nil, nil))
	assert.Panics(t, func() { mean_absolute_error([]float64{1.0}, []float64{1.0, 2.0}) })
}

func TestRSquared(t *testing.T) {
	ref := []float64{10.5, 10.6, 11.3, 12.3, 13.0, 15.4}

	assert.InDelta(t, 1.0, r_squared(ref, ref), 1e-12)

	// a constant prediction explains none of the variance
	flat := []float64{12.0, 12.0, 12.0, 12.0, 12.0, 12.0}
	assert.Less(t, r_squared(flat, ref), 0.1)

	assert.Panics(t, func() { r_squared([]float64{1.0}, ref) })
}

func TestSteadyAmplitudeUsesLastYear(t *testing.T) {
	series := make([]float64, 24)
	for i := 0; i < 12; i++ {
		series[i] = float64(i) * 10.0 // first year is ignored
	}
	for i := 12; i < 24; i++ {
		series[i] = 10.0 + float64(i%12)*0.5
	}

	assert.InDelta(t, 5.5, steady_amplitude(series), 1e-12)
	assert.Panics(t, func() { steady_amplitude(make([]float64, 6)) })
}

func TestCompareToReference(t *testing.T) {
	ref := []float64{10.0, 11.0, 12.0, 13.0, 12.0, 11.0, 10.0, 11.0, 12.0, 13.0, 12.0, 11.0}
	pred := make([]float64, 12)
	for i := range ref {
		pred[i] = ref[i] + 0.5
	}

	m := compare_to_reference(MethodPoint2, pred, ref)
	assert.Equal(t, MethodPoint2, m.Method)
	assert.InDelta(t, 0.5, m.MAE, 1e-12)
	assert.InDelta(t, 3.0, m.Amplitude, 1e-12)
	assert.Greater(t, m.R2, 0.7)
}
