package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*
Mean absolute error between a prediction and a reference series, K

Args:
	pred: predicted temperatures, degree C, [n]
	ref: reference temperatures, degree C, [n]
*/
func mean_absolute_error(pred []float64, ref []float64) float64 {
	if len(pred) != len(ref) {
		panic(fmt.Sprintf("series lengths differ: %d != %d", len(pred), len(ref)))
	}
	if len(pred) == 0 {
		return 0.0
	}

	var sum float64
	for i := range pred {
		sum += math.Abs(pred[i] - ref[i])
	}
	return sum / float64(len(pred))
}

/*
Coefficient of determination of a prediction against a reference series.

R^2 = 1 - SS_res / SS_tot, with the reference as the observed values.

Args:
	pred: predicted temperatures, degree C, [n]
	ref: reference temperatures, degree C, [n]
*/
func r_squared(pred []float64, ref []float64) float64 {
	if len(pred) != len(ref) {
		panic(fmt.Sprintf("series lengths differ: %d != %d", len(pred), len(ref)))
	}
	return stat.RSquaredFrom(pred, ref, nil)
}

/*
Steady periodic amplitude of a monthly series, K

The last 12 months are taken as the steady periodic year; the amplitude is
their max minus min.

Args:
	series: monthly temperatures, degree C, [12 n]
*/
func steady_amplitude(series []float64) float64 {
	if len(series) < 12 {
		panic(fmt.Sprintf("series must cover at least one year, got %d months", len(series)))
	}
	last := series[len(series)-12:]
	return floats.Max(last) - floats.Min(last)
}

// Accuracy of one method against the reference in one scenario.
type MethodMetrics struct {
	Method    Method  `json:"method"`
	MAE       float64 `json:"mae_vs_eed"`
	R2        float64 `json:"r2_vs_eed"`
	Amplitude float64 `json:"amplitude"`
}

/*
Compute the comparison metrics of one method series against the reference.

Args:
	method: method the series came from
	pred: predicted fluid temperatures, degree C, January-first, [12 n]
	ref: reference fluid temperatures, degree C, January-first, [12 n]
*/
func compare_to_reference(method Method, pred []float64, ref []float64) MethodMetrics {
	return MethodMetrics{
		Method:    method,
		MAE:       mean_absolute_error(pred, ref),
		R2:        r_squared(pred, ref),
		Amplitude: steady_amplitude(pred),
	}
}
