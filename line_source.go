package main

import "math"

/*
Infinite line source temperature response, K

	dT = q / (4 pi k) E1(r^2 / (4 alpha t))

This is the pure-conduction 2D response underlying POINT2; it has no
vertical dimension.

Args:
	r: radial distance from the line, m
	t: elapsed time, s
	q: linear heat rate, W/m
	k: thermal conductivity, W/m K
	alpha: thermal diffusivity, m2/s
*/
func line_source_response(r float64, t float64, q float64, k float64, alpha float64) float64 {
	if t <= 0.0 {
		return 0.0
	}
	u := r * r / (4.0 * alpha * t)
	return q / (4.0 * math.Pi * k) * e1(u)
}

/*
Line source response with a mirror image approximating the constant
temperature surface boundary.

A negative image source is placed at the mirror depth; at evaluation depth
z the image acts at distance sqrt(r^2 + (2 z)^2). Depths at or below the
borehole bottom get no image correction.

Args:
	r: radial distance from the line, m
	z: evaluation depth below surface, m
	t: elapsed time, s
	h: borehole depth, m
	q: linear heat rate, W/m
	k: thermal conductivity, W/m K
	alpha: thermal diffusivity, m2/s

Returns:
	corrected temperature response, K
*/
func mirrored_line_source_response(r float64, z float64, t float64, h float64, q float64, k float64, alpha float64) float64 {
	t_real := line_source_response(r, t, q, k, alpha)
	if z >= h {
		return t_real
	}
	r_mirror := math.Sqrt(r*r + (2.0*z)*(2.0*z))
	return t_real - line_source_response(r_mirror, t, q, k, alpha)
}

/*
Relative deviation of the boundary-corrected response from the plain 2D
response, per depth and time.

This quantifies the documented limitation of the 2D formulation: the
surface image effect grows with time and is strongest at shallow depth.
The 2D model itself is left as is; the table only documents the error.

Args:
	r: evaluation radius, m
	depths: evaluation depths, m, [d]
	times: elapsed times, s, [t]
	h: borehole depth, m
	q: linear heat rate, W/m
	k: thermal conductivity, W/m K
	alpha: thermal diffusivity, m2/s

Returns:
	fractional deviations (corrected - 2D) / 2D, [d][t]
*/
func depth_deviation_table(r float64, depths []float64, times []float64, h float64, q float64, k float64, alpha float64) [][]float64 {
	dev := make([][]float64, len(depths))
	for i, z := range depths {
		dev[i] = make([]float64, len(times))
		for j, t := range times {
			t_2d := line_source_response(r, t, q, k, alpha)
			if t_2d == 0.0 {
				continue
			}
			t_fls := mirrored_line_source_response(r, z, t, h, q, k, alpha)
			dev[i][j] = (t_fls - t_2d) / t_2d
		}
	}
	return dev
}
