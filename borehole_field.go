package main

import (
	"fmt"
	"math"
)

// A single vertical borehole heat exchanger.
type Borehole struct {
	x   float64 // x coordinate, m
	y   float64 // y coordinate, m
	h   float64 // drilled depth, m
	d   float64 // buried depth of the borehole top, m
	r_b float64 // borehole radius, m
}

/*
Ordered collection of boreholes sharing one depth.

The comparison methods all assume a constant-depth array, so the field
carries a single H and rejects mixed depths on construction.
*/
type BoreholeField struct {
	boreholes []Borehole
	_h        float64 // common drilled depth, m
	_r_b      float64 // common borehole radius, m
}

/*
Create a borehole field from explicit borehole definitions.

Args:
	boreholes: borehole definitions

Returns:
	BoreholeField and an error when an invariant is violated:
	non-uniform depth, non-positive radius, or two boreholes closer
	than 2 r_b (overlapping).
*/
func NewBoreholeField(boreholes []Borehole) (*BoreholeField, error) {
	if len(boreholes) == 0 {
		return nil, fmt.Errorf("borehole field must contain at least one borehole")
	}

	h := boreholes[0].h
	r_b := boreholes[0].r_b
	for i, b := range boreholes {
		if b.h <= 0.0 {
			return nil, fmt.Errorf("borehole %d: depth must be positive, got %f", i, b.h)
		}
		if b.r_b <= 0.0 {
			return nil, fmt.Errorf("borehole %d: radius must be positive, got %f", i, b.r_b)
		}
		if b.h != h {
			return nil, fmt.Errorf("borehole %d: depth %f differs from field depth %f", i, b.h, h)
		}
	}

	// Overlap check: two boreholes may not be closer than the sum of their radii.
	for i := 0; i < len(boreholes); i++ {
		for j := i + 1; j < len(boreholes); j++ {
			dx := boreholes[i].x - boreholes[j].x
			dy := boreholes[i].y - boreholes[j].y
			if math.Hypot(dx, dy) < boreholes[i].r_b+boreholes[j].r_b {
				return nil, fmt.Errorf("boreholes %d and %d overlap", i, j)
			}
		}
	}

	return &BoreholeField{boreholes: boreholes, _h: h, _r_b: r_b}, nil
}

/*
Create a rectangular N_x x N_y borehole field.

The layout matches the rectangle_field helper of the g-function tool:
boreholes on a regular grid with spacing b_x along x and b_y along y,
first borehole at the origin.

Args:
	n_x: number of boreholes in x direction
	n_y: number of boreholes in y direction
	b_x: spacing in x direction, m
	b_y: spacing in y direction, m
	h: drilled depth, m
	d: buried depth, m
	r_b: borehole radius, m

Returns:
	BoreholeField
*/
func rectangle_field(n_x int, n_y int, b_x float64, b_y float64, h float64, d float64, r_b float64) (*BoreholeField, error) {
	if n_x < 1 || n_y < 1 {
		return nil, fmt.Errorf("field dimensions must be at least 1 x 1, got %d x %d", n_x, n_y)
	}

	boreholes := make([]Borehole, 0, n_x*n_y)
	for i := 0; i < n_x; i++ {
		for j := 0; j < n_y; j++ {
			boreholes = append(boreholes, Borehole{
				x:   float64(i) * b_x,
				y:   float64(j) * b_y,
				h:   h,
				d:   d,
				r_b: r_b,
			})
		}
	}

	return NewBoreholeField(boreholes)
}

// Number of boreholes in the field.
func (f *BoreholeField) number_of_boreholes() int {
	return len(f.boreholes)
}

// Common drilled depth of the field, m
func (f *BoreholeField) h() float64 {
	return f._h
}

// Common borehole radius, m
func (f *BoreholeField) r_b() float64 {
	return f._r_b
}

// Total drilled length of the field, m
func (f *BoreholeField) total_length() float64 {
	return float64(len(f.boreholes)) * f._h
}

/*
Bounding box of the borehole positions.

Returns:
	x_min, y_min, x_max, y_max, m
*/
func (f *BoreholeField) extent() (float64, float64, float64, float64) {
	x_min, y_min := f.boreholes[0].x, f.boreholes[0].y
	x_max, y_max := x_min, y_min
	for _, b := range f.boreholes {
		x_min = math.Min(x_min, b.x)
		y_min = math.Min(y_min, b.y)
		x_max = math.Max(x_max, b.x)
		y_max = math.Max(y_max, b.y)
	}
	return x_min, y_min, x_max, y_max
}

/*
Geometric center of the field, m

Used as the representative observation point when a method reports one
temperature for the whole field.
*/
func (f *BoreholeField) center() (float64, float64) {
	x_min, y_min, x_max, y_max := f.extent()
	return (x_min + x_max) / 2.0, (y_min + y_max) / 2.0
}
