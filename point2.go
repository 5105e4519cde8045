package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Default Gauss-Legendre quadrature order of the POINT2 kernel.
const point2DefaultOrder = 100

/*
Temperature perturbation of a continuous point source in a 2D aquifer with
uniform background flow in x direction (Wexler 1992, POINT2, eq. 76).

The time integral

	F = int_0^t 1/tau exp(-(v^2/(4 Dx) + lambda) tau
	                      - (x-xc)^2/(4 Dx tau)
	                      - (y-yc)^2/(4 Dy tau)) dtau

is evaluated with fixed Gauss-Legendre quadrature; the result is

	dT = c0 qa / (4 n pi sqrt(Dx Dy)) exp(v (x-xc)/(2 Dx)) F.

For v = 0 without decay the integral has the exponential-integral closed
form E1(r^2/(4 D t)), which is used directly so the pure-conduction limit
is exact.

Args:
	c0: source strength (temperature equivalent), K
	x, y: observation point, m
	t: elapsed time since the source started, s
	v: pore velocity in x direction, m/s
	n: porosity, -
	a_l: longitudinal dispersivity, m
	a_h: horizontal transverse dispersivity, m
	qa: volumetric injection rate per unit aquifer thickness, m2/s
	xc, yc: source position, m
	d_m: effective molecular diffusion coefficient, m2/s
	lamb: first-order decay rate, 1/s
	r_f: retardation factor, -
	order: quadrature order

Returns:
	temperature perturbation, K; zero for t <= 0
*/
func point2_source(
	c0 float64,
	x float64, y float64,
	t float64,
	v float64,
	n float64,
	a_l float64, a_h float64,
	qa float64,
	xc float64, yc float64,
	d_m float64,
	lamb float64,
	r_f float64,
	order int,
) float64 {
	if t <= 0.0 {
		return 0.0
	}

	// Dispersion coefficients
	d_x := a_l*v + d_m
	d_y := a_h*v + d_m

	// Apply the retardation factor
	v = v / r_f
	d_x = d_x / r_f
	d_y = d_y / r_f
	qa = qa / r_f

	if d_x <= 0.0 || d_y <= 0.0 {
		panic(fmt.Sprintf("dispersion coefficients must be positive: Dx=%e, Dy=%e", d_x, d_y))
	}

	dx := x - xc
	dy := y - yc

	// Pure-conduction closed form
	if v == 0.0 && lamb == 0.0 {
		u := (dx*dx + dy*dy) / (4.0 * d_x * t)
		return c0 * qa / (4.0 * n * math.Pi * d_x) * e1(u)
	}

	decay := v*v/(4.0*d_x) + lamb
	integrand := func(tau float64) float64 {
		return 1.0 / tau * math.Exp(-decay*tau-dx*dx/(4.0*d_x*tau)-dy*dy/(4.0*d_y*tau))
	}

	f := quad.Fixed(integrand, 0.0, t, order, quad.Legendre{}, 0)
	term0 := qa / (4.0 * n * math.Pi * math.Sqrt(d_x*d_y)) * math.Exp(v*dx/(2.0*d_x))

	d_t := c0 * term0 * f
	if math.IsNaN(d_t) {
		// Underflow products of the kernel count as no contribution.
		return 0.0
	}
	return d_t
}

/*
POINT2 model of a borehole field in a 2D aquifer with uniform flow.

The model treats each borehole as a continuous point source in the plane
and superposes piecewise-constant monthly loads in time. It is a 2D
formulation: vertical conduction and the surface-boundary image effect are
not represented, which is the documented source of its long-horizon bias
against fully 3D solutions.
*/
type Point2Model struct {
	field   *BoreholeField
	ground  GroundThermalProperties
	aquifer AquiferProperties
	v       float64 // pore velocity in x direction, m/s
	r_b_th  float64 // borehole thermal resistance, m K/W
	t0      float64 // initial ground temperature, degree C
	order   int
}

func NewPoint2Model(
	field *BoreholeField,
	ground GroundThermalProperties,
	aquifer AquiferProperties,
	v_ms float64,
	r_b_th float64,
	order int,
) *Point2Model {
	if order <= 0 {
		order = point2DefaultOrder
	}
	return &Point2Model{
		field:   field,
		ground:  ground,
		aquifer: aquifer,
		v:       v_ms,
		r_b_th:  r_b_th,
		t0:      ground.t0_eff(field.h()),
		order:   order,
	}
}

/*
Ground temperature at an observation point and time under a monthly load
schedule.

The schedule is decomposed into Heaviside steps: step i contributes with
magnitude q_i - q_{i-1} evaluated at the elapsed time since the step began.
Loads are converted from W/m to the equivalent source temperature strength
by dividing by rho_w c_w; the unit injection rate qa = 1 m2/s carries the
remaining scaling (Wexler's convention).

Args:
	x, y: observation point, m
	t: time since simulation start, s
	schedule: monthly loads; converted internally to the BHE convention

Returns:
	ground temperature, degree C, and an error when no load step
	precedes t.
*/
func (m *Point2Model) ground_temperature_at(x float64, y float64, t float64, schedule *LoadSchedule) (float64, error) {
	q_bhe := schedule.as_convention(ConventionBHE).values()
	if len(q_bhe) == 0 {
		return 0.0, fmt.Errorf("empty load schedule")
	}
	if t <= 0.0 {
		return m.t0, nil
	}

	sp := m.aquifer.solute_params()
	sec := get_sec_per_month()

	// W/m -> equivalent temperature source strength, K m2/s per unit qa
	inv_rho_c_w := 1.0 / (get_rho_w() * get_c_w())

	d_t := 0.0
	has_step := false
	for i := 0; i < len(q_bhe); i++ {
		t_start := float64(i) * sec
		if t_start >= t {
			break
		}
		has_step = true

		dq := q_bhe[i]
		if i > 0 {
			dq -= q_bhe[i-1]
		}
		if math.Abs(dq) < 1e-12 {
			continue
		}

		c0 := dq * inv_rho_c_w
		for _, b := range m.field.boreholes {
			ox, oy := _apply_source_floor(x, y, b.x, b.y, b.r_b)
			d_t += point2_source(
				c0, ox, oy, t-t_start,
				m.v, m.aquifer.n, m.aquifer.a_l, m.aquifer.a_h,
				1.0, b.x, b.y,
				sp.d_m, 0.0, sp.r,
				m.order,
			)
		}
	}
	if !has_step {
		return 0.0, fmt.Errorf("no load step begins before t=%e s", t)
	}

	return m.t0 + d_t, nil
}

/*
Monthly fluid temperature series of the field.

The representative ground temperature of a month is the mean over all
borehole positions (each observed at its own wall through the source
floor), not the temperature at the geometric center: between the
boreholes the seasonal signal is diffusion-damped, which distorts the
amplitude. The mean wall temperature is then converted to fluid
temperature with the load of that month.

Args:
	schedule: monthly loads

Returns:
	fluid temperatures at each month end, degree C, [month]
*/
func (m *Point2Model) fluid_temperature_series(schedule *LoadSchedule) ([]float64, error) {
	q_bhe := schedule.as_convention(ConventionBHE).values()
	sec := get_sec_per_month()

	t_f := make([]float64, len(q_bhe))
	for i := range q_bhe {
		t := float64(i+1) * sec
		sum := 0.0
		for _, b := range m.field.boreholes {
			t_g, err := m.ground_temperature_at(b.x, b.y, t, schedule)
			if err != nil {
				return nil, err
			}
			sum += t_g
		}
		t_mean := sum / float64(m.field.number_of_boreholes())
		t_f[i] = ground_to_fluid_temperature(t_mean, q_bhe[i], m.r_b_th)
	}
	return t_f, nil
}

/*
Move an observation point that falls inside a source's radius out to the
borehole wall.

The point-source kernel is singular at the source position; the borehole
radius acts as the finite-source correction.
*/
func _apply_source_floor(x float64, y float64, xc float64, yc float64, r_b float64) (float64, float64) {
	dx := x - xc
	dy := y - yc
	r := math.Hypot(dx, dy)
	if r >= r_b {
		return x, y
	}
	if r == 0.0 {
		return xc + r_b, yc
	}
	scale := r_b / r
	return xc + dx*scale, yc + dy*scale
}

/*
Fluid temperature from ground temperature at the borehole wall.

T_fluid = T_ground + q R_b with q in the BHE convention: injection
(positive q) makes the fluid hotter than the wall, extraction colder.

Args:
	t_ground: ground temperature at the borehole wall, degree C
	q: linear heat rate, W/m, BHE convention
	r_b_th: borehole thermal resistance, m K/W
*/
func ground_to_fluid_temperature(t_ground float64, q float64, r_b_th float64) float64 {
	return t_ground + q*r_b_th
}

// Inverse of ground_to_fluid_temperature.
func fluid_to_ground_temperature(t_fluid float64, q float64, r_b_th float64) float64 {
	return t_fluid - q*r_b_th
}
