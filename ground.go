package main

import "fmt"

/*
Bulk thermal properties of the ground.

The struct is immutable after construction; every computation receives it
by value so no method can share mutated state between runs.
*/
type GroundThermalProperties struct {
	k         float64 // thermal conductivity, W/m K
	rho_c     float64 // volumetric heat capacity, J/m3 K
	t_surface float64 // undisturbed surface temperature, degree C
	q_geo     float64 // geothermal heat flux, W/m2
}

func NewGroundThermalProperties(k float64, rho_c float64, t_surface float64, q_geo float64) (GroundThermalProperties, error) {
	if k <= 0.0 || rho_c <= 0.0 {
		return GroundThermalProperties{}, fmt.Errorf("thermal diffusivity must be positive: k=%f, rho_c=%f", k, rho_c)
	}
	return GroundThermalProperties{k: k, rho_c: rho_c, t_surface: t_surface, q_geo: q_geo}, nil
}

// Thermal diffusivity, m2/s
func (g GroundThermalProperties) alpha() float64 {
	return g.k / g.rho_c
}

// Geothermal gradient, K/m
func (g GroundThermalProperties) gradient() float64 {
	return g.q_geo / g.k
}

/*
Effective undisturbed ground temperature at borehole mid-depth, degree C

With a 147 m borehole the geothermal gradient adds several kelvin over the
surface value, so all methods are initialized at mid-depth temperature
rather than the raw surface temperature.

Args:
	h: drilled depth, m
*/
func (g GroundThermalProperties) t0_eff(h float64) float64 {
	return g.t_surface + g.gradient()*h/2.0
}

/*
Hydraulic and solid-matrix properties of the aquifer.

rho_s, c_s and k_s describe the solid grains; the water constants come from
global_number.go. Dispersivities are zero for the pure-conduction case.
*/
type AquiferProperties struct {
	n     float64 // porosity, -
	rho_s float64 // solid density, kg/m3
	c_s   float64 // solid specific heat capacity, J/kg K
	k_s   float64 // solid thermal conductivity, W/m K
	a_l   float64 // longitudinal dispersivity, m
	a_h   float64 // horizontal transverse dispersivity, m
}

func NewAquiferProperties(n float64, rho_s float64, c_s float64, k_s float64, a_l float64, a_h float64) (AquiferProperties, error) {
	if n <= 0.0 || n >= 1.0 {
		return AquiferProperties{}, fmt.Errorf("porosity must be in (0, 1), got %f", n)
	}
	if rho_s <= 0.0 || c_s <= 0.0 || k_s <= 0.0 {
		return AquiferProperties{}, fmt.Errorf("solid properties must be positive")
	}
	return AquiferProperties{n: n, rho_s: rho_s, c_s: c_s, k_s: k_s, a_l: a_l, a_h: a_h}, nil
}

/*
Equivalent solute transport parameters of the heat transport problem.

Heat-to-solute analogy (Wexler 1992):
	kd  = c_s / (c_w rho_w)      distribution coefficient, m3/kg
	k0  = n k_w + (1-n) k_s      bulk thermal conductivity, W/m K
	Dm  = k0 / (n rho_w c_w)     effective molecular diffusion, m2/s
	R   = 1 + kd rho_b / n       retardation factor, -
*/
type SoluteParams struct {
	kd    float64 // distribution coefficient, m3/kg
	k0    float64 // bulk thermal conductivity, W/m K
	d_m   float64 // effective molecular diffusion coefficient, m2/s
	rho_b float64 // bulk dry density, kg/m3
	r     float64 // retardation factor, -
}

// Map aquifer thermal properties onto the solute transport analogue.
func (a AquiferProperties) solute_params() SoluteParams {
	rho_w := get_rho_w()
	c_w := get_c_w()
	k_w := get_k_w()

	kd := a.c_s / (c_w * rho_w)
	k0 := a.n*k_w + (1.0-a.n)*a.k_s
	d_m := k0 / (a.n * rho_w * c_w)
	rho_b := (1.0 - a.n) * a.rho_s
	r := 1.0 + kd*rho_b/a.n

	return SoluteParams{kd: kd, k0: k0, d_m: d_m, rho_b: rho_b, r: r}
}

/*
Hydraulic gradient that produces a given pore velocity.

Darcy's law with v = K i / n gives i = v n / K.

Args:
	v_md: pore velocity, m/d
	k_hydraulic: hydraulic conductivity, m/d
	n: porosity, -

Returns:
	hydraulic gradient, -
*/
func hydraulic_gradient(v_md float64, k_hydraulic float64, n float64) float64 {
	return v_md * n / k_hydraulic
}
