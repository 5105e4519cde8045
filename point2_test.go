package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _test_ground(t *testing.T) GroundThermalProperties {
	ground, err := NewGroundThermalProperties(1.4, 2.83e6, 9.6, 0.07)
	require.NoError(t, err)
	return ground
}

func _test_aquifer(t *testing.T) AquiferProperties {
	aquifer, err := NewAquiferProperties(0.2, 2650.0, 2.83e6/2650.0, 1.4, 0.0, 0.0)
	require.NoError(t, err)
	return aquifer
}

func _single_borehole_field(t *testing.T, x float64, y float64) *BoreholeField {
	field, err := NewBoreholeField([]Borehole{{x: x, y: y, h: 147.0, d: 2.0, r_b: 0.07}})
	require.NoError(t, err)
	return field
}

func TestPoint2SourceZeroVelocityMatchesConductionClosedForm(t *testing.T) {
	aquifer := _test_aquifer(t)
	sp := aquifer.solute_params()

	x, y := 1.2, 0.8
	elapsed := get_sec_per_year()

	got := point2_source(1.0, x, y, elapsed, 0.0, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder)

	// conduction solution of a continuous point source in 2D, retarded
	d := sp.d_m / sp.r
	u := (x*x + y*y) / (4.0 * d * elapsed)
	want := (1.0 / sp.r) / (4.0 * aquifer.n * math.Pi * d) * e1(u)

	require.InDelta(t, want, got, 1e-6)
}

func TestPoint2SourceQuadratureAgreesWithClosedFormAtVanishingVelocity(t *testing.T) {
	aquifer := _test_aquifer(t)
	sp := aquifer.solute_params()

	x, y := 2.0, 0.0
	elapsed := get_sec_per_year()

	exact := point2_source(1.0, x, y, elapsed, 0.0, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder)
	// small but non-zero velocity forces the quadrature path
	numeric := point2_source(1.0, x, y, elapsed, 1e-12, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder)

	require.Greater(t, exact, 0.0)
	assert.InEpsilon(t, exact, numeric, 0.02)
}

func TestPoint2SourceVanishesAtSmallTime(t *testing.T) {
	aquifer := _test_aquifer(t)
	sp := aquifer.solute_params()

	for _, v := range []float64{0.0, RegimeMedium.velocity_ms()} {
		got := point2_source(1.0, 1.0, 0.0, 1e-3, v, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder)
		assert.InDelta(t, 0.0, got, 1e-9, "v=%g", v)
	}

	assert.Equal(t, 0.0, point2_source(1.0, 1.0, 0.0, 0.0, 0.0, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder))
	assert.Equal(t, 0.0, point2_source(1.0, 1.0, 0.0, -1.0, 0.0, aquifer.n, 0.0, 0.0, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, point2DefaultOrder))
}

func TestGroundPerturbationIsAdditiveOverSources(t *testing.T) {
	ground := _test_ground(t)
	aquifer := _test_aquifer(t)
	v := RegimeMedium.velocity_ms()

	field_a := _single_borehole_field(t, 0.0, 0.0)
	field_b := _single_borehole_field(t, 7.0, 0.0)
	field_ab, err := NewBoreholeField([]Borehole{
		{x: 0.0, y: 0.0, h: 147.0, d: 2.0, r_b: 0.07},
		{x: 7.0, y: 0.0, h: 147.0, d: 2.0, r_b: 0.07},
	})
	require.NoError(t, err)

	schedule := NewLoadSchedule([]float64{-25.0, -40.0}, ConventionBHE)
	elapsed := 1.5 * get_sec_per_month()
	x, y := 10.0, 3.0

	model_a := NewPoint2Model(field_a, ground, aquifer, v, 0.1271, 0)
	model_b := NewPoint2Model(field_b, ground, aquifer, v, 0.1271, 0)
	model_ab := NewPoint2Model(field_ab, ground, aquifer, v, 0.1271, 0)

	t_a, err := model_a.ground_temperature_at(x, y, elapsed, schedule)
	require.NoError(t, err)
	t_b, err := model_b.ground_temperature_at(x, y, elapsed, schedule)
	require.NoError(t, err)
	t_ab, err := model_ab.ground_temperature_at(x, y, elapsed, schedule)
	require.NoError(t, err)

	t0 := ground.t0_eff(147.0)
	assert.InDelta(t, (t_a-t0)+(t_b-t0), t_ab-t0, 1e-9)
}

func TestStepSuperpositionMatchesDirectOffsetting(t *testing.T) {
	ground := _test_ground(t)
	aquifer := _test_aquifer(t)
	sp := aquifer.solute_params()
	v := RegimeMedium.velocity_ms()

	field := _single_borehole_field(t, 0.0, 0.0)
	model := NewPoint2Model(field, ground, aquifer, v, 0.1271, 0)

	q := []float64{-20.0, -35.0, 10.0}
	schedule := NewLoadSchedule(q, ConventionBHE)

	sec := get_sec_per_month()
	elapsed := 2.5 * sec
	x, y := 5.0, 0.0

	got, err := model.ground_temperature_at(x, y, elapsed, schedule)
	require.NoError(t, err)

	// same schedule expressed as three finite pulses
	resp := func(q_wm float64, e float64) float64 {
		c0 := q_wm / (get_rho_w() * get_c_w())
		return point2_source(c0, x, y, e, v, aquifer.n, aquifer.a_l, aquifer.a_h, 1.0, 0.0, 0.0, sp.d_m, 0.0, sp.r, model.order)
	}
	direct := resp(q[0], elapsed) - resp(q[0], elapsed-sec) +
		resp(q[1], elapsed-sec) - resp(q[1], elapsed-2.0*sec) +
		resp(q[2], elapsed-2.0*sec)

	assert.InDelta(t, ground.t0_eff(147.0)+direct, got, 1e-9)
}

func TestAmplitudeDecreasesWithVelocity(t *testing.T) {
	ground := _test_ground(t)
	aquifer := _test_aquifer(t)
	field := _single_borehole_field(t, 0.0, 0.0)

	// two years of a seasonal square wave
	q := make([]float64, 24)
	for i := range q {
		if i%12 < 6 {
			q[i] = -30.0
		} else {
			q[i] = 30.0
		}
	}
	schedule := NewLoadSchedule(q, ConventionBHE)

	amplitudes := make([]float64, 0, 3)
	for _, v_md := range []float64{0.0, 0.1, 1.0} {
		model := NewPoint2Model(field, ground, aquifer, v_md/(24.0*3600.0), 0.1271, 0)
		t_f, err := model.fluid_temperature_series(schedule)
		require.NoError(t, err)
		amplitudes = append(amplitudes, steady_amplitude(t_f))
	}

	assert.Greater(t, amplitudes[0], amplitudes[1])
	assert.Greater(t, amplitudes[1], amplitudes[2])
}

func TestReferenceFieldAmplitudeDecreasesWithVelocity(t *testing.T) {
	if testing.Short() {
		t.Skip("full-field series over all regimes")
	}

	ground := _test_ground(t)
	aquifer := _test_aquifer(t)
	field, err := rectangle_field(5, 8, 7.0, 7.0, 147.0, 2.0, 0.07)
	require.NoError(t, err)

	schedule := tile_annual_loads(reference_base_year_mwh(), field.total_length(), 10, ConventionBuilding)

	amplitudes := make([]float64, 0, 3)
	for _, regime := range all_regimes() {
		model := NewPoint2Model(field, ground, aquifer, regime.velocity_ms(), 0.1271, 0)
		t_f, err := model.fluid_temperature_series(schedule)
		require.NoError(t, err)
		amplitudes = append(amplitudes, steady_amplitude(t_f))
	}

	// the mean wall temperature damps strictly with velocity
	assert.Greater(t, amplitudes[0], amplitudes[1])
	assert.Greater(t, amplitudes[1], amplitudes[2])

	// seasonal swing of the reference field, not a between-borehole residue
	assert.Greater(t, amplitudes[0], 4.0)
}

func TestFluidTemperatureOffsetEqualsLoadTimesResistance(t *testing.T) {
	r_b_th := 0.1271

	assert.InDelta(t, 12.0+30.0*r_b_th, ground_to_fluid_temperature(12.0, 30.0, r_b_th), 1e-12)
	assert.InDelta(t, 12.0-30.0*r_b_th, ground_to_fluid_temperature(12.0, -30.0, r_b_th), 1e-12)
	assert.InDelta(t, 12.0, fluid_to_ground_temperature(ground_to_fluid_temperature(12.0, 30.0, r_b_th), 30.0, r_b_th), 1e-12)

	ground := _test_ground(t)
	aquifer := _test_aquifer(t)
	field := _single_borehole_field(t, 0.0, 0.0)
	model := NewPoint2Model(field, ground, aquifer, RegimeMedium.velocity_ms(), r_b_th, 0)

	schedule := NewLoadSchedule([]float64{-20.0, 15.0}, ConventionBHE)
	t_f, err := model.fluid_temperature_series(schedule)
	require.NoError(t, err)

	x, y := field.center()
	sec := get_sec_per_month()
	for i, q := range schedule.values() {
		t_g, err := model.ground_temperature_at(x, y, float64(i+1)*sec, schedule)
		require.NoError(t, err)
		assert.InDelta(t, q*r_b_th, t_f[i]-t_g, 1e-12, "month %d", i)
	}
}

func TestSourceFloorMovesInteriorPointsToBoreholeWall(t *testing.T) {
	// outside the radius: unchanged
	x, y := _apply_source_floor(5.0, 0.0, 0.0, 0.0, 0.07)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 0.0, y)

	// at the source: pushed downstream to the wall
	x, y = _apply_source_floor(3.0, 4.0, 3.0, 4.0, 0.07)
	assert.Equal(t, 3.07, x)
	assert.Equal(t, 4.0, y)

	// inside the radius: pushed radially outward
	x, y = _apply_source_floor(3.0+0.01, 4.0, 3.0, 4.0, 0.07)
	assert.InDelta(t, 3.07, x, 1e-12)
	assert.InDelta(t, 4.0, y, 1e-12)
}
