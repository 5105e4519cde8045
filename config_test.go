package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCaseIsTheReferenceField(t *testing.T) {
	cfg := default_case()
	require.NoError(t, cfg.validate())

	field, ground, aquifer, err := cfg.build()
	require.NoError(t, err)

	assert.Equal(t, 40, field.number_of_boreholes())
	assert.Equal(t, 147.0, field.h())
	assert.InDelta(t, 13.275, ground.t0_eff(field.h()), 1e-9)
	assert.Equal(t, 0.2, aquifer.n)
	assert.Equal(t, reference_base_year_mwh(), cfg.BaseYearMWh)
}

func TestLoadCaseOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	content := `{"field": {"n_x": 2, "n_y": 3, "spacing_m": 6.0, "depth_m": 100.0, "buried_depth_m": 2.0, "radius_m": 0.07}, "simulation": {"n_years": 5, "quadrature_order": 60}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := load_case(path)
	require.NoError(t, err)

	field, _, _, err := cfg.build()
	require.NoError(t, err)
	assert.Equal(t, 6, field.number_of_boreholes())
	assert.Equal(t, 100.0, field.h())
	assert.Equal(t, 5, cfg.Simulation.NYears)

	// untouched sections keep the reference values
	assert.Equal(t, 1.4, cfg.Ground.K)
	assert.Equal(t, 0.1271, cfg.Borehole.Rb)
}

func TestLoadCaseRejectsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := load_case(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = load_case(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"field": {"n_x": 0}}`), 0644))
	_, err = load_case(invalid)
	assert.Error(t, err)
}
