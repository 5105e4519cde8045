package main

import (
	"encoding/json"
	"fmt"
	"os"
)

/*
Static case configuration.

The configuration is read once, validated into the typed domain structs,
and then passed by value; nothing reads it as shared mutable state during
a run.
*/
type CaseConfig struct {
	Field      FieldConfig      `json:"field"`
	Ground     GroundConfig     `json:"ground"`
	Aquifer    AquiferConfig    `json:"aquifer"`
	Borehole   BoreholeConfig   `json:"borehole"`
	Hydraulic  HydraulicConfig  `json:"hydraulic"`
	Simulation SimulationConfig `json:"simulation"`
	// Monthly base-year energies, MWh, September-first, building convention.
	BaseYearMWh []float64 `json:"base_year_mwh"`
	// Peak heat pump power, W
	PeakPowerW float64 `json:"peak_power_w"`
}

type FieldConfig struct {
	NX          int     `json:"n_x"`
	NY          int     `json:"n_y"`
	Spacing     float64 `json:"spacing_m"`
	Depth       float64 `json:"depth_m"`
	BuriedDepth float64 `json:"buried_depth_m"`
	Radius      float64 `json:"radius_m"`
}

type GroundConfig struct {
	K        float64 `json:"k_w_mk"`
	RhoC     float64 `json:"rho_c_j_m3k"`
	TSurface float64 `json:"t_surface_c"`
	QGeo     float64 `json:"q_geo_w_m2"`
}

type AquiferConfig struct {
	Porosity float64 `json:"porosity"`
	RhoSolid float64 `json:"rho_solid_kg_m3"`
	CSolid   float64 `json:"c_solid_j_kgk"`
	KSolid   float64 `json:"k_solid_w_mk"`
	DispL    float64 `json:"dispersivity_l_m"`
	DispT    float64 `json:"dispersivity_t_m"`
}

type BoreholeConfig struct {
	Rb float64 `json:"r_b_mk_w"` // borehole thermal resistance, m K/W
}

type HydraulicConfig struct {
	KMd float64 `json:"k_m_d"` // hydraulic conductivity, m/d
}

type SimulationConfig struct {
	NYears    int `json:"n_years"`
	QuadOrder int `json:"quadrature_order"`
}

// Reference case of the study: 5 x 8 field, 147 m deep, 25 years.
func default_case() CaseConfig {
	return CaseConfig{
		Field: FieldConfig{
			NX:          5,
			NY:          8,
			Spacing:     7.0,
			Depth:       147.0,
			BuriedDepth: 2.0,
			Radius:      0.07,
		},
		Ground: GroundConfig{
			K:        1.4,
			RhoC:     2.83e6,
			TSurface: 9.6,
			QGeo:     0.07,
		},
		Aquifer: AquiferConfig{
			Porosity: 0.2,
			RhoSolid: 2650.0,
			CSolid:   2.83e6 / 2650.0,
			KSolid:   1.4,
			DispL:    0.0,
			DispT:    0.0,
		},
		Borehole:    BoreholeConfig{Rb: 0.1271},
		Hydraulic:   HydraulicConfig{KMd: 10.0},
		Simulation:  SimulationConfig{NYears: 25, QuadOrder: point2DefaultOrder},
		BaseYearMWh: reference_base_year_mwh(),
		PeakPowerW:  160.0e3,
	}
}

/*
Read a case configuration JSON file.

Args:
	file_path: path of the JSON file

Returns:
	CaseConfig
*/
func load_case(file_path string) (CaseConfig, error) {
	data, err := os.ReadFile(file_path)
	if err != nil {
		return CaseConfig{}, err
	}

	cfg := default_case()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return CaseConfig{}, fmt.Errorf("failed to parse case file `%s`: %w", file_path, err)
	}
	if err := cfg.validate(); err != nil {
		return CaseConfig{}, fmt.Errorf("invalid case file `%s`: %w", file_path, err)
	}
	return cfg, nil
}

func (c CaseConfig) validate() error {
	if c.Field.NX < 1 || c.Field.NY < 1 {
		return fmt.Errorf("field must be at least 1 x 1")
	}
	if c.Field.Depth <= 0.0 || c.Field.Radius <= 0.0 {
		return fmt.Errorf("borehole depth and radius must be positive")
	}
	if c.Borehole.Rb <= 0.0 {
		return fmt.Errorf("borehole thermal resistance must be positive")
	}
	if len(c.BaseYearMWh) != 12 {
		return fmt.Errorf("base year must have 12 months, got %d", len(c.BaseYearMWh))
	}
	if c.Simulation.NYears < 1 {
		return fmt.Errorf("simulation must cover at least one year")
	}
	return nil
}

/*
Build the domain objects of the configured case.

Returns:
	borehole field, ground properties and aquifer properties
*/
func (c CaseConfig) build() (*BoreholeField, GroundThermalProperties, AquiferProperties, error) {
	field, err := rectangle_field(
		c.Field.NX, c.Field.NY,
		c.Field.Spacing, c.Field.Spacing,
		c.Field.Depth, c.Field.BuriedDepth, c.Field.Radius,
	)
	if err != nil {
		return nil, GroundThermalProperties{}, AquiferProperties{}, err
	}

	ground, err := NewGroundThermalProperties(c.Ground.K, c.Ground.RhoC, c.Ground.TSurface, c.Ground.QGeo)
	if err != nil {
		return nil, GroundThermalProperties{}, AquiferProperties{}, err
	}

	aquifer, err := NewAquiferProperties(
		c.Aquifer.Porosity,
		c.Aquifer.RhoSolid, c.Aquifer.CSolid, c.Aquifer.KSolid,
		c.Aquifer.DispL, c.Aquifer.DispT,
	)
	if err != nil {
		return nil, GroundThermalProperties{}, AquiferProperties{}, err
	}

	return field, ground, aquifer, nil
}
