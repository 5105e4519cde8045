package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

/*
Uniform 2D unit-depth transport grid for an external finite-difference
solver.

The grid covers the borehole field plus a buffer on all sides. A single
layer of unit thickness is used so a W/m line load applies directly as W
per cell; a full-depth layer would inflate the cell thermal mass by the
borehole length.
*/
type TransportGrid struct {
	dx        float64 // cell size in x, m
	dy        float64 // cell size in y, m
	nrow      int
	ncol      int
	thickness float64 // layer thickness, m
	lx        float64 // domain extent in x, m
	ly        float64 // domain extent in y, m
	bhe_rows  []int   // BHE cell row per borehole
	bhe_cols  []int   // BHE cell column per borehole
	r_b       float64 // borehole radius, m
}

/*
Build the transport grid for a borehole field.

Args:
	field: borehole field
	buffer: margin around the field extent, m
	dx, dy: cell sizes, m

Returns:
	TransportGrid
*/
func NewTransportGrid(field *BoreholeField, buffer float64, dx float64, dy float64) (*TransportGrid, error) {
	if dx <= 0.0 || dy <= 0.0 {
		return nil, fmt.Errorf("cell sizes must be positive: dx=%f, dy=%f", dx, dy)
	}

	x_min, y_min, x_max, y_max := field.extent()
	lx := (x_max - x_min) + 2.0*buffer
	ly := (y_max - y_min) + 2.0*buffer

	g := &TransportGrid{
		dx:        dx,
		dy:        dy,
		ncol:      int(lx / dx),
		nrow:      int(ly / dy),
		thickness: 1.0,
		lx:        lx,
		ly:        ly,
		r_b:       field.r_b(),
	}

	for _, b := range field.boreholes {
		col := int((b.x - x_min + buffer) / dx)
		row := int((b.y - y_min + buffer) / dy)
		if col < 0 || col >= g.ncol || row < 0 || row >= g.nrow {
			return nil, fmt.Errorf("borehole at (%f, %f) falls outside the grid", b.x, b.y)
		}
		g.bhe_cols = append(g.bhe_cols, col)
		g.bhe_rows = append(g.bhe_rows, row)
	}

	return g, nil
}

/*
Equivalent radius of a grid cell, m

A rectangular cell representing a cylindrical borehole acts as a source of
radius r_eq = sqrt(dx dy / pi) (= dx / sqrt(pi) for square cells).
*/
func (g *TransportGrid) equivalent_radius() float64 {
	return math.Sqrt(g.dx * g.dy / math.Pi)
}

/*
Systematic grid resistance of the cell-vs-cylinder mismatch, m K/W

	R_grid = ln(r_eq / r_b) / (2 pi k)

Added to the borehole thermal resistance when converting simulated cell
temperatures to fluid temperatures.

Args:
	k: ground thermal conductivity, W/m K
*/
func (g *TransportGrid) grid_resistance(k float64) float64 {
	return math.Log(g.equivalent_radius()/g.r_b) / (2.0 * math.Pi * k)
}

/*
Cell size at which the equivalent radius matches the borehole radius, m

Local refinement near each borehole to this size removes the grid
resistance bias without refining the whole domain.

Args:
	r_b: borehole radius, m
*/
func refined_cell_size(r_b float64) float64 {
	return r_b * math.Sqrt(math.Pi)
}

/*
Constant-head boundary pair producing a given hydraulic gradient across the
grid.

Args:
	h_left: head at the upstream boundary, m
	grad: hydraulic gradient, -

Returns:
	heads at the left and right boundary columns, m
*/
func (g *TransportGrid) boundary_heads(h_left float64, grad float64) (float64, float64) {
	return h_left, h_left - (g.lx-g.dx)*grad
}

// One energy-source-loading record of a monthly stress period.
type ESLRecord struct {
	Period int     `csv:"period"`
	Row    int     `csv:"row"`
	Col    int     `csv:"col"`
	RateW  float64 `csv:"rate_w"`
}

/*
Energy-source-loading records for every stress period and BHE cell.

The solver's convention is positive = energy added to the cell, so the
schedule is converted to the ESL sign convention and scaled by the layer
thickness (W/m times 1 m of unit depth).

Args:
	schedule: monthly loads in any convention

Returns:
	records ordered by period then borehole, [period*bhe]
*/
func (g *TransportGrid) esl_records(schedule *LoadSchedule) []ESLRecord {
	q_esl := schedule.as_convention(ConventionESL).values()

	records := make([]ESLRecord, 0, len(q_esl)*len(g.bhe_rows))
	for period, q := range q_esl {
		rate := q * g.thickness
		for i := range g.bhe_rows {
			records = append(records, ESLRecord{
				Period: period,
				Row:    g.bhe_rows[i],
				Col:    g.bhe_cols[i],
				RateW:  rate,
			})
		}
	}
	return records
}

// Write the energy-source-loading records to a CSV file for the solver run.
func (g *TransportGrid) save_esl_records(schedule *LoadSchedule, file_path string) error {
	records := g.esl_records(schedule)

	rows := make([]*ESLRecord, len(records))
	for i := range records {
		rows[i] = &records[i]
	}

	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}

// One row of a solver output file: mean BHE-cell temperature of a month.
type CellTemperatureRow struct {
	Month   int     `csv:"month"`
	TGround float64 `csv:"t_ground"`
}

/*
Read the solver's monthly mean BHE-cell temperatures from a CSV file.

Args:
	file_path: path of the CSV file

Returns:
	ground temperatures, degree C, [month]
*/
func load_cell_temperatures_csv(file_path string) ([]float64, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*CellTemperatureRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	t_g := make([]float64, len(rows))
	for i, row := range rows {
		t_g[i] = row.TGround
	}
	return t_g, nil
}

/*
Convert simulated cell temperatures to fluid temperatures.

The total resistance is the borehole thermal resistance plus the grid
resistance of the cell-vs-cylinder mismatch:

	T_f = T_cell + q (R_b + R_grid)

Args:
	t_ground: simulated cell temperatures, degree C, [month]
	schedule: monthly loads
	r_b_th: borehole thermal resistance, m K/W
	k: ground thermal conductivity, W/m K

Returns:
	fluid temperatures, degree C, [month]
*/
func (g *TransportGrid) fluid_temperatures(t_ground []float64, schedule *LoadSchedule, r_b_th float64, k float64) ([]float64, error) {
	q_bhe := schedule.as_convention(ConventionBHE).values()
	if len(t_ground) != len(q_bhe) {
		return nil, fmt.Errorf("temperature series length %d does not match schedule length %d", len(t_ground), len(q_bhe))
	}

	r_total := r_b_th + g.grid_resistance(k)
	t_f := make([]float64, len(t_ground))
	for i := range t_ground {
		t_f[i] = ground_to_fluid_temperature(t_ground[i], q_bhe[i], r_total)
	}
	return t_f, nil
}
