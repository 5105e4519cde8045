package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

/*
Sign convention of a heat load series.

Every external tool in the comparison uses its own convention, and the
mismatch has repeatedly produced inverted curves, so the convention is an
explicit type and all conversions go through the functions below.

	ConventionBuilding: positive = building heating demand = heat extracted from the ground
	ConventionBHE:      positive = heat injected into the ground
	ConventionESL:      positive = energy added to a grid cell (MODFLOW ESL package)
*/
type LoadConvention string

const (
	ConventionBuilding LoadConvention = "building"
	ConventionBHE      LoadConvention = "bhe"
	ConventionESL      LoadConvention = "esl"
)

/*
Monthly heat load schedule in one explicit sign convention.

q_wm holds one value per simulation month (the net load of that month as a
constant rate over the month), in W per meter of drilled length.
*/
type LoadSchedule struct {
	q_wm       []float64      // monthly loads, W/m, [month]
	convention LoadConvention // sign convention of q_wm
}

func NewLoadSchedule(q_wm []float64, convention LoadConvention) *LoadSchedule {
	switch convention {
	case ConventionBuilding, ConventionBHE, ConventionESL:
	default:
		panic(fmt.Sprintf("invalid load convention: %s", convention))
	}
	q := make([]float64, len(q_wm))
	copy(q, q_wm)
	return &LoadSchedule{q_wm: q, convention: convention}
}

// Number of monthly steps.
func (s *LoadSchedule) number_of_steps() int {
	return len(s.q_wm)
}

// Load of month i in the schedule's own convention, W/m
func (s *LoadSchedule) at(i int) float64 {
	return s.q_wm[i]
}

// Copy of the monthly loads, W/m
func (s *LoadSchedule) values() []float64 {
	q := make([]float64, len(s.q_wm))
	copy(q, s.q_wm)
	return q
}

/*
Convert the schedule to another sign convention.

Building loads and BHE loads are opposite in sign (heating demand means
extraction). The ESL cell loading uses the BHE sign (positive adds energy
to the ground).

Returns:
	new LoadSchedule; the receiver is not modified.
*/
func (s *LoadSchedule) as_convention(target LoadConvention) *LoadSchedule {
	if s.convention == target {
		return NewLoadSchedule(s.q_wm, target)
	}

	factor := 0.0
	switch {
	case s.convention == ConventionBuilding && (target == ConventionBHE || target == ConventionESL):
		factor = -1.0
	case (s.convention == ConventionBHE || s.convention == ConventionESL) && target == ConventionBuilding:
		factor = -1.0
	case s.convention == ConventionBHE && target == ConventionESL,
		s.convention == ConventionESL && target == ConventionBHE:
		factor = 1.0
	default:
		panic(fmt.Sprintf("invalid conversion %s -> %s", s.convention, target))
	}

	q := make([]float64, len(s.q_wm))
	for i, v := range s.q_wm {
		q[i] = factor * v
	}
	return NewLoadSchedule(q, target)
}

/*
Convert a monthly energy in MWh to a linear heat rate in W/m.

Args:
	mwh: monthly energy, MWh
	l_total: total drilled length of the field, m

Returns:
	linear heat rate, W/m
*/
func mwh_to_wm(mwh float64, l_total float64) float64 {
	return mwh * 1.0e6 / get_hrs_per_month() / l_total
}

/*
Build the multi-year monthly schedule from a 12-month base year.

Args:
	base_mwh: 12 monthly energies, MWh
	l_total: total drilled length, m
	n_years: number of simulation years
	convention: sign convention of base_mwh

Returns:
	LoadSchedule with 12 n_years steps
*/
func tile_annual_loads(base_mwh []float64, l_total float64, n_years int, convention LoadConvention) *LoadSchedule {
	if len(base_mwh) != 12 {
		panic(fmt.Sprintf("base year must have 12 months, got %d", len(base_mwh)))
	}

	q := make([]float64, 0, 12*n_years)
	for yr := 0; yr < n_years; yr++ {
		for _, mwh := range base_mwh {
			q = append(q, mwh_to_wm(mwh, l_total))
		}
	}
	return NewLoadSchedule(q, convention)
}

/*
Reorder a September-first monthly series to January-first.

The simulation year starts in September (first month of the heating season)
while EED reports January to December, so month m of simulation year yr maps
to calendar position (m + 4) mod 12 of the same stretch of months.

Args:
	sep_first: monthly values, September-first, [12 n]

Returns:
	same values reordered January-first, [12 n]
*/
func reorder_sep_to_jan(sep_first []float64) []float64 {
	if len(sep_first)%12 != 0 {
		panic(fmt.Sprintf("series length must be a multiple of 12, got %d", len(sep_first)))
	}

	n_years := len(sep_first) / 12
	jan_first := make([]float64, len(sep_first))
	for yr := 0; yr < n_years; yr++ {
		for mo := 0; mo < 12; mo++ {
			jan_first[yr*12+mo] = sep_first[yr*12+(mo+4)%12]
		}
	}
	return jan_first
}

// One row of a monthly load CSV file.
type LoadScheduleRow struct {
	Month   string  `csv:"month"`
	LoadMWh float64 `csv:"load_mwh"`
}

/*
Read a 12-month base load table from a CSV file.

The file carries building-convention monthly energies in MWh, one row per
month in simulation order (September first).

Args:
	file_path: path of the CSV file

Returns:
	12 monthly energies, MWh
*/
func load_base_year_csv(file_path string) ([]float64, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*LoadScheduleRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	if len(rows) != 12 {
		return nil, fmt.Errorf("load table must have 12 rows, got %d", len(rows))
	}

	mwh := make([]float64, 12)
	for i, row := range rows {
		mwh[i] = row.LoadMWh
	}
	return mwh, nil
}

/*
Reference base year of the study, MWh, September-first, building convention.

Net monthly energies of the 40-borehole field; positive months are heating
season extraction, negative months are summer injection.
*/
func reference_base_year_mwh() []float64 {
	return []float64{0.0, 7.37, 12.3, 19.6, 22.1, 19.6, 12.3, 4.91, 0.0, -19.6, -39.2, -39.2}
}
