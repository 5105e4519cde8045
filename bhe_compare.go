package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

/*
Run the method comparison for every requested flow regime.

    Args:
        case_path: path of the case JSON file; empty runs the reference case
        output_data_dir: output directory
        loads_path: path of a base-year load CSV overriding the case loads
        gfunction_path: path of the g-function CSV; empty skips the method
        modflow_data_dir: directory of finite-difference cell temperature CSVs;
            empty skips those methods
        regimes: comma separated regime names, or "all"
        is_esl_saved: whether ESL source files for the transport solver are written
        dsn: Postgres connection string of the results archive; empty skips it
*/
func run(
	case_path string,
	output_data_dir string,
	loads_path string,
	gfunction_path string,
	modflow_data_dir string,
	regimes string,
	is_esl_saved bool,
	dsn string,
) {
	// ---- preparation ----

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	cfg := default_case()
	if case_path != "" {
		log.Printf("Read case file `%s`", case_path)
		cfg, err = load_case(case_path)
		if err != nil {
			log.Fatal(err)
		}
	}

	if loads_path != "" {
		log.Printf("Read base year loads `%s`", loads_path)
		base, err := load_base_year_csv(loads_path)
		if err != nil {
			log.Fatal(err)
		}
		cfg.BaseYearMWh = base
	}

	field, ground, aquifer, err := cfg.build()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Field: %d boreholes, H=%g m, total length %g m",
		field.number_of_boreholes(), field.h(), field.total_length())

	var table *GFunctionTable
	if gfunction_path != "" {
		log.Printf("Read g-function table `%s`", gfunction_path)
		table, err = load_gfunction_csv(gfunction_path)
		if err != nil {
			log.Fatal(err)
		}
	}

	var store *ResultsStore
	if dsn != "" {
		store, err = NewResultsStore(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	n_years := cfg.Simulation.NYears
	n_months := n_years * 12

	// building convention, September-first like the base year
	schedule := tile_annual_loads(cfg.BaseYearMWh, field.total_length(), n_years, ConventionBuilding)

	eed := reference_eed()
	ref_jan := eed.tiled_series(n_years)

	q_peak_heat := -cfg.PeakPowerW / field.total_length()
	q_peak_cool := cfg.PeakPowerW / field.total_length()

	// ---- comparison per regime ----

	for _, regime := range _parse_regimes(regimes) {

		scenario := NewScenario(regime, n_years)
		v_md := regime.velocity_md()
		log.Printf("---- %s regime: v = %g m/d ----", regime, v_md)

		recorder := NewRecorder(n_months)
		recorder.add(MethodEED, ref_jan, compare_to_reference(MethodEED, ref_jan, ref_jan))

		// conduction-only temporal superposition
		if table != nil {
			if err := MethodGFunction.check_velocity(v_md); err != nil {
				log.Printf("Skip %s: %v", MethodGFunction, err)
			} else {
				gm := NewGFunctionModel(field, ground, table, cfg.Borehole.Rb)
				// compared against EED, so the empirical EED adjustment applies
				t_b := gm.wall_temperature_series(schedule)
				t_f := reorder_sep_to_jan(adjust_for_eed(t_b, schedule, cfg.Borehole.Rb))
				recorder.add(MethodGFunction, t_f, compare_to_reference(MethodGFunction, t_f, ref_jan))

				t_peak_s := 8.0 * 3600.0
				log.Printf("Peak heat: %.2f degC (EED %.2f), peak cool: %.2f degC (EED %.2f)",
					gm.peak_temperature(_january_minimum(t_f), q_peak_heat, t_peak_s), eed.peak_heat_jan,
					gm.peak_temperature(_august_maximum(t_f), q_peak_cool, t_peak_s), eed.peak_cool_aug)
			}
		}

		// analytical advection-dispersion
		if err := MethodPoint2.check_velocity(v_md); err != nil {
			log.Printf("Skip %s: %v", MethodPoint2, err)
		} else {
			pm := NewPoint2Model(field, ground, aquifer, regime.velocity_ms(), cfg.Borehole.Rb, cfg.Simulation.QuadOrder)
			t_f, err := pm.fluid_temperature_series(schedule)
			if err != nil {
				log.Fatal(err)
			}
			t_f = reorder_sep_to_jan(t_f)
			recorder.add(MethodPoint2, t_f, compare_to_reference(MethodPoint2, t_f, ref_jan))
		}

		// finite-difference transport, post-processed from solver output
		grid, err := NewTransportGrid(field, 50.0, 1.0, 1.0)
		if err != nil {
			log.Fatal(err)
		}

		if is_esl_saved {
			esl_path := filepath.Join(output_data_dir, fmt.Sprintf("esl_%s.csv", regime))
			log.Printf("Save ESL source terms to `%s`", esl_path)
			if err := grid.save_esl_records(schedule, esl_path); err != nil {
				log.Fatal(err)
			}
		}

		if modflow_data_dir != "" {
			for _, method := range []Method{MethodModflow2D, MethodModflow3D} {
				cell_path := filepath.Join(modflow_data_dir, fmt.Sprintf("%s_%s_cell_temperatures.csv", method, regime))
				if _, err := os.Stat(cell_path); os.IsNotExist(err) {
					log.Printf("Skip %s: `%s` not found", method, cell_path)
					continue
				}
				if err := method.check_velocity(v_md); err != nil {
					log.Printf("Skip %s: %v", method, err)
					continue
				}

				t_cell, err := load_cell_temperatures_csv(cell_path)
				if err != nil {
					log.Fatal(err)
				}
				t_f, err := grid.fluid_temperatures(t_cell, schedule, cfg.Borehole.Rb, ground.k)
				if err != nil {
					log.Fatal(err)
				}
				t_f = reorder_sep_to_jan(t_f)
				recorder.add(method, t_f, compare_to_reference(method, t_f, ref_jan))
			}
		}

		// ---- result files ----

		series_path := filepath.Join(output_data_dir, fmt.Sprintf("fluid_temperatures_%s.csv", regime))
		log.Printf("Save fluid temperature series to `%s`", series_path)
		if err := recorder.save_series_csv(series_path); err != nil {
			log.Fatal(err)
		}

		results, err := recorder.save_results_json(scenario, output_data_dir)
		if err != nil {
			log.Fatal(err)
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			for _, result := range results {
				if err := store.Save(ctx, result); err != nil {
					cancel()
					log.Fatal(err)
				}
			}
			archived, err := store.MetricsByScenario(ctx, string(regime))
			cancel()
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("Archived %d method results for the %s scenario", len(archived), regime)
		}

		recorder.print_summary(scenario)
	}
}

func _parse_regimes(regimes string) []FlowRegime {
	if regimes == "" || regimes == "all" {
		return all_regimes()
	}

	parsed := make([]FlowRegime, 0)
	for _, name := range strings.Split(regimes, ",") {
		switch r := FlowRegime(strings.TrimSpace(name)); r {
		case RegimeLow, RegimeMedium, RegimeHigh:
			parsed = append(parsed, r)
		default:
			log.Fatalf("invalid regime `%s`", name)
		}
	}
	return parsed
}

// Coldest January of the series, degree C. Series is January-first.
func _january_minimum(t_f_jan []float64) float64 {
	min := t_f_jan[0]
	for yr := 1; yr*12 < len(t_f_jan); yr++ {
		if t := t_f_jan[yr*12]; t < min {
			min = t
		}
	}
	return min
}

// Warmest August of the series, degree C. Series is January-first.
func _august_maximum(t_f_jan []float64) float64 {
	max := t_f_jan[7]
	for yr := 1; yr*12+7 < len(t_f_jan); yr++ {
		if t := t_f_jan[yr*12+7]; t > max {
			max = t
		}
	}
	return max
}

func main() {
	var case_path string
	flag.StringVar(&case_path, "input", "", "case JSON file; the reference case is used when omitted")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output directory")

	var loads_path string
	flag.StringVar(&loads_path, "loads", "", "base-year load CSV overriding the case loads")

	var gfunction_path string
	flag.StringVar(&gfunction_path, "gfunction", "", "g-function CSV file; the g-function method is skipped when omitted")

	var modflow_data_dir string
	flag.StringVar(&modflow_data_dir, "modflow_dir", "", "directory of finite-difference cell temperature CSVs")

	var regimes string
	flag.StringVar(&regimes, "regimes", "all", "comma separated flow regimes (low, medium, high)")

	var esl_saved bool
	flag.BoolVar(&esl_saved, "esl_saved", false, "whether ESL source files for the transport solver are written")

	var dsn string
	flag.StringVar(&dsn, "dsn", "", "Postgres connection string of the results archive")

	flag.Parse()

	// Print flag values
	fmt.Printf("case_path: %s\n", case_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("loads_path: %s\n", loads_path)
	fmt.Printf("gfunction_path: %s\n", gfunction_path)
	fmt.Printf("modflow_data_dir: %s\n", modflow_data_dir)
	fmt.Printf("regimes: %s\n", regimes)
	fmt.Printf("esl_saved: %t\n", esl_saved)

	start := time.Now()

	run(
		case_path,
		output_data_dir,
		loads_path,
		gfunction_path,
		modflow_data_dir,
		regimes,
		esl_saved,
		dsn,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
