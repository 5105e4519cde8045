package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

/*
Collects the fluid temperature series of every method over one scenario run
and writes the comparison artifacts.

Series are stored January-first in a [method, month] matrix. The recorder
is write-once per method; registering the same method twice is a
programmer error.
*/
type Recorder struct {
	_n_months int
	_methods  []Method
	_series   *mat.Dense // fluid temperatures, degree C, [method, month]
	_metrics  []MethodMetrics
}

func NewRecorder(n_months int) *Recorder {
	return &Recorder{
		_n_months: n_months,
		_series:   mat.NewDense(1, n_months, nil),
	}
}

/*
Register the fluid temperature series of one method.

Args:
	method: method the series came from
	t_f_jan: fluid temperatures, degree C, January-first, [n_months]
	metrics: accuracy metrics of the series against the reference
*/
func (r *Recorder) add(method Method, t_f_jan []float64, metrics MethodMetrics) {
	if len(t_f_jan) != r._n_months {
		panic(fmt.Sprintf("series length %d does not match recorder length %d", len(t_f_jan), r._n_months))
	}
	for _, m := range r._methods {
		if m == method {
			panic(fmt.Sprintf("method %s already recorded", method))
		}
	}

	row := len(r._methods)
	if row > 0 {
		grown := mat.NewDense(row+1, r._n_months, nil)
		grown.Slice(0, row, 0, r._n_months).(*mat.Dense).Copy(r._series)
		r._series = grown
	}
	r._series.SetRow(row, t_f_jan)
	r._methods = append(r._methods, method)
	r._metrics = append(r._metrics, metrics)
}

// Copy of the recorded series of one method, degree C, [n_months]
func (r *Recorder) series(method Method) []float64 {
	for i, m := range r._methods {
		if m == method {
			return append([]float64(nil), r._series.RawRowView(i)...)
		}
	}
	panic(fmt.Sprintf("method %s not recorded", method))
}

/*
Write all recorded series as one CSV file: month index, year, one column
per method.

Args:
	file_path: output path
*/
func (r *Recorder) save_series_csv(file_path string) error {
	log.Printf("Save temperature series to `%s`", file_path)

	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	header := "month,year"
	for _, m := range r._methods {
		header += "," + string(m)
	}
	if _, err := fmt.Fprintln(file, header); err != nil {
		return err
	}

	for n := 0; n < r._n_months; n++ {
		line := strconv.Itoa(n+1) + "," + strconv.FormatFloat(float64(n+1)/12.0, 'f', 4, 64)
		for i := range r._methods {
			line += "," + strconv.FormatFloat(r._series.At(i, n), 'f', 4, 64)
		}
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}

// Result record of one method in one scenario, persisted as JSON.
type ScenarioResult struct {
	Scenario   string    `json:"scenario"`
	Method     Method    `json:"method"`
	VelocityMd float64   `json:"velocity_md"`
	Porosity   float64   `json:"porosity"`
	NYears     int       `json:"n_years"`
	TfJan      []float64 `json:"Tf_jan"`
	MAE        float64   `json:"mae_vs_eed"`
	R2         float64   `json:"r2_vs_eed"`
	Amplitude  float64   `json:"amplitude"`
}

/*
Write one result file per recorded method, named
`<method>_gwflow_<scenario>_results.json`.

Args:
	scenario: scenario the series belong to
	output_dir: output directory
*/
func (r *Recorder) save_results_json(scenario Scenario, output_dir string) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(r._methods))

	for i, method := range r._methods {
		result := ScenarioResult{
			Scenario:   string(scenario.regime),
			Method:     method,
			VelocityMd: scenario.regime.velocity_md(),
			Porosity:   scenario.regime.porosity(),
			NYears:     scenario.n_years,
			TfJan:      append([]float64(nil), r._series.RawRowView(i)...),
			MAE:        r._metrics[i].MAE,
			R2:         r._metrics[i].R2,
			Amplitude:  r._metrics[i].Amplitude,
		}

		path := filepath.Join(output_dir, fmt.Sprintf("%s_gwflow_%s_results.json", method, scenario.regime))
		log.Printf("Save %s results to `%s`", method, path)

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, err
		}

		results = append(results, result)
	}
	return results, nil
}

// Print the comparison summary of the scenario to the log.
func (r *Recorder) print_summary(scenario Scenario) {
	log.Printf("%s scenario (v = %g m/d): %d methods over %d months",
		scenario.regime, scenario.regime.velocity_md(), len(r._methods), r._n_months)
	for i, method := range r._methods {
		m := r._metrics[i]
		log.Printf("  %-10s MAE=%.3f K  R2=%.4f  amplitude=%.2f K", method, m.MAE, m.R2, m.Amplitude)
	}
}
