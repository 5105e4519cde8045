package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS scenario_results (
	id          SERIAL PRIMARY KEY,
	scenario    TEXT             NOT NULL,
	method      TEXT             NOT NULL,
	velocity_md DOUBLE PRECISION NOT NULL,
	porosity    DOUBLE PRECISION NOT NULL,
	n_years     INTEGER          NOT NULL,
	tf_jan      JSONB            NOT NULL,
	mae_vs_eed  DOUBLE PRECISION NOT NULL,
	r2_vs_eed   DOUBLE PRECISION NOT NULL,
	amplitude   DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ      NOT NULL DEFAULT now(),
	UNIQUE (scenario, method)
)`

/*
Postgres archive of scenario comparison results.

Optional; the CLI only opens it when a DSN is given. Re-running a scenario
overwrites the previous record of the same scenario/method pair.
*/
type ResultsStore struct {
	db *sqlx.DB
}

func NewResultsStore(dsn string) (*ResultsStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to results database: %w", err)
	}
	if _, err := db.Exec(resultsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create results schema: %w", err)
	}
	return &ResultsStore{db: db}, nil
}

func (s *ResultsStore) Close() error {
	return s.db.Close()
}

// Insert or replace one scenario result.
func (s *ResultsStore) Save(ctx context.Context, result ScenarioResult) error {
	tf, err := json.Marshal(result.TfJan)
	if err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}

	const query = `
		INSERT INTO scenario_results
			(scenario, method, velocity_md, porosity, n_years, tf_jan, mae_vs_eed, r2_vs_eed, amplitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (scenario, method) DO UPDATE SET
			velocity_md = EXCLUDED.velocity_md,
			porosity    = EXCLUDED.porosity,
			n_years     = EXCLUDED.n_years,
			tf_jan      = EXCLUDED.tf_jan,
			mae_vs_eed  = EXCLUDED.mae_vs_eed,
			r2_vs_eed   = EXCLUDED.r2_vs_eed,
			amplitude   = EXCLUDED.amplitude`

	_, err = s.db.ExecContext(ctx, query,
		result.Scenario, result.Method, result.VelocityMd, result.Porosity,
		result.NYears, tf, result.MAE, result.R2, result.Amplitude,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s/%s result: %w", result.Scenario, result.Method, err)
	}
	return nil
}

// One archived metrics row, without the series payload.
type storedMetrics struct {
	Scenario   string  `db:"scenario"`
	Method     string  `db:"method"`
	VelocityMd float64 `db:"velocity_md"`
	MAE        float64 `db:"mae_vs_eed"`
	R2         float64 `db:"r2_vs_eed"`
	Amplitude  float64 `db:"amplitude"`
}

/*
Load the archived metrics of one scenario, ordered by method.

Args:
	scenario: scenario name (flow regime)

Returns:
	metrics per archived method
*/
func (s *ResultsStore) MetricsByScenario(ctx context.Context, scenario string) ([]MethodMetrics, error) {
	const query = `
		SELECT scenario, method, velocity_md, mae_vs_eed, r2_vs_eed, amplitude
		FROM scenario_results
		WHERE scenario = $1
		ORDER BY method`

	var rows []storedMetrics
	if err := s.db.SelectContext(ctx, &rows, query, scenario); err != nil {
		return nil, fmt.Errorf("failed to query %s results: %w", scenario, err)
	}

	metrics := make([]MethodMetrics, len(rows))
	for i, row := range rows {
		metrics[i] = MethodMetrics{
			Method:    Method(row.Method),
			MAE:       row.MAE,
			R2:        row.R2,
			Amplitude: row.Amplitude,
		}
	}
	return metrics, nil
}
