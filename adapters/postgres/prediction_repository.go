package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golca/domain/core"
	"golca/domain/lca"
	"golca/ports"

	"github.com/jmoiron/sqlx"
)

// predictionRepository implements ports.PredictionRepository on Postgres.
type predictionRepository struct {
	db *sqlx.DB
}

// NewPredictionRepository creates a new prediction history repository
func NewPredictionRepository(db *sqlx.DB) ports.PredictionRepository {
	return &predictionRepository{db: db}
}

// EnsureSchema creates the predictions table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		metal_type TEXT NOT NULL,
		production_route TEXT NOT NULL,
		region TEXT NOT NULL,
		request JSONB NOT NULL,
		result JSONB NOT NULL,
		model_version TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure predictions schema: %w", err)
	}
	return nil
}

// Save inserts one prediction record.
func (r *predictionRepository) Save(ctx context.Context, rec *ports.PredictionRecord) error {
	if rec.ID == "" {
		rec.ID = core.PredictionID(core.NewID())
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	requestJSON, err := json.Marshal(rec.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `INSERT INTO predictions (
		id, metal_type, production_route, region, request, result, model_version, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.MetalType, rec.ProductionRoute, rec.Region,
		requestJSON, resultJSON, rec.ModelVersion, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (r *predictionRepository) Recent(ctx context.Context, limit int) ([]*ports.PredictionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, metal_type, production_route, region, request, result, model_version, created_at
	FROM predictions ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var records []*ports.PredictionRecord
	for rows.Next() {
		var rec ports.PredictionRecord
		var requestJSON, resultJSON []byte
		if err := rows.Scan(
			&rec.ID, &rec.MetalType, &rec.ProductionRoute, &rec.Region,
			&requestJSON, &resultJSON, &rec.ModelVersion, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if err := json.Unmarshal(requestJSON, &rec.Request); err != nil {
			rec.Request = lca.Request{}
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			rec.Result = lca.Predictions{}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
