package ports

import (
	"context"
	"time"

	"golca/domain/core"
	"golca/domain/lca"
)

// PredictionRecord is one stored prediction for audit and history views.
type PredictionRecord struct {
	ID              core.PredictionID `json:"id" db:"id"`
	MetalType       string            `json:"metal_type" db:"metal_type"`
	ProductionRoute string            `json:"production_route" db:"production_route"`
	Region          string            `json:"region" db:"region"`
	Request         lca.Request       `json:"request" db:"-"`
	Result          lca.Predictions   `json:"result" db:"-"`
	ModelVersion    string            `json:"model_version" db:"model_version"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// PredictionRepository persists prediction history. The engine itself never
// depends on this; only the API layer wires it in when a database is
// configured.
type PredictionRepository interface {
	Save(ctx context.Context, rec *PredictionRecord) error
	Recent(ctx context.Context, limit int) ([]*PredictionRecord, error)
}
