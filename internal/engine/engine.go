// Package engine implements the LCA prediction core: it turns a raw,
// possibly-incomplete request into a validated, encoded feature vector,
// obtains scores from trained regressors or the deterministic rule-based
// fallback, reconciles them against industry benchmarks, and derives the
// improvement metrics.
package engine

import (
	"time"

	"golca/domain/lca"
	"golca/internal"
	"golca/ports"
)

// Engine is the prediction engine. It is constructed once around an
// immutable artifact bundle and is safe for concurrent use: a prediction
// call only reads shared state.
type Engine struct {
	bundle       *ports.ArtifactBundle
	mode         InferenceMode
	featureOrder []string
	log          *internal.Logger
}

// New creates an engine around a loaded artifact bundle. A nil bundle, or
// one without regressors, puts the engine in fallback-only mode; a bundle
// without metadata falls back to the built-in feature order. Nothing here
// is fatal.
func New(bundle *ports.ArtifactBundle, logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelError)
	}
	if bundle == nil {
		bundle = &ports.ArtifactBundle{}
	}

	mode := ModeFallbackOnly
	if bundle.HasRegressors() {
		mode = ModeTrainedModels
	}

	featureOrder := bundle.Metadata.FeatureNames
	if len(featureOrder) == 0 {
		featureOrder = lca.DefaultFeatureOrder()
	}

	logger.Info("prediction engine initialized: mode=%s regressors=%d features=%d",
		mode, len(bundle.Regressors), len(featureOrder))

	return &Engine{
		bundle:       bundle,
		mode:         mode,
		featureOrder: featureOrder,
		log:          logger,
	}
}

// Mode reports the inference mode decided at construction.
func (e *Engine) Mode() InferenceMode {
	return e.mode
}

// FeatureOrder returns the feature contract the engine encodes against.
func (e *Engine) FeatureOrder() []string {
	out := make([]string, len(e.featureOrder))
	copy(out, e.featureOrder)
	return out
}

// Metadata returns the artifact metadata the engine was built from.
func (e *Engine) Metadata() ports.ArtifactMetadata {
	return e.bundle.Metadata
}

// Predict runs the full pipeline for one request. Only input errors are
// returned; every downstream failure degrades to a best-effort answer.
func (e *Engine) Predict(req lca.Request) (*lca.PredictionResult, error) {
	if err := Validate(req); err != nil {
		e.log.Error("input validation failed: %v", err)
		return nil, err
	}

	vector, err := Encode(req, e.featureOrder)
	if err != nil {
		e.log.Error("preprocessing failed: %v", err)
		return nil, err
	}
	vector = e.scale(vector)

	scores := e.predictAll(vector, req)
	scores, confidence := e.reconcile(scores, req.String(lca.FieldMetalType))

	predictions := lca.Predictions{
		SustainabilityScore: scores[lca.TargetSustainability],
		CircularScore:       scores[lca.TargetCircular],
		LinearScore:         scores[lca.TargetLinear],
		Confidence:          confidence,
	}
	augment(&predictions, req)

	return &lca.PredictionResult{
		Predictions: predictions,
		ModelInfo: lca.ModelInfo{
			Version:        e.version(),
			TrainedAt:      e.trainedAt(),
			PredictionTime: time.Now().Format(time.RFC3339),
			Confidence:     confidence,
		},
	}, nil
}

// scale applies the stored scaler transform when one is loaded. A transform
// failure logs and passes the unscaled vector through; it never aborts the
// prediction.
func (e *Engine) scale(vector []float64) []float64 {
	if e.bundle.Scaler == nil {
		return vector
	}
	scaled, err := e.bundle.Scaler.Transform(vector)
	if err != nil {
		e.log.Warn("scaling failed, using raw features: %v", err)
		return vector
	}
	return scaled
}

func (e *Engine) version() string {
	if e.bundle.Metadata.Version != "" {
		return e.bundle.Metadata.Version
	}
	if e.mode == ModeFallbackOnly {
		return "1.0-fallback"
	}
	return "1.0-enhanced"
}

func (e *Engine) trainedAt() string {
	if e.bundle.Metadata.TrainedAt != "" {
		return e.bundle.Metadata.TrainedAt
	}
	if e.mode == ModeFallbackOnly {
		return "Fallback mode"
	}
	return "Enhanced mode"
}
