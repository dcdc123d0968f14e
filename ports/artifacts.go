package ports

// Regressor is the capability interface every loaded model artifact is
// adapted to. It isolates the engine from the artifact serialization shape:
// the engine only ever sees something it can call Predict on.
type Regressor interface {
	// Predict scores one encoded feature vector. The vector must match the
	// regressor's training-time feature order exactly.
	Predict(features []float64) (float64, error)
}

// Scaler applies a stored linear transform to a feature vector before
// inference. Implementations must not mutate the input slice.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// ModelMetrics records the offline evaluation of one trained regressor.
type ModelMetrics struct {
	ModelType       string  `json:"model_type"`
	R2Score         float64 `json:"r2_score"`
	MAE             float64 `json:"mae"`
	TrainingSamples int     `json:"training_samples"`
	TestSamples     int     `json:"test_samples"`
}

// ArtifactMetadata describes a training run's output contract.
type ArtifactMetadata struct {
	Version       string                  `json:"version"`
	TrainedAt     string                  `json:"trained_at"`
	TrainingRunID string                  `json:"training_run_id,omitempty"`
	FeatureNames  []string                `json:"feature_names"`
	Models        map[string]ModelMetrics `json:"models,omitempty"`
}

// ArtifactBundle is the read-only set of trained artifacts handed to the
// engine at construction. Any piece may be absent; the engine degrades to
// built-in defaults or the rule-based fallback rather than failing.
type ArtifactBundle struct {
	Metadata   ArtifactMetadata
	Regressors map[string]Regressor
	Scaler     Scaler
	Encoders   map[string]map[string]float64
}

// HasRegressors reports whether any trained regressor is available.
func (b *ArtifactBundle) HasRegressors() bool {
	return b != nil && len(b.Regressors) > 0
}

// ArtifactStore loads trained artifacts from an external location.
// Load is called once at engine construction; the returned bundle is
// treated as immutable thereafter and is safe for concurrent reads.
type ArtifactStore interface {
	Load() (*ArtifactBundle, error)
}
