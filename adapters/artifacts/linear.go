package artifacts

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearModel is a serialized ordinary-least-squares regressor: an intercept
// plus one coefficient per feature. It satisfies ports.Regressor.
type LinearModel struct {
	ModelType    string    `json:"model_type"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Predict evaluates the linear form against one encoded feature vector.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature count mismatch: model expects %d, got %d",
			len(m.Coefficients), len(features))
	}
	x := mat.NewVecDense(len(features), features)
	w := mat.NewVecDense(len(m.Coefficients), m.Coefficients)
	return m.Intercept + mat.Dot(w, x), nil
}

// StandardScaler centers and scales each feature with stored training-time
// statistics. It satisfies ports.Scaler.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform returns a new scaled vector; the input is left untouched.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) || len(features) != len(s.Scale) {
		return nil, fmt.Errorf("feature count mismatch: scaler expects %d, got %d",
			len(s.Mean), len(features))
	}
	scaled := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		scaled[i] = (v - s.Mean[i]) / scale
	}
	return scaled, nil
}
