package engine

import (
	"golca/domain/lca"
)

// InferenceMode is decided once at engine construction and never changes.
// It replaces any runtime membership test on the loaded model set.
type InferenceMode int

const (
	// ModeFallbackOnly delegates the whole target set to the rule-based
	// scorer in a single holistic call.
	ModeFallbackOnly InferenceMode = iota
	// ModeTrainedModels scores each target independently with its loaded
	// regressor.
	ModeTrainedModels
)

func (m InferenceMode) String() string {
	if m == ModeTrainedModels {
		return "trained"
	}
	return "fallback"
}

// predictAll obtains a raw score for every target. Partial regressor failure
// degrades per-target to a fixed rescue constant; it never aborts the whole
// request and never silently mixes a half-failed result.
func (e *Engine) predictAll(vector []float64, req lca.Request) lca.Scores {
	if e.mode == ModeFallbackOnly {
		return FallbackScores(req)
	}

	scores := make(lca.Scores, len(lca.Targets()))
	for _, target := range lca.Targets() {
		regressor, ok := e.bundle.Regressors[target]
		if !ok {
			e.log.Warn("no regressor loaded for %s, using rescue constant", target)
			scores[target] = RescueConstant(target)
			continue
		}
		raw, err := regressor.Predict(vector)
		if err != nil {
			e.log.Warn("model prediction failed for %s: %v", target, err)
			scores[target] = RescueConstant(target)
			continue
		}
		scores[target] = clampScore(raw)
	}
	return scores
}
