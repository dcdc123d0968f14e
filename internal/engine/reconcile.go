package engine

import (
	"golca/domain/lca"
)

// confidence heuristic constants
const (
	baseConfidence        = 0.8
	plausibilityBonus     = 0.1
	circularOrderingBonus = 0.1
)

// Reconcile re-clamps the primary scores to [0,100] and attaches a
// confidence value. Re-clamping is idempotent with the dispatcher's clamps.
//
// Confidence here is a plausibility signal, not a statistical confidence
// interval: it starts at 0.8 and earns a bonus when the sustainability score
// sits inside the broadly credible [30,95] band and another when the
// circular score exceeds the linear score, as it should for any scenario
// that recycles at all. The per-metal benchmark intensity bands are looked
// up so a missing table is visible in the logs, but they do not modulate the
// number.
func (e *Engine) reconcile(scores lca.Scores, metal string) (lca.Scores, float64) {
	if _, ok := lca.BenchmarkFor(metal); !ok {
		e.log.Debug("no benchmark bands published for %s", metal)
	}

	reconciled := make(lca.Scores, len(scores))
	for target, v := range scores {
		reconciled[target] = clampScore(v)
	}

	confidence := baseConfidence
	if s := reconciled[lca.TargetSustainability]; s >= 30 && s <= 95 {
		confidence += plausibilityBonus
	}
	if reconciled[lca.TargetCircular] > reconciled[lca.TargetLinear] {
		confidence += circularOrderingBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return reconciled, confidence
}
