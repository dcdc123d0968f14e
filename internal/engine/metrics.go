package engine

import (
	"math"

	"golca/domain/lca"
)

// augmentation caps and defaults
const (
	maxEnergyImprovement    = 25.0
	maxRecyclingImprovement = 30.0
	maxTransportImprovement = 15.0

	defaultEfficiencyForAugment = 80.0
	defaultTransportDistance    = 500.0
)

// augment derives the improvement estimates and the potential score from the
// reconciled primary scores. It never disturbs the scores themselves: a
// degenerate input can only produce zero-valued improvements.
func augment(p *lca.Predictions, req lca.Request) {
	improvements := &lca.Improvements{
		EnergyEfficiency: clampImprovement(
			(req.FloatOr(lca.FieldProcessEfficiency, defaultEfficiencyForAugment)-60)*0.5,
			maxEnergyImprovement),
		RecyclingImpact: clampImprovement(
			req.FloatOr(lca.FieldRecyclingRate, 0)*0.4,
			maxRecyclingImprovement),
		TransportOptimization: clampImprovement(
			math.Max(0, 1000-req.FloatOr(lca.FieldTransportDistance, defaultTransportDistance))/100,
			maxTransportImprovement),
	}

	p.Improvements = improvements
	p.PotentialScore = clampScore(p.SustainabilityScore + improvements.Sum()*0.5)
}

func clampImprovement(v, max float64) float64 {
	return math.Max(0, math.Min(max, v))
}
