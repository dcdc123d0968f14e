package engine

import (
	"math"
	"strings"

	"golca/domain/lca"
)

// baseTriple is the per-metal starting point for rule-based scoring.
type baseTriple struct {
	sustainability float64
	circular       float64
	linear         float64
}

// fallbackBase keys are lower-case metal names. An unknown metal falls back
// to aluminum's triple.
var fallbackBase = map[string]baseTriple{
	"aluminum": {sustainability: 70, circular: 80, linear: 55},
	"copper":   {sustainability: 65, circular: 75, linear: 50},
	"steel":    {sustainability: 60, circular: 70, linear: 45},
	"titanium": {sustainability: 75, circular: 85, linear: 60},
}

// Per-target rescue constants, used when a single trained regressor fails
// mid-prediction. Deliberately not the full rule function: a per-target
// rescue must stay independent of the other targets, while FallbackScores
// interrelates all three.
var rescueConstants = map[string]float64{
	lca.TargetSustainability: 65.0,
	lca.TargetCircular:       75.0,
	lca.TargetLinear:         55.0,
}

// RescueConstant returns the fixed substitute score for one failed target.
func RescueConstant(target string) float64 {
	if v, ok := rescueConstants[target]; ok {
		return v
	}
	return 60.0
}

// FallbackScores is the deterministic rule-based scorer used when no trained
// regressor is available. It is a pure function of metal type, production
// route, recycling rate, and process efficiency, reading the raw request
// fields rather than the encoded vector.
func FallbackScores(req lca.Request) lca.Scores {
	base, ok := fallbackBase[strings.ToLower(req.String(lca.FieldMetalType))]
	if !ok {
		base = fallbackBase["aluminum"]
	}

	sustainability := base.sustainability
	circular := base.circular
	linear := base.linear

	if req.String(lca.FieldProductionRoute) == "Secondary" {
		sustainability += 10
		circular += 15
		linear += 5
	}

	// recycling lifts sustainability and (more strongly) circularity;
	// linear disposal is unaffected by it
	recyclingBonus := req.FloatOr(lca.FieldRecyclingRate, 0) * 0.3
	sustainability += recyclingBonus
	circular += recyclingBonus * 1.2

	efficiencyFactor := (req.FloatOr(lca.FieldProcessEfficiency, 75) - 50) * 0.2
	sustainability += efficiencyFactor
	circular += efficiencyFactor
	linear += efficiencyFactor * 0.5

	return lca.Scores{
		lca.TargetSustainability: roundScore(clampScore(sustainability)),
		lca.TargetCircular:       roundScore(clampScore(circular)),
		lca.TargetLinear:         roundScore(clampScore(linear)),
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
