package engine

import (
	"errors"
	"fmt"
	"testing"

	"golca/domain/core"
	"golca/domain/lca"
	"golca/internal"
	"golca/ports"
)

func testLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

// stubRegressor returns a fixed value or error for every prediction.
type stubRegressor struct {
	value float64
	err   error
}

func (s *stubRegressor) Predict(features []float64) (float64, error) {
	return s.value, s.err
}

// failingScaler always errors to exercise the pass-through path.
type failingScaler struct{}

func (f *failingScaler) Transform(features []float64) ([]float64, error) {
	return nil, fmt.Errorf("shape mismatch")
}

func TestPredict_FallbackMode_AllCombinationsBounded(t *testing.T) {
	eng := New(nil, testLogger())

	for _, metal := range lca.ValidMetals() {
		for _, route := range lca.ValidRoutes() {
			for _, region := range lca.ValidRegions() {
				result, err := eng.Predict(lca.Request{
					"metal_type":       metal,
					"production_route": route,
					"region":           region,
				})
				if err != nil {
					t.Fatalf("%s/%s/%s: %v", metal, route, region, err)
				}

				p := result.Predictions
				for target, score := range map[string]float64{
					"sustainability": p.SustainabilityScore,
					"circular":       p.CircularScore,
					"linear":         p.LinearScore,
				} {
					if score < 0 || score > 100 {
						t.Errorf("%s/%s/%s: %s score %g out of [0,100]", metal, route, region, target, score)
					}
				}
				if p.Confidence < 0 || p.Confidence > 1 {
					t.Errorf("%s/%s/%s: confidence %g out of [0,1]", metal, route, region, p.Confidence)
				}
			}
		}
	}
}

func TestPredict_WorkedExampleThroughFullPipeline(t *testing.T) {
	eng := New(nil, testLogger())
	result, err := eng.Predict(lca.Request{
		"metal_type":         "Aluminum",
		"production_route":   "Secondary",
		"region":             "Europe",
		"recycling_rate":     50.0,
		"process_efficiency": 80.0,
	})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}

	p := result.Predictions
	if p.SustainabilityScore != 100.0 {
		t.Errorf("sustainability: expected 100 after clamp, got %g", p.SustainabilityScore)
	}
	if p.CircularScore != 100.0 {
		t.Errorf("circular: expected 100 after clamp, got %g", p.CircularScore)
	}
	if p.LinearScore != 63.0 {
		t.Errorf("linear: expected 63, got %g", p.LinearScore)
	}

	// sustainability 100 is outside the plausible [30,95] band, so only the
	// circular>linear bonus applies
	if p.Confidence != 0.9 {
		t.Errorf("confidence: expected 0.9, got %g", p.Confidence)
	}

	// improvements: energy (80-60)*0.5=10, recycling 50*0.4=20,
	// transport (1000-500)/100=5
	if p.Improvements == nil {
		t.Fatal("improvements missing")
	}
	if p.Improvements.EnergyEfficiency != 10 {
		t.Errorf("energy_efficiency: expected 10, got %g", p.Improvements.EnergyEfficiency)
	}
	if p.Improvements.RecyclingImpact != 20 {
		t.Errorf("recycling_impact: expected 20, got %g", p.Improvements.RecyclingImpact)
	}
	if p.Improvements.TransportOptimization != 5 {
		t.Errorf("transport_optimization: expected 5, got %g", p.Improvements.TransportOptimization)
	}
	if p.PotentialScore != 100 {
		t.Errorf("potential_score: 100+17.5 clamps to 100, got %g", p.PotentialScore)
	}

	if result.ModelInfo.Version != "1.0-fallback" {
		t.Errorf("fallback mode version: got %q", result.ModelInfo.Version)
	}
	if result.ModelInfo.PredictionTime == "" {
		t.Error("prediction_time missing")
	}
}

func TestPredict_InvalidMetalRejectedBeforeScoring(t *testing.T) {
	eng := New(nil, testLogger())
	result, err := eng.Predict(lca.Request{
		"metal_type":       "Bronze",
		"production_route": "Primary",
		"region":           "Europe",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if result != nil {
		t.Error("no result may be computed for an invalid request")
	}
	if !core.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestPredict_TrainedMode_PerTargetScores(t *testing.T) {
	bundle := &ports.ArtifactBundle{
		Metadata: ports.ArtifactMetadata{
			Version:      "2.1",
			TrainedAt:    "2026-01-15T10:00:00Z",
			FeatureNames: lca.DefaultFeatureOrder(),
		},
		Regressors: map[string]ports.Regressor{
			lca.TargetSustainability: &stubRegressor{value: 81.5},
			lca.TargetCircular:       &stubRegressor{value: 140},  // clamps to 100
			lca.TargetLinear:         &stubRegressor{value: -3.2}, // clamps to 0
		},
	}

	eng := New(bundle, testLogger())
	if eng.Mode() != ModeTrainedModels {
		t.Fatalf("expected trained mode, got %v", eng.Mode())
	}

	result, err := eng.Predict(lca.Request{
		"metal_type":       "Copper",
		"production_route": "Primary",
		"region":           "Asia",
	})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}

	p := result.Predictions
	if p.SustainabilityScore != 81.5 {
		t.Errorf("sustainability: expected 81.5, got %g", p.SustainabilityScore)
	}
	if p.CircularScore != 100 {
		t.Errorf("circular: expected clamp to 100, got %g", p.CircularScore)
	}
	if p.LinearScore != 0 {
		t.Errorf("linear: expected clamp to 0, got %g", p.LinearScore)
	}
	if result.ModelInfo.Version != "2.1" {
		t.Errorf("version: expected 2.1, got %q", result.ModelInfo.Version)
	}
}

func TestPredict_RegressorFailureDegradesPerTarget(t *testing.T) {
	bundle := &ports.ArtifactBundle{
		Metadata: ports.ArtifactMetadata{FeatureNames: lca.DefaultFeatureOrder()},
		Regressors: map[string]ports.Regressor{
			lca.TargetSustainability: &stubRegressor{value: 70},
			lca.TargetCircular:       &stubRegressor{err: errors.New("model exploded")},
			// linear regressor missing entirely
		},
	}

	result, err := New(bundle, testLogger()).Predict(lca.Request{
		"metal_type":       "Steel",
		"production_route": "Primary",
		"region":           "Europe",
	})
	if err != nil {
		t.Fatalf("partial model failure must not abort the request: %v", err)
	}

	p := result.Predictions
	if p.SustainabilityScore != 70 {
		t.Errorf("healthy target: expected 70, got %g", p.SustainabilityScore)
	}
	if p.CircularScore != 75.0 {
		t.Errorf("failed target: expected rescue constant 75, got %g", p.CircularScore)
	}
	if p.LinearScore != 55.0 {
		t.Errorf("missing target: expected rescue constant 55, got %g", p.LinearScore)
	}
}

func TestPredict_ScalerFailurePassesRawVectorThrough(t *testing.T) {
	bundle := &ports.ArtifactBundle{
		Regressors: map[string]ports.Regressor{
			lca.TargetSustainability: &stubRegressor{value: 50},
			lca.TargetCircular:       &stubRegressor{value: 60},
			lca.TargetLinear:         &stubRegressor{value: 40},
		},
		Scaler: &failingScaler{},
	}

	result, err := New(bundle, testLogger()).Predict(validRequest())
	if err != nil {
		t.Fatalf("scaler failure must not abort the prediction: %v", err)
	}
	if result.Predictions.SustainabilityScore != 50 {
		t.Errorf("expected prediction to proceed unscaled, got %g", result.Predictions.SustainabilityScore)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	eng := New(nil, testLogger())
	scores := lca.Scores{
		lca.TargetSustainability: 72.4,
		lca.TargetCircular:       88.1,
		lca.TargetLinear:         54.0,
	}

	once, confOnce := eng.reconcile(scores, "Aluminum")
	twice, confTwice := eng.reconcile(once, "Aluminum")

	for _, target := range lca.Targets() {
		if once[target] != twice[target] {
			t.Errorf("%s changed on second reconcile: %g vs %g", target, once[target], twice[target])
		}
	}
	if confOnce != confTwice {
		t.Errorf("confidence changed on second reconcile: %g vs %g", confOnce, confTwice)
	}
	if confOnce != 1.0 {
		t.Errorf("both bonuses apply here, expected 1.0, got %g", confOnce)
	}
}

func TestReconcile_ConfidenceForMetalWithoutBenchmarks(t *testing.T) {
	// titanium has no published benchmark bands; confidence is computed anyway
	eng := New(nil, testLogger())
	_, confidence := eng.reconcile(lca.Scores{
		lca.TargetSustainability: 80,
		lca.TargetCircular:       90,
		lca.TargetLinear:         60,
	}, "Titanium")

	if confidence != 1.0 {
		t.Errorf("expected 1.0, got %g", confidence)
	}
}

func TestPredict_MissingOptionalFieldsNeverError(t *testing.T) {
	eng := New(nil, testLogger())
	if _, err := eng.Predict(validRequest()); err != nil {
		t.Fatalf("minimal request must succeed: %v", err)
	}
}
