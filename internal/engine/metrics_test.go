package engine

import (
	"testing"

	"golca/domain/lca"
)

func TestAugment_CapsEachImprovement(t *testing.T) {
	p := &lca.Predictions{SustainabilityScore: 50}
	augment(p, lca.Request{
		"process_efficiency": 200.0, // (200-60)*0.5 = 70, capped at 25
		"recycling_rate":     100.0, // 100*0.4 = 40, capped at 30
		"transport_distance": 0.0,   // 1000/100 = 10, under the 15 cap
	})

	if p.Improvements.EnergyEfficiency != 25 {
		t.Errorf("energy_efficiency: expected cap 25, got %g", p.Improvements.EnergyEfficiency)
	}
	if p.Improvements.RecyclingImpact != 30 {
		t.Errorf("recycling_impact: expected cap 30, got %g", p.Improvements.RecyclingImpact)
	}
	if p.Improvements.TransportOptimization != 10 {
		t.Errorf("transport_optimization: expected 10, got %g", p.Improvements.TransportOptimization)
	}
}

func TestAugment_DefaultsWhenFieldsAbsent(t *testing.T) {
	p := &lca.Predictions{SustainabilityScore: 40}
	augment(p, lca.Request{})

	// efficiency defaults to 80: (80-60)*0.5 = 10
	if p.Improvements.EnergyEfficiency != 10 {
		t.Errorf("energy_efficiency: expected 10, got %g", p.Improvements.EnergyEfficiency)
	}
	// recycling defaults to 0
	if p.Improvements.RecyclingImpact != 0 {
		t.Errorf("recycling_impact: expected 0, got %g", p.Improvements.RecyclingImpact)
	}
	// transport defaults to 500: (1000-500)/100 = 5
	if p.Improvements.TransportOptimization != 5 {
		t.Errorf("transport_optimization: expected 5, got %g", p.Improvements.TransportOptimization)
	}
	// potential = 40 + 15*0.5
	if p.PotentialScore != 47.5 {
		t.Errorf("potential_score: expected 47.5, got %g", p.PotentialScore)
	}
}

func TestAugment_FarTransportGivesNoHeadroom(t *testing.T) {
	p := &lca.Predictions{SustainabilityScore: 60}
	augment(p, lca.Request{"transport_distance": 2500.0})

	if p.Improvements.TransportOptimization != 0 {
		t.Errorf("distances past 1000 km have no transport headroom, got %g",
			p.Improvements.TransportOptimization)
	}
}

func TestAugment_PotentialScoreClamped(t *testing.T) {
	p := &lca.Predictions{SustainabilityScore: 95}
	augment(p, lca.Request{
		"process_efficiency": 95.0,
		"recycling_rate":     80.0,
		"transport_distance": 100.0,
	})

	if p.PotentialScore != 100 {
		t.Errorf("potential_score must clamp to 100, got %g", p.PotentialScore)
	}
	if p.SustainabilityScore != 95 {
		t.Errorf("augmentation must not disturb primary scores, got %g", p.SustainabilityScore)
	}
}
