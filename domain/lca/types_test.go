package lca

import "testing"

func TestRequestFloatCoercion(t *testing.T) {
	req := Request{
		"a": 42.5,
		"b": "17.25",
		"c": "not a number",
		"d": []interface{}{1, 2},
	}

	if v, ok := req.Float("a"); !ok || v != 42.5 {
		t.Errorf("float value: got %g, %v", v, ok)
	}
	if v, ok := req.Float("b"); !ok || v != 17.25 {
		t.Errorf("string numeric: got %g, %v", v, ok)
	}
	if _, ok := req.Float("c"); ok {
		t.Error("non-numeric string should not coerce")
	}
	if _, ok := req.Float("d"); ok {
		t.Error("array should not coerce")
	}
	if v := req.FloatOr("missing", 500); v != 500 {
		t.Errorf("FloatOr default: got %g", v)
	}
}

func TestRequestScalar(t *testing.T) {
	req := Request{
		"ok":     "Aluminum",
		"nested": map[string]interface{}{"x": 1},
	}
	if err := req.Scalar("ok"); err != nil {
		t.Errorf("string is scalar: %v", err)
	}
	if err := req.Scalar("missing"); err != nil {
		t.Errorf("absent field is not an error: %v", err)
	}
	if err := req.Scalar("nested"); err == nil {
		t.Error("nested object should be rejected")
	}
}

func TestRegionOrdinals_IndiaSharesAsia(t *testing.T) {
	if RegionOrdinals["India"] != RegionOrdinals["Asia"] {
		t.Errorf("India should share Asia's ordinal, got %g vs %g",
			RegionOrdinals["India"], RegionOrdinals["Asia"])
	}
}

func TestBenchmarkFor(t *testing.T) {
	b, ok := BenchmarkFor("Aluminum")
	if !ok {
		t.Fatal("aluminum benchmark should exist")
	}
	if b.EnergyIntensity.Avg != 18.5 {
		t.Errorf("aluminum energy avg: got %g", b.EnergyIntensity.Avg)
	}

	if _, ok := BenchmarkFor("titanium"); ok {
		t.Error("titanium has no published bands")
	}
	if _, ok := BenchmarkFor("bronze"); ok {
		t.Error("bronze is not a known metal")
	}
}

func TestPredictionsGetSet(t *testing.T) {
	var p Predictions
	for i, target := range Targets() {
		p.Set(target, float64(10*(i+1)))
	}
	if p.SustainabilityScore != 10 || p.CircularScore != 20 || p.LinearScore != 30 {
		t.Errorf("unexpected scores: %+v", p)
	}
	if p.Get(TargetCircular) != 20 {
		t.Errorf("Get circular: got %g", p.Get(TargetCircular))
	}
	if p.Get("unknown") != 0 {
		t.Error("unknown target should read as zero")
	}
}
