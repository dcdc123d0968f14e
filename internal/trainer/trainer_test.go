package trainer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golca/adapters/artifacts"
	"golca/domain/lca"
	"golca/internal"
	"golca/internal/engine"
)

func TestSynthesizeSample_SeededAndBounded(t *testing.T) {
	a := synthesizeSample(100, 7)
	b := synthesizeSample(100, 7)

	if len(a.Rows) != 100 {
		t.Fatalf("expected 100 rows, got %d", len(a.Rows))
	}
	for i := range a.Rows {
		for j := range a.Rows[i] {
			if a.Rows[i][j] != b.Rows[i][j] {
				t.Fatalf("row %d col %d differs between identically-seeded samples", i, j)
			}
		}
	}

	for _, target := range lca.Targets() {
		col := a.Column(target)
		if col == nil {
			t.Fatalf("sample missing target column %s", target)
		}
	}
}

func TestTrainer_EndToEndProducesUsableArtifacts(t *testing.T) {
	datasetDir := filepath.Join(t.TempDir(), "datasets")
	modelDir := filepath.Join(t.TempDir(), "trained")
	logger := internal.NewLogger(internal.LogLevelError)
	store := artifacts.NewStore(modelDir, logger)

	metadata, err := New(datasetDir, store, 42, logger).Run(context.Background())
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	// an empty dataset dir synthesizes and persists a sample first
	if _, err := os.Stat(filepath.Join(datasetDir, SampleFileName)); err != nil {
		t.Errorf("sample dataset not written: %v", err)
	}

	if len(metadata.Models) != 3 {
		t.Fatalf("expected 3 trained models, got %d", len(metadata.Models))
	}
	if metadata.TrainingRunID == "" {
		t.Error("training run id missing")
	}
	for target, m := range metadata.Models {
		if m.R2Score <= 0 {
			t.Errorf("%s: expected positive r2 on synthetic data, got %g", target, m.R2Score)
		}
		if m.TrainingSamples == 0 || m.TestSamples == 0 {
			t.Errorf("%s: split sizes missing", target)
		}
	}

	bundle, err := store.Load()
	if err != nil {
		t.Fatalf("artifacts written by the trainer must load cleanly: %v", err)
	}
	if len(bundle.Regressors) != 3 {
		t.Fatalf("expected 3 regressors, got %d", len(bundle.Regressors))
	}
	if bundle.Scaler == nil {
		t.Fatal("main scaler missing")
	}

	eng := engine.New(bundle, logger)
	if eng.Mode() != engine.ModeTrainedModels {
		t.Fatalf("expected trained mode, got %v", eng.Mode())
	}

	result, err := eng.Predict(lca.Request{
		"metal_type":         "Aluminum",
		"production_route":   "Secondary",
		"region":             "Europe",
		"recycling_rate":     60.0,
		"process_efficiency": 85.0,
	})
	if err != nil {
		t.Fatalf("prediction with trained artifacts failed: %v", err)
	}
	p := result.Predictions
	for target, score := range map[string]float64{
		"sustainability": p.SustainabilityScore,
		"circular":       p.CircularScore,
		"linear":         p.LinearScore,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score %g out of [0,100]", target, score)
		}
	}
}

func TestTrainer_RejectsTinyDataset(t *testing.T) {
	datasetDir := t.TempDir()
	csv := "metal_type,production_route,region,total_energy,total_water,recycling_rate,process_efficiency,sustainability_score,circular_score,linear_score\n" +
		"Aluminum,Primary,Europe,20,10,30,70,60,65,50\n"
	if err := os.WriteFile(filepath.Join(datasetDir, "tiny.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	logger := internal.NewLogger(internal.LogLevelError)
	store := artifacts.NewStore(filepath.Join(t.TempDir(), "trained"), logger)
	if _, err := New(datasetDir, store, 42, logger).Run(context.Background()); err == nil {
		t.Fatal("expected error for dataset below the minimum row count")
	}
}
