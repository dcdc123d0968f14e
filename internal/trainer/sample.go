package trainer

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"golca/adapters/dataset"
)

// SampleFileName is the CSV written when no real datasets are present.
const SampleFileName = "sample_lca_data.csv"

var sampleMetals = []string{"Aluminum", "Copper", "Steel", "Titanium"}
var sampleRoutes = []string{"Primary", "Secondary"}
var sampleRegions = []string{"North America", "Europe", "Asia", "South America"}

// synthesizeSample generates a seeded synthetic LCA dataset whose score
// columns follow the same additive formula the production datasets were
// labeled with, so a demo training run produces plausible regressors.
func synthesizeSample(n int, seed int64) *dataset.Table {
	rng := rand.New(rand.NewSource(seed))

	headers := []string{
		"project_name", "metal_type", "production_route", "region",
		"total_energy", "total_water", "total_waste", "transport_distance",
		"recycling_rate", "reuse_rate", "product_lifetime", "process_efficiency",
		"sustainability_score", "circular_score", "linear_score",
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		energy := rng.NormFloat64()*50 + 150
		water := rng.NormFloat64()*25 + 80
		waste := rng.NormFloat64()*8 + 20
		transport := rng.NormFloat64()*200 + 500
		recycling := rng.Float64() * 80
		reuse := rng.Float64() * 30
		lifetime := rng.NormFloat64()*5 + 15
		efficiency := 60 + rng.Float64()*35

		sustainability := 100 - energy*0.2 - water*0.15 - waste*0.3 +
			recycling*0.3 + reuse*0.2 + efficiency*0.1 - transport*0.01
		sustainability = clip(sustainability + rng.NormFloat64()*5)

		circular := clip(sustainability + recycling*0.2 + reuse*0.3)
		linear := clip(sustainability - recycling*0.1 - reuse*0.15)

		rows = append(rows, []string{
			fmt.Sprintf("Project_%d", i),
			sampleMetals[rng.Intn(len(sampleMetals))],
			sampleRoutes[rng.Intn(len(sampleRoutes))],
			sampleRegions[rng.Intn(len(sampleRegions))],
			formatFloat(energy),
			formatFloat(water),
			formatFloat(waste),
			formatFloat(transport),
			formatFloat(recycling),
			formatFloat(reuse),
			formatFloat(lifetime),
			formatFloat(efficiency),
			formatFloat(sustainability),
			formatFloat(circular),
			formatFloat(linear),
		})
	}

	return &dataset.Table{Headers: headers, Rows: rows}
}

// writeSampleCSV persists a synthesized table so later runs reuse it.
func writeSampleCSV(dir string, table *dataset.Table) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create dataset directory: %w", err)
	}
	path := filepath.Join(dir, SampleFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create sample dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Headers); err != nil {
		return "", err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return "", err
	}
	w.Flush()
	return path, w.Error()
}

func clip(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
