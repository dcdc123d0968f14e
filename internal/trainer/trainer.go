// Package trainer implements the offline training pipeline: it loads the
// dataset folder (synthesizing a sample when empty), imputes and encodes the
// raw table, fits one linear regressor per target, and writes the artifact
// bundle the prediction engine consumes.
package trainer

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"golca/adapters/artifacts"
	"golca/adapters/dataset"
	"golca/domain/core"
	"golca/domain/lca"
	"golca/internal"
	"golca/ports"
)

const (
	testFraction   = 0.2
	minSampleRows  = 50
	sampleRowCount = 500
)

// Trainer runs the offline training pipeline.
type Trainer struct {
	datasetDir string
	store      *artifacts.Store
	seed       int64
	log        *internal.Logger
}

// New creates a trainer reading datasets from datasetDir and writing
// artifacts through the given store.
func New(datasetDir string, store *artifacts.Store, seed int64, logger *internal.Logger) *Trainer {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelError)
	}
	return &Trainer{datasetDir: datasetDir, store: store, seed: seed, log: logger}
}

// Run executes the full pipeline and returns the written metadata.
func (t *Trainer) Run(ctx context.Context) (*ports.ArtifactMetadata, error) {
	table, files, err := dataset.ReadDirectory(t.datasetDir)
	if err != nil {
		t.log.Info("no dataset files found, synthesizing sample dataset")
		table = synthesizeSample(sampleRowCount, t.seed)
		path, werr := writeSampleCSV(t.datasetDir, table)
		if werr != nil {
			return nil, fmt.Errorf("failed to write sample dataset: %w", werr)
		}
		files = []string{path}
	}
	t.log.Info("training on %d rows from %v", len(table.Rows), files)

	featureOrder := lca.DefaultFeatureOrder()
	features, err := t.buildFeatureMatrix(table, featureOrder)
	if err != nil {
		return nil, err
	}

	scaler := fitScaler(features)
	scaled := make([][]float64, len(features))
	for i, row := range features {
		scaled[i], _ = scaler.Transform(row)
	}

	// one shuffled split shared by all targets
	rng := rand.New(rand.NewSource(t.seed))
	indices := rng.Perm(len(scaled))
	testSize := int(float64(len(scaled)) * testFraction)
	if testSize < 1 {
		testSize = 1
	}
	testIdx, trainIdx := indices[:testSize], indices[testSize:]

	trainX := matrixFromRows(scaled, trainIdx)
	testX := matrixFromRows(scaled, testIdx)

	var mu sync.Mutex
	models := make(map[string]*artifacts.LinearModel, len(lca.Targets()))
	metrics := make(map[string]ports.ModelMetrics, len(lca.Targets()))

	g, _ := errgroup.WithContext(ctx)
	for _, target := range lca.Targets() {
		target := target
		g.Go(func() error {
			y, err := t.targetColumn(table, target)
			if err != nil {
				return err
			}
			trainY := valuesAt(y, trainIdx)
			testY := valuesAt(y, testIdx)

			model, err := fitOLS(trainX, trainY)
			if err != nil {
				return fmt.Errorf("training failed for %s: %w", target, err)
			}
			r2, mae := evaluate(model, testX, testY)
			t.log.Info("%s - R2: %.4f, MAE: %.2f", target, r2, mae)

			mu.Lock()
			models[target] = model
			metrics[target] = ports.ModelMetrics{
				ModelType:       model.ModelType,
				R2Score:         r2,
				MAE:             mae,
				TrainingSamples: len(trainIdx),
				TestSamples:     len(testIdx),
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metadata := ports.ArtifactMetadata{
		Version:       "1.0",
		TrainedAt:     time.Now().Format(time.RFC3339),
		TrainingRunID: core.NewID().String(),
		FeatureNames:  featureOrder,
		Models:        metrics,
	}

	encoders := map[string]map[string]float64{
		lca.FieldMetalType:       lca.MetalOrdinals,
		lca.FieldProductionRoute: lca.RouteOrdinals,
		lca.FieldRegion:          lca.RegionOrdinals,
	}
	scalers := map[string]*artifacts.StandardScaler{"main": scaler}

	if err := t.store.Write(metadata, models, scalers, encoders); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// buildFeatureMatrix encodes categoricals with the canonical ordinals and
// imputes missing numerics with the column median, mirroring how the
// datasets were prepared for the engine's feature contract.
func (t *Trainer) buildFeatureMatrix(table *dataset.Table, featureOrder []string) ([][]float64, error) {
	if len(table.Rows) < minSampleRows {
		return nil, fmt.Errorf("dataset too small: %d rows (minimum %d)", len(table.Rows), minSampleRows)
	}

	columns := make([][]float64, len(featureOrder))
	for j, name := range featureOrder {
		if strings.HasSuffix(name, "_encoded") {
			columns[j] = encodeColumn(table, strings.TrimSuffix(name, "_encoded"))
			continue
		}
		col, err := numericColumn(table, name)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}

	rows := make([][]float64, len(table.Rows))
	for i := range table.Rows {
		row := make([]float64, len(featureOrder))
		for j := range featureOrder {
			row[j] = columns[j][i]
		}
		rows[i] = row
	}
	return rows, nil
}

func (t *Trainer) targetColumn(table *dataset.Table, target string) ([]float64, error) {
	col, err := numericColumn(table, target)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", target, err)
	}
	return col, nil
}

// encodeColumn maps a categorical column through the canonical ordinals.
// Empty cells impute to the column mode; unknown non-empty values encode
// to 0, matching the engine's lenient policy. An absent column is all zeros.
func encodeColumn(table *dataset.Table, field string) []float64 {
	mapping := map[string]float64{}
	switch field {
	case lca.FieldMetalType:
		mapping = lca.MetalOrdinals
	case lca.FieldProductionRoute:
		mapping = lca.RouteOrdinals
	case lca.FieldRegion:
		mapping = lca.RegionOrdinals
	}

	encoded := make([]float64, len(table.Rows))
	values := table.Column(field)
	if values == nil {
		return encoded
	}

	counts := make(map[string]int)
	var mode string
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
		if values[i] == "" {
			continue
		}
		counts[values[i]]++
		if counts[values[i]] > counts[mode] {
			mode = values[i]
		}
	}

	for i, v := range values {
		if v == "" {
			v = mode
		}
		encoded[i] = mapping[v]
	}
	return encoded
}

// numericColumn parses a column to floats, imputing unparseable or missing
// cells with the column median.
func numericColumn(table *dataset.Table, name string) ([]float64, error) {
	values := table.Column(name)
	if values == nil {
		return nil, fmt.Errorf("dataset missing column %s", name)
	}

	parsed := make([]float64, len(values))
	valid := make([]bool, len(values))
	var present []float64
	for i, raw := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		parsed[i] = v
		valid[i] = true
		present = append(present, v)
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("column %s has no numeric values", name)
	}

	median, err := stats.Median(present)
	if err != nil {
		return nil, fmt.Errorf("median imputation failed for %s: %w", name, err)
	}
	for i := range parsed {
		if !valid[i] {
			parsed[i] = median
		}
	}
	return parsed, nil
}

// fitScaler computes per-feature mean and population standard deviation.
func fitScaler(rows [][]float64) *artifacts.StandardScaler {
	if len(rows) == 0 {
		return &artifacts.StandardScaler{}
	}
	p := len(rows[0])
	mean := make([]float64, p)
	scale := make([]float64, p)

	column := make([]float64, len(rows))
	for j := 0; j < p; j++ {
		for i, row := range rows {
			column[i] = row[j]
		}
		m, _ := stats.Mean(column)
		s, _ := stats.StandardDeviationPopulation(column)
		if s == 0 {
			s = 1
		}
		mean[j] = m
		scale[j] = s
	}
	return &artifacts.StandardScaler{Mean: mean, Scale: scale}
}

func matrixFromRows(rows [][]float64, idx []int) *mat.Dense {
	if len(idx) == 0 || len(rows) == 0 {
		return mat.NewDense(1, 1, nil)
	}
	p := len(rows[0])
	m := mat.NewDense(len(idx), p, nil)
	for i, r := range idx {
		m.SetRow(i, rows[r])
	}
	return m
}

func valuesAt(values []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, r := range idx {
		out[i] = values[r]
	}
	return out
}
