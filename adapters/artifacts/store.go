// Package artifacts implements the filesystem artifact store: it loads the
// metadata, regressor, scaler, and encoder files a training run produced and
// adapts them to the capability interfaces the engine consumes. Every piece
// is optional; a missing or corrupt file degrades the bundle, never the
// process.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golca/domain/core"
	"golca/domain/lca"
	"golca/internal"
	"golca/ports"
)

// Artifact file names inside the model directory.
const (
	MetadataFile = "metadata.json"
	ScalersFile  = "scalers.json"
	EncodersFile = "encoders.json"
)

// ModelFile returns the regressor file name for a target.
func ModelFile(target string) string {
	return target + "_model.json"
}

// Store loads artifact bundles from a local directory.
type Store struct {
	dir string
	log *internal.Logger
}

// NewStore creates a filesystem artifact store rooted at dir.
func NewStore(dir string, logger *internal.Logger) *Store {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelError)
	}
	return &Store{dir: dir, log: logger}
}

// Load reads whatever artifacts exist under the store directory. It always
// returns a usable bundle: absent pieces are simply left nil and the engine
// falls back accordingly. The returned error is informational only and wraps
// core.ErrArtifactLoad.
func (s *Store) Load() (*ports.ArtifactBundle, error) {
	bundle := &ports.ArtifactBundle{
		Regressors: make(map[string]ports.Regressor),
	}

	var firstErr error
	record := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if err := s.readJSON(MetadataFile, &bundle.Metadata); err != nil {
		s.log.Warn("metadata not loaded: %v", err)
		record(err)
	} else {
		s.log.Info("metadata loaded: version=%s features=%d",
			bundle.Metadata.Version, len(bundle.Metadata.FeatureNames))
	}

	for _, target := range lca.Targets() {
		var model LinearModel
		if err := s.readJSON(ModelFile(target), &model); err != nil {
			s.log.Warn("model not loaded for %s: %v", target, err)
			record(err)
			continue
		}
		bundle.Regressors[target] = &model
		s.log.Info("loaded model for %s", target)
	}

	var scalers map[string]*StandardScaler
	if err := s.readJSON(ScalersFile, &scalers); err != nil {
		s.log.Warn("scalers not loaded: %v", err)
		record(err)
	} else if main, ok := scalers["main"]; ok {
		bundle.Scaler = main
	}

	if err := s.readJSON(EncodersFile, &bundle.Encoders); err != nil {
		s.log.Warn("encoders not loaded: %v", err)
		record(err)
	}

	return bundle, firstErr
}

func (s *Store) readJSON(name string, dst interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return core.NewArtifactLoadError(name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return core.NewArtifactLoadError(name, fmt.Errorf("corrupt JSON: %w", err))
	}
	return nil
}

// Write persists a bundle's serializable pieces to the store directory.
// Used by the offline trainer; the engine never writes.
func (s *Store) Write(metadata ports.ArtifactMetadata, models map[string]*LinearModel, scalers map[string]*StandardScaler, encoders map[string]map[string]float64) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	if err := s.writeJSON(MetadataFile, metadata); err != nil {
		return err
	}
	for target, model := range models {
		if err := s.writeJSON(ModelFile(target), model); err != nil {
			return err
		}
	}
	if err := s.writeJSON(ScalersFile, scalers); err != nil {
		return err
	}
	return s.writeJSON(EncodersFile, encoders)
}

func (s *Store) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	s.log.Info("saved %s", path)
	return nil
}
