package lca

import (
	"fmt"
	"strconv"
)

// Request is a raw prediction request: a field/value mapping equivalent to
// one JSON object. Unknown optional keys are ignored by the engine.
type Request map[string]interface{}

// Required request fields
const (
	FieldMetalType       = "metal_type"
	FieldProductionRoute = "production_route"
	FieldRegion          = "region"
)

// Optional numeric request fields
const (
	FieldTotalEnergy       = "total_energy"
	FieldTotalWater        = "total_water"
	FieldTotalWaste        = "total_waste"
	FieldTransportDistance = "transport_distance"
	FieldRecyclingRate     = "recycling_rate"
	FieldReuseRate         = "reuse_rate"
	FieldProductLifetime   = "product_lifetime"
	FieldProcessEfficiency = "process_efficiency"
)

// Prediction targets
const (
	TargetSustainability = "sustainability_score"
	TargetCircular       = "circular_score"
	TargetLinear         = "linear_score"
)

// Targets lists the three primary prediction targets in canonical order.
func Targets() []string {
	return []string{TargetSustainability, TargetCircular, TargetLinear}
}

// ValidMetals lists the accepted metal_type values.
func ValidMetals() []string {
	return []string{"Aluminum", "Copper", "Steel", "Titanium"}
}

// ValidRoutes lists the accepted production_route values.
func ValidRoutes() []string {
	return []string{"Primary", "Secondary"}
}

// ValidRegions lists the accepted region values.
func ValidRegions() []string {
	return []string{"North America", "Europe", "Asia", "South America", "India"}
}

// Canonical categorical ordinals. Unknown values encode to 0 - a deliberate
// lenient-default policy so a malformed category never aborts a prediction.
// India shares Asia's ordinal: both map to the same manufacturing cluster in
// the training data.
var (
	MetalOrdinals = map[string]float64{
		"Aluminum": 0, "Copper": 1, "Steel": 2, "Titanium": 3,
	}
	RouteOrdinals = map[string]float64{
		"Primary": 0, "Secondary": 1,
	}
	RegionOrdinals = map[string]float64{
		"North America": 0, "Europe": 1, "Asia": 2, "South America": 3, "India": 2,
	}
)

// DefaultFeatureOrder is the built-in feature contract used when no artifact
// metadata is available. Order matters: a trained regressor is only invoked
// when the encoded vector matches its training-time order exactly.
func DefaultFeatureOrder() []string {
	return []string{
		"metal_type_encoded", "production_route_encoded", "region_encoded",
		"total_energy", "total_water", "recycling_rate", "process_efficiency",
	}
}

// Scores holds the three primary indices keyed by target name.
type Scores map[string]float64

// Improvements holds the estimated achievable gains per lever.
type Improvements struct {
	EnergyEfficiency      float64 `json:"energy_efficiency"`
	RecyclingImpact       float64 `json:"recycling_impact"`
	TransportOptimization float64 `json:"transport_optimization"`
}

// Sum returns the total improvement headroom across all levers.
func (im Improvements) Sum() float64 {
	return im.EnergyEfficiency + im.RecyclingImpact + im.TransportOptimization
}

// Predictions is the primary payload of a prediction response.
// All three scores are always present and bounded to [0,100];
// confidence is always present and bounded to [0,1].
type Predictions struct {
	SustainabilityScore float64       `json:"sustainability_score"`
	CircularScore       float64       `json:"circular_score"`
	LinearScore         float64       `json:"linear_score"`
	Confidence          float64       `json:"confidence"`
	Improvements        *Improvements `json:"improvements,omitempty"`
	PotentialScore      float64       `json:"potential_score,omitempty"`
}

// ModelInfo describes the model that produced a prediction.
type ModelInfo struct {
	Version        string  `json:"version"`
	TrainedAt      string  `json:"trained_at"`
	PredictionTime string  `json:"prediction_time"`
	Confidence     float64 `json:"confidence"`
}

// PredictionResult is the complete outbound response shape.
type PredictionResult struct {
	Predictions Predictions `json:"predictions"`
	ModelInfo   ModelInfo   `json:"model_info"`
}

// Get returns a score by target name.
func (p Predictions) Get(target string) float64 {
	switch target {
	case TargetSustainability:
		return p.SustainabilityScore
	case TargetCircular:
		return p.CircularScore
	case TargetLinear:
		return p.LinearScore
	}
	return 0
}

// Set assigns a score by target name.
func (p *Predictions) Set(target string, v float64) {
	switch target {
	case TargetSustainability:
		p.SustainabilityScore = v
	case TargetCircular:
		p.CircularScore = v
	case TargetLinear:
		p.LinearScore = v
	}
}

// String returns the string value of a request field, or "" when absent or
// not a string.
func (r Request) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Float coerces a request field to float64. JSON numbers arrive as float64,
// but script callers sometimes send numerics as strings, so both are accepted.
func (r Request) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// FloatOr returns the field value or def when absent or non-numeric.
func (r Request) FloatOr(key string, def float64) float64 {
	if f, ok := r.Float(key); ok {
		return f
	}
	return def
}

// Scalar reports whether a present field holds a scalar value the encoder
// can coerce into a table cell.
func (r Request) Scalar(key string) error {
	v, ok := r[key]
	if !ok {
		return nil
	}
	switch v.(type) {
	case string, float64, int, bool, nil:
		return nil
	}
	return fmt.Errorf("field %s holds non-scalar value %T", key, v)
}
