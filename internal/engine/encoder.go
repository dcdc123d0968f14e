package engine

import (
	"strings"

	"golca/domain/core"
	"golca/domain/lca"
)

// categorical source field -> encoded feature name and ordinal table.
// The mapping is fixed: trained artifacts carry their own encoder tables for
// provenance, but the engine always encodes with the canonical ordinals so a
// stale encoder artifact can never shift the feature contract.
var categoricalMappings = map[string]map[string]float64{
	lca.FieldMetalType:       lca.MetalOrdinals,
	lca.FieldProductionRoute: lca.RouteOrdinals,
	lca.FieldRegion:          lca.RegionOrdinals,
}

// Encode maps a validated request into a feature vector that preserves
// featureOrder exactly. Features the requester omitted get category-sensitive
// defaults; extra request fields are dropped. Unknown categorical values
// encode to 0 rather than failing.
func Encode(req lca.Request, featureOrder []string) ([]float64, error) {
	for field := range req {
		if err := req.Scalar(field); err != nil {
			return nil, core.NewNonScalarError(err.Error())
		}
	}

	row := make(map[string]float64, len(featureOrder))
	for field, mapping := range categoricalMappings {
		if _, present := req[field]; present {
			// lenient default: unmapped categories encode to 0
			row[field+"_encoded"] = mapping[req.String(field)]
		}
	}

	vector := make([]float64, len(featureOrder))
	for i, name := range featureOrder {
		if v, ok := row[name]; ok {
			vector[i] = v
			continue
		}
		if v, ok := req.Float(name); ok {
			vector[i] = v
			continue
		}
		vector[i] = defaultFeatureValue(name)
	}
	return vector, nil
}

// defaultFeatureValue supplies the documented default for a missing feature,
// keyed off the feature name's category.
func defaultFeatureValue(name string) float64 {
	switch {
	case strings.Contains(name, "encoded"):
		return 0
	case strings.Contains(name, "rate"), strings.Contains(name, "efficiency"):
		return 50 // default percentage
	case strings.Contains(name, "distance"):
		return 500 // default distance, km
	case strings.Contains(name, "lifetime"):
		return 15 // default lifetime, years
	default:
		return 0
	}
}
