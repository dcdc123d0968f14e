package engine

import (
	"golca/domain/core"
	"golca/domain/lca"
)

// numeric range limits for optional inputs
const (
	maxTotalEnergy   = 100.0
	maxRecyclingRate = 100.0
)

// Validate checks a raw request against required fields, the metal_type
// whitelist, and numeric ranges. It has no side effects and must pass before
// any encoding is attempted; the engine rejects the request outright on
// failure instead of guessing.
func Validate(req lca.Request) error {
	var missing []string
	for _, field := range []string{lca.FieldMetalType, lca.FieldProductionRoute, lca.FieldRegion} {
		if _, ok := req[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return core.NewMissingFieldsError(missing)
	}

	metal := req.String(lca.FieldMetalType)
	if _, ok := lca.MetalOrdinals[metal]; !ok {
		return core.NewInvalidCategoryError(lca.FieldMetalType, metal, lca.ValidMetals())
	}

	if err := checkRange(req, lca.FieldTotalEnergy, 0, maxTotalEnergy, "between 0 and 100 GJ"); err != nil {
		return err
	}
	if err := checkRange(req, lca.FieldRecyclingRate, 0, maxRecyclingRate, "between 0 and 100%"); err != nil {
		return err
	}
	return nil
}

func checkRange(req lca.Request, field string, lo, hi float64, requirement string) error {
	if _, present := req[field]; !present {
		return nil
	}
	v, ok := req.Float(field)
	if !ok || v < lo || v > hi {
		return core.NewOutOfRangeError(field, requirement)
	}
	return nil
}
