package joints

import (
	"fmt"
	"math"

	"LapJoint/internal/calc/bolts"
)

type CheckInput struct {
	Input
	BoltDiameterMM float64     `json:"bolt_diameter_mm"`
	BoltGrade      bolts.Grade `json:"bolt_grade"`
	BoltCount      int         `json:"bolt_count"`
}

type CheckResult struct {
	ShearCapacityKN   float64 `json:"shear_capacity_kn"`
	BearingCapacityKN float64 `json:"bearing_capacity_kn"`
	CapacityKN        float64 `json:"capacity_kn"`
	Utilization       float64 `json:"utilization"`
	OK                bool    `json:"ok"`
	Design            Result  `json:"design"`
	Notes             string  `json:"notes"`
}

// Check verifies a chosen bolt size, grade and count instead of searching the catalog.
func Check(in CheckInput) (CheckResult, error) {
	if err := in.validate(); err != nil {
		return CheckResult{}, err
	}
	if in.BoltCount < minBolts {
		return CheckResult{}, &ValidationError{Field: "bolt_count", Value: float64(in.BoltCount), Rule: fmt.Sprintf(">= %d", minBolts)}
	}
	c, err := bolts.LookupCandidate(in.BoltDiameterMM, in.BoltGrade)
	if err != nil {
		return CheckResult{}, err
	}
	jin := in.withDefaults()

	sp := minSpacing(c.Diameter.NominalMM)
	maxCols := maxColumns(jin.PlateWidthMM, sp)
	if maxCols == 0 {
		return CheckResult{}, fmt.Errorf("%w: M%g does not fit a %g mm plate", ErrInfeasible, c.Diameter.NominalMM, jin.PlateWidthMM)
	}
	if in.BoltCount > maxCols*maxRows {
		return CheckResult{}, fmt.Errorf("%w: %d bolts exceed %d rows of %d", ErrInfeasible, in.BoltCount, maxRows, maxCols)
	}
	lay := arrange(in.BoltCount, maxCols)

	shear, bearing := boltCapacity(jin, c, sp)
	design := connection(jin, c, sp, math.Min(shear, bearing), lay, in.BoltCount)
	capacity := math.Min(design.StrengthOfConnection, math.Min(design.YieldStrengthPlate1, design.YieldStrengthPlate2))
	if !(capacity > 0) {
		return CheckResult{}, fmt.Errorf("%w: M%g %g has no resistance in these plates", ErrInfeasible, c.Diameter.NominalMM, float64(c.Grade.Grade))
	}
	util := jin.LoadKN / capacity
	return CheckResult{
		ShearCapacityKN:   shear,
		BearingCapacityKN: bearing,
		CapacityKN:        capacity,
		Utilization:       util,
		OK:                util <= 1.0,
		Design:            design,
		Notes:             "Bolts in single shear, bearing on the thinner plate, net section yield of both plates.",
	}, nil
}
