package bolts

import (
	"errors"
	"fmt"
)

var ErrUnsupportedGrade = errors.New("unsupported bolt grade")

// Grade is a bolt property class such as 4.6 or 8.8.
type Grade float64

type GradeSpec struct {
	Grade       Grade   `json:"grade"`
	UltimateMPa float64 `json:"ultimate_mpa"`
	YieldRatio  float64 `json:"yield_ratio"`
	// AlphaV is the shear resistance factor for a shear plane through the thread.
	AlphaV float64 `json:"alpha_v"`
}

func (s GradeSpec) YieldMPa() float64 {
	return s.YieldRatio * s.UltimateMPa
}

// Ascending ultimate strength. The designer scans grades in this order.
var grades = []GradeSpec{
	{Grade: 3.6, UltimateMPa: 300, YieldRatio: 0.6, AlphaV: 0.6},
	{Grade: 4.6, UltimateMPa: 400, YieldRatio: 0.5, AlphaV: 0.6},
	{Grade: 5.8, UltimateMPa: 500, YieldRatio: 0.7, AlphaV: 0.5},
	{Grade: 6.8, UltimateMPa: 600, YieldRatio: 0.8, AlphaV: 0.5},
	{Grade: 8.8, UltimateMPa: 800, YieldRatio: 0.8, AlphaV: 0.6},
	{Grade: 10.9, UltimateMPa: 1000, YieldRatio: 0.9, AlphaV: 0.5},
}

// Grades returns a copy of the supported grade table.
func Grades() []GradeSpec {
	out := make([]GradeSpec, len(grades))
	copy(out, grades)
	return out
}

func LookupGrade(g Grade) (GradeSpec, error) {
	for _, s := range grades {
		if s.Grade == g {
			return s, nil
		}
	}
	return GradeSpec{}, fmt.Errorf("%w: %g", ErrUnsupportedGrade, float64(g))
}

// CalculateStrength returns the ultimate and yield strength of a bolt grade in MPa.
func CalculateStrength(g Grade) (ultimate, yield float64, err error) {
	s, err := LookupGrade(g)
	if err != nil {
		return 0, 0, err
	}
	return s.UltimateMPa, s.YieldMPa(), nil
}
