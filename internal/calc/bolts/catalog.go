package bolts

import (
	"errors"
	"fmt"
)

var ErrUnsupportedDiameter = errors.New("unsupported bolt diameter")

type Diameter struct {
	NominalMM     float64 `json:"nominal_mm"`
	StressAreaMM2 float64 `json:"stress_area_mm2"` // tensile stress area As
}

// ISO metric coarse thread, ascending.
var diameters = []Diameter{
	{NominalMM: 12, StressAreaMM2: 84.3},
	{NominalMM: 16, StressAreaMM2: 157},
	{NominalMM: 20, StressAreaMM2: 245},
	{NominalMM: 22, StressAreaMM2: 303},
	{NominalMM: 24, StressAreaMM2: 353},
}

func Diameters() []Diameter {
	out := make([]Diameter, len(diameters))
	copy(out, diameters)
	return out
}

func LookupDiameter(d float64) (Diameter, error) {
	for _, dd := range diameters {
		if dd.NominalMM == d {
			return dd, nil
		}
	}
	return Diameter{}, fmt.Errorf("%w: M%g", ErrUnsupportedDiameter, d)
}

// HoleDiameter adds the normal clearance: 1 mm up to M14, 2 mm up to M24, 3 mm above.
func HoleDiameter(d float64) float64 {
	switch {
	case d <= 14:
		return d + 1
	case d <= 24:
		return d + 2
	default:
		return d + 3
	}
}

type Candidate struct {
	Diameter Diameter  `json:"diameter"`
	Grade    GradeSpec `json:"grade"`
}

// Candidates returns the search order of the designer: smallest diameter first,
// and within one diameter the weakest grade first.
func Candidates() []Candidate {
	out := make([]Candidate, 0, len(diameters)*len(grades))
	for _, d := range diameters {
		for _, g := range grades {
			out = append(out, Candidate{Diameter: d, Grade: g})
		}
	}
	return out
}

func LookupCandidate(d float64, g Grade) (Candidate, error) {
	dd, err := LookupDiameter(d)
	if err != nil {
		return Candidate{}, err
	}
	gs, err := LookupGrade(g)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{Diameter: dd, Grade: gs}, nil
}
