package recommend

import (
	"fmt"

	"LapJoint/internal/calc/bolts"
	joints "LapJoint/internal/calc/joints"
)

type Option struct {
	BoltDiameter           float64     `json:"bolt_diameter"`
	BoltGrade              bolts.Grade `json:"bolt_grade"`
	NumberOfBolts          int         `json:"number_of_bolts"`
	NumberOfRows           int         `json:"number_of_rows"`
	NumberOfColumns        int         `json:"number_of_columns"`
	LengthOfConnection     float64     `json:"length_of_connection"`
	StrengthOfConnection   float64     `json:"strength_of_connection"`
	EfficiencyOfConnection float64     `json:"efficiency_of_connection"`
	Governs                string      `json:"governs"`
}

type Result struct {
	Options []Option `json:"options"`
	Notes   string   `json:"notes"`
}

// Bolts lists every catalog configuration that carries the load, in catalog order.
func Bolts(in joints.Input) (Result, error) {
	evs, err := joints.Alternatives(in)
	if err != nil {
		return Result{}, err
	}
	var opts []Option
	for _, ev := range evs {
		if !ev.OK {
			continue
		}
		opts = append(opts, Option{
			BoltDiameter:           ev.Design.BoltDiameter,
			BoltGrade:              ev.Design.BoltGrade,
			NumberOfBolts:          ev.Design.NumberOfBolts,
			NumberOfRows:           ev.Design.NumberOfRows,
			NumberOfColumns:        ev.Design.NumberOfColumns,
			LengthOfConnection:     ev.Design.LengthOfConnection,
			StrengthOfConnection:   ev.Design.StrengthOfConnection,
			EfficiencyOfConnection: ev.Design.EfficiencyOfConnection,
			Governs:                governs(ev),
		})
	}
	if len(opts) == 0 {
		return Result{}, fmt.Errorf("%w: %g kN", joints.ErrInfeasible, in.LoadKN)
	}
	return Result{
		Options: opts,
		Notes:   "Alternative bolt configurations, smallest diameter and grade first.",
	}, nil
}

func governs(ev joints.Evaluation) string {
	d := ev.Design
	switch {
	case d.YieldStrengthPlate1 < d.StrengthOfConnection || d.YieldStrengthPlate2 < d.StrengthOfConnection:
		return "net section"
	case ev.BearingCapacityKN < ev.ShearCapacityKN:
		return "bearing"
	default:
		return "shear"
	}
}
