package autodesign

import (
	"fmt"

	joints "LapJoint/internal/calc/joints"
)

type Objective string

const (
	ObjectiveFirst       Objective = "first"
	ObjectiveFewestBolts Objective = "fewest_bolts"
	ObjectiveShortest    Objective = "shortest"
)

type LapJointInput struct {
	joints.Input
	Objective Objective `json:"objective"`
}

// LapJoint picks the passing configuration that best meets the objective.
// Ties keep catalog order, so the smaller bolt wins.
func LapJoint(in LapJointInput) (joints.Result, error) {
	var key func(joints.Result) float64
	switch in.Objective {
	case "", ObjectiveFirst:
		return joints.Calculate(in.Input)
	case ObjectiveFewestBolts:
		key = func(r joints.Result) float64 { return float64(r.NumberOfBolts) }
	case ObjectiveShortest:
		key = func(r joints.Result) float64 { return r.LengthOfConnection }
	default:
		return joints.Result{}, fmt.Errorf("%w: unknown objective %q", joints.ErrInvalidInput, in.Objective)
	}

	evs, err := joints.Alternatives(in.Input)
	if err != nil {
		return joints.Result{}, err
	}
	var best *joints.Result
	for i := range evs {
		if !evs[i].OK {
			continue
		}
		if best == nil || key(evs[i].Design) < key(*best) {
			best = &evs[i].Design
		}
	}
	if best == nil {
		return joints.Result{}, fmt.Errorf("%w: %g kN", joints.ErrInfeasible, in.LoadKN)
	}
	return *best, nil
}
