package loads

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownMethod = errors.New("unknown load combination method")

type Method string

const (
	MethodSP20   Method = "SP20"
	MethodEN1990 Method = "EN1990"
	MethodASCE7  Method = "ASCE7"
)

// Combination holds partial factors for one permanent and two variable actions.
type Combination struct {
	Method        Method  `json:"method"`
	Name          string  `json:"name"`
	Permanent     float64 `json:"permanent"`
	VariableLong  float64 `json:"variable_long"`
	VariableShort float64 `json:"variable_short"`
}

// First entry is the default.
var combinations = []Combination{
	{Method: MethodSP20, Name: "SP20 basic", Permanent: 1.05, VariableLong: 1.2, VariableShort: 1.3},
	// 6.10 with the short-term action accompanying: 1.5 * psi0 (0.7)
	{Method: MethodEN1990, Name: "EN1990 STR 6.10", Permanent: 1.35, VariableLong: 1.5, VariableShort: 1.05},
	{Method: MethodASCE7, Name: "ASCE7 1.2D+1.6L", Permanent: 1.2, VariableLong: 1.6, VariableShort: 1.6},
}

type Input struct {
	Method       Method  `json:"method"`
	LoadGKN      float64 `json:"load_g_kn"`
	LoadQLongKN  float64 `json:"load_q_long_kn"`
	LoadQShortKN float64 `json:"load_q_short_kn"`
}

type Result struct {
	DesignLoadKN float64 `json:"design_load_kn"`
	ComboName    string  `json:"combo_name"`
	Notes        string  `json:"notes"`
}

func Combinations() []Combination {
	out := make([]Combination, len(combinations))
	copy(out, combinations)
	return out
}

func Calculate(in Input) (Result, error) {
	for _, v := range []float64{in.LoadGKN, in.LoadQLongKN, in.LoadQShortKN} {
		if !(v >= 0) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("invalid load %g kN", v)
		}
	}
	c, err := lookup(in.Method)
	if err != nil {
		return Result{}, err
	}
	design := in.LoadGKN*c.Permanent + in.LoadQLongKN*c.VariableLong + in.LoadQShortKN*c.VariableShort
	return Result{
		DesignLoadKN: design,
		ComboName:    c.Name,
		Notes:        "Axial design load from one permanent and two variable actions.",
	}, nil
}

func lookup(m Method) (Combination, error) {
	if m == "" {
		return combinations[0], nil
	}
	for _, c := range combinations {
		if c.Method == m {
			return c, nil
		}
	}
	return Combination{}, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
}
