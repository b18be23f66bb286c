package joints

import (
	"fmt"
	"math"

	"LapJoint/internal/calc/bolts"
)

const (
	defaultFyMPa   = 275.0 // S275 plate
	defaultFuMPa   = 430.0
	defaultGammaM0 = 1.0
	defaultGammaM2 = 1.25

	// A single bolt lets the lap joint rotate.
	minBolts = 2
	maxRows  = 8

	// Upper bounds on material and partial factor overrides.
	maxStrengthMPa = 2000.0
	maxGamma       = 2.0
)

type Input struct {
	LoadKN       float64 `json:"load_kn"`
	PlateWidthMM float64 `json:"plate_width_mm"`
	Thickness1MM float64 `json:"thickness_1_mm"`
	Thickness2MM float64 `json:"thickness_2_mm"`
	FyMPa        float64 `json:"fy_mpa"`
	FuMPa        float64 `json:"fu_mpa"`
	GammaM0      float64 `json:"gamma_m0"`
	GammaM2      float64 `json:"gamma_m2"`
}

// Result is the lap joint design record. Lengths in mm, forces in kN.
type Result struct {
	BoltDiameter           float64     `json:"bolt_diameter"`
	BoltGrade              bolts.Grade `json:"bolt_grade"`
	NumberOfBolts          int         `json:"number_of_bolts"`
	PitchDistance          float64     `json:"pitch_distance"`
	GaugeDistance          float64     `json:"gauge_distance"`
	EndDistance            float64     `json:"end_distance"`
	EdgeDistance           float64     `json:"edge_distance"`
	NumberOfRows           int         `json:"number_of_rows"`
	NumberOfColumns        int         `json:"number_of_columns"`
	HoleDiameter           float64     `json:"hole_diameter"`
	StrengthOfConnection   float64     `json:"strength_of_connection"`
	YieldStrengthPlate1    float64     `json:"yield_strength_plate_1"`
	YieldStrengthPlate2    float64     `json:"yield_strength_plate_2"`
	LengthOfConnection     float64     `json:"length_of_connection"`
	EfficiencyOfConnection float64     `json:"efficiency_of_connection"`
}

// Evaluation is one catalog candidate checked against an input.
type Evaluation struct {
	BoltDiameter      float64     `json:"bolt_diameter"`
	BoltGrade         bolts.Grade `json:"bolt_grade"`
	ShearCapacityKN   float64     `json:"shear_capacity_kn"`
	BearingCapacityKN float64     `json:"bearing_capacity_kn"`
	BoltCapacityKN    float64     `json:"bolt_capacity_kn"`
	RequiredBolts     int         `json:"required_bolts"`
	Fits              bool        `json:"fits"`
	OK                bool        `json:"ok"`
	Design            Result      `json:"design"`
}

// DesignLapJoint designs a lap joint in S275 plates with default partial factors.
func DesignLapJoint(load, plateWidth, thickness1, thickness2 float64) (Result, error) {
	return Calculate(Input{
		LoadKN:       load,
		PlateWidthMM: plateWidth,
		Thickness1MM: thickness1,
		Thickness2MM: thickness2,
	})
}

func Calculate(in Input) (Result, error) {
	ev, err := Design(in)
	if err != nil {
		return Result{}, err
	}
	return ev.Design, nil
}

// Design returns the evaluation of the first adequate candidate in catalog order.
func Design(in Input) (Evaluation, error) {
	if err := in.validate(); err != nil {
		return Evaluation{}, err
	}
	in = in.withDefaults()
	for _, c := range bolts.Candidates() {
		if ev := evaluate(in, c); ev.OK {
			return ev, nil
		}
	}
	return Evaluation{}, fmt.Errorf("%w: %g kN on %g mm plates %gx%g mm",
		ErrInfeasible, in.LoadKN, in.PlateWidthMM, in.Thickness1MM, in.Thickness2MM)
}

// Alternatives evaluates every catalog candidate, adequate or not.
func Alternatives(in Input) ([]Evaluation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	in = in.withDefaults()
	cs := bolts.Candidates()
	out := make([]Evaluation, 0, len(cs))
	for _, c := range cs {
		out = append(out, evaluate(in, c))
	}
	return out, nil
}

func Evaluate(in Input, c bolts.Candidate) (Evaluation, error) {
	if err := in.validate(); err != nil {
		return Evaluation{}, err
	}
	return evaluate(in.withDefaults(), c), nil
}

func (in Input) validate() error {
	switch {
	case !(in.LoadKN >= 0) || math.IsInf(in.LoadKN, 0):
		return &ValidationError{Field: "load", Value: in.LoadKN, Rule: "a finite value >= 0"}
	case !(in.PlateWidthMM > 0) || math.IsInf(in.PlateWidthMM, 0):
		return &ValidationError{Field: "plate_width", Value: in.PlateWidthMM, Rule: "a finite value > 0"}
	case !(in.Thickness1MM > 0) || math.IsInf(in.Thickness1MM, 0):
		return &ValidationError{Field: "thickness_1", Value: in.Thickness1MM, Rule: "a finite value > 0"}
	case !(in.Thickness2MM > 0) || math.IsInf(in.Thickness2MM, 0):
		return &ValidationError{Field: "thickness_2", Value: in.Thickness2MM, Rule: "a finite value > 0"}
	}
	for _, o := range []struct {
		field string
		value float64
		max   float64
	}{
		{"fy", in.FyMPa, maxStrengthMPa},
		{"fu", in.FuMPa, maxStrengthMPa},
		{"gamma_m0", in.GammaM0, maxGamma},
		{"gamma_m2", in.GammaM2, maxGamma},
	} {
		// Zero or negative selects the default.
		if math.IsNaN(o.value) || o.value > o.max {
			return &ValidationError{Field: o.field, Value: o.value, Rule: fmt.Sprintf("<= %g or unset", o.max)}
		}
	}
	return nil
}

func (in Input) withDefaults() Input {
	if !(in.FyMPa > 0) {
		in.FyMPa = defaultFyMPa
	}
	if !(in.FuMPa > 0) {
		in.FuMPa = defaultFuMPa
	}
	if !(in.GammaM0 > 0) {
		in.GammaM0 = defaultGammaM0
	}
	if !(in.GammaM2 > 0) {
		in.GammaM2 = defaultGammaM2
	}
	return in
}

func evaluate(in Input, c bolts.Candidate) Evaluation {
	d := c.Diameter.NominalMM
	sp := minSpacing(d)
	shear, bearing := boltCapacity(in, c, sp)
	perBolt := math.Min(shear, bearing)

	ev := Evaluation{
		BoltDiameter:      d,
		BoltGrade:         c.Grade.Grade,
		ShearCapacityKN:   shear,
		BearingCapacityKN: bearing,
		BoltCapacityKN:    perBolt,
	}

	if !(perBolt > 0) || math.IsInf(perBolt, 0) {
		return ev
	}
	maxCols := maxColumns(in.PlateWidthMM, sp)
	required := math.Max(math.Ceil(in.LoadKN/perBolt), minBolts)
	if maxCols == 0 || math.IsNaN(required) || required > float64(maxCols*maxRows) {
		return ev
	}
	ev.RequiredBolts = int(required)
	ev.Fits = true

	lay := arrange(ev.RequiredBolts, maxCols)
	ev.Design = connection(in, c, sp, perBolt, lay, lay.rows*lay.cols)
	governing := math.Min(ev.Design.StrengthOfConnection,
		math.Min(ev.Design.YieldStrengthPlate1, ev.Design.YieldStrengthPlate2))
	ev.OK = governing >= in.LoadKN*(1-1e-12)
	return ev
}

// boltCapacity returns the single-shear and bearing resistance of one bolt in kN.
// Bearing is taken on the thinner plate with the minimum end, edge and pitch.
func boltCapacity(in Input, c bolts.Candidate, sp spacing) (shear, bearing float64) {
	d := c.Diameter.NominalMM
	fub := c.Grade.UltimateMPa
	shear = c.Grade.AlphaV * fub * c.Diameter.StressAreaMM2 / in.GammaM2 / 1000.0

	alphaD := math.Min(sp.end/(3*sp.hole), sp.pitch/(3*sp.hole)-0.25)
	alphaB := math.Min(math.Min(alphaD, fub/in.FuMPa), 1.0)
	k1 := math.Min(2.8*sp.edge/sp.hole-1.7, 2.5)
	t := math.Min(in.Thickness1MM, in.Thickness2MM)
	bearing = k1 * alphaB * in.FuMPa * d * t / in.GammaM2 / 1000.0
	return shear, bearing
}

// connection fills the design record for n bolts placed on lay.
func connection(in Input, c bolts.Candidate, sp spacing, perBolt float64, lay layout, n int) Result {
	strength := float64(n) * perBolt
	yield1 := netYield(in, sp, lay, in.Thickness1MM)
	yield2 := netYield(in, sp, lay, in.Thickness2MM)
	governing := math.Min(strength, math.Min(yield1, yield2))
	demand := math.Max(in.LoadKN, strength)

	return Result{
		BoltDiameter:           c.Diameter.NominalMM,
		BoltGrade:              c.Grade.Grade,
		NumberOfBolts:          n,
		PitchDistance:          sp.pitch,
		GaugeDistance:          sp.gauge,
		EndDistance:            sp.end,
		EdgeDistance:           (in.PlateWidthMM - float64(lay.cols-1)*sp.gauge) / 2,
		NumberOfRows:           lay.rows,
		NumberOfColumns:        lay.cols,
		HoleDiameter:           sp.hole,
		StrengthOfConnection:   strength,
		YieldStrengthPlate1:    yield1,
		YieldStrengthPlate2:    yield2,
		LengthOfConnection:     2*sp.end + float64(lay.rows-1)*sp.pitch,
		EfficiencyOfConnection: governing / demand,
	}
}

// netYield is the yield resistance of the plate net section through one row of holes.
func netYield(in Input, sp spacing, lay layout, t float64) float64 {
	net := in.PlateWidthMM - float64(lay.cols)*sp.hole
	return in.FyMPa * net * t / in.GammaM0 / 1000.0
}
