package joints

// Line is one field of the design record in a printable form.
type Line struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Lines lists the design record in the order reports and spreadsheets print it.
func (r Result) Lines() []Line {
	return []Line{
		{"bolt_diameter", "Bolt diameter", "mm", r.BoltDiameter},
		{"bolt_grade", "Bolt grade", "", float64(r.BoltGrade)},
		{"number_of_bolts", "Number of bolts", "", float64(r.NumberOfBolts)},
		{"pitch_distance", "Pitch", "mm", r.PitchDistance},
		{"gauge_distance", "Gauge", "mm", r.GaugeDistance},
		{"end_distance", "End distance", "mm", r.EndDistance},
		{"edge_distance", "Edge distance", "mm", r.EdgeDistance},
		{"number_of_rows", "Rows", "", float64(r.NumberOfRows)},
		{"number_of_columns", "Columns", "", float64(r.NumberOfColumns)},
		{"hole_diameter", "Hole diameter", "mm", r.HoleDiameter},
		{"strength_of_connection", "Strength of connection", "kN", r.StrengthOfConnection},
		{"yield_strength_plate_1", "Net yield, plate 1", "kN", r.YieldStrengthPlate1},
		{"yield_strength_plate_2", "Net yield, plate 2", "kN", r.YieldStrengthPlate2},
		{"length_of_connection", "Length of connection", "mm", r.LengthOfConnection},
		{"efficiency_of_connection", "Efficiency", "", r.EfficiencyOfConnection},
	}
}
