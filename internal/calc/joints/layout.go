package joints

import (
	"math"

	"LapJoint/internal/calc/bolts"
)

const (
	detailStepMM = 5.0
	columnLimit  = 100
)

type spacing struct {
	pitch, gauge float64
	end, edge    float64
	hole         float64
}

// minSpacing: pitch and gauge 2.5d, end and edge 1.5d0, rounded up to the detailing step.
func minSpacing(d float64) spacing {
	d0 := bolts.HoleDiameter(d)
	p := roundUp(2.5 * d)
	e := roundUp(1.5 * d0)
	return spacing{pitch: p, gauge: p, end: e, edge: e, hole: d0}
}

func roundUp(v float64) float64 {
	return math.Ceil(v/detailStepMM) * detailStepMM
}

// rows run along the load, columns across the plate width.
type layout struct {
	rows, cols int
}

// maxColumns is how many bolts fit across width with minimum edge distance and gauge.
func maxColumns(width float64, sp spacing) int {
	free := width - 2*sp.edge
	if free < 0 {
		return 0
	}
	n := math.Floor(free/sp.gauge) + 1
	if n > columnLimit {
		return columnLimit
	}
	return int(n)
}

// arrange fills columns first, so the column count never drops as n grows.
func arrange(n, maxCols int) layout {
	cols := min(n, maxCols)
	rows := n / cols
	if n%cols != 0 {
		rows++
	}
	return layout{rows: rows, cols: cols}
}
