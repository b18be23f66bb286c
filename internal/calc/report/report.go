package report

import (
	"fmt"
	"io"
	"time"

	joints "LapJoint/internal/calc/joints"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

var compress = true

type Input struct {
	SheetID string       `json:"sheet_id"`
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Joint   joints.Input `json:"joint"`
}

// Render designs the joint and writes its calculation sheet as PDF.
func Render(w io.Writer, in Input, date time.Time) error {
	ev, err := joints.Design(in.Joint)
	if err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = "Bolted Lap Joint Design"
	}
	if in.SheetID == "" {
		in.SheetID = uuid.NewString()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	// Core fonts are cp1252; runes outside it print as '.'.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.SetSubject(in.SheetID, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Sheet: %s", in.SheetID)))
	pdf.Ln(10)

	j := in.Joint
	section(pdf, "Input")
	row(pdf, "Axial load P", j.LoadKN, "kN")
	row(pdf, "Plate width", j.PlateWidthMM, "mm")
	row(pdf, "Plate 1 thickness", j.Thickness1MM, "mm")
	row(pdf, "Plate 2 thickness", j.Thickness2MM, "mm")

	section(pdf, "Bolt resistance (single shear, bearing on thinner plate)")
	row(pdf, "Shear Fv,Rd", ev.ShearCapacityKN, "kN")
	row(pdf, "Bearing Fb,Rd", ev.BearingCapacityKN, "kN")
	row(pdf, "Governing per bolt", ev.BoltCapacityKN, "kN")
	row(pdf, "Bolts required", float64(ev.RequiredBolts), "")

	section(pdf, "Design")
	for _, l := range ev.Design.Lines() {
		row(pdf, l.Label, l.Value, l.Unit)
	}

	governing := min(ev.Design.StrengthOfConnection, ev.Design.YieldStrengthPlate1, ev.Design.YieldStrengthPlate2)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Resistance %.2f kN >= P = %.2f kN: OK", governing, j.LoadKN))
	pdf.Ln(8)

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label string, value float64, unit string) {
	pdf.CellFormat(90, 6, label, "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.4g", value), "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, unit, "B", 1, "L", false, 0, "")
}
