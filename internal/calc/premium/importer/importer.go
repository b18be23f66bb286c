package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	joints "LapJoint/internal/calc/joints"
	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// Columns of an import sheet; fy and fu are optional.
var inputHeader = []string{"load_kn", "plate_width_mm", "thickness_1_mm", "thickness_2_mm", "fy_mpa", "fu_mpa"}

var recordWidth = len(joints.Result{}.Lines())

type Row struct {
	Row    int            `json:"row"`
	Input  joints.Input   `json:"input"`
	Design *joints.Result `json:"design,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type LapJointImportResult struct {
	Count  int   `json:"count"`
	Failed int   `json:"failed"`
	Rows   []Row `json:"rows"`
}

// LapJoints designs one lap joint per row of the first sheet. Row 1 is a header.
func LapJoints(r io.Reader) (LapJointImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return LapJointImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return LapJointImportResult{}, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return LapJointImportResult{}, ErrEmptySheet
	}

	var out LapJointImportResult
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		row := Row{Row: i + 1}
		input, err := parseLapJointRow(rows[i])
		if err == nil {
			row.Input = input
			var res joints.Result
			if res, err = joints.Calculate(input); err == nil {
				row.Design = &res
			}
		}
		if err != nil {
			row.Error = err.Error()
			out.Failed++
		}
		out.Rows = append(out.Rows, row)
	}
	out.Count = len(out.Rows)
	return out, nil
}

// WriteWorkbook writes the inputs followed by the design record and any error, one row per joint.
func WriteWorkbook(w io.Writer, res LapJointImportResult) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, 0, len(inputHeader)+recordWidth+1)
	for _, h := range inputHeader {
		header = append(header, h)
	}
	var empty joints.Result
	for _, l := range empty.Lines() {
		header = append(header, l.Key)
	}
	header = append(header, "error")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range res.Rows {
		in := row.Input
		values := []any{in.LoadKN, in.PlateWidthMM, in.Thickness1MM, in.Thickness2MM, in.FyMPa, in.FuMPa}
		if row.Design != nil {
			for _, l := range row.Design.Lines() {
				values = append(values, l.Value)
			}
		} else {
			for j := 0; j < recordWidth; j++ {
				values = append(values, "")
			}
		}
		values = append(values, row.Error)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func parseLapJointRow(row []string) (joints.Input, error) {
	if len(row) < 4 {
		return joints.Input{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}
	var v [6]float64
	for i := 0; i < len(v) && i < len(row); i++ {
		s := strings.TrimSpace(row[i])
		if s == "" && i >= 4 {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return joints.Input{}, fmt.Errorf("column %s: %q is not a number", inputHeader[i], row[i])
		}
		v[i] = f
	}
	return joints.Input{
		LoadKN:       v[0],
		PlateWidthMM: v[1],
		Thickness1MM: v[2],
		Thickness2MM: v[3],
		FyMPa:        v[4],
		FuMPa:        v[5],
	}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
