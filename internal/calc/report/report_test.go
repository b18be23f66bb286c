package report

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	joints "LapJoint/internal/calc/joints"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	in := Input{
		SheetID: "LJ-001",
		Project: "Warehouse bracing",
		Author:  "QA",
		Notes:   "Plates S275.",
		Joint:   joints.Input{LoadKN: 80, PlateWidthMM: 150, Thickness1MM: 10, Thickness2MM: 12},
	}
	if err := Render(&buf, in, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestRender_Latin1Text(t *testing.T) {
	compress = false
	t.Cleanup(func() { compress = true })

	var buf bytes.Buffer
	in := Input{
		Project: "Brücke Süd",
		Author:  "Zoë",
		Notes:   "Bolzen ≥ M12",
		Joint:   joints.Input{LoadKN: 80, PlateWidthMM: 150, Thickness1MM: 10, Thickness2MM: 12},
	}
	if err := Render(&buf, in, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.Bytes()
	for _, want := range []string{"Project: Br\xfccke S\xfcd", "Author: Zo\xeb", "Bolzen . M12"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("expected %q in the page stream", want)
		}
	}
	if bytes.Contains(out, []byte("Br\xc3\xbccke")) {
		t.Error("UTF-8 bytes written to a cp1252 font")
	}
}

func TestRender_DesignErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Input{Joint: joints.Input{LoadKN: -1, PlateWidthMM: 150, Thickness1MM: 10, Thickness2MM: 10}}, time.Now())
	if !errors.Is(err, joints.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	err = Render(&buf, Input{Joint: joints.Input{LoadKN: 5000, PlateWidthMM: 150, Thickness1MM: 10, Thickness2MM: 10}}, time.Now())
	if !errors.Is(err, joints.ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for a failed design")
	}
}

func TestHandler_Generate(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"project":"P-1","joint":{"load_kn":80,"plate_width_mm":150,"thickness_1_mm":10,"thickness_2_mm":12}}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"joint":{"load_kn":5000,"plate_width_mm":150,"thickness_1_mm":10,"thickness_2_mm":10}}`)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}
