package bolts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCalculateStrength(t *testing.T) {
	tests := []struct {
		grade    Grade
		ultimate float64
		yield    float64
	}{
		{3.6, 300.0, 180.0},
		{4.6, 400.0, 200.0},
		{5.8, 500.0, 350.0},
		{6.8, 600.0, 480.0},
		{8.8, 800.0, 640.0},
		{10.9, 1000.0, 900.0},
	}

	for _, tt := range tests {
		ultimate, yield, err := CalculateStrength(tt.grade)
		if err != nil {
			t.Fatalf("grade %g: unexpected error: %v", float64(tt.grade), err)
		}
		if ultimate != tt.ultimate || yield != tt.yield {
			t.Errorf("grade %g: expected (%v, %v), got (%v, %v)", float64(tt.grade), tt.ultimate, tt.yield, ultimate, yield)
		}
	}
}

func TestCalculateStrength_UnsupportedGrade(t *testing.T) {
	for _, g := range []Grade{0, -4.6, 4.8, 12.9, 3.61} {
		_, _, err := CalculateStrength(g)
		if !errors.Is(err, ErrUnsupportedGrade) {
			t.Errorf("grade %g: expected ErrUnsupportedGrade, got %v", float64(g), err)
		}
	}
}

func TestGrades_AscendingAndImmutable(t *testing.T) {
	gs := Grades()
	for i := 1; i < len(gs); i++ {
		if gs[i].UltimateMPa <= gs[i-1].UltimateMPa {
			t.Errorf("grade %g not stronger than %g", float64(gs[i].Grade), float64(gs[i-1].Grade))
		}
	}

	gs[0].UltimateMPa = 1
	if again := Grades(); again[0].UltimateMPa != 300 {
		t.Error("Grades() must return a copy")
	}
}

func TestHoleDiameter(t *testing.T) {
	tests := map[float64]float64{12: 13, 14: 15, 16: 18, 20: 22, 24: 26, 27: 30}
	for d, want := range tests {
		if got := HoleDiameter(d); got != want {
			t.Errorf("M%g: expected hole %v, got %v", d, want, got)
		}
	}
}

func TestCandidates_Order(t *testing.T) {
	cs := Candidates()
	if len(cs) != len(Diameters())*len(Grades()) {
		t.Fatalf("expected %d candidates, got %d", len(Diameters())*len(Grades()), len(cs))
	}
	if cs[0].Diameter.NominalMM != 12 || cs[0].Grade.Grade != 3.6 {
		t.Errorf("expected M12 3.6 first, got M%g %g", cs[0].Diameter.NominalMM, float64(cs[0].Grade.Grade))
	}
	for i := 1; i < len(cs); i++ {
		prev, cur := cs[i-1], cs[i]
		switch {
		case cur.Diameter.NominalMM > prev.Diameter.NominalMM:
		case cur.Diameter.NominalMM == prev.Diameter.NominalMM && cur.Grade.UltimateMPa > prev.Grade.UltimateMPa:
		default:
			t.Fatalf("candidate %d out of order: M%g %g after M%g %g", i,
				cur.Diameter.NominalMM, float64(cur.Grade.Grade), prev.Diameter.NominalMM, float64(prev.Grade.Grade))
		}
	}
}

func TestLookupCandidate(t *testing.T) {
	c, err := LookupCandidate(20, 8.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Diameter.StressAreaMM2 != 245 || c.Grade.UltimateMPa != 800 {
		t.Errorf("unexpected candidate %+v", c)
	}

	if _, err := LookupCandidate(18, 8.8); !errors.Is(err, ErrUnsupportedDiameter) {
		t.Errorf("expected ErrUnsupportedDiameter, got %v", err)
	}
	if _, err := LookupCandidate(20, 9.9); !errors.Is(err, ErrUnsupportedGrade) {
		t.Errorf("expected ErrUnsupportedGrade, got %v", err)
	}
}

func TestHandler_Grade(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Grade(rec, httptest.NewRequest(http.MethodGet, "/api/tools/bolts/grade?grade=5.8", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res StrengthResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.UltimateStrength != 500 || res.YieldStrength != 350 {
		t.Errorf("unexpected result %+v", res)
	}

	for _, q := range []string{"grade=7.7", "grade=abc", ""} {
		rec := httptest.NewRecorder()
		h.Grade(rec, httptest.NewRequest(http.MethodGet, "/api/tools/bolts/grade?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", q, rec.Code)
		}
	}
}
