package bolts

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type StrengthResult struct {
	Grade            Grade   `json:"grade"`
	UltimateStrength float64 `json:"ultimate_strength"`
	YieldStrength    float64 `json:"yield_strength"`
}

type CatalogResult struct {
	Diameters []Diameter  `json:"diameters"`
	Grades    []GradeSpec `json:"grades"`
}

type Handler struct{}

func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	g, err := strconv.ParseFloat(r.URL.Query().Get("grade"), 64)
	if err != nil {
		http.Error(w, "Invalid grade", http.StatusBadRequest)
		return
	}
	ultimate, yield, err := CalculateStrength(Grade(g))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StrengthResult{Grade: Grade(g), UltimateStrength: ultimate, YieldStrength: yield})
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CatalogResult{Diameters: Diameters(), Grades: Grades()})
}
