package recommend

import (
	"encoding/json"
	"net/http"

	joints "LapJoint/internal/calc/joints"
)

type Handler struct{}

func (h *Handler) Bolts(w http.ResponseWriter, r *http.Request) {
	var req joints.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	in, err := req.Resolve()
	if err != nil {
		joints.WriteError(w, err)
		return
	}
	res, err := Bolts(in)
	if err != nil {
		joints.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
