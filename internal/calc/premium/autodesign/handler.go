package autodesign

import (
	"encoding/json"
	"net/http"

	joints "LapJoint/internal/calc/joints"
)

type Handler struct{}

func (h *Handler) LapJoint(w http.ResponseWriter, r *http.Request) {
	var input LapJointInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := LapJoint(input)
	if err != nil {
		joints.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
