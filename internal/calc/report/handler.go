package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	joints "LapJoint/internal/calc/joints"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input, time.Now()); err != nil {
		joints.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"lap-joint.pdf\"")
	w.Write(buf.Bytes())
}
