package joints

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LapJoint/internal/calc/bolts"
	"LapJoint/internal/calc/loads"
)

// Request accepts either load_kn or a loads block to factor.
type Request struct {
	Input
	Loads *loads.Input `json:"loads,omitempty"`
}

func (req Request) Resolve() (Input, error) {
	in := req.Input
	if req.Loads != nil {
		res, err := loads.Calculate(*req.Loads)
		if err != nil {
			return Input{}, errors.Join(ErrInvalidInput, err)
		}
		in.LoadKN = res.DesignLoadKN
	}
	return in, nil
}

type CheckRequest struct {
	CheckInput
	Loads *loads.Input `json:"loads,omitempty"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	in, err := req.Resolve()
	if err != nil {
		WriteError(w, err)
		return
	}
	res, err := Calculate(in)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	in, err := Request{Input: req.Input, Loads: req.Loads}.Resolve()
	if err != nil {
		WriteError(w, err)
		return
	}
	req.Input = in
	res, err := Check(req.CheckInput)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// StatusFor maps calculation errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, bolts.ErrUnsupportedGrade),
		errors.Is(err, bolts.ErrUnsupportedDiameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrInfeasible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Calculation error: %v", err)
		http.Error(w, "Calculation error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
