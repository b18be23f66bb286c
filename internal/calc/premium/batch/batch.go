package batch

import (
	"fmt"

	joints "LapJoint/internal/calc/joints"
)

const MaxItems = 500

type LapJointBatchInput struct {
	Items []joints.Input `json:"items"`
}

type Item struct {
	Design *joints.Result `json:"design,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type LapJointBatchResult struct {
	Results []Item `json:"results"`
	Failed  int    `json:"failed"`
}

// CalculateLapJoints designs every item; a failing item is reported in place.
func CalculateLapJoints(in LapJointBatchInput) (LapJointBatchResult, error) {
	if len(in.Items) == 0 {
		return LapJointBatchResult{}, fmt.Errorf("%w: no items", joints.ErrInvalidInput)
	}
	if len(in.Items) > MaxItems {
		return LapJointBatchResult{}, fmt.Errorf("%w: %d items, limit is %d", joints.ErrInvalidInput, len(in.Items), MaxItems)
	}
	out := LapJointBatchResult{Results: make([]Item, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := joints.Calculate(item)
		if err != nil {
			out.Results = append(out.Results, Item{Error: err.Error()})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, Item{Design: &res})
	}
	return out, nil
}
