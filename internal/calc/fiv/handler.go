package fiv

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Output bundles one full analysis: the echoed input, the derived
// quantities and the ten acceptance verdicts.
type Output struct {
	Input    Input    `json:"input"`
	Results  Result   `json:"results"`
	Criteria Criteria `json:"criteria"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	criteria := Evaluate(input, res)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{Input: input, Results: res, Criteria: criteria})
}
