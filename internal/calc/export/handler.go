package export

import (
	"encoding/json"
	"net/http"

	fiv "github.com/no1Abhay/HEAT-EXCHANGER-ANALYSIS/internal/calc/fiv"
)

type Handler struct{}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input fiv.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := fiv.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	criteria := fiv.Evaluate(input, res)

	f, err := Workbook(input, res, criteria)
	if err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"fiv_analysis.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
}
