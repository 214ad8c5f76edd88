package gradation

import (
	"encoding/json"
	"net/http"

	"github.com/mairfan018/sieve-analysis-tool/internal/scale"
)

type Handler struct {
	Scale      *scale.Scale
	PlotWidth  int
	PlotHeight int
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Analyze(input, h.Scale, h.PlotWidth, h.PlotHeight)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// SieveSizes lets the client render its input grid against the scale the
// server was started with.
func (h *Handler) SieveSizes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		SieveSizesMM []float64 `json:"sieve_sizes_mm"`
	}{h.Scale.Sizes()})
}
