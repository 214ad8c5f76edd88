package gradation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Report runs the same analysis and lays the plot and parameter table out as
// a printable A4 landscape PDF.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Analyze(input, h.Scale, h.PlotWidth, h.PlotHeight)
	if !res.Success {
		http.Error(w, res.Error, http.StatusBadRequest)
		return
	}
	png, err := base64.StdEncoding.DecodeString(res.Plot)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Particle Size Distribution")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("plot", opt, bytes.NewReader(png))
	pdf.ImageOptions("plot", 68, 28, 160, 0, false, opt, 0, "")

	pdf.SetY(152)
	pdf.SetFont("Helvetica", "B", 10)
	headers := []string{"Sample", "D10 (mm)", "D30 (mm)", "D60 (mm)", "Cu", "Cc", "Classification"}
	widths := []float64{60, 25, 25, 25, 20, 20, 70}
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	names := make([]string, 0, len(res.Coefficients))
	for name := range res.Coefficients {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range names {
		p := res.Coefficients[name]
		row := []string{
			name,
			formatValue(p.D10, 3),
			formatValue(p.D30, 3),
			formatValue(p.D60, 3),
			formatValue(p.Cu, 2),
			formatValue(p.Cc, 2),
			p.Classification,
		}
		for i, cell := range row {
			align := "C"
			if i == 0 || i == len(row)-1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, "Grading criteria: Cu = D60/D10, Cc = D30^2/(D10*D60); well-graded when Cu > 4 and 1 <= Cc <= 3.", "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="sieve_report.pdf"`)
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func formatValue(v *float64, decimals int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}
