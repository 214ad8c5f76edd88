package gradation

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/mairfan018/sieve-analysis-tool/internal/plot"
	"github.com/mairfan018/sieve-analysis-tool/internal/scale"
)

// Input mirrors the client payload: per-sample percent-passing values aligned
// 1:1 with the sieve scale, null marking an absent measurement.
type Input struct {
	SieveData map[string][]*float64 `json:"sieve_data"`
	Method    string                `json:"interpolation_method"`
	UseColor  *bool                 `json:"use_color,omitempty"`
}

type Result struct {
	Success      bool                  `json:"success"`
	Plot         string                `json:"plot,omitempty"`
	Coefficients map[string]Parameters `json:"coefficients,omitempty"`
	Warnings     map[string]string     `json:"warnings,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// Analyze builds one curve per sample, derives parameters and renders the
// shared plot. Per-sample failures are collected, never raised: the request
// fails only when no sample at all could be analyzed.
func Analyze(in Input, sc *scale.Scale, plotWidth, plotHeight int) Result {
	method, err := ParseMethod(in.Method)
	if err != nil {
		return Result{Error: err.Error()}
	}
	if len(in.SieveData) == 0 {
		return Result{Error: "no samples provided"}
	}

	// Sample names sorted for stable ordering; JSON objects carry no order.
	names := make([]string, 0, len(in.SieveData))
	for name := range in.SieveData {
		names = append(names, name)
	}
	sort.Strings(names)

	// Generated labels must not collide with real sample names, or one
	// sample would silently shadow another in the response.
	used := make(map[string]bool, len(names))
	for _, name := range names {
		used[name] = true
	}

	sizes := sc.Sizes()
	coefficients := make(map[string]Parameters)
	warnings := make(map[string]string)
	var curves []plot.Curve
	for i, name := range names {
		label := name
		if strings.TrimSpace(label) == "" {
			n := i + 1
			label = fmt.Sprintf("Sample %d", n)
			for used[label] {
				n++
				label = fmt.Sprintf("Sample %d", n)
			}
			used[label] = true
		}
		values := in.SieveData[name]
		if err := sc.ValidateCount(len(values)); err != nil {
			warnings[label] = err.Error()
			continue
		}
		curve, err := BuildCurve(label, sizes, values, method)
		if err != nil {
			warnings[label] = err.Error()
			continue
		}
		coefficients[label] = ExtractParameters(curve)
		curves = append(curves, curve)
	}

	if len(curves) == 0 {
		labels := make([]string, 0, len(warnings))
		for label := range warnings {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		parts := make([]string, 0, len(labels))
		for _, label := range labels {
			parts = append(parts, label+": "+warnings[label])
		}
		return Result{
			Error:    "no sample could be analyzed: " + strings.Join(parts, "; "),
			Warnings: warnings,
		}
	}

	png, err := plot.Render(curves, sc.Min(), sc.Max(), plot.Options{
		Width:    plotWidth,
		Height:   plotHeight,
		UseColor: in.UseColor == nil || *in.UseColor,
	})
	if err != nil {
		return Result{Error: err.Error(), Warnings: warnings}
	}

	return Result{
		Success:      true,
		Plot:         base64.StdEncoding.EncodeToString(png),
		Coefficients: coefficients,
		Warnings:     warnings,
	}
}
