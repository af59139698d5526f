package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rodsim/internal/metrics"
)

const plotHeight = 12

// Plot draws data as an ascii line chart. It returns an empty string for
// empty data.
func Plot(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderRecording draws temperature, length and diameter expansion charts
// followed by a summary of the recording.
func RenderRecording(rec *metrics.Recorder, width int) string {
	var b strings.Builder

	charts := []struct {
		caption string
		field   func(metrics.Sample) float64
		scale   float64
	}{
		{"temperature (°C)", metrics.Celsius, 1},
		{"length expansion (mm)", metrics.LengthExpansion, 1000},
		{"diameter expansion (mm)", metrics.DiameterExpansion, 1000},
	}

	for _, c := range charts {
		data := rec.Series(c.field)
		for i := range data {
			data[i] *= c.scale
		}
		graph := Plot(data, c.caption, width, plotHeight)
		if graph == "" {
			continue
		}
		b.WriteString(GraphStyle.Render(graph))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderSummary(rec.Summary()))
	return b.String()
}

func RenderSummary(s metrics.Summary) string {
	lines := []string{
		Title.Render("summary"),
		Metric("samples", fmt.Sprintf("%d", s.Samples)),
		Metric("duration", fmt.Sprintf("%.2f s", s.Duration)),
		Metric("heat gained", fmt.Sprintf("%.3f J", s.HeatGained)),
		Metric("mean power", fmt.Sprintf("%.3f W", s.MeanPower)),
		Metric("temperature", fmt.Sprintf("%.3f .. %.3f °C", s.MinCelsius, s.MaxCelsius)),
		Metric("length growth", fmt.Sprintf("%.6f mm", s.LengthGrowth*1000)),
	}
	return strings.Join(lines, "\n") + "\n"
}
