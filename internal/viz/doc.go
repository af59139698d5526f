// Package viz renders rod measurements for the terminal.
//
// Plots are drawn with asciigraph and framed with lipgloss styles:
//
//	rec := metrics.NewRecorder(rod, 1.0)
//	// ... advance the simulation
//	fmt.Println(viz.RenderRecording(rec, 80))
//
// Styles degrade to plain text when the output is not a terminal.
package viz
