package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/rodsim/internal/config"
	"github.com/san-kum/rodsim/internal/metrics"
)

type ExportData struct {
	Material string          `json:"material"`
	Length   float64         `json:"length"`
	Diameter float64         `json:"diameter"`
	Power    float64         `json:"power"`
	Dt       float64         `json:"dt"`
	Samples  []ExportSample  `json:"samples"`
	Summary  metrics.Summary `json:"summary"`
}

type ExportSample struct {
	Time              float64 `json:"time"`
	Heat              float64 `json:"heat"`
	Kelvin            float64 `json:"kelvin"`
	Celsius           float64 `json:"celsius"`
	LengthExpansion   float64 `json:"length_expansion"`
	DiameterExpansion float64 `json:"diameter_expansion"`
	Volume            float64 `json:"volume"`
}

func samples(rec *metrics.Recorder) []ExportSample {
	out := make([]ExportSample, len(rec.Samples()))
	for i, s := range rec.Samples() {
		out[i] = ExportSample{
			Time:              s.Time,
			Heat:              s.Heat,
			Kelvin:            s.Kelvin,
			Celsius:           s.Celsius,
			LengthExpansion:   s.LengthExpansion,
			DiameterExpansion: s.DiameterExpansion,
			Volume:            s.Volume,
		}
	}
	return out
}

func ExportJSON(w io.Writer, cfg *config.Config, dt float64, rec *metrics.Recorder) error {
	data := ExportData{
		Material: cfg.Material.Name,
		Length:   cfg.Rod.Length,
		Diameter: cfg.Rod.Diameter,
		Power:    cfg.Heater.Power,
		Dt:       dt,
		Samples:  samples(rec),
		Summary:  rec.Summary(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

var csvHeader = []string{"time", "heat", "kelvin", "celsius", "length_expansion", "diameter_expansion", "volume"}

func ExportCSV(w io.Writer, rec *metrics.Recorder) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples(rec) {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Heat, 'f', 6, 64),
			strconv.FormatFloat(s.Kelvin, 'f', 6, 64),
			strconv.FormatFloat(s.Celsius, 'f', 6, 64),
			strconv.FormatFloat(s.LengthExpansion, 'g', -1, 64),
			strconv.FormatFloat(s.DiameterExpansion, 'g', -1, 64),
			strconv.FormatFloat(s.Volume, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
