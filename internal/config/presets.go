package config

import "sort"

// Presets are ready-made scenarios. "reference" is the iron rod of 1 m by
// 0.05 m under a 100 W heater.
var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"copper": {
		Material: MaterialConfig{Name: "copper"},
		Rod:      RodConfig{Length: 1.0, Diameter: 0.05, InitialTemperature: 293},
		Heater:   HeaterConfig{Power: 100, On: true},
		Loop:     LoopConfig{Rate: DefaultRate},
		Plot:     PlotConfig{Seconds: DefaultPlotSeconds, SampleInterval: DefaultSampleInterval},
		LogLevel: DefaultLogLevel,
	},
	"aluminium-blowtorch": {
		Material: MaterialConfig{Name: "aluminium"},
		Rod:      RodConfig{Length: 0.5, Diameter: 0.02, InitialTemperature: 293},
		Heater:   HeaterConfig{Power: 2000, On: true},
		Loop:     LoopConfig{Rate: DefaultRate},
		Plot:     PlotConfig{Seconds: 120, SampleInterval: 0.5},
		LogLevel: DefaultLogLevel,
	},
	"cold-iron": {
		Material: MaterialConfig{Name: "iron"},
		Rod:      RodConfig{Length: 1.0, Diameter: 0.05, InitialTemperature: 77},
		Heater:   HeaterConfig{Power: 100, On: false},
		Loop:     LoopConfig{Rate: DefaultRate},
		Plot:     PlotConfig{Seconds: 60, SampleInterval: DefaultSampleInterval},
		LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
