package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rodsim/internal/physics"
)

const (
	DefaultMaterial       = "iron"
	DefaultLength         = 1.0
	DefaultDiameter       = 0.05
	DefaultPower          = 100.0
	DefaultRate           = 60.0
	DefaultPlotSeconds    = 600.0
	DefaultSampleInterval = 1.0
	DefaultLogLevel       = "info"

	// CustomMaterial labels a material given by explicit constants without a name.
	CustomMaterial = "custom"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Material MaterialConfig `yaml:"material"`
	Rod      RodConfig      `yaml:"rod"`
	Heater   HeaterConfig   `yaml:"heater"`
	Loop     LoopConfig     `yaml:"loop"`
	Plot     PlotConfig     `yaml:"plot"`
	LogLevel string         `yaml:"log_level"`
}

// MaterialConfig names a catalogue material or gives explicit constants.
// Explicit constants win when density is set. The specific heat may be given
// directly or derived from the molar heat capacity and molar mass.
type MaterialConfig struct {
	Name                 string  `yaml:"name,omitempty"`
	Density              float64 `yaml:"density,omitempty"`
	SpecificHeat         float64 `yaml:"specific_heat,omitempty"`
	MolarHeatCapacity    float64 `yaml:"molar_heat_capacity,omitempty"`
	MolarMass            float64 `yaml:"molar_mass,omitempty"`
	ExpansionCoefficient float64 `yaml:"expansion_coefficient,omitempty"`
}

type RodConfig struct {
	Length             float64 `yaml:"length"`
	Diameter           float64 `yaml:"diameter"`
	InitialTemperature float64 `yaml:"initial_temperature"`
}

type HeaterConfig struct {
	Power float64 `yaml:"power"`
	On    bool    `yaml:"enabled"`
}

type LoopConfig struct {
	Rate float64 `yaml:"rate"`
}

type PlotConfig struct {
	Seconds        float64 `yaml:"seconds"`
	SampleInterval float64 `yaml:"sample_interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Material: MaterialConfig{Name: DefaultMaterial},
		Rod: RodConfig{
			Length:             DefaultLength,
			Diameter:           DefaultDiameter,
			InitialTemperature: physics.ReferenceTemperature,
		},
		Heater: HeaterConfig{
			Power: DefaultPower,
			On:    true,
		},
		Loop: LoopConfig{Rate: DefaultRate},
		Plot: PlotConfig{
			Seconds:        DefaultPlotSeconds,
			SampleInterval: DefaultSampleInterval,
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Material = MaterialConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	switch {
	case cfg.Material == (MaterialConfig{}):
		cfg.Material.Name = DefaultMaterial
	case cfg.Material.Name == "" && cfg.Material.Density != 0:
		cfg.Material.Name = CustomMaterial
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Rod.Length <= 0 {
		return fmt.Errorf("%w: rod length must be positive, got %f", ErrInvalidConfig, c.Rod.Length)
	}
	if c.Rod.Diameter <= 0 {
		return fmt.Errorf("%w: rod diameter must be positive, got %f", ErrInvalidConfig, c.Rod.Diameter)
	}
	if c.Rod.InitialTemperature <= 0 {
		return fmt.Errorf("%w: initial temperature must be positive, got %f", ErrInvalidConfig, c.Rod.InitialTemperature)
	}
	if c.Loop.Rate <= 0 {
		return fmt.Errorf("%w: loop rate must be positive, got %f", ErrInvalidConfig, c.Loop.Rate)
	}
	if c.Plot.Seconds <= 0 {
		return fmt.Errorf("%w: plot seconds must be positive, got %f", ErrInvalidConfig, c.Plot.Seconds)
	}
	if _, err := c.Material.Build(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Build resolves the material section into a physics.Material.
func (m MaterialConfig) Build() (*physics.Material, error) {
	if m.Density == 0 {
		name := m.Name
		if name == "" {
			name = DefaultMaterial
		}
		return physics.Lookup(name)
	}

	name := m.Name
	if name == "" {
		name = CustomMaterial
	}
	specificHeat := m.SpecificHeat
	if specificHeat == 0 && m.MolarMass != 0 {
		specificHeat = physics.MolarToMassHeatCapacity(m.MolarHeatCapacity, m.MolarMass)
	}
	return physics.NewNamedMaterial(name, m.Density, specificHeat, m.ExpansionCoefficient)
}
