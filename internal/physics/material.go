package physics

import (
	"fmt"
	"sort"
)

// Material is an immutable bundle of physical constants.
//
//	density:              kg/m^3
//	specificHeat:         J/(kg*K), heat needed to raise 1 kg by 1 K
//	expansionCoefficient: K^-1, fractional volume change per kelvin
type Material struct {
	name                 string
	density              float64
	specificHeat         float64
	expansionCoefficient float64
}

func NewMaterial(density, specificHeat, expansionCoefficient float64) (*Material, error) {
	return NewNamedMaterial("", density, specificHeat, expansionCoefficient)
}

func NewNamedMaterial(name string, density, specificHeat, expansionCoefficient float64) (*Material, error) {
	if density <= 0 {
		return nil, fmt.Errorf("%w: density must be positive, got %g", ErrInvalidMaterial, density)
	}
	if specificHeat <= 0 {
		return nil, fmt.Errorf("%w: specific heat must be positive, got %g", ErrInvalidMaterial, specificHeat)
	}
	return &Material{
		name:                 name,
		density:              density,
		specificHeat:         specificHeat,
		expansionCoefficient: expansionCoefficient,
	}, nil
}

func (m *Material) Name() string                  { return m.name }
func (m *Material) Density() float64              { return m.density }
func (m *Material) SpecificHeat() float64         { return m.specificHeat }
func (m *Material) ExpansionCoefficient() float64 { return m.expansionCoefficient }

// MolarToMassHeatCapacity converts a molar heat capacity in J/(mol*K) to a
// specific heat in J/(kg*K) given the molar mass in kg/mol.
func MolarToMassHeatCapacity(molarCapacity, molarMass float64) float64 {
	return molarCapacity / molarMass
}

// Element describes a material by its molar properties.
type Element struct {
	Density              float64
	MolarHeatCapacity    float64 // J/(mol*K)
	MolarMass            float64 // kg/mol
	ExpansionCoefficient float64
}

// Elements is the catalogue of named materials. The iron entry reproduces the
// reference scenario constants exactly.
var Elements = map[string]Element{
	"iron": {
		Density:              7.874,
		MolarHeatCapacity:    25.1,
		MolarMass:            0.055845,
		ExpansionCoefficient: 11.8e-6,
	},
	"copper": {
		Density:              8.96,
		MolarHeatCapacity:    24.44,
		MolarMass:            0.063546,
		ExpansionCoefficient: 16.5e-6,
	},
	"aluminium": {
		Density:              2.70,
		MolarHeatCapacity:    24.20,
		MolarMass:            0.026982,
		ExpansionCoefficient: 23.1e-6,
	},
}

// Lookup builds the named material from the catalogue.
func Lookup(name string) (*Material, error) {
	el, ok := Elements[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown material %q (available: %v)", ErrInvalidMaterial, name, ElementNames())
	}
	return el.Material(name)
}

func (e Element) SpecificHeat() float64 {
	return MolarToMassHeatCapacity(e.MolarHeatCapacity, e.MolarMass)
}

func (e Element) Material(name string) (*Material, error) {
	if e.MolarMass <= 0 {
		return nil, fmt.Errorf("%w: molar mass must be positive, got %g", ErrInvalidMaterial, e.MolarMass)
	}
	return NewNamedMaterial(name, e.Density, e.SpecificHeat(), e.ExpansionCoefficient)
}

func ElementNames() []string {
	names := make([]string, 0, len(Elements))
	for name := range Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
