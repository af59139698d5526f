package physics

import "fmt"

const (
	// CelsiusOffset is the kelvin value of 0 °C used for display.
	CelsiusOffset = 273.0

	// ReferenceTemperature is the temperature, in kelvin, at which the rod's
	// STP length and diameter are measured.
	ReferenceTemperature = CelsiusOffset + 20.0
)

// Measurement is a snapshot of the quantities reported for a rod.
type Measurement struct {
	Heat              float64
	LengthExpansion   float64
	DiameterExpansion float64
	Kelvin            float64
	Celsius           float64
	Volume            float64
}

// Monitor receives a measurement on every rod tick.
type Monitor interface {
	Observe(m Measurement)
}

// Rod is a solid cylinder whose only state is the heat it holds. Length and
// diameter are given in metres at the reference temperature.
type Rod struct {
	stpLength   float64
	stpDiameter float64
	mass        float64
	material    *Material
	heat        float64
	monitors    []Monitor
}

// NewRod builds a rod at the reference temperature. The mass is the product
// of length, diameter and density; diameter is used directly, not the
// cross-section area.
func NewRod(material *Material, length, diameter float64) (*Rod, error) {
	if material == nil {
		return nil, fmt.Errorf("%w: rod requires a material", ErrInvalidMaterial)
	}
	if material.specificHeat <= 0 {
		return nil, fmt.Errorf("%w: specific heat must be positive, got %g", ErrInvalidMaterial, material.specificHeat)
	}

	mass := length * diameter * material.density
	if mass <= 0 {
		return nil, fmt.Errorf("%w: length=%g diameter=%g density=%g", ErrDegenerateRod, length, diameter, material.density)
	}

	r := &Rod{
		stpLength:   length,
		stpDiameter: diameter,
		mass:        mass,
		material:    material,
	}
	r.SetTemperature(ReferenceTemperature)
	return r, nil
}

func (r *Rod) STPLength() float64    { return r.stpLength }
func (r *Rod) STPDiameter() float64  { return r.stpDiameter }
func (r *Rod) Mass() float64         { return r.mass }
func (r *Rod) Material() *Material   { return r.material }
func (r *Rod) Heat() float64         { return r.heat }
func (r *Rod) Attach(m Monitor)      { r.monitors = append(r.monitors, m) }
func (r *Rod) ModifyHeat(dJ float64) { r.heat += dJ }

// SetTemperature overwrites the stored heat so that Temperature returns kelvin.
func (r *Rod) SetTemperature(kelvin float64) {
	r.heat = r.material.specificHeat * kelvin * r.mass
}

func (r *Rod) Temperature() float64 {
	return r.heat / r.material.specificHeat / r.mass
}

func (r *Rod) ExpansionTemperature() float64 {
	return r.Temperature() - ReferenceTemperature
}

// VolumeExpansion is the first order volumetric factor 1 + 3*alpha*dT.
func (r *Rod) VolumeExpansion() float64 {
	return 1.0 + r.material.expansionCoefficient*3.0*r.ExpansionTemperature()
}

// LinearExpansion is a rough approximation; the exact factor is the cube root
// of the volumetric one.
func (r *Rod) LinearExpansion() float64 {
	return 1.0 + r.VolumeExpansion()*r.ExpansionTemperature()
}

// Length and Diameter scale by the volumetric factor.
func (r *Rod) Length() float64 {
	return r.stpLength * r.VolumeExpansion()
}

func (r *Rod) Diameter() float64 {
	return r.stpDiameter * r.VolumeExpansion()
}

// STPVolume is computed from the expanded length and diameter, so it only
// equals the true reference volume at 293 K.
func (r *Rod) STPVolume() float64 {
	radius := r.Diameter() / 2.0
	return r.Length() * radius * radius
}

func (r *Rod) Volume() float64 {
	return r.STPVolume() * r.VolumeExpansion()
}

func (r *Rod) Measure() Measurement {
	kelvin := r.Temperature()
	return Measurement{
		Heat:              r.heat,
		LengthExpansion:   r.Length() - r.stpLength,
		DiameterExpansion: r.Diameter() - r.stpDiameter,
		Kelvin:            kelvin,
		Celsius:           kelvin - CelsiusOffset,
		Volume:            r.Volume(),
	}
}

// Tick does not change the rod's heat. It hands the current measurement to
// the attached monitors.
func (r *Rod) Tick(delta float64) {
	if len(r.monitors) == 0 {
		return
	}
	m := r.Measure()
	for _, mon := range r.monitors {
		mon.Observe(m)
	}
}
