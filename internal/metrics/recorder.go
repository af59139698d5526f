package metrics

import (
	"math"

	"github.com/san-kum/rodsim/internal/physics"
)

type Sample struct {
	Time float64
	physics.Measurement
}

// Recorder samples a rod at fixed intervals of simulated time. It is
// registered as a simulation observer.
type Recorder struct {
	rod      *physics.Rod
	interval float64
	next     float64
	samples  []Sample
}

// NewRecorder takes an initial sample at t=0. A non-positive interval samples
// on every tick.
func NewRecorder(rod *physics.Rod, interval float64) *Recorder {
	r := &Recorder{
		rod:      rod,
		interval: interval,
		samples:  make([]Sample, 0),
	}
	r.record(0)
	return r
}

func (r *Recorder) OnTick(elapsed, delta float64) {
	// tolerate accumulated rounding in elapsed
	if elapsed+1e-9 < r.next {
		return
	}
	r.record(elapsed)
}

func (r *Recorder) record(t float64) {
	r.samples = append(r.samples, Sample{Time: t, Measurement: r.rod.Measure()})
	if r.interval > 0 {
		for r.next <= t+1e-9 {
			r.next += r.interval
		}
	}
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Series extracts one quantity from every sample.
func (r *Recorder) Series(field func(Sample) float64) []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = field(s)
	}
	return out
}

func Celsius(s Sample) float64           { return s.Celsius }
func Heat(s Sample) float64              { return s.Heat }
func LengthExpansion(s Sample) float64   { return s.LengthExpansion }
func DiameterExpansion(s Sample) float64 { return s.DiameterExpansion }

type Summary struct {
	Samples      int
	Duration     float64
	HeatGained   float64
	MinCelsius   float64
	MaxCelsius   float64
	LengthGrowth float64
	MeanPower    float64
}

func (r *Recorder) Summary() Summary {
	if len(r.samples) == 0 {
		return Summary{}
	}
	first, last := r.samples[0], r.samples[len(r.samples)-1]
	s := Summary{
		Samples:      len(r.samples),
		Duration:     last.Time - first.Time,
		HeatGained:   last.Heat - first.Heat,
		MinCelsius:   math.Inf(1),
		MaxCelsius:   math.Inf(-1),
		LengthGrowth: last.LengthExpansion - first.LengthExpansion,
	}
	for _, smp := range r.samples {
		s.MinCelsius = math.Min(s.MinCelsius, smp.Celsius)
		s.MaxCelsius = math.Max(s.MaxCelsius, smp.Celsius)
	}
	if s.Duration > 0 {
		s.MeanPower = s.HeatGained / s.Duration
	}
	return s
}
