package sim

// Steppable is anything the scheduler advances. delta is the elapsed time in
// seconds since the previous tick.
type Steppable interface {
	Tick(delta float64)
}

// StepFunc adapts a function to Steppable.
type StepFunc func(delta float64)

func (f StepFunc) Tick(delta float64) { f(delta) }

// Observer is notified after every object has been advanced. elapsed is the
// total simulated time so far.
type Observer interface {
	OnTick(elapsed, delta float64)
}

const DefaultRate = 60.0

type Option func(*Simulation)

// WithRate caps the paced loop at hz iterations per second.
func WithRate(hz float64) Option {
	return func(s *Simulation) { s.rate = hz }
}
