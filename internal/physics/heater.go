package physics

// HeatSink accepts injected heat. A HeatSource only borrows its sink; the
// simulation that owns the rod controls its lifetime.
type HeatSink interface {
	ModifyHeat(dJ float64)
}

// HeatSource emits power watts while on. It starts switched off and without
// a target.
type HeatSource struct {
	power  float64
	on     bool
	target HeatSink
}

func NewHeatSource(power float64) *HeatSource {
	return &HeatSource{power: power}
}

func (h *HeatSource) SetTarget(target HeatSink) { h.target = target }
func (h *HeatSource) Target() HeatSink          { return h.target }
func (h *HeatSource) SetPower(watts float64)    { h.power = watts }
func (h *HeatSource) Power() float64            { return h.power }
func (h *HeatSource) TurnOn()                   { h.on = true }
func (h *HeatSource) TurnOff()                  { h.on = false }
func (h *HeatSource) On() bool                  { return h.on }

// Tick injects power * delta joules into the target. Without a target or
// while off it does nothing.
func (h *HeatSource) Tick(delta float64) {
	if h.target == nil || !h.on {
		return
	}
	h.target.ModifyHeat(delta * h.power)
}
