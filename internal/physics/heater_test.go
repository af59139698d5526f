package physics

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sinkRecorder struct {
	calls []float64
}

func (s *sinkRecorder) ModifyHeat(dJ float64) { s.calls = append(s.calls, dJ) }

var _ = Describe("HeatSource", func() {
	var (
		rod    *Rod
		heater *HeatSource
	)

	BeforeEach(func() {
		iron, err := Lookup("iron")
		Expect(err).NotTo(HaveOccurred())
		rod, err = NewRod(iron, 1, 0.05)
		Expect(err).NotTo(HaveOccurred())
		heater = NewHeatSource(100)
	})

	It("starts off with no target", func() {
		Expect(heater.On()).To(BeFalse())
		Expect(heater.Target()).To(BeNil())
		Expect(heater.Power()).To(Equal(100.0))
	})

	It("does nothing without a target", func() {
		heater.TurnOn()
		Expect(func() { heater.Tick(1.0) }).NotTo(Panic())
	})

	// The off guard returns early; an unpowered heater never touches its target.
	It("never heats the target while off", func() {
		heater.SetTarget(rod)
		before := rod.Heat()
		for _, delta := range []float64{0, 1.0 / 60, 1, 3600} {
			heater.Tick(delta)
		}
		Expect(rod.Heat()).To(Equal(before))
	})

	It("injects power * delta while on", func() {
		sink := &sinkRecorder{}
		heater.SetTarget(sink)
		heater.TurnOn()
		heater.Tick(1.0)
		heater.Tick(0.5)
		Expect(sink.calls).To(Equal([]float64{100.0, 50.0}))
	})

	It("adds 100 J to the reference rod after a one second tick", func() {
		heater.SetTarget(rod)
		heater.TurnOn()
		before := rod.Heat()
		heater.Tick(1.0)
		Expect(rod.Heat() - before).To(BeNumerically("~", 100.0, 1e-9))
	})

	It("follows power changes and switching", func() {
		sink := &sinkRecorder{}
		heater.SetTarget(sink)
		heater.TurnOn()
		heater.SetPower(250)
		heater.Tick(2)
		heater.TurnOff()
		heater.Tick(2)
		heater.TurnOn()
		heater.SetPower(-10)
		heater.Tick(1)
		Expect(sink.calls).To(Equal([]float64{500.0, -10.0}))
	})
})
