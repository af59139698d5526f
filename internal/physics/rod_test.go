package physics

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingMonitor struct {
	seen []Measurement
}

func (r *recordingMonitor) Observe(m Measurement) { r.seen = append(r.seen, m) }

var _ = Describe("Rod", func() {
	var (
		iron *Material
		rod  *Rod
		h    float64
	)

	BeforeEach(func() {
		var err error
		h = MolarToMassHeatCapacity(25.1, 0.055845)
		iron, err = NewMaterial(7.874, h, 11.8e-6)
		Expect(err).NotTo(HaveOccurred())
		rod, err = NewRod(iron, 1, 0.05)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("uses length * diameter * density as mass", func() {
			length, diameter := 1.0, 0.05
			Expect(rod.Mass()).To(Equal(length * diameter * iron.Density()))
			Expect(rod.Mass()).To(BeNumerically("~", 0.3937, 1e-12))
		})

		It("starts at the reference temperature", func() {
			Expect(rod.Temperature()).To(BeNumerically("~", 293.0, 1e-9))
			Expect(rod.Heat()).To(BeNumerically("~", h*293*0.3937, 1e-6))
			Expect(rod.Heat()).To(BeNumerically("~", 51846.86, 0.01))
		})

		It("keeps the reference dimensions", func() {
			Expect(rod.STPLength()).To(Equal(1.0))
			Expect(rod.STPDiameter()).To(Equal(0.05))
			Expect(rod.Material()).To(BeIdenticalTo(iron))
		})

		It("rejects a missing material", func() {
			_, err := NewRod(nil, 1, 0.05)
			Expect(err).To(MatchError(ErrInvalidMaterial))
		})

		DescribeTable("rejects non-positive mass",
			func(length, diameter float64) {
				_, err := NewRod(iron, length, diameter)
				Expect(err).To(MatchError(ErrDegenerateRod))
			},
			Entry("zero length", 0.0, 0.05),
			Entry("zero diameter", 1.0, 0.0),
			Entry("negative length", -1.0, 0.05),
		)
	})

	Describe("heat", func() {
		It("is additive and invertible", func() {
			before := rod.Heat()
			for _, x := range []float64{100, -250.5, 1e-3, 42000} {
				rod.ModifyHeat(x)
				rod.ModifyHeat(-x)
				Expect(rod.Heat()).To(BeNumerically("~", before, 1e-9))
			}
		})

		It("round-trips SetTemperature", func() {
			for _, k := range []float64{1, 77, 293, 500.25, 1811} {
				rod.SetTemperature(k)
				Expect(rod.Temperature()).To(BeNumerically("~", k, 1e-9))
			}
		})

		It("is not clamped below zero", func() {
			rod.ModifyHeat(-2 * rod.Heat())
			Expect(rod.Heat()).To(BeNumerically("<", 0))
			Expect(rod.Temperature()).To(BeNumerically("~", -293.0, 1e-9))
		})

		It("always derives temperature from heat", func() {
			rod.ModifyHeat(1000)
			Expect(rod.Temperature()).To(Equal(rod.Heat() / h / rod.Mass()))
		})
	})

	Describe("expansion", func() {
		It("is exactly one at the reference temperature", func() {
			Expect(rod.VolumeExpansion()).To(Equal(1.0))
			Expect(rod.Length()).To(Equal(1.0))
			Expect(rod.Diameter()).To(Equal(0.05))
		})

		It("increases monotonically with temperature", func() {
			prev := 0.0
			for i, k := range []float64{100, 200, 293, 400, 800, 1500} {
				rod.SetTemperature(k)
				v := rod.VolumeExpansion()
				if i > 0 {
					Expect(v).To(BeNumerically(">", prev))
				}
				prev = v
			}
		})

		It("follows the first order volumetric formula", func() {
			rod.SetTemperature(393)
			Expect(rod.ExpansionTemperature()).To(BeNumerically("~", 100, 1e-9))
			Expect(rod.VolumeExpansion()).To(BeNumerically("~", 1+3*11.8e-6*100, 1e-12))
		})

		// Length and diameter use the volumetric factor, not a linear one.
		It("scales length and diameter by the volumetric factor", func() {
			rod.SetTemperature(393)
			v := rod.VolumeExpansion()
			Expect(rod.Length()).To(Equal(1.0 * v))
			Expect(rod.Diameter()).To(Equal(0.05 * v))
		})

		// The linear factor is a crude stand-in and differs from the cube
		// root of the volumetric factor.
		It("keeps the approximate linear expansion formula", func() {
			rod.SetTemperature(393)
			dT := rod.ExpansionTemperature()
			Expect(rod.LinearExpansion()).To(Equal(1.0 + rod.VolumeExpansion()*dT))
			Expect(rod.LinearExpansion()).To(BeNumerically(">", 100))
		})

		// STPVolume is built from the expanded dimensions, so the volume
		// carries the factor four times.
		It("derives volume from the expanded dimensions", func() {
			Expect(rod.STPVolume()).To(BeNumerically("~", 1.0*0.025*0.025, 1e-15))

			rod.SetTemperature(393)
			v := rod.VolumeExpansion()
			Expect(rod.STPVolume()).To(BeNumerically("~", rod.Length()*(rod.Diameter()/2)*(rod.Diameter()/2), 1e-15))
			Expect(rod.Volume()).To(BeNumerically("~", 1.0*0.025*0.025*v*v*v*v, 1e-15))
		})
	})

	Describe("Tick", func() {
		It("never changes heat", func() {
			before := rod.Heat()
			rod.Tick(1.0)
			rod.Tick(0)
			Expect(rod.Heat()).To(Equal(before))
		})

		It("hands measurements to attached monitors", func() {
			mon := &recordingMonitor{}
			rod.Attach(mon)
			rod.SetTemperature(393)
			rod.Tick(0.5)

			Expect(mon.seen).To(HaveLen(1))
			m := mon.seen[0]
			Expect(m.Heat).To(Equal(rod.Heat()))
			Expect(m.Kelvin).To(BeNumerically("~", 393, 1e-9))
			Expect(m.Celsius).To(BeNumerically("~", 120, 1e-9))
			Expect(m.LengthExpansion).To(BeNumerically("~", rod.Length()-1.0, 1e-15))
			Expect(m.DiameterExpansion).To(BeNumerically("~", rod.Diameter()-0.05, 1e-15))
			Expect(m.Volume).To(Equal(rod.Volume()))
		})
	})
})
