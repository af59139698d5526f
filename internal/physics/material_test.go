package physics

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Material", func() {
	It("converts molar heat capacity to specific heat", func() {
		molar, mass := 25.1, 0.055845
		Expect(MolarToMassHeatCapacity(molar, mass)).To(Equal(molar / mass))
		Expect(MolarToMassHeatCapacity(25.1, 0.055845)).To(BeNumerically("~", 449.4583, 1e-3))
	})

	It("keeps the constants it was built with", func() {
		m, err := NewMaterial(7.874, 449.39, 11.8e-6)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Density()).To(Equal(7.874))
		Expect(m.SpecificHeat()).To(Equal(449.39))
		Expect(m.ExpansionCoefficient()).To(Equal(11.8e-6))
	})

	DescribeTable("rejects non-positive constants",
		func(density, specificHeat float64) {
			_, err := NewMaterial(density, specificHeat, 11.8e-6)
			Expect(err).To(MatchError(ErrInvalidMaterial))
		},
		Entry("zero density", 0.0, 449.0),
		Entry("negative density", -1.0, 449.0),
		Entry("zero specific heat", 7.874, 0.0),
		Entry("negative specific heat", 7.874, -2.0),
	)

	It("allows a negative expansion coefficient", func() {
		_, err := NewMaterial(1.0, 1.0, -1e-6)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("catalogue", func() {
		It("builds iron with the reference constants", func() {
			iron, err := Lookup("iron")
			Expect(err).NotTo(HaveOccurred())
			Expect(iron.Name()).To(Equal("iron"))
			Expect(iron.Density()).To(Equal(7.874))
			Expect(iron.SpecificHeat()).To(Equal(MolarToMassHeatCapacity(25.1, 0.055845)))
			Expect(iron.ExpansionCoefficient()).To(Equal(11.8e-6))
		})

		It("fails for unknown names", func() {
			_, err := Lookup("unobtainium")
			Expect(err).To(MatchError(ErrInvalidMaterial))
		})

		It("lists names in order", func() {
			Expect(ElementNames()).To(Equal([]string{"aluminium", "copper", "iron"}))
		})
	})
})
