package optics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/optics"
	"github.com/san-kum/haot/internal/quantum"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
	"gonum.org/v1/gonum/mat"
)

var _ = Describe("index of refraction", func() {
	It("exceeds one for any non-empty composition", func() {
		for _, name := range aero.NeutralSpecies {
			if _, err := species.PolarizabilityOf(name); err != nil {
				continue
			}
			n, err := optics.IndexOfRefraction(aero.Composition{name: 1e-3})
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Dilute).To(BeNumerically(">", 1), name)
			Expect(n.Dense).To(BeNumerically(">", 1), name)
		}
	})

	It("grows in every species density with the others held fixed", func() {
		base := aero.Composition{}
		for name := range species.Polarizability() {
			base[name] = 1e-3
		}
		base[aero.N2], base[aero.O2] = 0.9, 0.25

		start, err := optics.IndexOfRefraction(base)
		Expect(err).NotTo(HaveOccurred())

		for _, name := range base.Species() {
			more := base.Clone()
			more[name] *= 2
			n, err := optics.IndexOfRefraction(more)
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Dilute).To(BeNumerically(">", start.Dilute), name)
			Expect(n.Dense).To(BeNumerically(">", start.Dense), name)
		}
	})

	It("grows monotonically with density", func() {
		prev := 1.0
		for _, rho := range []float64{1e-4, 1e-3, 1e-2, 0.1, 1, 10} {
			n, err := optics.IndexOfRefraction(aero.Composition{aero.N2: rho})
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Dilute).To(BeNumerically(">", prev))
			prev = n.Dilute
		}
	})

	It("stays in the sea-level band for standard air", func() {
		n, err := optics.IndexOfRefraction(aero.Composition{aero.N2: 0.94, aero.O2: 0.285})
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Dilute).To(BeNumerically(">=", 1.0002))
		Expect(n.Dilute).To(BeNumerically("<=", 1.0004))

		atm, err := optics.AtmosphericIndexOfRefraction(0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(atm).To(BeNumerically("~", 1.00027780, 1e-7))
	})

	It("round trips through the dielectric constant", func() {
		n, err := optics.IndexOfRefraction(aero.Composition{aero.N2: 0.5, aero.O: 0.01})
		Expect(err).NotTo(HaveOccurred())
		eps := optics.DielectricMaterialConst(n)
		Expect(math.Sqrt(eps.Dilute / units.VacuumPermittivity)).To(BeNumerically("~", n.Dilute, 1e-12))
		Expect(math.Sqrt(eps.Dense / units.VacuumPermittivity)).To(BeNumerically("~", n.Dense, 1e-12))
	})
})

var _ = Describe("Gladstone-Dale constants", func() {
	It("are identical on every call", func() {
		a := optics.GladstoneDaleConstants()
		a[aero.N2] = 0
		b := optics.GladstoneDaleConstants()
		Expect(b[aero.N2]).To(BeNumerically(">", 0))
		Expect(b).To(Equal(optics.GladstoneDaleConstants()))
	})

	It("reduce to the species constant for a single species", func() {
		k := optics.GladstoneDaleConstants()
		for name, want := range k {
			m, err := optics.GladstoneDale(aero.Composition{name: 0.37})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Total).To(BeNumerically("~", want, want*1e-12), name)
		}
	})
})

var _ = Describe("Kerl polarizability", func() {
	It("returns the ground polarizability at T = 0 in the static limit", func() {
		for _, mol := range species.Molecules("kerl") {
			k, err := species.KerlInterpolation(mol)
			Expect(err).NotTo(HaveOccurred())
			a, err := optics.KerlPolarizability(0, mol, math.Inf(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(k.GroundPolarizability))
		}
	})
})

var _ = Describe("state distributions", func() {
	DescribeTable("sum to one",
		func(mol string, t float64, jmax int, model quantum.EnergyModel) {
			p, err := quantum.JointDistribution(t, mol, 10, jmax, model)
			Expect(err).NotTo(HaveOccurred())
			Expect(mat.Sum(p)).To(BeNumerically("~", 1, 1e-12))

			v, err := quantum.VibrationalDistribution(t, mol, 10, jmax, model)
			Expect(err).NotTo(HaveOccurred())
			sum := 0.0
			for _, x := range v {
				sum += x
			}
			Expect(sum).To(BeNumerically("~", 1, 1e-12))
		},
		Entry("N2 at 300 K", aero.N2, 300.0, 60, quantum.Separable),
		Entry("O2 at 1000 K", aero.O2, 1000.0, 60, quantum.Coupled),
		Entry("H2 at 3000 K", aero.H2, 3000.0, 20, quantum.Coupled),
	)

	It("weight Buldakov states into a value between the extremes", func() {
		g, err := optics.BuldakovGrid(aero.O2, 10, 60)
		Expect(err).NotTo(HaveOccurred())
		avg, err := optics.BuldakovThermalAverage(2000, aero.O2, 10, 60, quantum.Coupled)
		Expect(err).NotTo(HaveOccurred())
		Expect(avg).To(BeNumerically(">=", mat.Min(g)))
		Expect(avg).To(BeNumerically("<=", mat.Max(g)))
	})
})
