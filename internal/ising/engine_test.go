package ising_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/analytic"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

var _ = Describe("Model", func() {
	DescribeTable("keeps E and M equal to a full recomputation",
		func(cfg ising.Config) {
			m, err := ising.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for k := 0; k < 200; k++ {
				m.Sweep()
				e, mag := m.Recompute()
				Expect(m.Energy()).To(Equal(e), "energy after sweep %d", k+1)
				Expect(m.Magnetization()).To(Equal(mag), "magnetization after sweep %d", k+1)
			}
		},
		Entry("L=2 cold", ising.Config{Size: 2, Temperature: 1, Seed: 1}),
		Entry("L=3 odd size", ising.Config{Size: 3, Temperature: 2, Init: ising.Random, Seed: 2}),
		Entry("L=10 critical", ising.Config{Size: 10, Temperature: 2.269, Init: ising.Random, Seed: 3}),
		Entry("L=16 hot checkerboard", ising.Config{Size: 16, Temperature: 5, Init: ising.Checkerboard, Seed: 4}),
		Entry("L=20 MT19937", ising.Config{Size: 20, Temperature: 2.4, Init: ising.Random, Seed: 5, Generator: rng.MT19937}),
	)

	It("leaves every site at ±1", func() {
		m, err := ising.New(ising.Config{Size: 12, Temperature: 2.4, Init: ising.Random, Seed: 6})
		Expect(err).NotTo(HaveOccurred())
		m.Run(100)

		for _, row := range m.Spins() {
			for _, s := range row {
				Expect(s).To(BeElementOf(1, -1))
			}
		}
	})

	It("reproduces the same sequence for identical configurations", func() {
		for _, gen := range rng.Names() {
			cfg := ising.Config{Size: 8, Temperature: 2.4, Init: ising.Random, Seed: 9642, Generator: gen}
			a, err := ising.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := ising.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			sa, err := a.Sample(context.Background(), 10, 100)
			Expect(err).NotTo(HaveOccurred())
			sb, err := b.Sample(context.Background(), 10, 100)
			Expect(err).NotTo(HaveOccurred())

			Expect(sa.Energy).To(Equal(sb.Energy), gen)
			Expect(sa.Magnetization).To(Equal(sb.Magnetization), gen)
			Expect(a.Spins()).To(Equal(b.Spins()), gen)
		}
	})

	It("diverges for different seeds", func() {
		a, _ := ising.New(ising.Config{Size: 8, Temperature: 2.4, Init: ising.Random, Seed: 1})
		b, _ := ising.New(ising.Config{Size: 8, Temperature: 2.4, Init: ising.Random, Seed: 2})
		Expect(a.Spins()).NotTo(Equal(b.Spins()))
	})

	It("stays in the ground state at very low temperature", func() {
		m, err := ising.New(ising.Config{Size: 10, Temperature: 0.01, Seed: 7})
		Expect(err).NotTo(HaveOccurred())
		m.Run(50)

		Expect(m.Energy()).To(Equal(-200))
		Expect(m.Magnetization()).To(Equal(100))
		Expect(m.Accepted()).To(BeZero())
	})

	It("accepts every flip at infinite temperature", func() {
		m, err := ising.New(ising.Config{Size: 6, Temperature: math.Inf(1), Seed: 8})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Beta()).To(BeZero())

		m.Run(20)
		Expect(m.AcceptanceRate()).To(Equal(1.0))
		Expect(m.Attempted()).To(Equal(uint64(20 * 36)))
	})

	Context("2×2 lattice at T = 1", func() {
		exact := analytic.TwoByTwo{T: 1}
		cfg := ising.Config{Size: 2, Temperature: 1, Init: ising.Ordered, Seed: 3875623}

		It("matches the exact ⟨ε⟩ and ⟨|m|⟩ after 10000 sweeps", func() {
			m, err := ising.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			s, err := m.Sample(context.Background(), 0, 10000)
			Expect(err).NotTo(HaveOccurred())

			est, err := stats.Estimate(s.Energy, s.Magnetization, m.Sites(), m.Temperature(), stats.Absolute)
			Expect(err).NotTo(HaveOccurred())
			Expect(est.Epsilon).To(BeNumerically("~", exact.Epsilon(), 1e-2))
			Expect(est.Magnetization).To(BeNumerically("~", exact.AbsMagnetization(), 1e-2))
		})

		It("matches the exact C_v and χ with a long run", func() {
			m, err := ising.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			s, err := m.Sample(context.Background(), 0, 1000000)
			Expect(err).NotTo(HaveOccurred())

			est, err := stats.Estimate(s.Energy, s.Magnetization, m.Sites(), m.Temperature(), stats.Absolute)
			Expect(err).NotTo(HaveOccurred())
			Expect(est.SpecificHeat).To(BeNumerically("~", exact.SpecificHeat(), 1e-2))
			Expect(est.Susceptibility).To(BeNumerically("~", exact.Susceptibility(), 1e-2))
		})
	})

	Context("energy distribution", func() {
		It("only visits energies reachable on the lattice", func() {
			m, err := ising.New(ising.Config{Size: 4, Temperature: 2.4, Init: ising.Random, Seed: 10})
			Expect(err).NotTo(HaveOccurred())

			s, err := m.Sample(context.Background(), 100, 2000)
			Expect(err).NotTo(HaveOccurred())

			d, err := stats.NewDistribution(s.Energy, nil)
			Expect(err).NotTo(HaveOccurred())
			for _, b := range d.Buckets() {
				Expect(int(b.Value) % 4).To(BeZero())
				Expect(b.Value).To(BeNumerically(">=", -32))
				Expect(b.Value).To(BeNumerically("<=", 32))
			}
		})
	})
})
