package function

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/sim"
)

var _ = Describe("Piecewise", func() {
	var p *Piecewise

	BeforeEach(func() {
		p = NewPiecewise(Grid{
			Times: []sim.VTimeInSec{0, 1, 2},
			Freqs: []sim.Freq{10, 20, 30},
			Values: [][]float64{
				{1, 2},
				{3, 4},
			},
		})
	})

	It("should look up cells", func() {
		Expect(p.Value(0.5, 15)).To(Equal(1.0))
		Expect(p.Value(0.5, 25)).To(Equal(2.0))
		Expect(p.Value(1, 10)).To(Equal(3.0))
		Expect(p.Value(2, 30)).To(Equal(4.0))
	})

	It("should be zero outside of the domain", func() {
		Expect(p.Value(-0.1, 15)).To(Equal(0.0))
		Expect(p.Value(2.1, 15)).To(Equal(0.0))
		Expect(p.Value(1, 31)).To(Equal(0.0))
	})

	It("should reduce over the overlapping cells", func() {
		Expect(p.Min(Domain{StartTime: 1.5, EndTime: 2, LowFreq: 10, HighFreq: 30})).
			To(Equal(3.0))
		Expect(p.Max(Domain{StartTime: 0, EndTime: 0.5, LowFreq: 10, HighFreq: 30})).
			To(Equal(2.0))
		Expect(p.Min(Domain{StartTime: 0, EndTime: 5, LowFreq: 10, HighFreq: 30})).
			To(Equal(0.0))
	})

	It("should not share the grid with callers", func() {
		g := p.Grid()
		g.Values[0][0] = 100

		Expect(p.Value(0.5, 15)).To(Equal(1.0))
	})

	It("should panic on malformed grids", func() {
		Expect(func() {
			NewPiecewise(Grid{
				Times:  []sim.VTimeInSec{0, 1},
				Freqs:  []sim.Freq{0, 1},
				Values: [][]float64{{1, 2}},
			})
		}).To(Panic())

		Expect(func() {
			NewPiecewise(Grid{
				Times:  []sim.VTimeInSec{1, 0},
				Freqs:  []sim.Freq{0, 1},
				Values: [][]float64{{1}},
			})
		}).To(Panic())
	})
})

var _ = Describe("ShapedBuilder", func() {
	It("should apply the time and frequency profiles", func() {
		b := NewShapedBuilder(RampProfile, FlatProfile)

		fn := b.Build(0, 100, 1000, 100, 2)

		Expect(fn.Value(1, 1000)).To(Equal(1.0))
		Expect(fn.Value(50, 960)).To(Equal(2.0))
		Expect(fn.Value(99, 1040)).To(Equal(1.0))
		Expect(fn.Value(101, 1000)).To(Equal(0.0))
		Expect(fn.Domain()).To(Equal(BandDomain(0, 100, 1000, 100)))
	})

	It("should leave guard subcarriers empty", func() {
		b := NewShapedBuilder(FlatProfile, OFDMSubcarrierProfile)

		fn := b.Build(0, 1, 64, 64, 53)

		Expect(fn.Value(0.5, 32.5)).To(BeNumerically("~", 0, 1e-12))
		Expect(fn.Value(0.5, 64)).To(BeNumerically("~", 64, 1e-9))
		Expect(fn.Value(0.5, 95.5)).To(BeNumerically("~", 0, 1e-12))
	})

	It("should reject profiles that do not end at 1", func() {
		Expect(func() {
			NewShapedBuilder(Profile{{Until: 0.5, Gain: 1}}, FlatProfile)
		}).To(Panic())
	})
})
