package ieee80211

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

var _ = Describe("Mode", func() {
	It("should time a 1000 byte frame at 54 Mbps", func() {
		m, found := ModeSetA.Mode("54Mbps")
		Expect(found).To(BeTrue())

		Expect(m.Bandwidth()).To(Equal(20 * sim.MHz))
		Expect(float64(m.NetBitrate())).To(BeNumerically("~", 54e6, 1e-3))
		Expect(m.NumberOfSpatialStreams()).To(Equal(1))
		Expect(m.Modulation()).To(Equal("64-QAM 3/4"))

		Expect(float64(m.PreambleDuration())).To(BeNumerically("~", 16e-6, 1e-15))
		Expect(float64(m.HeaderDuration())).To(BeNumerically("~", 4e-6, 1e-15))
		Expect(m.HeaderLength()).To(Equal(unit.Bit(24)))
		Expect(float64(m.DataDuration(1000))).To(BeNumerically("~", 152e-6, 1e-15))
		Expect(m.DataLength(1000)).To(Equal(unit.Bit(38 * 216)))
		Expect(float64(m.Duration(1000))).To(BeNumerically("~", 172e-6, 1e-15))
	})

	It("should pad the data field to whole symbols at 6 Mbps", func() {
		m, _ := ModeSetA.Mode("6Mbps")

		// 16 + 8000 + 6 bits in 24 bit symbols.
		Expect(float64(m.DataDuration(1000))).
			To(BeNumerically("~", 335*4e-6, 1e-15))
	})

	It("should stretch symbols in narrow channels", func() {
		half, found := ModeSetAHalf.Mode("27Mbps")
		Expect(found).To(BeTrue())
		Expect(half.Bandwidth()).To(Equal(10 * sim.MHz))
		Expect(float64(half.PreambleDuration())).To(BeNumerically("~", 32e-6, 1e-15))

		quarter, found := ModeSetAQuarter.Mode("1.5Mbps")
		Expect(found).To(BeTrue())
		Expect(quarter.Bandwidth()).To(Equal(5 * sim.MHz))
		Expect(float64(quarter.HeaderDuration())).To(BeNumerically("~", 16e-6, 1e-15))
	})

	It("should use two streams from MCS8", func() {
		mcs7, _ := ModeSetHT.Mode("MCS7")
		mcs15, _ := ModeSetHT.Mode("MCS15")

		Expect(mcs7.NumberOfSpatialStreams()).To(Equal(1))
		Expect(float64(mcs7.NetBitrate())).To(BeNumerically("~", 65e6, 1e-3))
		Expect(float64(mcs7.PreambleDuration())).To(BeNumerically("~", 32e-6, 1e-15))

		Expect(mcs15.NumberOfSpatialStreams()).To(Equal(2))
		Expect(float64(mcs15.NetBitrate())).To(BeNumerically("~", 130e6, 1e-3))
		Expect(float64(mcs15.PreambleDuration())).To(BeNumerically("~", 36e-6, 1e-15))
	})

	It("should list the modes in order", func() {
		modes := ModeSetA.Modes()

		Expect(modes).To(HaveLen(8))
		Expect(modes[0].Name()).To(Equal("6Mbps"))
		Expect(modes[7].Name()).To(Equal("54Mbps"))
		Expect(ModeSetHT.Modes()).To(HaveLen(16))
	})

	It("should reject duplicate names", func() {
		m, _ := ModeSetA.Mode("6Mbps")

		Expect(func() { ModeSetA.With("dup", m) }).To(Panic())
	})

	It("should find built-in sets by name", func() {
		s, found := ModeSetByName("ht")
		Expect(found).To(BeTrue())
		Expect(s).To(BeIdenticalTo(ModeSetHT))

		_, found = ModeSetByName("ac")
		Expect(found).To(BeFalse())
	})
})
