package ieee80211

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/sim"
)

var _ = Describe("Band", func() {
	DescribeTable("channel centers",
		func(band *Band, number int, center sim.Freq) {
			c, err := band.Channel(number)

			Expect(err).NotTo(HaveOccurred())
			Expect(c.CenterFrequency()).To(Equal(center))
			Expect(c.Number()).To(Equal(number))
			Expect(c.BandName()).To(Equal(band.Name()))
		},
		Entry("2.4 GHz channel 1", Band24GHz, 1, 2412*sim.MHz),
		Entry("2.4 GHz channel 6", Band24GHz, 6, 2437*sim.MHz),
		Entry("2.4 GHz channel 13", Band24GHz, 13, 2472*sim.MHz),
		Entry("2.4 GHz channel 14", Band24GHz, 14, 2484*sim.MHz),
		Entry("5 GHz channel 36", Band5GHz, 36, 5180*sim.MHz),
		Entry("5 GHz channel 165", Band5GHz, 165, 5825*sim.MHz),
	)

	It("should reject channels outside of the band", func() {
		_, err := Band24GHz.Channel(15)
		Expect(err).To(HaveOccurred())

		_, err = Band5GHz.Channel(0)
		Expect(err).To(HaveOccurred())
	})

	It("should have a key", func() {
		c, _ := Band5GHz.Channel(36)
		Expect(c.Key()).To(Equal("5GHz:36"))
	})

	It("should find bands by name", func() {
		b, found := BandByName("5GHz")
		Expect(found).To(BeTrue())
		Expect(b).To(BeIdenticalTo(Band5GHz))

		_, found = BandByName("60GHz")
		Expect(found).To(BeFalse())
	})
})

var _ = Describe("Table", func() {
	var table *Table

	BeforeEach(func() {
		table = MakeTableBuilder().
			WithModeSet(ModeSetHT).
			WithDefaultMode("MCS0").
			WithDefaultChannel("5GHz:36").
			Build()
	})

	It("should fall back to the defaults", func() {
		mode, err := table.ResolveMode(packet.PhyHeader{})
		Expect(err).NotTo(HaveOccurred())
		Expect(mode.Name()).To(Equal("MCS0"))

		channel, err := table.ResolveChannel(packet.PhyHeader{})
		Expect(err).NotTo(HaveOccurred())
		Expect(channel.CenterFrequency()).To(Equal(5180 * sim.MHz))
	})

	It("should resolve the requested keys", func() {
		h := packet.PhyHeader{ModeKey: "MCS9", ChannelKey: "2.4GHz:11"}

		mode, err := table.ResolveMode(h)
		Expect(err).NotTo(HaveOccurred())
		Expect(mode.NumberOfSpatialStreams()).To(Equal(2))

		channel, err := table.ResolveChannel(h)
		Expect(err).NotTo(HaveOccurred())
		Expect(channel.Number()).To(Equal(11))
	})

	It("should be deterministic", func() {
		h := packet.PhyHeader{ModeKey: "MCS3"}

		a, _ := table.ResolveMode(h)
		b, _ := table.ResolveMode(h)

		Expect(a).To(BeIdenticalTo(b))
	})

	DescribeTable("undefined modes",
		func(h packet.PhyHeader) {
			_, err := table.ResolveMode(h)

			Expect(err).To(MatchError(phy.ErrConfiguration))
		},
		Entry("not in the set", packet.PhyHeader{ModeKey: "54Mbps"}),
		Entry("misspelled", packet.PhyHeader{ModeKey: "mcs0"}),
	)

	DescribeTable("undefined channels",
		func(h packet.PhyHeader) {
			_, err := table.ResolveChannel(h)

			Expect(err).To(MatchError(phy.ErrConfiguration))
		},
		Entry("malformed key", packet.PhyHeader{ChannelKey: "36"}),
		Entry("band", packet.PhyHeader{ChannelKey: "60GHz:1"}),
		Entry("channel number", packet.PhyHeader{ChannelKey: "5GHz:x"}),
		Entry("out of band", packet.PhyHeader{ChannelKey: "2.4GHz:20"}),
	)

	It("should fail without a default mode", func() {
		t := MakeTableBuilder().WithDefaultMode("").Build()

		_, err := t.ResolveMode(packet.PhyHeader{})

		Expect(err).To(MatchError(phy.ErrConfiguration))
	})
})
