package signal

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("Descriptors", func() {
	var (
		mockCtrl *gomock.Controller
		mode     *MockTransmissionMode
		channel  *MockTransmissionChannel
		tx       *Transmission
		arrival  Arrival
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mode = NewMockTransmissionMode(mockCtrl)
		channel = NewMockTransmissionChannel(mockCtrl)

		mode.EXPECT().Name().Return("54Mbps").AnyTimes()
		mode.EXPECT().Modulation().Return("64-QAM 3/4").AnyTimes()
		mode.EXPECT().Bandwidth().Return(20 * sim.MHz).AnyTimes()
		mode.EXPECT().NetBitrate().Return(54 * unit.Mbps).AnyTimes()
		channel.EXPECT().BandName().Return("2.4GHz").AnyTimes()
		channel.EXPECT().Number().Return(1).AnyTimes()
		channel.EXPECT().CenterFrequency().Return(2412 * sim.MHz).AnyTimes()

		snapshot := geometry.Snapshot{Orientation: geometry.Identity()}
		fn := function.FlatBuilder{}.
			Build(0, 172e-6, 2412*sim.MHz, 20*sim.MHz, 0.1/20e6)

		tx = MakeTransmissionBuilder().
			WithTransmitter("Net.Radio[0]").
			WithPacket(packet.NewPacket("Data", packet.PhyHeader{Length: 1000})).
			WithStartTime(0).
			WithDurations(16e-6, 4e-6, 152e-6).
			WithSnapshots(snapshot, snapshot).
			WithLengths(24, 8208).
			WithPower(0.1, fn).
			WithMode(mode).
			WithChannel(channel).
			Build()

		arrival = Arrival{
			StartTime:     1e-6,
			EndTime:       173e-6,
			StartSnapshot: snapshot,
			EndSnapshot:   snapshot,
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should take spectral parameters from mode and channel", func() {
		Expect(tx.CenterFrequency()).To(Equal(2412 * sim.MHz))
		Expect(tx.Bandwidth()).To(Equal(20 * sim.MHz))
		Expect(tx.Bitrate()).To(Equal(54 * unit.Mbps))
		Expect(tx.Modulation()).To(Equal("64-QAM 3/4"))
	})

	It("should end after preamble, header and data", func() {
		Expect(tx.EndTime()).To(Equal(
			tx.StartTime() + tx.PreambleDuration() +
				tx.HeaderDuration() + tx.DataDuration()))
		Expect(tx.EndTime()).To(BeNumerically("~", 172e-6, 1e-15))
	})

	It("should print a summary", func() {
		Expect(tx.String()).To(HavePrefix("Transmission "))
		Expect(tx.String()).To(ContainSubstring(
			"from Net.Radio[0], packet Data, 54Mbps"))
		Expect(tx.String()).NotTo(ContainSubstring("\n"))

		sb := new(strings.Builder)
		tx.Print(sb, 2)
		Expect(sb.String()).To(ContainSubstring(
			"channel: 2.4GHz 1, center: 2.412 GHz, bandwidth: 20 MHz"))
		Expect(sb.String()).To(ContainSubstring("modulation: 64-QAM 3/4"))
		Expect(sb.String()).To(ContainSubstring("header: 24 b, data: 8208 b"))
		Expect(strings.Count(sb.String(), "\n")).To(Equal(9))
	})

	It("should print deterministically", func() {
		a := new(strings.Builder)
		b := new(strings.Builder)
		tx.Print(a, 2)
		tx.Print(b, 2)

		Expect(a.String()).To(Equal(b.String()))
	})

	Context("scalar reception", func() {
		It("should return the power for any interval", func() {
			r := NewScalarReception("Net.Radio[1]", tx, arrival, tx.Power())

			Expect(r.MinPower(r.StartTime(), r.EndTime())).To(Equal(tx.Power()))
			Expect(r.MinPower(0, 1)).To(Equal(tx.Power()))
			Expect(r.Transmission()).To(BeIdenticalTo(tx))
			Expect(r.CenterFrequency()).To(Equal(2412 * sim.MHz))
		})

		It("should spread the power over the band", func() {
			r := NewScalarReception("Net.Radio[1]", tx, arrival, 0.02)

			density := r.PowerFunction().Value(100e-6, 2412*sim.MHz)
			Expect(density).To(BeNumerically("~", 1e-9, 1e-20))
		})

		It("should print a summary", func() {
			r := NewScalarReception("Net.Radio[1]", tx, arrival, 0.02)

			sb := new(strings.Builder)
			r.Print(sb, 1)

			Expect(sb.String()).To(HavePrefix("Scalar reception of transmission "))
			Expect(sb.String()).To(ContainSubstring("at Net.Radio[1]"))
			Expect(sb.String()).To(ContainSubstring("power: 0.02 W"))
		})
	})

	Context("dimensional reception", func() {
		It("should compute the min power over the interval", func() {
			fn := function.Shift(tx.PowerFunction(), 1e-6)
			r := NewDimensionalReception("Net.Radio[1]", tx, arrival, fn)

			Expect(float64(r.MinPower(10e-6, 20e-6))).
				To(BeNumerically("~", 0.1, 1e-12))
			Expect(float64(r.MinPower(0, 20e-6))).To(Equal(0.0))
		})

		It("should print a summary", func() {
			r := NewDimensionalReception("Net.Radio[1]", tx, arrival,
				tx.PowerFunction())

			Expect(r.String()).To(HavePrefix(
				"Dimensional reception of transmission "))
		})
	})
})
