package analog

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("Reception models", func() {
	var (
		mockCtrl *gomock.Controller
		tx       *signal.Transmission
		arrival  signal.Arrival
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		radio := NewMockRadio(mockCtrl)
		radio.EXPECT().Name().Return("Net.Radio[0]").AnyTimes()
		radio.EXPECT().Antenna().
			Return(antenna.NewIsotropic(mobility.NewStationary(
				geometry.Coord{}, geometry.Identity()))).
			AnyTimes()

		transmitter := ieee80211.MakeBuilder().
			WithPower(0.1).
			Build("Transmitter")
		p := packet.NewPacket("Data", packet.PhyHeader{Length: 1000})

		var err error
		tx, err = transmitter.CreateTransmission(radio, p, 0)
		Expect(err).NotTo(HaveOccurred())

		arrival = signal.Arrival{
			StartTime:     tx.StartTime() + 1e-7,
			EndTime:       tx.EndTime() + 1e-7,
			StartSnapshot: tx.StartSnapshot(),
			EndSnapshot:   tx.EndSnapshot(),
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("scalar", func() {
		It("should return the transmission power without attenuation", func() {
			r, err := ScalarModel{}.ComputeReception(tx, ReceiverState{
				RadioName:   "Net.Radio[1]",
				Arrival:     arrival,
				Attenuation: 1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(r.MinPower(tx.StartTime(), tx.EndTime())).To(Equal(tx.Power()))
			Expect(r.RadioName()).To(Equal("Net.Radio[1]"))
			Expect(r.StartTime()).To(Equal(arrival.StartTime))
			Expect(r.EndTime()).To(Equal(arrival.EndTime))
		})

		It("should never receive more than transmitted", func() {
			for _, a := range []float64{0, 1e-9, 0.5, 1} {
				r, err := ScalarModel{}.ComputeReception(tx, ReceiverState{
					Arrival:     arrival,
					Attenuation: a,
				})

				Expect(err).NotTo(HaveOccurred())
				power := r.(*signal.ScalarReception).Power()
				Expect(power).To(BeNumerically("<=", tx.Power()))
			}
		})

		It("should reject invalid attenuations", func() {
			_, err := ScalarModel{}.ComputeReception(tx, ReceiverState{
				Arrival:     arrival,
				Attenuation: 1.5,
			})

			Expect(err).To(MatchError(phy.ErrConfiguration))
		})
	})

	Context("dimensional", func() {
		It("should delay and attenuate the power function", func() {
			r, err := DimensionalModel{}.ComputeReception(tx, ReceiverState{
				RadioName:   "Net.Radio[1]",
				Arrival:     arrival,
				Attenuation: 0.5,
			})

			Expect(err).NotTo(HaveOccurred())

			fn := r.PowerFunction()
			Expect(fn.Domain().StartTime).To(Equal(arrival.StartTime))
			Expect(fn.Value(arrival.StartTime, tx.CenterFrequency())).
				To(BeNumerically("~", 0.05/20e6, 1e-20))
			Expect(fn.Value(tx.StartTime(), tx.CenterFrequency())).
				To(Equal(0.0))
			Expect(float64(r.MinPower(arrival.StartTime, arrival.EndTime))).
				To(BeNumerically("~", 0.05, 1e-12))
		})

		It("should apply the channel response", func() {
			response := function.NewPiecewise(function.Grid{
				Times: []sim.VTimeInSec{0, 1},
				Freqs: []sim.Freq{
					2402 * sim.MHz, 2412 * sim.MHz, 2422 * sim.MHz,
				},
				Values: [][]float64{{1, 0.1}},
			})

			r, err := DimensionalModel{}.ComputeReception(tx, ReceiverState{
				Arrival:     arrival,
				Attenuation: 1,
				Response:    response,
			})

			Expect(err).NotTo(HaveOccurred())

			mid := (arrival.StartTime + arrival.EndTime) / 2
			fn := r.PowerFunction()
			Expect(fn.Value(mid, 2405*sim.MHz)).
				To(BeNumerically("~", 0.1/20e6, 1e-20))
			Expect(fn.Value(mid, 2420*sim.MHz)).
				To(BeNumerically("~", 0.01/20e6, 1e-20))
			// Half the band at full power, half at a tenth.
			Expect(r.MinPower(arrival.StartTime, arrival.EndTime)).
				To(BeNumerically("~", unit.Power(0.055), 1e-12))
		})

		It("should report the in-band power of shaped transmissions", func() {
			radio := NewMockRadio(mockCtrl)
			radio.EXPECT().Name().Return("Net.Radio[0]").AnyTimes()
			radio.EXPECT().Antenna().
				Return(antenna.NewIsotropic(mobility.NewStationary(
					geometry.Coord{}, geometry.Identity()))).
				AnyTimes()

			shaped, err := ieee80211.MakeBuilder().
				WithPower(0.1).
				WithShapedRepresentation().
				Build("Transmitter").
				CreateTransmission(radio,
					packet.NewPacket("Data", packet.PhyHeader{Length: 1000}), 0)
			Expect(err).NotTo(HaveOccurred())

			r, err := DimensionalModel{}.ComputeReception(shaped, ReceiverState{
				Arrival:     arrival,
				Attenuation: 1,
			})
			Expect(err).NotTo(HaveOccurred())

			mid := (arrival.StartTime + arrival.EndTime) / 2
			Expect(float64(r.MinPower(mid, mid))).
				To(BeNumerically("~", 0.1, 1e-9))
			Expect(float64(r.MinPower(arrival.StartTime, arrival.EndTime))).
				To(BeNumerically("~", 0.05, 1e-9))
		})

		It("should stretch the function onto a longer arrival", func() {
			moving := arrival
			moving.EndTime += 2e-7

			r, err := DimensionalModel{}.ComputeReception(tx, ReceiverState{
				Arrival:     moving,
				Attenuation: 1,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(r.PowerFunction().Domain().StartTime).
				To(Equal(moving.StartTime))
			Expect(r.PowerFunction().Domain().EndTime).
				To(Equal(moving.EndTime))
			Expect(float64(r.MinPower(moving.StartTime, moving.EndTime))).
				To(BeNumerically("~", 0.1, 1e-12))
		})
	})
})
