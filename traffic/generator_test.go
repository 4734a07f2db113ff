package traffic

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/radiosim/linklayer/loopback"
	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

type countingHook struct {
	counts map[*sim.HookPos]int
}

func (h *countingHook) Func(ctx sim.HookCtx) {
	h.counts[ctx.Pos]++
}

var _ = Describe("Generator", func() {
	var (
		engine *sim.SerialEngine
		g      *Generator
		sink   *Sink
		hook   *countingHook
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		g = NewGenerator("Generator", engine)
		sink = NewSink()
		hook = &countingHook{counts: make(map[*sim.HookPos]int)}
		g.AcceptHook(hook)
	})

	DescribeTable("should reject invalid flows",
		func(f Flow) {
			Expect(g.AddFlow(f)).NotTo(Succeed())
		},
		Entry("no sender", Flow{Name: "F", Count: 1}),
		Entry("no packet", Flow{Name: "F", Send: func(
			*packet.Packet, sim.VTimeInSec) error {
			return nil
		}}),
		Entry("no interval", Flow{Name: "F", Count: 2, Send: func(
			*packet.Packet, sim.VTimeInSec) error {
			return nil
		}}),
		Entry("negative start", Flow{Name: "F", Count: 1, Start: -1, Send: func(
			*packet.Packet, sim.VTimeInSec) error {
			return nil
		}}),
	)

	It("should send packets at a fixed interval", func() {
		var (
			packets []*packet.Packet
			times   []sim.VTimeInSec
		)

		Expect(g.AddFlow(Flow{
			Name: "Flow",
			Send: func(p *packet.Packet, now sim.VTimeInSec) error {
				packets = append(packets, p)
				times = append(times, now)
				return nil
			},
			Start:      1,
			Interval:   2,
			Count:      3,
			Length:     100,
			ModeKey:    "6Mbps",
			ChannelKey: "5GHz:36",
			Power:      unit.MW,
			Labels:     []string{"urgent"},
		})).To(Succeed())
		Expect(g.TotalPackets()).To(Equal(uint64(3)))

		g.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(times).To(Equal([]sim.VTimeInSec{1, 3, 5}))
		Expect(packets[2].Name).To(Equal("Flow.Packet[2]"))
		Expect(packets[0].PeekPhyHeader()).To(Equal(packet.PhyHeader{
			Length: 100, ModeKey: "6Mbps", ChannelKey: "5GHz:36",
		}))
		Expect(packets[0].Labels()).To(Equal([]string{"urgent"}))

		power, requested := packets[0].PowerRequest()
		Expect(requested).To(BeTrue())
		Expect(power).To(Equal(unit.MW))

		Expect(g.NumGenerated()).To(Equal(uint64(3)))
		Expect(hook.counts[HookPosPacketGenerated]).To(Equal(3))
	})

	It("should count packets refused by full queues", func() {
		Expect(g.AddFlow(Flow{
			Name: "Flow",
			Send: func(*packet.Packet, sim.VTimeInSec) error {
				return fmt.Errorf("radio: %w", medium.ErrQueueFull)
			},
			Interval: 1,
			Count:    2,
		})).To(Succeed())

		g.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(g.NumGenerated()).To(Equal(uint64(0)))
		Expect(g.NumDropped()).To(Equal(uint64(2)))
		Expect(hook.counts[HookPosPacketDropped]).To(Equal(2))
	})

	It("should stop on other send errors", func() {
		Expect(g.AddFlow(Flow{
			Name: "Flow",
			Send: func(*packet.Packet, sim.VTimeInSec) error {
				return errors.New("broken")
			},
			Interval: 1,
			Count:    2,
		})).To(Succeed())

		g.Start()
		Expect(engine.Run()).To(MatchError(ContainSubstring("flow Flow")))
	})

	It("should loop packets back through a loopback", func() {
		lb := loopback.NewLoopback("Loopback", engine, sink)

		Expect(g.AddFlow(Flow{
			Name: "Loop",
			Send: func(p *packet.Packet, now sim.VTimeInSec) error {
				lb.Send(p, now)
				return nil
			},
			Start:    2,
			Interval: 1,
			Count:    4,
		})).To(Succeed())

		g.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(sink.NumPackets()).To(Equal(uint64(4)))
		Expect(sink.LastTime()).To(Equal(sim.VTimeInSec(5)))
		Expect(lb.NumReceived()).To(Equal(uint64(4)))
	})

	It("should drive radios on a medium", func() {
		air := medium.MakeBuilder().WithEngine(engine).Build("Medium")
		t := ieee80211.MakeBuilder().Build("Transmitter")

		radios := make([]*medium.Radio, 0, 2)
		for i, name := range []string{"A", "B"} {
			radios = append(radios, medium.MakeRadioBuilder().
				WithEngine(engine).
				WithMedium(air).
				WithAntenna(antenna.NewIsotropic(mobility.NewStationary(
					geometry.Coord{X: float64(i)}, geometry.Identity()))).
				WithTransmitter(t).
				WithListener(sink).
				Build(name))
		}

		Expect(g.AddFlow(Flow{
			Name:     "AtoB",
			Send:     radios[0].Send,
			Interval: 1e-3,
			Count:    5,
			Length:   500,
		})).To(Succeed())

		g.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(sink.NumReceptions("B")).To(Equal(uint64(5)))
		Expect(sink.NumReceptions("A")).To(Equal(uint64(0)))
		Expect(radios[0].NumSent()).To(Equal(uint64(5)))
	})
})
