// Package traffic generates packets at fixed intervals and counts the ones
// that come back.
package traffic

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// HookPosPacketGenerated marks that a packet has been handed to its sender.
// The item is the *packet.Packet.
var HookPosPacketGenerated = &sim.HookPos{Name: "PacketGenerated"}

// HookPosPacketDropped marks that a sender refused a packet because its queue
// was full. The item is the *packet.Packet.
var HookPosPacketDropped = &sim.HookPos{Name: "PacketDropped"}

// SendFunc hands a packet to a network interface.
type SendFunc func(p *packet.Packet, now sim.VTimeInSec) error

// A Flow is a sequence of identical packets sent at a fixed interval.
type Flow struct {
	Name     string
	Send     SendFunc
	Start    sim.VTimeInSec
	Interval sim.VTimeInSec
	Count    int

	Length     unit.Byte
	ModeKey    string
	ChannelKey string

	// Power is requested per packet when positive.
	Power  unit.Power
	Labels []string
}

func (f Flow) mustBeValid() error {
	if f.Send == nil {
		return fmt.Errorf("flow %s has no sender", f.Name)
	}

	if f.Count < 1 {
		return fmt.Errorf("flow %s must send at least one packet", f.Name)
	}

	if f.Count > 1 && f.Interval <= 0 {
		return fmt.Errorf("flow %s needs a positive interval", f.Name)
	}

	if f.Start < 0 {
		return fmt.Errorf("flow %s starts before time 0", f.Name)
	}

	return nil
}

type generateEvent struct {
	*sim.EventBase

	flow  int
	seqID int
}

// Generator is a component that sends the packets of its flows.
type Generator struct {
	*sim.ComponentBase

	engine sim.Engine
	flows  []Flow

	numGenerated uint64
	numDropped   uint64
}

// NewGenerator creates a generator without flows.
func NewGenerator(name string, engine sim.Engine) *Generator {
	return &Generator{
		ComponentBase: sim.NewComponentBase(name),
		engine:        engine,
	}
}

// AddFlow registers a flow. Its first packet is scheduled when the generator
// starts.
func (g *Generator) AddFlow(f Flow) error {
	err := f.mustBeValid()
	if err != nil {
		return err
	}

	g.flows = append(g.flows, f)

	return nil
}

// TotalPackets returns the number of packets all the flows will send.
func (g *Generator) TotalPackets() uint64 {
	total := uint64(0)
	for _, f := range g.flows {
		total += uint64(f.Count)
	}

	return total
}

// Start schedules the first packet of every flow.
func (g *Generator) Start() {
	for i, f := range g.flows {
		g.engine.Schedule(&generateEvent{
			EventBase: sim.NewEventBase(f.Start, g),
			flow:      i,
		})
	}
}

// Handle sends one packet of a flow.
func (g *Generator) Handle(e sim.Event) error {
	evt, ok := e.(*generateEvent)
	if !ok {
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	f := g.flows[evt.flow]
	p := g.createPacket(f, evt.seqID)

	err := f.Send(p, evt.Time())

	switch {
	case err == nil:
		g.Lock()
		g.numGenerated++
		g.Unlock()

		g.InvokeHook(sim.HookCtx{
			Domain: g,
			Pos:    HookPosPacketGenerated,
			Item:   p,
		})
	case errors.Is(err, medium.ErrQueueFull):
		g.Lock()
		g.numDropped++
		g.Unlock()

		g.InvokeHook(sim.HookCtx{
			Domain: g,
			Pos:    HookPosPacketDropped,
			Item:   p,
			Detail: err,
		})
	default:
		return fmt.Errorf("flow %s: %w", f.Name, err)
	}

	if evt.seqID+1 < f.Count {
		g.engine.Schedule(&generateEvent{
			EventBase: sim.NewEventBase(evt.Time()+f.Interval, g),
			flow:      evt.flow,
			seqID:     evt.seqID + 1,
		})
	}

	return nil
}

func (g *Generator) createPacket(f Flow, seqID int) *packet.Packet {
	name := sim.BuildNameWithIndex(f.Name, "Packet", seqID)
	p := packet.NewPacket(name, packet.PhyHeader{
		Length:     f.Length,
		ModeKey:    f.ModeKey,
		ChannelKey: f.ChannelKey,
	})

	for _, l := range f.Labels {
		p.AddLabel(l)
	}

	if f.Power > 0 {
		p.RequestPower(f.Power)
	}

	return p
}

// NumGenerated returns the number of packets accepted by the senders.
func (g *Generator) NumGenerated() uint64 {
	g.Lock()
	defer g.Unlock()

	return g.numGenerated
}

// NumDropped returns the number of packets refused by full queues.
func (g *Generator) NumDropped() uint64 {
	g.Lock()
	defer g.Unlock()

	return g.numDropped
}
