// Package loopback provides a network interface that hands every packet back
// to the sender.
package loopback

import (
	"fmt"
	"log"
	"reflect"

	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/sim"
)

// HookPosPacketLooped marks that a packet has been passed back up. The item
// is the *packet.Packet.
var HookPosPacketLooped = &sim.HookPos{Name: "PacketLooped"}

// An UpperLayer receives the packets coming back from the loopback.
type UpperLayer interface {
	Receive(p *packet.Packet, now sim.VTimeInSec)
}

type deliverEvent struct {
	*sim.EventBase

	packet *packet.Packet
}

// Loopback is an interface whose outgoing packets come back in, without
// delay.
type Loopback struct {
	*sim.ComponentBase

	engine sim.Engine
	upper  UpperLayer

	numSent     uint64
	numReceived uint64
}

// NewLoopback creates a loopback interface.
func NewLoopback(name string, engine sim.Engine, upper UpperLayer) *Loopback {
	return &Loopback{
		ComponentBase: sim.NewComponentBase(name),
		engine:        engine,
		upper:         upper,
	}
}

// Send accepts a packet from the upper layer.
func (l *Loopback) Send(p *packet.Packet, now sim.VTimeInSec) {
	l.Lock()
	l.numSent++
	l.Unlock()

	l.engine.Schedule(&deliverEvent{
		EventBase: sim.NewEventBase(now, l),
		packet:    p,
	})
}

// Handle passes the packet back to the upper layer.
func (l *Loopback) Handle(e sim.Event) error {
	evt, ok := e.(*deliverEvent)
	if !ok {
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	l.Lock()
	l.numReceived++
	l.Unlock()

	l.InvokeHook(sim.HookCtx{
		Domain: l,
		Pos:    HookPosPacketLooped,
		Item:   evt.packet,
	})

	if l.upper != nil {
		l.upper.Receive(evt.packet, evt.Time())
	}

	return nil
}

// NumSent returns the number of packets accepted from the upper layer.
func (l *Loopback) NumSent() uint64 {
	l.Lock()
	defer l.Unlock()

	return l.numSent
}

// NumReceived returns the number of packets passed back up.
func (l *Loopback) NumReceived() uint64 {
	l.Lock()
	defer l.Unlock()

	return l.numReceived
}

func (l *Loopback) String() string {
	return fmt.Sprintf("passed up: %d, sent: %d",
		l.NumReceived(), l.NumSent())
}
