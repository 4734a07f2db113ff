package traffic

import (
	"sync"

	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// Sink counts what comes back from the network, both as completed radio
// receptions and as packets passed up by an interface.
type Sink struct {
	mu         sync.Mutex
	receptions map[string]uint64
	packets    uint64
	lastTime   sim.VTimeInSec
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{receptions: make(map[string]uint64)}
}

// ReceptionCompleted counts a reception for its receiver.
func (s *Sink) ReceptionCompleted(r signal.Reception, now sim.VTimeInSec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receptions[r.RadioName()]++
	s.observe(now)
}

// Receive counts a packet passed up by an interface.
func (s *Sink) Receive(_ *packet.Packet, now sim.VTimeInSec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packets++
	s.observe(now)
}

func (s *Sink) observe(now sim.VTimeInSec) {
	if now > s.lastTime {
		s.lastTime = now
	}
}

// NumReceptions returns the receptions completed at a radio.
func (s *Sink) NumReceptions(radioName string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.receptions[radioName]
}

// NumPackets returns the number of packets passed up.
func (s *Sink) NumPackets() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.packets
}

// LastTime returns the time of the latest arrival.
func (s *Sink) LastTime() sim.VTimeInSec {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastTime
}
