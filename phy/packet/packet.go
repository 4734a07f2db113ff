// Package packet defines the frames handed to the physical layer.
package packet

import (
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// PhyHeader holds the fields of the physical layer header that the radio
// model reads.
type PhyHeader struct {
	// Length is the payload length.
	Length unit.Byte

	// ModeKey selects the transmission mode. Empty means the default mode.
	ModeKey string

	// ChannelKey selects the channel, for example "5GHz:36". Empty means the
	// default channel.
	ChannelKey string
}

// A Packet is a frame to be transmitted.
type Packet struct {
	ID   string
	Name string

	header   PhyHeader
	labels   []string
	power    unit.Power
	hasPower bool
}

// NewPacket creates a packet with the given header.
func NewPacket(name string, header PhyHeader) *Packet {
	return &Packet{
		ID:     sim.GetIDGenerator().Generate(),
		Name:   name,
		header: header,
	}
}

// PeekPhyHeader returns a copy of the physical layer header. The packet is
// not modified.
func (p *Packet) PeekPhyHeader() PhyHeader {
	return p.header
}

// AddLabel tags the packet. Labels are used by queue classifiers.
func (p *Packet) AddLabel(label string) {
	p.labels = append(p.labels, label)
}

// Labels returns a copy of the labels of the packet.
func (p *Packet) Labels() []string {
	labels := make([]string, len(p.labels))
	copy(labels, p.labels)

	return labels
}

// RequestPower asks the transmitter to use a specific power for this packet.
func (p *Packet) RequestPower(power unit.Power) {
	p.power = power
	p.hasPower = true
}

// PowerRequest returns the requested power, if any.
func (p *Packet) PowerRequest() (unit.Power, bool) {
	return p.power, p.hasPower
}
