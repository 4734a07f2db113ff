package phy

import (
	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// A TransmissionMode is a named combination of modulation, coding and
// antenna parameters. It determines how long a frame is on the air.
type TransmissionMode interface {
	Name() string
	Modulation() string
	Bandwidth() sim.Freq
	NetBitrate() unit.Bitrate
	NumberOfSpatialStreams() int

	PreambleDuration() sim.VTimeInSec
	HeaderLength() unit.Bit
	HeaderDuration() sim.VTimeInSec

	// DataLength is the number of bits in the data field, including service,
	// tail and padding bits.
	DataLength(payload unit.Byte) unit.Bit
	DataDuration(payload unit.Byte) sim.VTimeInSec

	// Duration is the total on-air time of a frame, preamble and header
	// included.
	Duration(payload unit.Byte) sim.VTimeInSec
}

// A TransmissionChannel identifies the frequency a radio transmits on.
type TransmissionChannel interface {
	BandName() string
	Number() int
	CenterFrequency() sim.Freq
}

// A Radio is the transmitting or receiving end of the medium.
type Radio interface {
	sim.Named

	Antenna() antenna.Antenna
}
