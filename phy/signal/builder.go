package signal

import (
	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// TransmissionBuilder assembles transmissions. The end time is always
// computed as start + preamble + header + data.
type TransmissionBuilder struct {
	transmitterName string
	packet          *packet.Packet

	startTime        sim.VTimeInSec
	preambleDuration sim.VTimeInSec
	headerDuration   sim.VTimeInSec
	dataDuration     sim.VTimeInSec

	startSnapshot geometry.Snapshot
	endSnapshot   geometry.Snapshot

	headerLength  unit.Bit
	dataLength    unit.Bit
	power         unit.Power
	powerFunction function.Function

	mode    phy.TransmissionMode
	channel phy.TransmissionChannel
}

// MakeTransmissionBuilder creates a TransmissionBuilder.
func MakeTransmissionBuilder() TransmissionBuilder {
	return TransmissionBuilder{}
}

// WithTransmitter sets the name of the transmitting radio.
func (b TransmissionBuilder) WithTransmitter(name string) TransmissionBuilder {
	b.transmitterName = name
	return b
}

// WithPacket sets the transmitted packet.
func (b TransmissionBuilder) WithPacket(p *packet.Packet) TransmissionBuilder {
	b.packet = p
	return b
}

// WithStartTime sets when the transmission starts.
func (b TransmissionBuilder) WithStartTime(
	t sim.VTimeInSec,
) TransmissionBuilder {
	b.startTime = t
	return b
}

// WithDurations sets the duration of the preamble, the header and the data.
func (b TransmissionBuilder) WithDurations(
	preamble, header, data sim.VTimeInSec,
) TransmissionBuilder {
	b.preambleDuration = preamble
	b.headerDuration = header
	b.dataDuration = data

	return b
}

// WithSnapshots sets the antenna snapshots at start and end.
func (b TransmissionBuilder) WithSnapshots(
	start, end geometry.Snapshot,
) TransmissionBuilder {
	b.startSnapshot = start
	b.endSnapshot = end

	return b
}

// WithLengths sets the header and data lengths.
func (b TransmissionBuilder) WithLengths(
	header, data unit.Bit,
) TransmissionBuilder {
	b.headerLength = header
	b.dataLength = data

	return b
}

// WithPower sets the total power and the power spectral density function.
func (b TransmissionBuilder) WithPower(
	power unit.Power,
	fn function.Function,
) TransmissionBuilder {
	b.power = power
	b.powerFunction = fn

	return b
}

// WithMode sets the transmission mode. Modulation, bandwidth and bit rate are
// taken from it.
func (b TransmissionBuilder) WithMode(
	mode phy.TransmissionMode,
) TransmissionBuilder {
	b.mode = mode
	return b
}

// WithChannel sets the channel. The center frequency is taken from it.
func (b TransmissionBuilder) WithChannel(
	channel phy.TransmissionChannel,
) TransmissionBuilder {
	b.channel = channel
	return b
}

// EndTime returns the end time of the transmission to build.
func (b TransmissionBuilder) EndTime() sim.VTimeInSec {
	return b.startTime + b.preambleDuration + b.headerDuration +
		b.dataDuration
}

// Build creates the transmission.
func (b TransmissionBuilder) Build() *Transmission {
	return &Transmission{
		id:               sim.GetIDGenerator().Generate(),
		transmitterName:  b.transmitterName,
		packet:           b.packet,
		startTime:        b.startTime,
		endTime:          b.EndTime(),
		preambleDuration: b.preambleDuration,
		headerDuration:   b.headerDuration,
		dataDuration:     b.dataDuration,
		startSnapshot:    b.startSnapshot,
		endSnapshot:      b.endSnapshot,
		modulation:       b.mode.Modulation(),
		headerLength:     b.headerLength,
		dataLength:       b.dataLength,
		centerFrequency:  b.channel.CenterFrequency(),
		bandwidth:        b.mode.Bandwidth(),
		bitrate:          b.mode.NetBitrate(),
		power:            b.power,
		powerFunction:    b.powerFunction,
		mode:             b.mode,
		channel:          b.channel,
	}
}
