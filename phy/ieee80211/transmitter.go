package ieee80211

import (
	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// Transmitter turns packets into transmissions.
type Transmitter struct {
	name          string
	table         *Table
	powerFunction function.Builder
	power         unit.Power
}

// Name returns the name of the transmitter.
func (t *Transmitter) Name() string {
	return t.name
}

// Table returns the mode and channel table of the transmitter.
func (t *Transmitter) Table() *Table {
	return t.table
}

// Power returns the power used for packets that do not request one.
func (t *Transmitter) Power() unit.Power {
	return t.power
}

// SetPower changes the power used for packets that do not request one.
func (t *Transmitter) SetPower(p unit.Power) {
	t.power = p
}

// CreateTransmission describes the transmission of p by radio, starting at
// start. It fails with a phy.ConfigurationError if the packet requests an
// undefined mode or channel, if the power is not positive, or if the mode
// timing leaves no room for the data field. It fails with a
// phy.CapabilityError if the mode needs more spatial streams than the radio
// has antennas.
func (t *Transmitter) CreateTransmission(
	radio phy.Radio,
	p *packet.Packet,
	start sim.VTimeInSec,
) (*signal.Transmission, error) {
	header := p.PeekPhyHeader()

	mode, err := t.table.ResolveMode(header)
	if err != nil {
		return nil, err
	}

	channel, err := t.table.ResolveChannel(header)
	if err != nil {
		return nil, err
	}

	power := t.transmissionPower(p)
	if power <= 0 {
		return nil, phy.NewConfigurationError(t.name,
			"transmission power %s is not positive", power)
	}

	ant := radio.Antenna()
	if mode.NumberOfSpatialStreams() > ant.NumAntennas() {
		return nil, phy.NewCapabilityError(radio.Name(),
			"mode %s needs %d spatial streams, the antenna has %d elements",
			mode.Name(), mode.NumberOfSpatialStreams(), ant.NumAntennas())
	}

	if header.Length < 0 {
		return nil, phy.NewConfigurationError(t.name,
			"payload length %d is negative", header.Length)
	}

	duration := mode.Duration(header.Length)
	preambleDuration := mode.PreambleDuration()
	headerDuration := mode.HeaderDuration()
	dataDuration := duration - headerDuration - preambleDuration

	if dataDuration < 0 {
		return nil, phy.NewConfigurationError(t.name,
			"mode %s: preamble (%.10f s) and header (%.10f s) "+
				"are longer than the frame (%.10f s)",
			mode.Name(), preambleDuration, headerDuration, duration)
	}

	builder := signal.MakeTransmissionBuilder().
		WithTransmitter(radio.Name()).
		WithPacket(p).
		WithStartTime(start).
		WithDurations(preambleDuration, headerDuration, dataDuration).
		WithMode(mode).
		WithChannel(channel)

	end := builder.EndTime()
	m := ant.Mobility()
	startSnapshot := mobility.SnapshotAt(m, start)
	endSnapshot := mobility.SnapshotAt(m, end)

	bandwidth := mode.Bandwidth()
	fn := t.powerFunction.Build(start, end,
		channel.CenterFrequency(), bandwidth,
		float64(power)/float64(bandwidth))

	tx := builder.
		WithSnapshots(startSnapshot, endSnapshot).
		WithLengths(mode.HeaderLength(), mode.DataLength(header.Length)).
		WithPower(power, fn).
		Build()

	return tx, nil
}

func (t *Transmitter) transmissionPower(p *packet.Packet) unit.Power {
	if power, ok := p.PowerRequest(); ok {
		return power
	}

	return t.power
}
