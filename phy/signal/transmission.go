// Package signal defines the transmission and reception descriptors
// exchanged between the radio models.
package signal

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

// A Transmission describes one packet on the air. It cannot be modified
// once built and can be shared by all the receivers.
type Transmission struct {
	id              string
	transmitterName string
	packet          *packet.Packet

	startTime        sim.VTimeInSec
	endTime          sim.VTimeInSec
	preambleDuration sim.VTimeInSec
	headerDuration   sim.VTimeInSec
	dataDuration     sim.VTimeInSec

	startSnapshot geometry.Snapshot
	endSnapshot   geometry.Snapshot

	modulation      string
	headerLength    unit.Bit
	dataLength      unit.Bit
	centerFrequency sim.Freq
	bandwidth       sim.Freq
	bitrate         unit.Bitrate
	power           unit.Power
	powerFunction   function.Function

	mode    phy.TransmissionMode
	channel phy.TransmissionChannel
}

// ID returns the unique ID of the transmission.
func (t *Transmission) ID() string { return t.id }

// TransmitterName returns the name of the transmitting radio.
func (t *Transmission) TransmitterName() string { return t.transmitterName }

// Packet returns the transmitted packet. It must not be modified.
func (t *Transmission) Packet() *packet.Packet { return t.packet }

// StartTime returns when the first bit of the preamble is sent.
func (t *Transmission) StartTime() sim.VTimeInSec { return t.startTime }

// EndTime returns when the last bit of the data is sent.
func (t *Transmission) EndTime() sim.VTimeInSec { return t.endTime }

// Duration returns the on-air time.
func (t *Transmission) Duration() sim.VTimeInSec {
	return t.endTime - t.startTime
}

func (t *Transmission) PreambleDuration() sim.VTimeInSec {
	return t.preambleDuration
}

func (t *Transmission) HeaderDuration() sim.VTimeInSec {
	return t.headerDuration
}

func (t *Transmission) DataDuration() sim.VTimeInSec {
	return t.dataDuration
}

// StartSnapshot returns the antenna position and orientation at the start.
func (t *Transmission) StartSnapshot() geometry.Snapshot {
	return t.startSnapshot
}

// EndSnapshot returns the antenna position and orientation at the end.
func (t *Transmission) EndSnapshot() geometry.Snapshot {
	return t.endSnapshot
}

func (t *Transmission) Modulation() string { return t.modulation }
func (t *Transmission) HeaderLength() unit.Bit { return t.headerLength }
func (t *Transmission) DataLength() unit.Bit { return t.dataLength }
func (t *Transmission) CenterFrequency() sim.Freq { return t.centerFrequency }
func (t *Transmission) Bandwidth() sim.Freq { return t.bandwidth }
func (t *Transmission) Bitrate() unit.Bitrate { return t.bitrate }

// Power returns the total transmitted power.
func (t *Transmission) Power() unit.Power { return t.power }

// PowerFunction returns the transmitted power spectral density in W/Hz.
func (t *Transmission) PowerFunction() function.Function {
	return t.powerFunction
}

func (t *Transmission) Mode() phy.TransmissionMode { return t.mode }
func (t *Transmission) Channel() phy.TransmissionChannel { return t.channel }

func (t *Transmission) String() string {
	sb := new(strings.Builder)
	t.Print(sb, 0)

	return sb.String()
}

// Print writes a summary of the transmission. Level 0 prints a single line;
// higher levels add timing, geometry and spectral details.
func (t *Transmission) Print(w io.Writer, level int) {
	fmt.Fprintf(w, "Transmission %s from %s, packet %s, %s",
		t.id, t.transmitterName, t.packet.Name, t.mode.Name())

	if level < 1 {
		return
	}

	fmt.Fprintf(w, "\n  time: %.10f - %.10f s", t.startTime, t.endTime)
	fmt.Fprintf(w, "\n  preamble: %.10f s, header: %.10f s, data: %.10f s",
		t.preambleDuration, t.headerDuration, t.dataDuration)
	fmt.Fprintf(w, "\n  modulation: %s, bitrate: %s", t.modulation, t.bitrate)
	fmt.Fprintf(w, "\n  header: %d b, data: %d b", t.headerLength, t.dataLength)
	fmt.Fprintf(w, "\n  channel: %s %d, center: %s, bandwidth: %s",
		t.channel.BandName(), t.channel.Number(),
		t.centerFrequency, t.bandwidth)
	fmt.Fprintf(w, "\n  power: %s", t.power)

	if level < 2 {
		return
	}

	fmt.Fprintf(w, "\n  start: %s", t.startSnapshot)
	fmt.Fprintf(w, "\n  end: %s", t.endSnapshot)
	fmt.Fprintf(w, "\n  power function: %s", t.powerFunction.Domain())
}
