// Package ieee80211 implements the IEEE 802.11 OFDM and HT transmission
// modes, channels, and the transmitter that turns packets into
// transmissions.
package ieee80211

import (
	"math"
	"strconv"

	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/sim"
)

const microsecond sim.VTimeInSec = 1e-6

const (
	serviceBits unit.Bit = 16
	tailBits    unit.Bit = 6
	signalBits  unit.Bit = 24
)

// Mode is an 802.11 OFDM or HT transmission mode. The data field is the
// SERVICE field, the payload and the tail bits, padded to a whole number of
// OFDM symbols.
type Mode struct {
	name              string
	modulation        string
	bandwidth         sim.Freq
	spatialStreams    int
	dataBitsPerSymbol unit.Bit
	symbolDuration    sim.VTimeInSec
	preambleDuration  sim.VTimeInSec
	headerDuration    sim.VTimeInSec
}

func (m *Mode) Name() string { return m.name }
func (m *Mode) Modulation() string { return m.modulation }
func (m *Mode) Bandwidth() sim.Freq { return m.bandwidth }
func (m *Mode) NumberOfSpatialStreams() int { return m.spatialStreams }

// NetBitrate returns the data bits per second carried by the data field.
func (m *Mode) NetBitrate() unit.Bitrate {
	return unit.Bitrate(float64(m.dataBitsPerSymbol) /
		float64(m.symbolDuration))
}

// PreambleDuration returns the duration of the training fields.
func (m *Mode) PreambleDuration() sim.VTimeInSec {
	return m.preambleDuration
}

// HeaderLength returns the length of the SIGNAL field.
func (m *Mode) HeaderLength() unit.Bit {
	return signalBits
}

// HeaderDuration returns the duration of the SIGNAL field.
func (m *Mode) HeaderDuration() sim.VTimeInSec {
	return m.headerDuration
}

func (m *Mode) numDataSymbols(payload unit.Byte) int64 {
	bits := serviceBits + payload.Bits() + tailBits

	return int64(math.Ceil(float64(bits) / float64(m.dataBitsPerSymbol)))
}

// DataLength returns the length of the padded data field.
func (m *Mode) DataLength(payload unit.Byte) unit.Bit {
	return unit.Bit(m.numDataSymbols(payload)) * m.dataBitsPerSymbol
}

// DataDuration returns the duration of the data field.
func (m *Mode) DataDuration(payload unit.Byte) sim.VTimeInSec {
	return sim.VTimeInSec(m.numDataSymbols(payload)) * m.symbolDuration
}

// Duration returns the total on-air time of a frame.
func (m *Mode) Duration(payload unit.Byte) sim.VTimeInSec {
	return m.preambleDuration + m.headerDuration + m.DataDuration(payload)
}

type ofdmRate struct {
	modulation        string
	dataBitsPerSymbol unit.Bit
}

// The data bits per symbol of the 802.11a rates, from 6 to 54 Mbps at
// 20 MHz.
var ofdmRates = []ofdmRate{
	{"BPSK 1/2", 24},
	{"BPSK 3/4", 36},
	{"QPSK 1/2", 48},
	{"QPSK 3/4", 72},
	{"16-QAM 1/2", 96},
	{"16-QAM 3/4", 144},
	{"64-QAM 2/3", 192},
	{"64-QAM 3/4", 216},
}

// The data bits per symbol of HT MCS 0 to 7 with one stream at 20 MHz.
var htRates = []ofdmRate{
	{"BPSK 1/2", 26},
	{"QPSK 1/2", 52},
	{"QPSK 3/4", 78},
	{"16-QAM 1/2", 104},
	{"16-QAM 3/4", 156},
	{"64-QAM 2/3", 208},
	{"64-QAM 3/4", 234},
	{"64-QAM 5/6", 260},
}

func bitrateName(r unit.Bitrate) string {
	return strconv.FormatFloat(float64(r/unit.Mbps), 'g', 10, 64) + "Mbps"
}

// ofdmModes creates the 802.11a modes. The channel width is 20 MHz divided
// by clockDivider, which stretches every symbol by the same factor.
func ofdmModes(clockDivider int) []*Mode {
	symbol := 4 * microsecond * sim.VTimeInSec(clockDivider)
	modes := make([]*Mode, 0, len(ofdmRates))

	for _, r := range ofdmRates {
		m := &Mode{
			modulation:        r.modulation,
			bandwidth:         20 * sim.MHz / sim.Freq(clockDivider),
			spatialStreams:    1,
			dataBitsPerSymbol: r.dataBitsPerSymbol,
			symbolDuration:    symbol,
			preambleDuration:  4 * symbol,
			headerDuration:    symbol,
		}
		m.name = bitrateName(m.NetBitrate())
		modes = append(modes, m)
	}

	return modes
}

// htModes creates the HT mixed format modes MCS 0 to 15 with a long guard
// interval at 20 MHz.
func htModes() []*Mode {
	symbol := 4 * microsecond
	modes := make([]*Mode, 0, 2*len(htRates))

	for streams := 1; streams <= 2; streams++ {
		for i, r := range htRates {
			mcs := (streams-1)*len(htRates) + i
			modes = append(modes, &Mode{
				name:              "MCS" + strconv.Itoa(mcs),
				modulation:        r.modulation,
				bandwidth:         20 * sim.MHz,
				spatialStreams:    streams,
				dataBitsPerSymbol: r.dataBitsPerSymbol * unit.Bit(streams),
				symbolDuration:    symbol,
				// L-STF, L-LTF, HT-SIG, HT-STF and one HT-LTF per stream.
				preambleDuration: 16*microsecond + 8*microsecond +
					4*microsecond + 4*microsecond*sim.VTimeInSec(streams),
				headerDuration: symbol,
			})
		}
	}

	return modes
}
