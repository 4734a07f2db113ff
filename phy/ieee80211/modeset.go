package ieee80211

import (
	"log"

	"github.com/sarchlab/radiosim/phy"
)

// ModeSet is a named collection of modes, indexed by mode name.
type ModeSet struct {
	name  string
	modes []phy.TransmissionMode
	index map[string]phy.TransmissionMode
}

// NewModeSet creates a mode set. Mode names must be unique.
func NewModeSet(name string, modes ...phy.TransmissionMode) *ModeSet {
	s := &ModeSet{
		name:  name,
		index: make(map[string]phy.TransmissionMode),
	}

	for _, m := range modes {
		if _, found := s.index[m.Name()]; found {
			log.Panicf("mode %s is defined twice in mode set %s",
				m.Name(), name)
		}

		s.modes = append(s.modes, m)
		s.index[m.Name()] = m
	}

	return s
}

// Name returns the name of the set.
func (s *ModeSet) Name() string {
	return s.name
}

// Modes returns the modes in definition order.
func (s *ModeSet) Modes() []phy.TransmissionMode {
	modes := make([]phy.TransmissionMode, len(s.modes))
	copy(modes, s.modes)

	return modes
}

// Mode looks up a mode by name.
func (s *ModeSet) Mode(name string) (phy.TransmissionMode, bool) {
	m, found := s.index[name]
	return m, found
}

// With returns a new set holding the modes of s and the given modes.
func (s *ModeSet) With(name string, modes ...phy.TransmissionMode) *ModeSet {
	return NewModeSet(name, append(s.Modes(), modes...)...)
}

func toModes(modes []*Mode) []phy.TransmissionMode {
	r := make([]phy.TransmissionMode, len(modes))
	for i, m := range modes {
		r[i] = m
	}

	return r
}

var (
	// ModeSetA holds the 802.11a/g OFDM modes at 20 MHz, 6 to 54 Mbps.
	ModeSetA = NewModeSet("a", toModes(ofdmModes(1))...)

	// ModeSetAHalf holds the half clocked OFDM modes at 10 MHz.
	ModeSetAHalf = NewModeSet("a-10MHz", toModes(ofdmModes(2))...)

	// ModeSetAQuarter holds the quarter clocked OFDM modes at 5 MHz.
	ModeSetAQuarter = NewModeSet("a-5MHz", toModes(ofdmModes(4))...)

	// ModeSetHT holds the 802.11n HT modes MCS 0 to 15 at 20 MHz.
	ModeSetHT = NewModeSet("ht", toModes(htModes())...)
)

// ModeSetByName finds a built-in mode set.
func ModeSetByName(name string) (*ModeSet, bool) {
	for _, s := range []*ModeSet{
		ModeSetA, ModeSetAHalf, ModeSetAQuarter, ModeSetHT,
	} {
		if s.name == name {
			return s, true
		}
	}

	return nil, false
}
