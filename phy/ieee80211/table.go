package ieee80211

import (
	"strconv"
	"strings"

	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/packet"
)

const tableComponent = "ModeTable"

// Table resolves the mode and the channel requested by packet headers.
type Table struct {
	modeSet        *ModeSet
	bands          map[string]*Band
	defaultMode    string
	defaultChannel string
}

// TableBuilder creates tables.
type TableBuilder struct {
	modeSet        *ModeSet
	bands          []*Band
	defaultMode    string
	defaultChannel string
}

// MakeTableBuilder creates a TableBuilder with the 802.11a modes, both
// bands, 54 Mbps and channel 1 of the 2.4 GHz band as defaults.
func MakeTableBuilder() TableBuilder {
	return TableBuilder{
		modeSet:        ModeSetA,
		bands:          []*Band{Band24GHz, Band5GHz},
		defaultMode:    "54Mbps",
		defaultChannel: "2.4GHz:1",
	}
}

// WithModeSet sets the modes that can be requested.
func (b TableBuilder) WithModeSet(s *ModeSet) TableBuilder {
	b.modeSet = s
	return b
}

// WithBands sets the bands whose channels can be requested.
func (b TableBuilder) WithBands(bands ...*Band) TableBuilder {
	b.bands = bands
	return b
}

// WithDefaultMode sets the mode used when a header does not request one.
func (b TableBuilder) WithDefaultMode(name string) TableBuilder {
	b.defaultMode = name
	return b
}

// WithDefaultChannel sets the channel used when a header does not request
// one.
func (b TableBuilder) WithDefaultChannel(key string) TableBuilder {
	b.defaultChannel = key
	return b
}

// Build creates the table.
func (b TableBuilder) Build() *Table {
	t := &Table{
		modeSet:        b.modeSet,
		bands:          make(map[string]*Band),
		defaultMode:    b.defaultMode,
		defaultChannel: b.defaultChannel,
	}

	for _, band := range b.bands {
		t.bands[band.name] = band
	}

	return t
}

// ModeSet returns the modes of the table.
func (t *Table) ModeSet() *ModeSet {
	return t.modeSet
}

// ResolveMode returns the mode requested by the header.
func (t *Table) ResolveMode(h packet.PhyHeader) (phy.TransmissionMode, error) {
	key := h.ModeKey
	if key == "" {
		key = t.defaultMode
	}

	if key == "" {
		return nil, phy.NewConfigurationError(tableComponent,
			"no mode requested and no default mode")
	}

	mode, found := t.modeSet.Mode(key)
	if !found {
		return nil, phy.NewConfigurationError(tableComponent,
			"mode %q is not defined in mode set %s", key, t.modeSet.Name())
	}

	return mode, nil
}

// ResolveChannel returns the channel requested by the header. Channel keys
// have the form "<band>:<number>", for example "5GHz:36".
func (t *Table) ResolveChannel(
	h packet.PhyHeader,
) (phy.TransmissionChannel, error) {
	key := h.ChannelKey
	if key == "" {
		key = t.defaultChannel
	}

	bandName, numberStr, found := strings.Cut(key, ":")
	if !found {
		return nil, phy.NewConfigurationError(tableComponent,
			"channel key %q is not <band>:<number>", key)
	}

	band, found := t.bands[bandName]
	if !found {
		return nil, phy.NewConfigurationError(tableComponent,
			"band %q is not defined", bandName)
	}

	number, err := strconv.Atoi(numberStr)
	if err != nil {
		return nil, phy.NewConfigurationError(tableComponent,
			"channel number %q is not an integer", numberStr)
	}

	channel, err := band.Channel(number)
	if err != nil {
		return nil, phy.NewConfigurationError(tableComponent, "%s", err)
	}

	return channel, nil
}
