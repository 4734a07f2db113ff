package ieee80211

import (
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/unit"
)

// Builder can build transmitters.
type Builder struct {
	table         *Table
	power         unit.Power
	powerFunction function.Builder
}

// MakeBuilder creates a builder with the default table, a 20 dBm power and a
// flat power function.
func MakeBuilder() Builder {
	return Builder{
		table:         MakeTableBuilder().Build(),
		power:         unit.FromDBm(20),
		powerFunction: function.FlatBuilder{},
	}
}

// WithTable sets the mode and channel table.
func (b Builder) WithTable(t *Table) Builder {
	b.table = t
	return b
}

// WithPower sets the default transmission power.
func (b Builder) WithPower(p unit.Power) Builder {
	b.power = p
	return b
}

// WithFlatRepresentation makes the transmitter build power functions that
// are constant over time and band.
func (b Builder) WithFlatRepresentation() Builder {
	b.powerFunction = function.FlatBuilder{}
	return b
}

// WithShapedRepresentation makes the transmitter build power functions with
// a power ramp in time and empty guard subcarriers in frequency.
func (b Builder) WithShapedRepresentation() Builder {
	b.powerFunction = function.NewShapedBuilder(
		function.RampProfile, function.OFDMSubcarrierProfile)
	return b
}

// WithPowerFunctionBuilder sets a custom power function builder.
func (b Builder) WithPowerFunctionBuilder(fb function.Builder) Builder {
	b.powerFunction = fb
	return b
}

// Build creates a transmitter.
func (b Builder) Build(name string) *Transmitter {
	return &Transmitter{
		name:          name,
		table:         b.table,
		powerFunction: b.powerFunction,
		power:         b.power,
	}
}
