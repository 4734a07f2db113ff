// Package unit defines the physical quantities used by the radio model.
package unit

import (
	"math"
	"strconv"
)

// Power is a power in watts.
type Power float64

// Defines common power units.
const (
	W  Power = 1
	MW Power = 1e-3
)

// FromDBm converts a dBm value into a power.
func FromDBm(dBm float64) Power {
	return Power(math.Pow(10, dBm/10) * 1e-3)
}

// DBm returns the power in dBm. A zero power maps to negative infinity.
func (p Power) DBm() float64 {
	return 10 * math.Log10(float64(p)*1e3)
}

// String formats the power in watts.
func (p Power) String() string {
	return strconv.FormatFloat(float64(p), 'g', 10, 64) + " W"
}

// PowerDensity is a power spectral density in watts per hertz.
type PowerDensity float64

// String formats the density in W/Hz.
func (d PowerDensity) String() string {
	return strconv.FormatFloat(float64(d), 'g', 10, 64) + " W/Hz"
}

// Bit is a length in bits.
type Bit int64

// Byte is a length in bytes.
type Byte int64

// Bits converts the byte count into bits.
func (b Byte) Bits() Bit {
	return Bit(b * 8)
}

// Bitrate is a rate in bits per second.
type Bitrate float64

// Defines the units of bit rates.
const (
	Bps  Bitrate = 1
	Kbps Bitrate = 1e3
	Mbps Bitrate = 1e6
	Gbps Bitrate = 1e9
)

// String formats the bit rate with the largest unit that keeps the value at
// or above 1.
func (r Bitrate) String() string {
	switch {
	case r >= Gbps:
		return formatFloat(float64(r/Gbps)) + " Gbps"
	case r >= Mbps:
		return formatFloat(float64(r/Mbps)) + " Mbps"
	case r >= Kbps:
		return formatFloat(float64(r/Kbps)) + " kbps"
	default:
		return formatFloat(float64(r)) + " bps"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
