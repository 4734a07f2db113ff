package sim

import (
	"log"
	"strconv"
)

// Freq defines the type of frequency. Radio models also use it for center
// frequencies and bandwidths.
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// String formats the frequency with the largest unit that keeps the value at
// or above 1, for example "2.412 GHz" or "20 MHz".
func (f Freq) String() string {
	units := []struct {
		scale Freq
		name  string
	}{
		{GHz, "GHz"},
		{MHz, "MHz"},
		{KHz, "kHz"},
	}

	for _, u := range units {
		if f >= u.scale || f <= -u.scale {
			return formatFloat(float64(f/u.scale)) + " " + u.name
		}
	}

	return formatFloat(float64(f)) + " Hz"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
