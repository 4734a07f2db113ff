package ieee80211

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/radiosim/sim"
)

// A Band is a frequency band divided into numbered channels.
type Band struct {
	name    string
	base    sim.Freq
	spacing sim.Freq
	first   int
	last    int
	special map[int]sim.Freq
}

var (
	// Band24GHz is the 2.4 GHz band, channels 1 to 14.
	Band24GHz = &Band{
		name:    "2.4GHz",
		base:    2407 * sim.MHz,
		spacing: 5 * sim.MHz,
		first:   1,
		last:    14,
		special: map[int]sim.Freq{14: 2484 * sim.MHz},
	}

	// Band5GHz is the 5 GHz band. Channel n is centered at 5000 + 5n MHz.
	Band5GHz = &Band{
		name:    "5GHz",
		base:    5000 * sim.MHz,
		spacing: 5 * sim.MHz,
		first:   1,
		last:    200,
	}
)

// BandByName finds a built-in band.
func BandByName(name string) (*Band, bool) {
	for _, b := range []*Band{Band24GHz, Band5GHz} {
		if b.name == name {
			return b, true
		}
	}

	return nil, false
}

// Name returns the name of the band.
func (b *Band) Name() string {
	return b.name
}

// Channel returns the channel with the given number.
func (b *Band) Channel(number int) (Channel, error) {
	if number < b.first || number > b.last {
		return Channel{}, fmt.Errorf("channel %d is not in band %s (%d-%d)",
			number, b.name, b.first, b.last)
	}

	center, ok := b.special[number]
	if !ok {
		center = b.base + sim.Freq(number)*b.spacing
	}

	return Channel{
		band:   b.name,
		number: number,
		center: center,
	}, nil
}

// Channel is a numbered channel in a band.
type Channel struct {
	band   string
	number int
	center sim.Freq
}

func (c Channel) BandName() string { return c.band }
func (c Channel) Number() int { return c.number }
func (c Channel) CenterFrequency() sim.Freq { return c.center }

// Key returns the key that selects the channel in a packet header.
func (c Channel) Key() string {
	return c.band + ":" + strconv.Itoa(c.number)
}

func (c Channel) String() string {
	return fmt.Sprintf("%s (%s)", c.Key(), c.center)
}
