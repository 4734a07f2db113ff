// Package antenna describes the antennas radios transmit with.
package antenna

import (
	"log"

	"github.com/sarchlab/radiosim/phy/mobility"
)

// An Antenna tells how many antenna elements a radio has and where they are.
type Antenna interface {
	NumAntennas() int
	Mobility() mobility.Mobility
}

// Isotropic is a single element antenna radiating equally in all directions.
type Isotropic struct {
	mobility mobility.Mobility
}

// NewIsotropic creates an isotropic antenna moving with the given mobility.
func NewIsotropic(m mobility.Mobility) *Isotropic {
	return &Isotropic{mobility: m}
}

// NumAntennas always returns 1.
func (a *Isotropic) NumAntennas() int {
	return 1
}

// Mobility returns the mobility of the antenna.
func (a *Isotropic) Mobility() mobility.Mobility {
	return a.mobility
}

// Array is an antenna with multiple elements. It can carry as many spatial
// streams as it has elements.
type Array struct {
	mobility    mobility.Mobility
	numAntennas int
}

// NewArray creates an antenna array.
func NewArray(m mobility.Mobility, numAntennas int) *Array {
	if numAntennas < 1 {
		log.Panicf("antenna array needs at least one element, got %d",
			numAntennas)
	}

	return &Array{
		mobility:    m,
		numAntennas: numAntennas,
	}
}

// NumAntennas returns the number of elements.
func (a *Array) NumAntennas() int {
	return a.numAntennas
}

// Mobility returns the mobility of the antenna.
func (a *Array) Mobility() mobility.Mobility {
	return a.mobility
}
