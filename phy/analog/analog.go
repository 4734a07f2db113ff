// Package analog turns transmissions into receptions.
package analog

import (
	"math"

	"github.com/sarchlab/radiosim/phy"
	"github.com/sarchlab/radiosim/phy/function"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/phy/unit"
)

// ReceiverState is what a reception model knows about the receiver.
type ReceiverState struct {
	RadioName string
	Arrival   signal.Arrival

	// Attenuation is the linear power gain of the path, between 0 and 1.
	Attenuation float64

	// Response is an optional channel response over time and frequency. It
	// is only used by the dimensional model.
	Response function.Function
}

// A Model computes the reception of a transmission at a receiver.
type Model interface {
	ComputeReception(
		tx *signal.Transmission,
		rx ReceiverState,
	) (signal.Reception, error)
}

func attenuationMustBeValid(model string, rx ReceiverState) error {
	a := rx.Attenuation
	if math.IsNaN(a) || a < 0 || a > 1 {
		return phy.NewConfigurationError(model,
			"attenuation %g towards %s is not within [0, 1]",
			a, rx.RadioName)
	}

	return nil
}

// ScalarModel receives a single power: the transmitted power times the
// attenuation.
type ScalarModel struct{}

// ComputeReception returns a *signal.ScalarReception.
func (ScalarModel) ComputeReception(
	tx *signal.Transmission,
	rx ReceiverState,
) (signal.Reception, error) {
	err := attenuationMustBeValid("ScalarModel", rx)
	if err != nil {
		return nil, err
	}

	power := tx.Power()
	if rx.Attenuation != 1 {
		power = unit.Power(float64(power) * rx.Attenuation)
	}

	return signal.NewScalarReception(rx.RadioName, tx, rx.Arrival, power), nil
}

// DimensionalModel receives the transmitted power function, shaped by the
// channel response, attenuated, and moved onto the arrival window.
type DimensionalModel struct{}

// ComputeReception returns a *signal.DimensionalReception.
func (DimensionalModel) ComputeReception(
	tx *signal.Transmission,
	rx ReceiverState,
) (signal.Reception, error) {
	err := attenuationMustBeValid("DimensionalModel", rx)
	if err != nil {
		return nil, err
	}

	fn := tx.PowerFunction()

	if rx.Response != nil {
		fn = function.Product(fn, rx.Response)
	}

	if rx.Attenuation != 1 {
		fn = function.Scale(fn, rx.Attenuation)
	}

	// A moving receiver can see a longer or shorter transmission, so the
	// function is stretched onto the arrival window rather than shifted.
	if rx.Arrival.StartTime != tx.StartTime() ||
		rx.Arrival.EndTime != tx.EndTime() {
		fn = function.Warp(fn, tx.StartTime(), tx.EndTime(),
			rx.Arrival.StartTime, rx.Arrival.EndTime)
	}

	return signal.NewDimensionalReception(rx.RadioName, tx, rx.Arrival, fn),
		nil
}
