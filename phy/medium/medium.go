// Package medium connects radios through a shared radio medium. It drives the
// physical layer models from simulation events.
package medium

import (
	"fmt"
	"log"
	"reflect"

	"github.com/sarchlab/radiosim/phy/analog"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/propagation"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// HookPosTransmissionCreated marks that a transmission is put on the medium.
// The item is the *signal.Transmission.
var HookPosTransmissionCreated = &sim.HookPos{Name: "TransmissionCreated"}

// HookPosReceptionComputed marks that a reception has been computed. The item
// is the signal.Reception.
var HookPosReceptionComputed = &sim.HookPos{Name: "ReceptionComputed"}

// HookPosTransmissionFailed marks that a packet could not be transmitted. The
// item is the *packet.Packet and the detail is the error.
var HookPosTransmissionFailed = &sim.HookPos{Name: "TransmissionFailed"}

// receptionEvent is scheduled at the arrival of a transmission at a radio.
type receptionEvent struct {
	*sim.EventBase

	transmission *signal.Transmission
	receiver     *Radio
	state        analog.ReceiverState
}

// Medium delivers transmissions to all the radios attached to it.
type Medium struct {
	*sim.ComponentBase

	engine      sim.Engine
	propagation propagation.Propagation
	pathLoss    propagation.PathLoss
	analogModel analog.Model
	radios      []*Radio

	numTransmissions uint64
	numReceptions    uint64
}

// Radios returns the radios attached to the medium.
func (m *Medium) Radios() []*Radio {
	m.Lock()
	defer m.Unlock()

	return append([]*Radio(nil), m.radios...)
}

// NumTransmissions returns the number of transmissions put on the medium.
func (m *Medium) NumTransmissions() uint64 {
	m.Lock()
	defer m.Unlock()

	return m.numTransmissions
}

// NumReceptions returns the number of receptions computed.
func (m *Medium) NumReceptions() uint64 {
	m.Lock()
	defer m.Unlock()

	return m.numReceptions
}

func (m *Medium) addRadio(r *Radio) {
	m.Lock()
	defer m.Unlock()

	m.radios = append(m.radios, r)
}

// Transmit creates the transmission of a packet by a radio and schedules its
// arrival at every other radio.
func (m *Medium) Transmit(
	radio *Radio,
	p *packet.Packet,
	now sim.VTimeInSec,
) (*signal.Transmission, error) {
	tx, err := radio.transmitter.CreateTransmission(radio, p, now)
	if err != nil {
		m.InvokeHook(sim.HookCtx{
			Domain: m,
			Pos:    HookPosTransmissionFailed,
			Item:   p,
			Detail: err,
		})

		return nil, fmt.Errorf("radio %s: %w", radio.Name(), err)
	}

	m.InvokeHook(sim.HookCtx{
		Domain: m,
		Pos:    HookPosTransmissionCreated,
		Item:   tx,
	})

	m.Lock()
	m.numTransmissions++
	receivers := append([]*Radio(nil), m.radios...)
	m.Unlock()

	for _, r := range receivers {
		if r == radio {
			continue
		}

		m.scheduleReception(tx, r)
	}

	return tx, nil
}

func (m *Medium) scheduleReception(tx *signal.Transmission, r *Radio) {
	arrival := m.propagation.ComputeArrival(tx, r.antenna.Mobility())
	distance := tx.StartSnapshot().Position.Distance(
		arrival.StartSnapshot.Position)

	evt := &receptionEvent{
		EventBase:    sim.NewEventBase(arrival.StartTime, m),
		transmission: tx,
		receiver:     r,
		state: analog.ReceiverState{
			RadioName:   r.Name(),
			Arrival:     arrival,
			Attenuation: m.pathLoss.Attenuation(tx, distance),
		},
	}

	m.engine.Schedule(evt)
}

// Handle computes the receptions whose arrival has started.
func (m *Medium) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *receptionEvent:
		return m.handleReception(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

func (m *Medium) handleReception(e *receptionEvent) error {
	reception, err := m.analogModel.ComputeReception(e.transmission, e.state)
	if err != nil {
		return fmt.Errorf("reception of transmission %s at %s: %w",
			e.transmission.ID(), e.receiver.Name(), err)
	}

	m.Lock()
	m.numReceptions++
	m.Unlock()

	m.InvokeHook(sim.HookCtx{
		Domain: m,
		Pos:    HookPosReceptionComputed,
		Item:   reception,
	})

	m.engine.Schedule(&receptionEndEvent{
		EventBase: sim.NewEventBase(reception.EndTime(), e.receiver),
		reception: reception,
	})

	return nil
}

// Builder can build media.
type Builder struct {
	engine      sim.Engine
	propagation propagation.Propagation
	pathLoss    propagation.PathLoss
	analogModel analog.Model
}

// MakeBuilder creates a builder with light speed propagation, free space path
// loss and the scalar analog model.
func MakeBuilder() Builder {
	return Builder{
		propagation: propagation.ConstantSpeed{
			Speed: propagation.SpeedOfLight,
		},
		pathLoss:    propagation.FreeSpace{Alpha: 2, SystemLoss: 1},
		analogModel: analog.ScalarModel{},
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(e sim.Engine) Builder {
	b.engine = e
	return b
}

// WithPropagation sets how arrivals are computed.
func (b Builder) WithPropagation(p propagation.Propagation) Builder {
	b.propagation = p
	return b
}

// WithPathLoss sets how attenuations are computed.
func (b Builder) WithPathLoss(p propagation.PathLoss) Builder {
	b.pathLoss = p
	return b
}

// WithAnalogModel sets how receptions are computed.
func (b Builder) WithAnalogModel(m analog.Model) Builder {
	b.analogModel = m
	return b
}

// Build creates a medium.
func (b Builder) Build(name string) *Medium {
	if b.engine == nil {
		log.Panic("medium needs an engine")
	}

	return &Medium{
		ComponentBase: sim.NewComponentBase(name),
		engine:        b.engine,
		propagation:   b.propagation,
		pathLoss:      b.pathLoss,
		analogModel:   b.analogModel,
	}
}
