package medium

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/queueing/classifier"
	"github.com/sarchlab/radiosim/sim"
)

// ErrQueueFull is returned when a packet is sent to a full queue.
var ErrQueueFull = errors.New("queue full")

// A Listener is notified when a radio has received a transmission entirely.
type Listener interface {
	ReceptionCompleted(r signal.Reception, now sim.VTimeInSec)
}

type transmitEvent struct {
	*sim.EventBase
}

type transmissionEndEvent struct {
	*sim.EventBase

	transmission *signal.Transmission
}

type receptionEndEvent struct {
	*sim.EventBase

	reception signal.Reception
}

// Radio transmits packets on a medium, one at a time, and receives the
// transmissions of the other radios. Outgoing packets wait in queues; a lower
// queue index means a higher priority.
type Radio struct {
	*sim.ComponentBase

	engine      sim.Engine
	medium      *Medium
	antenna     antenna.Antenna
	transmitter *ieee80211.Transmitter
	classifier  classifier.Classifier
	queues      []sim.Buffer
	listener    Listener

	transmitting  *signal.Transmission
	kickScheduled bool
	numSent       uint64
	numReceived   uint64
}

// Antenna returns the antenna of the radio.
func (r *Radio) Antenna() antenna.Antenna {
	return r.antenna
}

// Transmitter returns the transmitter of the radio.
func (r *Radio) Transmitter() *ieee80211.Transmitter {
	return r.transmitter
}

// Queues returns the outgoing queues.
func (r *Radio) Queues() []sim.Buffer {
	return r.queues
}

// NumSent returns the number of completed transmissions.
func (r *Radio) NumSent() uint64 {
	r.Lock()
	defer r.Unlock()

	return r.numSent
}

// NumReceived returns the number of completed receptions.
func (r *Radio) NumReceived() uint64 {
	r.Lock()
	defer r.Unlock()

	return r.numReceived
}

// SetListener changes who is notified of completed receptions.
func (r *Radio) SetListener(l Listener) {
	r.listener = l
}

// Send queues a packet for transmission.
func (r *Radio) Send(p *packet.Packet, now sim.VTimeInSec) error {
	index := 0
	if r.classifier != nil {
		var err error

		index, err = r.classifier.Classify(p)
		if err != nil {
			return fmt.Errorf("radio %s: %w", r.Name(), err)
		}
	}

	if index >= len(r.queues) {
		return fmt.Errorf("radio %s: queue %d does not exist", r.Name(), index)
	}

	r.Lock()
	defer r.Unlock()

	q := r.queues[index]
	if !q.CanPush() {
		return fmt.Errorf("radio %s, queue %d: %w", r.Name(), index, ErrQueueFull)
	}

	q.Push(p)

	if r.transmitting == nil {
		r.kickLocked(now)
	}

	return nil
}

// kickLocked schedules a transmitEvent unless one is pending. The caller
// holds the lock.
func (r *Radio) kickLocked(now sim.VTimeInSec) {
	if r.kickScheduled {
		return
	}

	r.kickScheduled = true
	r.engine.Schedule(&transmitEvent{
		EventBase: sim.NewEventBase(now, r),
	})
}

func (r *Radio) hasQueuedLocked() bool {
	for _, q := range r.queues {
		if q.Size() > 0 {
			return true
		}
	}

	return false
}

// Handle starts and finishes transmissions and receptions.
func (r *Radio) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *transmitEvent:
		return r.handleTransmit(e)
	case *transmissionEndEvent:
		return r.handleTransmissionEnd(e)
	case *receptionEndEvent:
		r.handleReceptionEnd(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

func (r *Radio) handleTransmit(e *transmitEvent) error {
	r.Lock()
	r.kickScheduled = false
	r.Unlock()

	return r.startNext(e.Time())
}

func (r *Radio) handleTransmissionEnd(e *transmissionEndEvent) error {
	r.Lock()
	r.transmitting = nil
	r.numSent++
	r.Unlock()

	return r.startNext(e.Time())
}

func (r *Radio) handleReceptionEnd(e *receptionEndEvent) {
	r.Lock()
	r.numReceived++
	listener := r.listener
	r.Unlock()

	if listener != nil {
		listener.ReceptionCompleted(e.reception, e.Time())
	}
}

func (r *Radio) dequeue() *packet.Packet {
	r.Lock()
	defer r.Unlock()

	for _, q := range r.queues {
		if q.Size() > 0 {
			return q.Pop().(*packet.Packet)
		}
	}

	return nil
}

func (r *Radio) startNext(now sim.VTimeInSec) error {
	p := r.dequeue()
	if p == nil {
		return nil
	}

	tx, err := r.medium.Transmit(r, p, now)
	if err != nil {
		// The failed packet is dropped. The rest of the queue goes out once
		// the engine runs again.
		r.Lock()
		if r.hasQueuedLocked() {
			r.kickLocked(now)
		}
		r.Unlock()

		return err
	}

	r.Lock()
	r.transmitting = tx
	r.Unlock()

	r.engine.Schedule(&transmissionEndEvent{
		EventBase:    sim.NewEventBase(tx.EndTime(), r),
		transmission: tx,
	})

	return nil
}

// RadioBuilder can build radios.
type RadioBuilder struct {
	engine        sim.Engine
	medium        *Medium
	antenna       antenna.Antenna
	transmitter   *ieee80211.Transmitter
	classifier    classifier.Classifier
	numQueues     int
	queueCapacity int
	listener      Listener
}

// MakeRadioBuilder creates a RadioBuilder with a single queue of 64 packets.
func MakeRadioBuilder() RadioBuilder {
	return RadioBuilder{
		numQueues:     1,
		queueCapacity: 64,
	}
}

// WithEngine sets the engine.
func (b RadioBuilder) WithEngine(e sim.Engine) RadioBuilder {
	b.engine = e
	return b
}

// WithMedium sets the medium the radio is attached to.
func (b RadioBuilder) WithMedium(m *Medium) RadioBuilder {
	b.medium = m
	return b
}

// WithAntenna sets the antenna.
func (b RadioBuilder) WithAntenna(a antenna.Antenna) RadioBuilder {
	b.antenna = a
	return b
}

// WithTransmitter sets the transmitter.
func (b RadioBuilder) WithTransmitter(t *ieee80211.Transmitter) RadioBuilder {
	b.transmitter = t
	return b
}

// WithClassifier sets how packets are assigned to queues.
func (b RadioBuilder) WithClassifier(c classifier.Classifier) RadioBuilder {
	b.classifier = c
	return b
}

// WithNumQueues sets the number of outgoing queues.
func (b RadioBuilder) WithNumQueues(n int) RadioBuilder {
	b.numQueues = n
	return b
}

// WithQueueCapacity sets the number of packets each queue can hold.
func (b RadioBuilder) WithQueueCapacity(n int) RadioBuilder {
	b.queueCapacity = n
	return b
}

// WithListener sets who is notified of completed receptions.
func (b RadioBuilder) WithListener(l Listener) RadioBuilder {
	b.listener = l
	return b
}

// Build creates a radio and attaches it to the medium.
func (b RadioBuilder) Build(name string) *Radio {
	if b.engine == nil || b.medium == nil {
		log.Panic("radio needs an engine and a medium")
	}

	if b.antenna == nil || b.transmitter == nil {
		log.Panic("radio needs an antenna and a transmitter")
	}

	if b.numQueues < 1 {
		log.Panicf("radio needs at least one queue, got %d", b.numQueues)
	}

	r := &Radio{
		ComponentBase: sim.NewComponentBase(name),
		engine:        b.engine,
		medium:        b.medium,
		antenna:       b.antenna,
		transmitter:   b.transmitter,
		classifier:    b.classifier,
		listener:      b.listener,
	}

	for i := 0; i < b.numQueues; i++ {
		r.queues = append(r.queues, sim.NewBuffer(
			sim.BuildNameWithIndex(name, "Queue", i), b.queueCapacity))
	}

	b.medium.addRadio(r)

	return r
}
