// Package tracing provides hooks that observe the radio medium.
package tracing

import (
	"sync"

	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
	"github.com/tebeka/atexit"
)

// Table names used by the DBTracer.
const (
	TransmissionTable = "transmissions"
	ReceptionTable    = "receptions"
	FailureTable      = "failures"
)

// TransmissionEntry is a row of the transmission table.
type TransmissionEntry struct {
	ID               string
	Transmitter      string
	PacketID         string
	PacketName       string
	Mode             string
	Channel          string
	StartTime        float64
	EndTime          float64
	PreambleDuration float64
	HeaderDuration   float64
	DataDuration     float64
	CenterFrequency  float64
	Bandwidth        float64
	PowerW           float64
	StartX           float64
	StartY           float64
	StartZ           float64
}

// ReceptionEntry is a row of the reception table.
type ReceptionEntry struct {
	TransmissionID string
	Receiver       string
	StartTime      float64
	EndTime        float64
	MinPowerW      float64
	Distance       float64
}

// FailureEntry is a row of the failure table.
type FailureEntry struct {
	PacketID   string
	PacketName string
	Time       float64
	Reason     string
}

// MapTables maps the tables written by a DBTracer to their entry types.
func MapTables(r datarecording.DataReader) {
	r.MapTable(TransmissionTable, TransmissionEntry{})
	r.MapTable(ReceptionTable, ReceptionEntry{})
	r.MapTable(FailureTable, FailureEntry{})
}

// DBTracer is a hook that stores the transmissions, receptions, and failed
// packets of a medium into a DataRecorder.
type DBTracer struct {
	mu         sync.Mutex
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder

	startTime, endTime sim.VTimeInSec
	terminated         bool
}

// NewDBTracer creates a new DBTracer and creates its tables.
func NewDBTracer(
	timeTeller sim.TimeTeller,
	dataRecorder datarecording.DataRecorder,
) *DBTracer {
	dataRecorder.CreateTable(TransmissionTable, TransmissionEntry{})
	dataRecorder.CreateTable(ReceptionTable, ReceptionEntry{})
	dataRecorder.CreateTable(FailureTable, FailureEntry{})

	t := &DBTracer{
		timeTeller: timeTeller,
		backend:    dataRecorder,
	}

	atexit.Register(func() {
		t.Terminate()
	})

	return t
}

// SetTimeRange limits the records to the ones that start within
// [startTime, endTime]. A zero bound is not checked.
func (t *DBTracer) SetTimeRange(startTime, endTime sim.VTimeInSec) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startTime = startTime
	t.endTime = endTime
}

func (t *DBTracer) inRange(time sim.VTimeInSec) bool {
	if t.startTime > 0 && time < t.startTime {
		return false
	}

	if t.endTime > 0 && time > t.endTime {
		return false
	}

	return true
}

// Func records the item carried by the hook context.
func (t *DBTracer) Func(ctx sim.HookCtx) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	switch ctx.Pos {
	case medium.HookPosTransmissionCreated:
		t.recordTransmission(ctx.Item.(*signal.Transmission))
	case medium.HookPosReceptionComputed:
		t.recordReception(ctx.Item.(signal.Reception))
	case medium.HookPosTransmissionFailed:
		t.recordFailure(ctx.Item.(*packet.Packet), ctx.Detail)
	}
}

func (t *DBTracer) recordTransmission(tx *signal.Transmission) {
	if !t.inRange(tx.StartTime()) {
		return
	}

	pos := tx.StartSnapshot().Position
	p := tx.Packet()

	t.backend.InsertData(TransmissionTable, TransmissionEntry{
		ID:               tx.ID(),
		Transmitter:      tx.TransmitterName(),
		PacketID:         p.ID,
		PacketName:       p.Name,
		Mode:             tx.Mode().Name(),
		Channel:          channelName(tx),
		StartTime:        float64(tx.StartTime()),
		EndTime:          float64(tx.EndTime()),
		PreambleDuration: float64(tx.PreambleDuration()),
		HeaderDuration:   float64(tx.HeaderDuration()),
		DataDuration:     float64(tx.DataDuration()),
		CenterFrequency:  float64(tx.CenterFrequency()),
		Bandwidth:        float64(tx.Bandwidth()),
		PowerW:           float64(tx.Power()),
		StartX:           pos.X,
		StartY:           pos.Y,
		StartZ:           pos.Z,
	})
}

func channelName(tx *signal.Transmission) string {
	if s, ok := tx.Channel().(interface{ Key() string }); ok {
		return s.Key()
	}

	return tx.Channel().BandName()
}

func (t *DBTracer) recordReception(r signal.Reception) {
	if !t.inRange(r.StartTime()) {
		return
	}

	tx := r.Transmission()

	t.backend.InsertData(ReceptionTable, ReceptionEntry{
		TransmissionID: tx.ID(),
		Receiver:       r.RadioName(),
		StartTime:      float64(r.StartTime()),
		EndTime:        float64(r.EndTime()),
		MinPowerW:      float64(r.MinPower(r.StartTime(), r.EndTime())),
		Distance: tx.StartSnapshot().Position.Distance(
			r.StartSnapshot().Position),
	})
}

func (t *DBTracer) recordFailure(p *packet.Packet, detail any) {
	now := t.timeTeller.CurrentTime()
	if !t.inRange(now) {
		return
	}

	reason := ""
	if err, ok := detail.(error); ok {
		reason = err.Error()
	}

	t.backend.InsertData(FailureTable, FailureEntry{
		PacketID:   p.ID,
		PacketName: p.Name,
		Time:       float64(now),
		Reason:     reason,
	})
}

// Terminate flushes the recorded entries. Later hook invocations are ignored.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.terminated = true
	t.backend.Flush()
}
