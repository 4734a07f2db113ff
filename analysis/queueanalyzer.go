// Package analysis summarizes how the simulated components perform over time.
package analysis

import (
	"log"
	"math"
	"slices"

	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/sim"
)

// QueueLevelTable is the table the QueueAnalyzers write into.
const QueueLevelTable = "queue_levels"

// QueueLevelEntry is the average level of a queue over a period.
type QueueLevelEntry struct {
	Queue     string
	StartTime float64
	EndTime   float64
	AvgLevel  float64
	Capacity  int
}

// QueueAnalyzer records the time-weighted average level of a queue. With a
// period, it writes one entry per period. Without, it writes one entry for the
// whole simulation. Periods where the queue stays empty are not written.
type QueueAnalyzer struct {
	sim.TimeTeller

	recorder  datarecording.DataRecorder
	buf       sim.Buffer
	usePeriod bool
	period    sim.VTimeInSec

	periodStart sim.VTimeInSec
	lastTime    sim.VTimeInSec
	lastLevel   int
	levelTime   float64
	finished    bool
}

// Func records a change of the queue level.
func (a *QueueAnalyzer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosBufPush && ctx.Pos != sim.HookPosBufPop {
		return
	}

	a.advance(a.CurrentTime())
	a.lastLevel = a.buf.Size()
}

// Handle writes the last, possibly partial, period when the simulation ends.
func (a *QueueAnalyzer) Handle(now sim.VTimeInSec) {
	if a.finished {
		return
	}

	a.finished = true

	a.advance(now)

	if now > a.periodStart {
		a.write(a.periodStart, now)
	}
}

func (a *QueueAnalyzer) advance(now sim.VTimeInSec) {
	for a.usePeriod && now >= a.periodStart+a.period {
		end := a.periodStart + a.period
		a.levelTime += float64(a.lastLevel) * float64(end-a.lastTime)
		a.write(a.periodStart, end)

		a.periodStart = end
		a.lastTime = end
	}

	a.levelTime += float64(a.lastLevel) * float64(now-a.lastTime)
	a.lastTime = now
}

func (a *QueueAnalyzer) write(start, end sim.VTimeInSec) {
	avg := a.levelTime / float64(end-start)
	a.levelTime = 0

	if avg == 0 {
		return
	}

	a.recorder.InsertData(QueueLevelTable, QueueLevelEntry{
		Queue:     a.buf.Name(),
		StartTime: float64(start),
		EndTime:   float64(end),
		AvgLevel:  avg,
		Capacity:  a.buf.Capacity(),
	})
}

// QueueAnalyzerBuilder can build QueueAnalyzers.
type QueueAnalyzerBuilder struct {
	recorder   datarecording.DataRecorder
	timeTeller sim.TimeTeller
	period     sim.VTimeInSec
}

// MakeQueueAnalyzerBuilder creates a QueueAnalyzerBuilder.
func MakeQueueAnalyzerBuilder() QueueAnalyzerBuilder {
	return QueueAnalyzerBuilder{}
}

// WithDataRecorder sets where the entries are written.
func (b QueueAnalyzerBuilder) WithDataRecorder(
	r datarecording.DataRecorder,
) QueueAnalyzerBuilder {
	b.recorder = r
	return b
}

// WithTimeTeller sets the TimeTeller to use.
func (b QueueAnalyzerBuilder) WithTimeTeller(
	t sim.TimeTeller,
) QueueAnalyzerBuilder {
	b.timeTeller = t
	return b
}

// WithPeriod sets the length of the periods. Zero means a single period.
func (b QueueAnalyzerBuilder) WithPeriod(
	period sim.VTimeInSec,
) QueueAnalyzerBuilder {
	b.period = period
	return b
}

// Build creates a QueueAnalyzer and attaches it to the queue. The queue level
// table is created if it does not exist. The analyzer should be registered as
// a simulation end handler so that the last period is written.
func (b QueueAnalyzerBuilder) Build(buf sim.Buffer) *QueueAnalyzer {
	if b.recorder == nil {
		log.Panic("queue analyzer needs a data recorder")
	}

	if b.timeTeller == nil {
		log.Panic("queue analyzer needs a time teller")
	}

	if b.period < 0 || math.IsInf(float64(b.period), 0) {
		log.Panicf("invalid period %.10f", b.period)
	}

	if !slices.Contains(b.recorder.ListTables(), QueueLevelTable) {
		b.recorder.CreateTable(QueueLevelTable, QueueLevelEntry{})
	}

	a := &QueueAnalyzer{
		TimeTeller: b.timeTeller,
		recorder:   b.recorder,
		buf:        buf,
		usePeriod:  b.period > 0,
		period:     b.period,
		lastLevel:  buf.Size(),
	}

	buf.AcceptHook(a)

	return a
}
