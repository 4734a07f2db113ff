// Package simulation ties an engine, a radio medium, and the recording and
// monitoring services together.
package simulation

import (
	"log"

	"github.com/sarchlab/radiosim/analysis"
	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/monitoring"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/sim"
	"github.com/sarchlab/radiosim/tracing"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	engine sim.Engine
	medium *medium.Medium

	dataRecorder   datarecording.DataRecorder
	tracer         *tracing.DBTracer
	busyTimeTracer *tracing.BusyTimeTracer
	metrics        *monitoring.MetricsHook
	monitor        *monitoring.Monitor
	monitorURL     string

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetMedium returns the medium shared by the radios.
func (s *Simulation) GetMedium() *medium.Medium {
	return s.medium
}

// GetDataRecorder returns the data recorder used in the simulation. It is nil
// when recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetTracer returns the tracer that records the medium. It is nil when
// recording is disabled.
func (s *Simulation) GetTracer() *tracing.DBTracer {
	return s.tracer
}

// GetBusyTimeTracer returns the tracer that measures the medium airtime.
func (s *Simulation) GetBusyTimeTracer() *tracing.BusyTimeTracer {
	return s.busyTimeTracer
}

// GetMetrics returns the Prometheus hook of the medium.
func (s *Simulation) GetMetrics() *monitoring.MetricsHook {
	return s.metrics
}

// GetMonitor returns the monitor used in the simulation.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// MonitorURL returns the address of the monitoring server, if any.
func (s *Simulation) MonitorURL() string {
	return s.monitorURL
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		log.Panicf("component %s already registered", compName)
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// NewRadioBuilder returns a radio builder attached to the engine and the
// medium of the simulation.
func (s *Simulation) NewRadioBuilder() medium.RadioBuilder {
	return medium.MakeRadioBuilder().
		WithEngine(s.engine).
		WithMedium(s.medium)
}

// AddRadio builds a radio and registers it.
func (s *Simulation) AddRadio(b medium.RadioBuilder, name string) *medium.Radio {
	r := b.WithEngine(s.engine).WithMedium(s.medium).Build(name)
	s.RegisterComponent(r)

	return r
}

// AnalyzeQueues records the average levels of the queues of the registered
// radios, per period. A zero period gives one level per queue for the whole
// simulation. It panics if recording is disabled.
func (s *Simulation) AnalyzeQueues(period sim.VTimeInSec) {
	if s.dataRecorder == nil {
		log.Panic("queue analysis needs recording")
	}

	b := analysis.MakeQueueAnalyzerBuilder().
		WithDataRecorder(s.dataRecorder).
		WithTimeTeller(s.engine).
		WithPeriod(period)

	for _, c := range s.components {
		r, ok := c.(*medium.Radio)
		if !ok {
			continue
		}

		for _, q := range r.Queues() {
			s.engine.RegisterSimulationEndHandler(b.Build(q))
		}
	}
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return append([]sim.Component(nil), s.components...)
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) (sim.Component, bool) {
	i, found := s.compNameIndex[name]
	if !found {
		return nil, false
	}

	return s.components[i], true
}

// Run runs the engine until no event is left or a component fails, then
// invokes the simulation end handlers.
func (s *Simulation) Run() error {
	err := s.engine.Run()
	if err != nil {
		return err
	}

	s.engine.Finished()

	return nil
}

// RunUntil is Run, but stops at a deadline. Events after the deadline are not
// handled.
func (s *Simulation) RunUntil(deadline sim.VTimeInSec) error {
	err := s.engine.RunUntil(deadline)
	if err != nil {
		return err
	}

	s.engine.Finished()

	return nil
}

// Terminate flushes and closes the recording.
func (s *Simulation) Terminate() {
	if s.tracer != nil {
		s.tracer.Terminate()
	}

	if s.dataRecorder != nil {
		err := s.dataRecorder.Close()
		if err != nil {
			log.Printf("closing recorder: %v", err)
		}
	}
}
