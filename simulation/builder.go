package simulation

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/monitoring"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/sim"
	"github.com/sarchlab/radiosim/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	recorderDSN    string
	registerer     prometheus.Registerer
	mediumBuilder  medium.Builder
}

// MakeBuilder creates a new builder. By default, the simulation is monitored
// and recorded, and the medium uses free space propagation with the scalar
// analog model.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:     true,
		recordingOn:   true,
		mediumBuilder: medium.MakeBuilder(),
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithoutRecording sets the simulation to not write a database.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithRecorderDSN records on a ClickHouse server instead of a SQLite file.
func (b Builder) WithRecorderDSN(dsn string) Builder {
	b.recorderDSN = dsn
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithMetricsRegisterer sets where the radio metrics are registered. Without
// it, the simulation uses a registry of its own.
func (b Builder) WithMetricsRegisterer(r prometheus.Registerer) Builder {
	b.registerer = r
	return b
}

// WithMediumBuilder sets how the medium is built. The engine is set by the
// simulation.
func (b Builder) WithMediumBuilder(mb medium.Builder) Builder {
	b.mediumBuilder = mb
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		log.Panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		log.Panic("output file cannot be set when recording is disabled")
	}

	if !b.recordingOn && b.recorderDSN != "" {
		log.Panic("recorder DSN cannot be set when recording is disabled")
	}

	err := b.recorderConfig("").Validate()
	if err != nil {
		log.Panic(err)
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		engine:        sim.NewSerialEngine(),
		compNameIndex: make(map[string]int),
	}

	s.medium = b.mediumBuilder.WithEngine(s.engine).Build("Medium")
	s.busyTimeTracer = tracing.NewBusyTimeTracer(nil)
	s.medium.AcceptHook(s.busyTimeTracer)

	b.buildMetrics(s)

	if b.recordingOn {
		s.dataRecorder = datarecording.NewWithConfig(b.recorderConfig(s.id))
		s.tracer = tracing.NewDBTracer(s.engine, s.dataRecorder)
		s.medium.AcceptHook(s.tracer)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}

		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterGatherer(s.metrics.Gatherer())
	}

	s.RegisterComponent(s.medium)

	if b.monitorOn {
		s.monitorURL = s.monitor.StartServer()
	}

	return s
}

func (b Builder) recorderConfig(simID string) datarecording.RecorderConfig {
	path := b.outputFileName
	if path == "" {
		path = "radiosim_" + simID
	}

	return datarecording.RecorderConfig{Path: path, DSN: b.recorderDSN}
}

func (b Builder) buildMetrics(s *Simulation) {
	reg := b.registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	metrics, err := monitoring.NewMetricsHook(reg)
	if err != nil {
		log.Panic(err)
	}

	s.metrics = metrics
	s.medium.AcceptHook(metrics)
}
