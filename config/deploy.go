package config

import (
	"fmt"
	"math"

	"github.com/sarchlab/radiosim/linklayer/loopback"
	"github.com/sarchlab/radiosim/phy/analog"
	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/propagation"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/sarchlab/radiosim/queueing/classifier"
	"github.com/sarchlab/radiosim/sim"
	"github.com/sarchlab/radiosim/simulation"
	"github.com/sarchlab/radiosim/traffic"
)

// A Deployment is a simulation populated from a scenario.
type Deployment struct {
	Simulation *simulation.Simulation
	Radios     map[string]*medium.Radio
	Loopbacks  map[string]*loopback.Loopback
	Generator  *traffic.Generator
	Sink       *traffic.Sink
}

// Deploy builds the simulation described by the scenario. The medium
// parameters of the scenario replace the medium of the builder.
func Deploy(s *Scenario, b simulation.Builder) (*Deployment, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	b = b.WithMediumBuilder(s.Medium.mediumBuilder())
	simu := b.Build()

	d := &Deployment{
		Simulation: simu,
		Radios:     make(map[string]*medium.Radio),
		Loopbacks:  make(map[string]*loopback.Loopback),
		Sink:       traffic.NewSink(),
	}

	if s.Tracing != nil && simu.GetTracer() != nil {
		simu.GetTracer().SetTimeRange(
			sim.VTimeInSec(s.Tracing.Start), sim.VTimeInSec(s.Tracing.End))
	}

	err = d.populate(s)
	if err != nil {
		simu.Terminate()
		return nil, err
	}

	if s.Tracing != nil && s.Tracing.QueueLevels &&
		simu.GetDataRecorder() != nil {
		simu.AnalyzeQueues(sim.VTimeInSec(s.Tracing.QueuePeriod))
	}

	d.Generator.Start()

	return d, nil
}

func (d *Deployment) populate(s *Scenario) error {
	simu := d.Simulation

	for _, rc := range s.Radios {
		err := d.addRadio(rc)
		if err != nil {
			return fmt.Errorf("radio %s: %w", rc.Name, err)
		}
	}

	for _, name := range s.Loopbacks {
		l := loopback.NewLoopback(name, simu.GetEngine(), d.Sink)
		simu.RegisterComponent(l)
		d.Loopbacks[name] = l
	}

	d.Generator = traffic.NewGenerator("Generator", simu.GetEngine())
	simu.RegisterComponent(d.Generator)

	for i, fc := range s.Flows {
		err := d.Generator.AddFlow(d.flow(i, fc))
		if err != nil {
			return err
		}
	}

	return nil
}

func (m MediumConfig) mediumBuilder() medium.Builder {
	b := medium.MakeBuilder()

	if m.PropagationSpeed > 0 {
		b = b.WithPropagation(propagation.ConstantSpeed{
			Speed: m.PropagationSpeed,
		})
	}

	if m.PathLossAlpha > 0 || m.SystemLoss > 0 {
		fs := propagation.FreeSpace{Alpha: 2, SystemLoss: 1}
		if m.PathLossAlpha > 0 {
			fs.Alpha = m.PathLossAlpha
		}

		if m.SystemLoss > 0 {
			fs.SystemLoss = m.SystemLoss
		}

		b = b.WithPathLoss(fs)
	}

	if m.AnalogModel == "dimensional" {
		b = b.WithAnalogModel(analog.DimensionalModel{})
	}

	return b
}

func (d *Deployment) addRadio(rc RadioConfig) error {
	simu := d.Simulation

	transmitter, err := rc.transmitter(rc.Name + ".Transmitter")
	if err != nil {
		return err
	}

	numAntennas := rc.Antennas
	if numAntennas == 0 {
		numAntennas = 1
	}

	var ant antenna.Antenna

	m := rc.mobility(simu.GetEngine())
	if numAntennas == 1 {
		ant = antenna.NewIsotropic(m)
	} else {
		ant = antenna.NewArray(m, numAntennas)
	}

	b := simu.NewRadioBuilder().
		WithAntenna(ant).
		WithTransmitter(transmitter).
		WithListener(d.Sink)

	if rc.Queues > 0 {
		b = b.WithNumQueues(rc.Queues)
	}

	if rc.QueueCapacity > 0 {
		b = b.WithQueueCapacity(rc.QueueCapacity)
	}

	if rc.Labels != "" {
		c, err := classifier.NewLabelClassifier(rc.Labels, rc.DefaultQueue)
		if err != nil {
			return err
		}

		b = b.WithClassifier(c)
	}

	d.Radios[rc.Name] = simu.AddRadio(b, rc.Name)

	return nil
}

func (rc RadioConfig) transmitter(name string) (*ieee80211.Transmitter, error) {
	modeSet, err := rc.modeSet()
	if err != nil {
		return nil, err
	}

	bands, err := rc.bands()
	if err != nil {
		return nil, err
	}

	defaultMode := rc.DefaultMode
	if defaultMode == "" && modeSet != ieee80211.ModeSetA {
		defaultMode = modeSet.Modes()[0].Name()
	}

	tb := ieee80211.MakeTableBuilder().
		WithModeSet(modeSet).
		WithBands(bands...)

	if defaultMode != "" {
		tb = tb.WithDefaultMode(defaultMode)
	}

	defaultChannel := rc.DefaultChannel
	if defaultChannel == "" && bands[0] != ieee80211.Band24GHz {
		defaultChannel = bands[0].Name() + ":36"
	}

	if defaultChannel != "" {
		tb = tb.WithDefaultChannel(defaultChannel)
	}

	b := ieee80211.MakeBuilder().WithTable(tb.Build())

	if rc.PowerDBm != nil {
		b = b.WithPower(unit.FromDBm(*rc.PowerDBm))
	}

	if rc.Representation == "shaped" {
		b = b.WithShapedRepresentation()
	} else {
		b = b.WithFlatRepresentation()
	}

	return b.Build(name), nil
}

func (rc RadioConfig) mobility(timeTeller sim.TimeTeller) mobility.Mobility {
	if len(rc.Waypoints) == 0 {
		return mobility.NewStationary(
			rc.Position.coord(), rc.Orientation.quaternion())
	}

	waypoints := make([]mobility.Waypoint, 0, len(rc.Waypoints))
	for _, w := range rc.Waypoints {
		waypoints = append(waypoints, mobility.Waypoint{
			Time: sim.VTimeInSec(w.Time),
			Snapshot: geometry.Snapshot{
				Position:    w.Position.coord(),
				Orientation: w.Orientation.quaternion(),
			},
		})
	}

	return mobility.NewWaypointMobility(timeTeller, waypoints)
}

func (v Vector) coord() geometry.Coord {
	return geometry.Coord{X: v.X, Y: v.Y, Z: v.Z}
}

func (o Orientation) quaternion() geometry.Quaternion {
	toRad := math.Pi / 180

	return geometry.FromEulerAngles(o.Yaw*toRad, o.Pitch*toRad, o.Roll*toRad)
}

func (d *Deployment) flow(i int, fc FlowConfig) traffic.Flow {
	name := fc.Name
	if name == "" {
		name = sim.BuildNameWithIndex(fc.From, "Flow", i)
	}

	f := traffic.Flow{
		Name:       name,
		Start:      sim.VTimeInSec(fc.Start),
		Interval:   sim.VTimeInSec(fc.Interval),
		Count:      fc.Count,
		Length:     unit.Byte(fc.Length),
		ModeKey:    fc.Mode,
		ChannelKey: fc.Channel,
		Labels:     fc.Labels,
	}

	if fc.PowerDBm != nil {
		f.Power = unit.FromDBm(*fc.PowerDBm)
	}

	if r, found := d.Radios[fc.From]; found {
		f.Send = r.Send
	} else {
		l := d.Loopbacks[fc.From]
		f.Send = func(p *packet.Packet, now sim.VTimeInSec) error {
			l.Send(p, now)
			return nil
		}
	}

	return f
}
