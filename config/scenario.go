// Package config loads simulation scenarios from YAML files and defaults from
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/radiosim/phy/ieee80211"
	"gopkg.in/yaml.v3"
)

// A Scenario describes the radios of a simulation and the traffic they send.
type Scenario struct {
	Name      string         `yaml:"name"`
	Medium    MediumConfig   `yaml:"medium"`
	Radios    []RadioConfig  `yaml:"radios,omitempty"`
	Loopbacks []string       `yaml:"loopbacks,omitempty"`
	Flows     []FlowConfig   `yaml:"flows,omitempty"`
	Tracing   *TracingConfig `yaml:"tracing,omitempty"`
}

// MediumConfig selects the propagation, path loss, and analog models. Zero
// values select light speed, free space with alpha 2, and the scalar model.
type MediumConfig struct {
	PropagationSpeed float64 `yaml:"propagation_speed"`
	PathLossAlpha    float64 `yaml:"path_loss_alpha"`
	SystemLoss       float64 `yaml:"system_loss"`
	AnalogModel      string  `yaml:"analog_model"`
}

// Vector is a position in meters.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Orientation is a rotation in degrees.
type Orientation struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	Roll  float64 `yaml:"roll"`
}

// WaypointConfig places a moving radio at a time, in seconds.
type WaypointConfig struct {
	Time        float64     `yaml:"time"`
	Position    Vector      `yaml:"position"`
	Orientation Orientation `yaml:"orientation"`
}

// RadioConfig describes one radio.
type RadioConfig struct {
	Name        string           `yaml:"name"`
	Position    Vector           `yaml:"position"`
	Orientation Orientation      `yaml:"orientation"`
	Waypoints   []WaypointConfig `yaml:"waypoints,omitempty"`
	Antennas    int              `yaml:"antennas"`

	// PowerDBm is the transmitter power. Nil keeps the 20 dBm default.
	PowerDBm       *float64 `yaml:"power_dbm,omitempty"`
	ModeSet        string   `yaml:"mode_set"`
	Bands          []string `yaml:"bands,omitempty"`
	DefaultMode    string   `yaml:"default_mode"`
	DefaultChannel string   `yaml:"default_channel"`
	Representation string   `yaml:"representation"`

	Queues        int    `yaml:"queues"`
	QueueCapacity int    `yaml:"queue_capacity"`
	Labels        string `yaml:"labels"`
	DefaultQueue  int    `yaml:"default_queue"`
}

// FlowConfig describes packets sent periodically by a radio or a loopback.
type FlowConfig struct {
	Name     string   `yaml:"name"`
	From     string   `yaml:"from"`
	Start    float64  `yaml:"start"`
	Interval float64  `yaml:"interval"`
	Count    int      `yaml:"count"`
	Length   int      `yaml:"length"`
	Mode     string   `yaml:"mode"`
	Channel  string   `yaml:"channel"`
	PowerDBm *float64 `yaml:"power_dbm,omitempty"`
	Labels   []string `yaml:"labels,omitempty"`
}

// TracingConfig limits the records to a time window and selects the optional
// records.
type TracingConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`

	// QueueLevels records the average level of every radio queue, per
	// QueuePeriod seconds, or once when QueuePeriod is zero.
	QueueLevels bool    `yaml:"queue_levels"`
	QueuePeriod float64 `yaml:"queue_period"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	err := dec.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Marshal encodes the scenario back into YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks the references and ranges of the scenario.
func (s *Scenario) Validate() error {
	if len(s.Radios) == 0 && len(s.Loopbacks) == 0 {
		return fmt.Errorf("scenario %q has no radio and no loopback", s.Name)
	}

	err := s.Medium.validate()
	if err != nil {
		return err
	}

	names := map[string]bool{"Medium": true, "Generator": true}

	for _, r := range s.Radios {
		if names[r.Name] {
			return fmt.Errorf("duplicate name %q", r.Name)
		}

		names[r.Name] = true

		err = r.validate()
		if err != nil {
			return fmt.Errorf("radio %q: %w", r.Name, err)
		}
	}

	for _, l := range s.Loopbacks {
		if names[l] {
			return fmt.Errorf("duplicate name %q", l)
		}

		names[l] = true
	}

	for i, f := range s.Flows {
		if !names[f.From] {
			return fmt.Errorf("flow %d: unknown sender %q", i, f.From)
		}

		err = f.validate()
		if err != nil {
			return fmt.Errorf("flow %d: %w", i, err)
		}
	}

	if s.Tracing != nil {
		if s.Tracing.End != 0 && s.Tracing.End < s.Tracing.Start {
			return fmt.Errorf("tracing ends before it starts")
		}

		if s.Tracing.QueuePeriod < 0 {
			return fmt.Errorf("queue period must not be negative")
		}
	}

	return nil
}

func (m MediumConfig) validate() error {
	if m.PropagationSpeed < 0 || m.PathLossAlpha < 0 || m.SystemLoss < 0 {
		return fmt.Errorf("medium parameters must not be negative")
	}

	switch m.AnalogModel {
	case "", "scalar", "dimensional":
		return nil
	default:
		return fmt.Errorf("unknown analog model %q", m.AnalogModel)
	}
}

func (r RadioConfig) validate() error {
	if r.Name == "" {
		return fmt.Errorf("radio has no name")
	}

	if r.Antennas < 0 || r.Queues < 0 || r.QueueCapacity < 0 {
		return fmt.Errorf("antennas and queues must not be negative")
	}

	for i := 1; i < len(r.Waypoints); i++ {
		if r.Waypoints[i].Time < r.Waypoints[i-1].Time {
			return fmt.Errorf("waypoint %d is earlier than the previous one", i)
		}
	}

	modeSet, err := r.modeSet()
	if err != nil {
		return err
	}

	if r.DefaultMode != "" {
		if _, found := modeSet.Mode(r.DefaultMode); !found {
			return fmt.Errorf("mode set %s has no mode %s",
				modeSet.Name(), r.DefaultMode)
		}
	}

	_, err = r.bands()
	if err != nil {
		return err
	}

	if r.DefaultChannel != "" {
		_, _, err = ParseChannelKey(r.DefaultChannel)
		if err != nil {
			return err
		}
	}

	switch r.Representation {
	case "", "flat", "shaped":
	default:
		return fmt.Errorf("unknown representation %q", r.Representation)
	}

	return nil
}

func (r RadioConfig) modeSet() (*ieee80211.ModeSet, error) {
	if r.ModeSet == "" {
		return ieee80211.ModeSetA, nil
	}

	s, found := ieee80211.ModeSetByName(r.ModeSet)
	if !found {
		return nil, fmt.Errorf("unknown mode set %q", r.ModeSet)
	}

	return s, nil
}

func (r RadioConfig) bands() ([]*ieee80211.Band, error) {
	if len(r.Bands) == 0 {
		return []*ieee80211.Band{ieee80211.Band24GHz, ieee80211.Band5GHz}, nil
	}

	bands := make([]*ieee80211.Band, 0, len(r.Bands))
	for _, name := range r.Bands {
		b, found := ieee80211.BandByName(name)
		if !found {
			return nil, fmt.Errorf("unknown band %q", name)
		}

		bands = append(bands, b)
	}

	return bands, nil
}

func (f FlowConfig) validate() error {
	if f.Count < 1 {
		return fmt.Errorf("count must be positive")
	}

	if f.Count > 1 && f.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	if f.Start < 0 || f.Length < 0 {
		return fmt.Errorf("start and length must not be negative")
	}

	if f.Channel != "" {
		_, _, err := ParseChannelKey(f.Channel)
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseChannelKey splits a "band:number" channel key.
func ParseChannelKey(key string) (band string, number int, err error) {
	parts := strings.Split(key, ":")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("channel key %q is not band:number", key)
	}

	number, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("channel key %q: %w", key, err)
	}

	return parts[0], number, nil
}
