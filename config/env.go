package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/simulation"
)

// Environment variables read by LoadEnv.
const (
	EnvOutputFile   = "RADIOSIM_OUTPUT"
	EnvRecorderDSN  = "RADIOSIM_RECORDER_DSN"
	EnvMonitorPort  = "RADIOSIM_MONITOR_PORT"
	EnvNoRecording  = "RADIOSIM_NO_RECORDING"
	EnvNoMonitoring = "RADIOSIM_NO_MONITORING"
)

// Env holds the simulation defaults taken from the environment.
type Env struct {
	OutputFile   string
	RecorderDSN  string
	MonitorPort  int
	NoRecording  bool
	NoMonitoring bool
}

// LoadEnv reads the dotenv files, then the process environment. Variables of
// the process override the ones of the files. Missing files are skipped.
func LoadEnv(files ...string) (Env, error) {
	values := make(map[string]string)

	for _, f := range files {
		fileValues, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return Env{}, fmt.Errorf("reading %s: %w", f, err)
		}

		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, k := range []string{
		EnvOutputFile, EnvRecorderDSN, EnvMonitorPort, EnvNoRecording, EnvNoMonitoring,
	} {
		if v, found := os.LookupEnv(k); found {
			values[k] = v
		}
	}

	return parseEnv(values)
}

func parseEnv(values map[string]string) (Env, error) {
	var (
		env Env
		err error
	)

	env.OutputFile = values[EnvOutputFile]
	env.RecorderDSN = values[EnvRecorderDSN]

	if v := values[EnvMonitorPort]; v != "" {
		env.MonitorPort, err = strconv.Atoi(v)
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvMonitorPort, err)
		}
	}

	env.NoRecording, err = parseBool(values, EnvNoRecording)
	if err != nil {
		return Env{}, err
	}

	env.NoMonitoring, err = parseBool(values, EnvNoMonitoring)
	if err != nil {
		return Env{}, err
	}

	err = env.Validate()
	if err != nil {
		return Env{}, err
	}

	return env, nil
}

// Validate checks the recorder DSN.
func (e Env) Validate() error {
	err := datarecording.RecorderConfig{DSN: e.RecorderDSN}.Validate()
	if err != nil {
		return fmt.Errorf("%s: %w", EnvRecorderDSN, err)
	}

	return nil
}

func parseBool(values map[string]string, key string) (bool, error) {
	v := values[key]
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}

	return b, nil
}

// Apply sets the options of the environment on a simulation builder.
func (e Env) Apply(b simulation.Builder) simulation.Builder {
	if e.NoMonitoring {
		b = b.WithoutMonitoring()
	} else if e.MonitorPort != 0 {
		b = b.WithMonitorPort(e.MonitorPort)
	}

	switch {
	case e.NoRecording:
		b = b.WithoutRecording()
	case e.RecorderDSN != "":
		b = b.WithRecorderDSN(e.RecorderDSN)
	case e.OutputFile != "":
		b = b.WithOutputFileName(e.OutputFile)
	}

	return b
}
