package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pkg/browser"
	"github.com/sarchlab/radiosim/config"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/sim"
	"github.com/sarchlab/radiosim/simulation"
	"github.com/spf13/cobra"
)

type runOptions struct {
	envFile      string
	output       string
	recorderDSN  string
	noRecording  bool
	noMonitoring bool
	port         int
	openMonitor  bool
	verbosity    int
	until        float64
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	c := &cobra.Command{
		Use:   "run [scenario file]",
		Short: "Run a scenario.",
		Long: "`run [scenario file]` runs the scenario until all the " +
			"packets are delivered and prints a summary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, opts, args[0])
		},
	}

	f := c.Flags()
	f.StringVar(&opts.envFile, "env-file", ".env",
		"Read defaults from a dotenv file")
	f.StringVarP(&opts.output, "output", "o", "",
		"Record into this file, without the .sqlite3 extension")
	f.StringVar(&opts.recorderDSN, "recorder-dsn", "",
		"Record on a ClickHouse server, as clickhouse://host:port/db")
	f.BoolVar(&opts.noRecording, "no-recording", false,
		"Do not record the transmissions")
	f.BoolVar(&opts.noMonitoring, "no-monitoring", false,
		"Do not start the monitoring server")
	f.IntVar(&opts.port, "port", 0, "Port of the monitoring server")
	f.BoolVar(&opts.openMonitor, "open-monitor", false,
		"Open the monitoring page in a browser")
	f.IntVarP(&opts.verbosity, "verbose", "v", 0,
		"Log transmissions and receptions with this level of detail, "+
			"events too from level 3")
	f.Float64Var(&opts.until, "until", 0,
		"Stop at this simulated time in seconds, 0 to run to completion")

	return c
}

func (o *runOptions) env(cmd *cobra.Command) (config.Env, error) {
	env, err := config.LoadEnv(o.envFile)
	if err != nil {
		return config.Env{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("output") {
		env.OutputFile = o.output
	}

	if flags.Changed("recorder-dsn") {
		env.RecorderDSN = o.recorderDSN
	}

	if flags.Changed("no-recording") {
		env.NoRecording = o.noRecording
	}

	if flags.Changed("no-monitoring") {
		env.NoMonitoring = o.noMonitoring
	}

	if flags.Changed("port") {
		env.MonitorPort = o.port
	}

	return env, env.Validate()
}

func runScenario(cmd *cobra.Command, opts *runOptions, path string) error {
	scenario, err := config.Load(path)
	if err != nil {
		return err
	}

	env, err := opts.env(cmd)
	if err != nil {
		return err
	}

	d, err := config.Deploy(scenario, env.Apply(simulation.MakeBuilder()))
	if err != nil {
		return err
	}

	simu := d.Simulation

	if opts.verbosity > 0 {
		logger := log.New(os.Stderr, "", 0)
		simu.GetMedium().AcceptHook(
			medium.NewTransmissionLogger(logger, opts.verbosity))

		if opts.verbosity >= 3 {
			simu.GetEngine().AcceptHook(sim.NewEventLogger(logger))
		}
	}

	if monitor := simu.GetMonitor(); monitor != nil {
		bar := monitor.CreateProgressBar("Packets", d.Generator.TotalPackets())
		d.Generator.AcceptHook(&progressHook{bar: bar})

		defer monitor.CompleteProgressBar(bar)

		log.Printf("Monitoring simulation at %s", simu.MonitorURL())

		if opts.openMonitor {
			err = browser.OpenURL(simu.MonitorURL())
			if err != nil {
				log.Printf("cannot open browser: %v", err)
			}
		}
	}

	if opts.until > 0 {
		err = simu.RunUntil(sim.VTimeInSec(opts.until))
	} else {
		err = simu.Run()
	}

	simu.Terminate()

	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), scenario, d)

	return nil
}

func printSummary(w io.Writer, s *config.Scenario, d *config.Deployment) {
	simu := d.Simulation
	now := simu.GetEngine().CurrentTime()
	busy := simu.GetBusyTimeTracer()

	fmt.Fprintf(w, "Scenario: %s\n", s.Name)
	fmt.Fprintf(w, "Simulated time: %.9f s\n", now)
	fmt.Fprintf(w, "Packets generated: %d, dropped: %d\n",
		d.Generator.NumGenerated(), d.Generator.NumDropped())
	fmt.Fprintf(w, "Medium busy time: %.9f s (%.2f%%)\n",
		busy.BusyTime(now), 100*busy.Utilization(now))

	names := make([]string, 0, len(d.Radios))
	for name := range d.Radios {
		names = append(names, name)
	}

	sort.Strings(names)

	if len(names) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Radio\tSent\tReceived\tBusy (s)")

		for _, name := range names {
			r := d.Radios[name]
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.9f\n", name,
				r.NumSent(), r.NumReceived(), busy.RadioBusyTime(name, now))
		}

		tw.Flush()
	}

	if len(d.Loopbacks) > 0 {
		fmt.Fprintf(w, "Loopback packets: %d\n", d.Sink.NumPackets())
	}
}
