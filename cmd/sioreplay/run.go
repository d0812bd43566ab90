package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/njones/sioclient/config"
	"github.com/njones/sioclient/event"
	"github.com/njones/sioclient/logging"
	"github.com/njones/sioclient/processor"
)

type runOptions struct {
	configPath  string
	stopOnError bool
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <fixture.toml>",
		Short: "Dispatch every packet in a fixture file",
		Long: `Dispatch every [[packet]] in a fixture file through the client
dispatcher and print each event the sink receives. Packets that fault
(disconnect, error, binary or unknown types) are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a sioclient TOML config file")
	cmd.Flags().BoolVar(&opts.stopOnError, "stop-on-error", false, "stop at the first packet that faults")

	return cmd
}

func run(out, errOut io.Writer, opts runOptions, fixturePath string) (err error) {
	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	cfg.Log = logging.FromEnv(cfg.Log)
	log := logging.New(cfg.Log, errOut)

	packets, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	sink, err := newReplaySink(cfg, log, out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()

	var target event.Sink = sink
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		if target, err = event.Instrument(sink, reg, cfg.Metrics.Namespace); err != nil {
			return err
		}
	}

	dispatcher := processor.NewClientDispatcher(target,
		processor.WithLogger(log),
		processor.WithDecoder(cfg.Decoder()),
	)

	var faults int
	for i, pac := range packets {
		derr := dispatcher.Dispatch(pac)
		sink.Flush()

		if derr == nil {
			continue
		}
		faults++
		fmt.Fprintf(out, "fault packet %d: %s\n", i+1, derr)
		if opts.stopOnError {
			return fmt.Errorf("packet %d: %w", i+1, derr)
		}
	}

	fmt.Fprintf(out, "replayed %d packets, %d faults\n", len(packets), faults)

	if reg != nil {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		var lines []string
		for _, m := range mf.GetMetric() {
			var kind string
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" {
					kind = l.GetValue()
				}
			}
			lines = append(lines, fmt.Sprintf("%s{kind=%q} %g", mf.GetName(), kind, m.GetCounter().GetValue()))
		}
		sort.Strings(lines)
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
