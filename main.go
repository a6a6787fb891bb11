package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfg "github.com/speech-analytics/speechcharts/config"
	"github.com/speech-analytics/speechcharts/logging"
	"github.com/speech-analytics/speechcharts/metrics"
	"github.com/speech-analytics/speechcharts/orchestrator"
)

type flags struct {
	config   string
	outDir   string
	workers  int
	table    string
	report   string
	logLevel string
	xCaption string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		var r reported
		if !errors.As(err, &r) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// reported marks an error that was already written to the log.
type reported struct{ error }

func (r reported) Unwrap() error { return r.error }

func fail(log logrus.FieldLogger, msg string, err error) error {
	log.WithError(err).Error(msg)
	return reported{err}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "speechcharts [flags] <file>...",
		Short: "Chart readability and sentiment metrics of speeches",
		Long: `speechcharts reads speeches named .../speeches/<First [M.] Last>-<YYYY>.txt,
computes the configured metrics for each one and writes one bar chart per
metric, bars ordered by year.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup(cmd, f, stderr)
			if err != nil {
				return err
			}
			p, err := orchestrator.NewPipeline(conf, log)
			if err != nil {
				return fail(log, "invalid configuration", err)
			}
			if _, err := p.Run(cmd.Context(), args); err != nil {
				return fail(log, "run failed", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (default speechcharts.yaml when present)")
	pf.StringVar(&f.outDir, "out-dir", "", "directory charts are written to")
	pf.IntVar(&f.workers, "workers", 0, "documents evaluated concurrently")
	pf.StringVar(&f.table, "table", "", "also save the metrics table (.json, .yaml or .yml)")
	pf.StringVar(&f.report, "report", "", "also write a PDF report with the table and every chart")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.xCaption, "x-caption", "", "x axis caption of every chart")

	root.AddCommand(newMetricsCmd(f, stdout, stderr), newReplotCmd(f, stderr))
	return root
}

// setup loads the configuration, applies explicitly set flags and builds the
// logger.
func setup(cmd *cobra.Command, f *flags, stderr io.Writer) (*cfg.Root, *logrus.Logger, error) {
	conf, err := cfg.Load(f.config)
	if err != nil {
		return nil, nil, err
	}

	changed := cmd.Flags().Changed
	if changed("out-dir") {
		conf.Output.Dir = f.outDir
	}
	if changed("workers") {
		conf.Workers = f.workers
	}
	if changed("table") {
		conf.Output.Table = f.table
	}
	if changed("report") {
		conf.Output.Report = f.report
	}
	if changed("log-level") {
		conf.Log.Level = f.logLevel
	}
	if changed("x-caption") {
		conf.Charts.XCaption = f.xCaption
	}

	log := logging.New(logging.Options{
		Level:      conf.Log.Level,
		File:       conf.Log.File,
		MaxSizeMB:  conf.Log.MaxSizeMB,
		MaxBackups: conf.Log.MaxBackups,
		Out:        stderr,
	})
	return conf, log, nil
}

type kindListing struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
}

type metricsListing struct {
	Kinds      []kindListing `yaml:"kinds"`
	Configured []cfg.Metric  `yaml:"configured"`
}

func newMetricsCmd(f *flags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the known metric kinds and the configured metric list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, _, err := setup(cmd, f, stderr)
			if err != nil {
				return err
			}
			var out metricsListing
			for _, k := range metrics.Kinds() {
				out.Kinds = append(out.Kinds, kindListing{Kind: k, Description: metrics.Describe(k)})
			}
			out.Configured = conf.Metrics

			enc := yaml.NewEncoder(stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}
}

func newReplotCmd(f *flags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "replot <table>",
		Short: "Redraw the charts of a table saved with --table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup(cmd, f, stderr)
			if err != nil {
				return err
			}
			p, err := orchestrator.NewPipeline(conf, log)
			if err != nil {
				return fail(log, "invalid configuration", err)
			}
			res, err := p.Replot(cmd.Context(), args[0])
			if err != nil {
				return fail(log, "replot failed", err)
			}
			log.WithField("charts", len(res.Charts)).Info("done")
			return nil
		},
	}
}
