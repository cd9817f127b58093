// Package cli provides the command-line interface for lvhawkes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhawkes/config"
	"github.com/katalvlaran/lvhawkes/metrics"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	configPath string
	logFile    string
	logLevel   string
	workers    int

	cfg     *config.Config
	logger  *slog.Logger
	cleanup func() error
	metrics *metrics.Collector
}

// newRootCommand builds a fresh command tree sharing state through a.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvhawkes",
		Short: "Expected event counts of Hawkes cascades on graphs",
		Long: `lvhawkes computes, for every vertex of a graph, the expected total number
of events in a linear Hawkes cascade started there, using one eigendecomposition
of the influence operator per graph.

It also sweeps the branching ratio over whole datasets and scores how well
graphlet or degree features predict those counts.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML run file")
	pf.StringVar(&a.logFile, "log-file", "", "JSON log file (overrides config and "+config.EnvLogFile+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVarP(&a.workers, "workers", "w", 0, "parallel graphs")

	root.AddCommand(
		newSweepCmd(a),
		newEvalCmd(a),
		newExactCmd(a),
		newCriticalCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes one invocation of the CLI. The metrics textfile is written
// and the log file closed afterwards, whether or not the command failed.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	a := &app{}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer func() { err = errors.Join(err, a.teardown()) }()

	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger, a.cleanup = config.SetupLogger(cfg.LogFile, cfg.Level())
	a.metrics = metrics.NewCollector()
	a.logger.Debug("configuration loaded", "config", a.configPath, "command", cmd.Name())

	return nil
}

// teardown flushes metrics and closes the log file; it is a no-op before
// setup succeeded.
func (a *app) teardown() error {
	if a.cfg == nil || a.logger == nil {
		return nil
	}
	if path := a.cfg.MetricsFile; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.logger.Error("write metrics", "file", path, "error", err)
		} else {
			a.logger.Info("metrics written", "file", path)
		}
	}
	if a.cleanup != nil {
		return a.cleanup()
	}

	return nil
}

// revalidate re-checks the config after command flags changed it.
func (a *app) revalidate() error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	return nil
}

// createOutput opens path for writing; "" and "-" mean stdout.
func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}

	return f, f.Close, nil
}

// writeTo opens path and hands it to write, closing it afterwards.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	w, closeFn, err := createOutput(path, stdout)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		_ = closeFn()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return closeFn()
}
