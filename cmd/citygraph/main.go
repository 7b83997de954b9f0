// Package main provides the citygraph CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/citygraph/config"
	"github.com/katalvlaran/citygraph/loader"
	"github.com/katalvlaran/citygraph/metrics"
	"github.com/katalvlaran/citygraph/session"
	"github.com/spf13/cobra"
	log "go.arcalot.io/log/v2"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(&app{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	dataFile   string
	logLevel   string
	jsonOutput bool

	cfg      config.Config
	logger   log.Logger
	recorder *metrics.Recorder
	sess     *session.Session
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "citygraph",
		Short: "Query a network of cities and compute its minimum spanning tree",
		Long: `citygraph loads a list of city-to-city distances and answers questions
about it: direct distances, a city's connections, the adjacency list,
connected components and the minimum spanning tree.

The data file holds one "CityA,CityB,Distance" record per line.
Settings come from citygraph.yml, a .env file and CITYGRAPH_* variables;
flags override all of them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	pf.StringVar(&a.dataFile, "data", "", "distance data file (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warning or error")
	pf.BoolVar(&a.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newListCmd(a),
		newDistanceCmd(a),
		newConnectionsCmd(a),
		newAdjacencyCmd(a),
		newMSTCmd(a),
		newComponentsCmd(a),
		newMetricsCmd(a),
	)
	return root
}

// setup resolves configuration, builds the logger and loads the data file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(config.EnvFile); err != nil {
		return withCode(ExitConfigError, err)
	}

	path := a.configPath
	if path == "" {
		path = config.DefaultFile
	} else if _, err := os.Stat(path); err != nil {
		return withCode(ExitConfigError, fmt.Errorf("config file: %w", err))
	}
	cfg, err := config.Load(path)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = a.dataFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return withCode(ExitConfigError, err)
	}
	a.cfg = cfg

	a.logger = log.New(log.Config{
		Level:       cfg.Level(),
		Destination: log.DestinationStdout,
		Stdout:      cmd.ErrOrStderr(),
	})
	a.recorder = metrics.NewRecorder()
	a.sess = session.New(
		session.WithLogger(a.logger),
		session.WithRecorder(a.recorder),
	)

	if _, err := a.sess.Load(cfg.DataFile); err != nil {
		if errors.Is(err, loader.ErrNotFound) {
			return withCode(ExitDataError, fmt.Errorf("data file not found: %s", cfg.DataFile))
		}
		return withCode(ExitDataError, err)
	}
	return nil
}
