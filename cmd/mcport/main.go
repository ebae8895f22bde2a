package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mcport/portfolio-simulator/internal/config"
	"github.com/mcport/portfolio-simulator/internal/output"
	"github.com/mcport/portfolio-simulator/internal/simulation"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcport",
		Short: "Monte Carlo simulation of retirement portfolio survival",
		Long: `mcport models the long-run survival of a retirement portfolio under
random annual returns, withdrawals and inflation. It runs many
independent trial paths and reports the distribution of final values
and the probability of depletion before the horizon.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newInitConfigCmd())
	return root
}

type simulateOptions struct {
	configFile string
	format     string
	csvDir     string
	plotFile   string
	logScale   bool
	maxPaths   int
	verbose    bool
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions
	params := config.Default()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, params, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&params.InitialValue, "initial", "p", params.InitialValue,
		"starting portfolio balance")
	flags.Float64VarP(&params.MeanReturn, "mean-return", "m", params.MeanReturn,
		"expected annual nominal return (0.07 = 7%)")
	flags.Float64VarP(&params.Volatility, "volatility", "v", params.Volatility,
		"standard deviation of the annual return")
	flags.IntVarP(&params.Years, "years", "y", params.Years,
		"simulation horizon in years")
	flags.IntVarP(&params.NumTrials, "trials", "s", params.NumTrials,
		"number of independent trials")
	flags.Float64VarP(&params.InflationRate, "inflation", "i", params.InflationRate,
		"assumed annual inflation rate")
	flags.Float64VarP(&params.WithdrawalRate, "withdrawal", "w", params.WithdrawalRate,
		"annual withdrawal rate")
	flags.BoolVar(&params.DynamicWithdraw, "dynamic", params.DynamicWithdraw,
		"withdraw a percentage of the current balance instead of an inflation-indexed constant amount")
	flags.Int64Var(&params.Seed, "seed", params.Seed,
		"master random seed (0 picks one from the clock)")

	flags.StringVarP(&opts.configFile, "config", "c", "",
		"YAML parameter file; explicit flags override its values")
	flags.StringVarP(&opts.format, "format", "f", "console",
		"report format: console, json or csv")
	flags.StringVar(&opts.csvDir, "csv-dir", "",
		"also write summary and per-trial path CSVs into this directory")
	flags.StringVarP(&opts.plotFile, "plot-file", "d", "",
		"render the trial paths and 95% confidence band to this PNG file")
	flags.BoolVar(&opts.logScale, "log-scale", false,
		"use a logarithmic value axis in the plot (display only)")
	flags.IntVar(&opts.maxPaths, "max-paths", 500,
		"maximum individual trial lines to draw in the plot (0 = all)")
	flags.BoolVar(&opts.verbose, "verbose", false,
		"log engine progress to stderr")

	return cmd
}

func runSimulate(cmd *cobra.Command, params simulation.ParameterSet, opts simulateOptions) error {
	if opts.configFile != "" {
		loaded, err := config.NewParser().LoadFromFile(opts.configFile)
		if err != nil {
			return err
		}
		// Flags the user set explicitly win over the file.
		params = overrideFromFlags(cmd, loaded, params)
	}

	formatter := output.GetFormatterByName(opts.format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", opts.format, output.AvailableFormatterNames())
	}

	sim, err := simulation.NewSimulator(params)
	if err != nil {
		return err
	}
	if opts.verbose {
		sim.SetLogger(stderrLogger{log.New(os.Stderr, "", log.LstdFlags)})
	}

	matrix := sim.Run()
	summary, err := simulation.Summarize(matrix, params)
	if err != nil {
		return err
	}

	res := &output.Result{
		Params:  params,
		Seed:    sim.Seed(),
		Matrix:  matrix,
		Summary: summary,
	}

	data, err := formatter.Format(res)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if opts.csvDir != "" {
		r := &output.CSVReport{Result: res}
		if err := r.GenerateAllCSVReports(opts.csvDir); err != nil {
			return err
		}
	}

	if opts.plotFile != "" {
		cfg := output.PlotConfig{
			File:     opts.plotFile,
			LogScale: opts.logScale,
			MaxPaths: opts.maxPaths,
		}
		if err := output.RenderPaths(res, cfg); err != nil {
			return err
		}
	}

	return nil
}

// overrideFromFlags layers explicitly set parameter flags over a file-
// loaded parameter set.
func overrideFromFlags(cmd *cobra.Command, loaded, flagged simulation.ParameterSet) simulation.ParameterSet {
	flags := cmd.Flags()
	out := loaded
	if flags.Changed("initial") {
		out.InitialValue = flagged.InitialValue
	}
	if flags.Changed("mean-return") {
		out.MeanReturn = flagged.MeanReturn
	}
	if flags.Changed("volatility") {
		out.Volatility = flagged.Volatility
	}
	if flags.Changed("years") {
		out.Years = flagged.Years
	}
	if flags.Changed("trials") {
		out.NumTrials = flagged.NumTrials
	}
	if flags.Changed("inflation") {
		out.InflationRate = flagged.InflationRate
	}
	if flags.Changed("withdrawal") {
		out.WithdrawalRate = flagged.WithdrawalRate
	}
	if flags.Changed("dynamic") {
		out.DynamicWithdraw = flagged.DynamicWithdraw
	}
	if flags.Changed("seed") {
		out.Seed = flagged.Seed
	}
	return out
}

func newInitConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write an example parameter file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteExample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "mcport.yaml", "output path for the example file")
	return cmd
}

// stderrLogger adapts the standard library logger to the engine's
// logging interface.
type stderrLogger struct {
	l *log.Logger
}

func (s stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
