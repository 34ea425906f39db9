// Command cadiback extracts the backbone of a CNF formula: the set of
// literals true in every satisfying assignment.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/crillab/cadiback/backbone"
	"github.com/crillab/cadiback/oracle"
	"github.com/crillab/cadiback/signals"
	"github.com/crillab/cadiback/solver"
	"github.com/crillab/cadiback/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitCode is a process exit status, per spec §6.5: 0 for help/version, 10/20
// mirroring the DIMACS SAT/UNSAT convention, 1 on any usage or internal
// error.
type exitCode int

const (
	exitSatisfiable exitCode = 10
	exitUnsat       exitCode = 20
	exitError       exitCode = 1
)

type options struct {
	quiet      bool
	verbose    int
	logging    bool
	report     bool
	noBackbone bool
	plain      bool
	check      bool
	filter     bool
	useFixed   bool
	useFlip    bool
	useInproc  bool
	useConstr  bool
	setPhase   bool
	alwaysStat bool
	version    bool
}

const version = "0.1.0"

func main() {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "cadiback [flags] [dimacs]",
		Short:        "extract the backbone of a CNF formula",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			code, err := run(cmd.OutOrStdout(), opts, path)
			if err != nil {
				return err
			}
			os.Exit(int(code))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "disable all messages")
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase verbosity (repeatable)")
	flags.BoolVarP(&opts.logging, "logging", "l", false, "extensive logging for debugging")
	flags.BoolVarP(&opts.report, "report", "r", false, "set the oracle's \"report\" option (the backbone list is still printed)")
	flags.BoolVarP(&opts.noBackbone, "no-backbone", "n", false, "do not print backbone literals")
	flags.BoolVar(&opts.plain, "plain", false, "disable every optimization (filter, fixed, flip, inprocessing, constrain)")
	flags.BoolVar(&opts.check, "check", false, "verify every classification with an independent checker oracle")
	flags.BoolVar(&opts.filter, "filter", true, "enable the model-based filter shortcut")
	flags.BoolVar(&opts.useFixed, "use-fixed", true, "enable the root-fixed-literal shortcut")
	flags.BoolVar(&opts.useFlip, "use-flip", true, "enable the model-flip shortcut, if the oracle supports it")
	flags.BoolVar(&opts.useInproc, "use-inprocessing", true, "allow the oracle to inprocess between calls")
	flags.BoolVar(&opts.useConstr, "use-constrain", true, "enable the constrain-clause batching shortcut (Mode A)")
	flags.BoolVar(&opts.setPhase, "set-phase", true, "hint the oracle's decision polarity from the current candidate")
	flags.BoolVar(&opts.alwaysStat, "always-print-statistics", false, "print statistics even when quiet")
	flags.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cadiback: %s: %v\n", kindOf(err), err)
		os.Exit(int(exitError))
	}
}

func run(stdout io.Writer, opts *options, path string) (exitCode, error) {
	logrus.SetLevel(verbosityToLevel(opts))
	logrus.SetOutput(os.Stderr)
	log := logrus.WithField("component", "cadiback")

	cfg := configFromOptions(opts)

	pb, err := parseInput(path)
	if err != nil {
		return exitError, err
	}

	st := &stats.Stats{}
	lifecycle := signals.Install(st, !opts.quiet)
	defer lifecycle.Stop()

	baseOracle := oracle.New(pb)
	if opts.report {
		baseOracle.SetOption("report", 1)
	}
	oc := oracle.NewTimed(baseOracle, st)
	emitter := backbone.NewEmitter(stdout, cfg.PrintBackbones)

	engine := backbone.New(oc, pb.NbVars, cfg, emitter, log)
	sat, err := engine.Run()
	if err != nil {
		// Invariant violation: dump statistics before aborting, per spec.
		st.Print(os.Stdout, true)
		return exitError, wrapKind(KindInvariant, err, "invariant violation")
	}

	if cand := engine.Candidates(); cand != nil {
		st.Backbones = cand.Backbones()
		st.Dropped = cand.Dropped()
		st.Filtered = cand.Filtered()
		st.Flipped = cand.Flipped()
		st.FixedHits = cand.FixedHits()
		st.Checked = cand.Checked()
	}

	if !opts.quiet || cfg.AlwaysPrintStatistics {
		st.Print(os.Stdout, opts.verbose > 0 || opts.logging)
	}

	if !sat {
		return exitUnsat, nil
	}
	return exitSatisfiable, nil
}

func verbosityToLevel(opts *options) logrus.Level {
	switch {
	case opts.quiet:
		return logrus.ErrorLevel
	case opts.logging:
		return logrus.TraceLevel
	case opts.verbose > 0:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// configFromOptions builds the engine Config from CLI flags. --plain takes
// the preset wholesale, per spec §6.4, then layers the independent
// check/print/statistics flags on top since those aren't shortcut toggles.
func configFromOptions(opts *options) backbone.Config {
	var cfg backbone.Config
	if opts.plain {
		cfg = backbone.PlainConfig()
	} else {
		cfg = backbone.DefaultConfig()
		cfg.Filter = opts.filter
		cfg.UseFixed = opts.useFixed
		cfg.UseFlip = opts.useFlip
		cfg.UseInprocessing = opts.useInproc
		cfg.UseConstrain = opts.useConstr
		cfg.SetPhase = opts.setPhase
	}
	cfg.Check = opts.check
	cfg.PrintBackbones = !opts.noBackbone
	cfg.AlwaysPrintStatistics = opts.alwaysStat
	return cfg
}

func parseInput(path string) (*solver.Problem, error) {
	r := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, wrapKind(KindIO, err, fmt.Sprintf("could not open %q", path))
		}
		defer f.Close()
		r = f
	}
	pb, err := solver.ParseCNF(r)
	if err != nil {
		return nil, wrapKind(KindParse, err, "malformed DIMACS input")
	}
	return pb, nil
}
