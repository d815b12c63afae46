package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/talgya/delta-tetrahedron/internal/config"
	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// options collects the flags shared by every evaluating subcommand.
type options struct {
	configPath string
	logLevel   string

	variant         string
	fallback        string
	perturbFriction bool
	fixedTimeline   bool

	effort    int
	resources int
	concept   string
	scalar    float64
	secondary int
	unit      string
	length    int
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Delta tetrahedron growth engine",
		Long: `deltasim computes the Δ and G growth metrics for a concept keyword,
effort and resources, and projects the damped growth curve over a timeline.

Δ = κ·(M·(I + S) − F) / Φ,  G = 3·Δ,  growth(t) = G·sin(0.2t)·e^(−0.03t)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.variant, "variant", "", "Engine preset (classic, streamlined, fixed-default, perturbed)")
	pf.StringVar(&opts.fallback, "fallback", "", "Unrecognized concept policy (override, fixed)")
	pf.BoolVar(&opts.perturbFriction, "perturb-friction", false, "Shift friction by the secondary number mod 13")
	pf.BoolVar(&opts.fixedTimeline, "fixed-timeline", false, "Sample the curve over [0, 30] regardless of --length")

	cmd.AddCommand(
		evalCmd(opts),
		curveCmd(opts),
		svgCmd(opts),
		sweepCmd(opts),
		conceptsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

// addInputFlags registers the dashboard controls on a subcommand.
func addInputFlags(fs *pflag.FlagSet, opts *options) {
	fs.IntVarP(&opts.effort, "effort", "x", 40, "Effort (0-100)")
	fs.IntVarP(&opts.resources, "resources", "r", 35, "Resources (0-100)")
	fs.StringVarP(&opts.concept, "concept", "k", "clarity", "Concept keyword")
	fs.Float64Var(&opts.scalar, "scalar", 1.0, "Input scalar used for unrecognized concepts")
	fs.IntVar(&opts.secondary, "secondary", 0, "Secondary number (perturbs friction when enabled)")
	fs.StringVar(&opts.unit, "unit", "Hours", "Timeline unit (Hours, Days, Weeks, Months)")
	fs.IntVar(&opts.length, "length", 36, "Timeline length (12-120, step 12)")
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// setup configures logging, loads config, and applies flag overrides. Flags
// win over config only when explicitly set.
func setup(cmd *cobra.Command, opts *options) (*config.Config, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Engine.Variant = opts.variant
	}
	if flags.Changed("fallback") {
		cfg.Engine.Fallback = opts.fallback
	}
	if flags.Changed("perturb-friction") {
		cfg.Engine.PerturbFriction = &opts.perturbFriction
	}
	if flags.Changed("fixed-timeline") {
		cfg.Engine.FixedTimeline = &opts.fixedTimeline
	}

	if flags.Lookup("effort") != nil {
		applyInputFlags(flags, opts, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyInputFlags(flags *pflag.FlagSet, opts *options, cfg *config.Config) {
	if flags.Changed("effort") {
		cfg.Inputs.Effort = opts.effort
	}
	if flags.Changed("resources") {
		cfg.Inputs.Resources = opts.resources
	}
	if flags.Changed("concept") {
		cfg.Inputs.Concept = opts.concept
	}
	if flags.Changed("scalar") {
		v := opts.scalar
		cfg.Inputs.Scalar = &v
	}
	if flags.Changed("secondary") {
		v := opts.secondary
		cfg.Inputs.Secondary = &v
	}
	if flags.Changed("unit") {
		cfg.Inputs.TimelineUnit = opts.unit
	}
	if flags.Changed("length") {
		cfg.Inputs.TimelineLength = opts.length
	}
}

// evaluate runs one computation with the resolved config.
func evaluate(cmd *cobra.Command, opts *options) (growth.DerivedMetrics, error) {
	cfg, err := setup(cmd, opts)
	if err != nil {
		return growth.DerivedMetrics{}, err
	}
	eng, err := cfg.NewEngine()
	if err != nil {
		return growth.DerivedMetrics{}, err
	}

	params := cfg.Params()
	for _, v := range params.DomainViolations() {
		slog.Warn("input outside dashboard domain", "detail", v)
	}

	m := eng.Compute(params)
	if !m.Concept.Recognized {
		slog.Info("concept not in table, using fallback",
			"concept", m.Concept.Keyword,
			"policy", eng.Fallback(),
			"kappa", m.Kappa(),
		)
	}
	slog.Debug("evaluated",
		"concept", m.Concept.Keyword,
		"I", m.InputPotential,
		"F", fmt.Sprintf("%.3f", m.FrictionLoad),
		"delta", fmt.Sprintf("%.2f", m.Delta),
		"g", fmt.Sprintf("%.2f", m.G),
	)
	return m, nil
}
