// Package cli provides the command-line interface for axis-mapper.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"axis-mapper/internal/config"
	"axis-mapper/internal/engine"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the per-invocation state shared by all commands.
type app struct {
	cfgFile string
	cfg     *config.Loaded
	logger  *zap.Logger
	engine  *engine.Engine
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "axis-mapper",
		Short: "Classify dataset axes and map them onto a dimension schema",
		Long: `axis-mapper decides what each coordinate axis of a dataset represents
(latitude, longitude, pressure, depth, height, model level, time) and renames
the axes to the dimension names a data request expects, picking cardinality
variants such as plev8 or plev19 from the axis length.`,
		Version:           Version,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./axismap.yaml)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", config.DefaultOutput, "Output format (table|json)")
	pf.String("validation", config.DefaultValidation, "Validation policy (ignore|warn|error|fix)")
	pf.String("validation-mode", config.DefaultValidationMode, "Validation mode (strict|flexible)")
	pf.Bool("allow-override", true, "Accept override targets outside the schema without a warning")
	pf.Bool("allow-duplicates", false, "Commit overrides that reuse an already mapped target")
	pf.Int("min-value-cardinality", 10, "Axis length required before values are used for classification")
	pf.Bool("enabled", true, "Enable dimension mapping")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("validation", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"ignore", "warn", "error", "fix"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newMapCommand(a))
	rootCmd.AddCommand(newClassifyCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup loads configuration, builds the logger and compiles the engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
		return nil
	}

	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.File != "" {
		a.logger.Debug("using config file", zap.String("path", cfg.File))
	}

	a.engine, err = engine.New(append(cfg.EngineOptions(), engine.WithLogger(a.logger))...)
	if err != nil {
		return err
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
