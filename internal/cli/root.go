package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rickgao/tws-tools/internal/config"
	"github.com/rickgao/tws-tools/internal/tws"
)

// RootOptions holds global flags and the state prepared before each command runs.
type RootOptions struct {
	ConfigPath string
	Format     string
	Verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the twsfmt CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "twsfmt",
		Short: "Convert TWS API dates, durations and codes",
		Long: `Convert between TWS API encodings and readable forms.

Parses platform dates ("20230615 14:30:00") and durations ("30 D"), renders tick
types, executions and contracts, and maps whatToShow / bar size values to the short
codes used to name historical data series.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json), overrides config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewTimeCommand(opts))
	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewDurationCommand(opts))
	cmd.AddCommand(NewTickCommand(opts))
	cmd.AddCommand(NewShortCommand(opts))
	cmd.AddCommand(NewContractCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewHistCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// prepare loads config, sets the local-time zone and builds the logger.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	cfg, err := config.LoadAndValidate(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}

	if o.Format != "" {
		if !slices.Contains(ValidFormats, o.Format) {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
		}
		cfg.Output.Format = o.Format
	}

	loc, err := cfg.TimeLocation()
	if err != nil {
		return WrapExitError(ExitCommandError, "load time zone", err)
	}
	tws.SetLocation(loc)

	level := cfg.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	o.cfg = cfg

	o.logger.Debug("configuration loaded",
		"config", o.ConfigPath,
		"zone", loc.String(),
		"format", cfg.Output.Format,
	)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: o.cfg.Output.Format,
		Writer: cmd.OutOrStdout(),
	}
}
