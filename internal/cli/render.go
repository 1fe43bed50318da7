package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickgao/tws-tools/internal/model"
	"github.com/rickgao/tws-tools/internal/tws"
)

// TickName is one row of tick command output.
type TickName struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// NewTickCommand creates the tick command.
func NewTickCommand(rootOpts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tick <code>...",
		Short: "Print tick type names for numeric codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			var codes []int
			switch {
			case all:
				for _, tt := range model.TickTypes() {
					codes = append(codes, int(tt))
				}
			case len(args) == 0:
				return NewExitError(ExitCommandError, "tick requires at least one code or --all")
			default:
				for _, arg := range args {
					code, err := strconv.Atoi(arg)
					if err != nil {
						return f.Fail(fmt.Sprintf("invalid tick type code %q", arg), err)
					}
					codes = append(codes, code)
				}
			}

			rows := make([]TickName, len(codes))
			lines := make([]string, len(codes))
			for i, code := range codes {
				rows[i] = TickName{Code: code, Name: tws.TickTypeString(code)}
				lines[i] = fmt.Sprintf("%d\t%s", code, rows[i].Name)
			}
			if len(args) == 1 && !all {
				return f.Success(rows[0].Name, rows[0])
			}
			return f.Success(strings.Join(lines, "\n"), rows)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every known tick type")
	return cmd
}

var shortTables = map[string]tws.Table{
	"wts":      tws.WTS,
	"bar":      tws.BarSize,
	"bar_size": tws.BarSize,
}

// NewShortCommand creates the short command.
func NewShortCommand(rootOpts *RootOptions) *cobra.Command {
	var reverse, list bool

	cmd := &cobra.Command{
		Use:   "short <wts|bar> [value]",
		Short: "Map whatToShow and bar size values to short codes",
		Long: `Map whatToShow and bar size values to short codes.

  twsfmt short wts MIDPOINT        -> M
  twsfmt short bar 1 day           -> eod
  twsfmt short --reverse bar eod   -> 1 day

Unknown values map to the table's unknown code (NNN or 00N).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			table, ok := shortTables[args[0]]
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown table %q: want wts or bar", args[0]))
			}

			if list {
				pairs := tws.Pairs(table)
				lines := make([]string, len(pairs))
				for i, p := range pairs {
					lines[i] = fmt.Sprintf("%s\t%s", p.Long, p.Short)
				}
				return f.Success(strings.Join(lines, "\n"), pairs)
			}

			value := strings.Join(args[1:], " ")
			if reverse {
				long, ok := tws.LongForm(table, value)
				if !ok {
					return f.Fail(fmt.Sprintf("unknown %s code %q", table, value), nil)
				}
				return f.Success(long, tws.Pair{Long: long, Short: value})
			}

			short := tws.ShortCode(table, value)
			rootOpts.logger.Debug("short code lookup",
				"table", table.String(),
				"value", value,
				"short", short,
				"known", short != tws.UnknownCode(table),
			)
			return f.Success(short, tws.Pair{Long: value, Short: short})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "map a short code back to its long form")
	cmd.Flags().BoolVar(&list, "list", false, "print the whole table")
	return cmd
}

// NewContractCommand creates the contract command.
func NewContractCommand(rootOpts *RootOptions) *cobra.Command {
	var compact, verbose bool

	cmd := &cobra.Command{
		Use:   "contract [file]",
		Short: "Render JSON contracts (one object per record) from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			contracts, err := decodeRecords[model.Contract](cmd, f, args)
			if err != nil {
				return err
			}

			showFields := !rootOpts.cfg.Output.CompactContracts
			if cmd.Flags().Changed("compact") {
				showFields = !compact
			}
			if cmd.Flags().Changed("fields") {
				showFields = verbose
			}

			lines := make([]string, len(contracts))
			for i, c := range contracts {
				lines[i] = tws.ContractString(c, showFields)
			}
			return f.Success(strings.Join(lines, "\n"), lines)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "comma-separated values without labels")
	cmd.Flags().BoolVar(&verbose, "fields", false, "label:value pairs")
	return cmd
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [file]",
		Short: "Render JSON executions (one object per record) from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			execs, err := decodeRecords[model.Execution](cmd, f, args)
			if err != nil {
				return err
			}

			lines := make([]string, len(execs))
			for i, ex := range execs {
				lines[i] = tws.ExecutionString(ex)
			}
			return f.Success(strings.Join(lines, "\n"), lines)
		},
	}
}

// decodeRecords reads a stream of JSON objects from args[0] or stdin.
func decodeRecords[T any](cmd *cobra.Command, f *OutputFormatter, args []string) ([]T, error) {
	r := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "open input", err)
		}
		defer file.Close()
		r = file
	}

	var out []T
	dec := json.NewDecoder(r)
	for {
		var rec T
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, f.Fail(fmt.Sprintf("decode record %d", len(out)+1), err)
		}
		out = append(out, rec)
	}
	return out, nil
}
