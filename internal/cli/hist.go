package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rickgao/tws-tools/internal/hist"
	"github.com/rickgao/tws-tools/internal/model"
)

// histOptions holds the request flags shared by the hist subcommands.
type histOptions struct {
	contract model.Contract
	end      string
	duration string
	barSize  string
	wts      string
	allHours bool
	maxChunk string
}

func (o *histOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int64Var(&o.contract.ConID, "con-id", 0, "contract ID")
	flags.StringVar(&o.contract.Symbol, "symbol", "", "symbol")
	flags.StringVar(&o.contract.SecType, "sec-type", "STK", "security type")
	flags.StringVar(&o.contract.Exchange, "exchange", "SMART", "exchange")
	flags.StringVar(&o.contract.Currency, "currency", "USD", "currency")
	flags.StringVar(&o.end, "end", "", "end date (YYYYMMDD[ HH:MM:SS]), empty for now")
	flags.StringVar(&o.duration, "duration", "1 D", "duration (e.g., \"1 Y\")")
	flags.StringVar(&o.barSize, "bar", "1 day", "bar size (e.g., \"5 mins\")")
	flags.StringVar(&o.wts, "wts", "TRADES", "whatToShow")
	flags.BoolVar(&o.allHours, "all-hours", false, "include data outside regular trading hours")
	flags.StringVar(&o.maxChunk, "max-chunk", "", "longest duration per request, overrides config")
}

// plan builds the planner and the request described by the flags.
func (o *histOptions) plan(cmd *cobra.Command, rootOpts *RootOptions) (*hist.Planner, hist.Request, error) {
	cfg := hist.Config{
		MaxChunk: rootOpts.cfg.Hist.MaxChunk,
		UseRTH:   !rootOpts.cfg.Hist.AllHours,
	}
	if o.maxChunk != "" {
		cfg.MaxChunk = o.maxChunk
	}
	if cmd.Flags().Changed("all-hours") {
		cfg.UseRTH = !o.allHours
	}

	planner, err := hist.NewPlanner(cfg, rootOpts.logger)
	if err != nil {
		return nil, hist.Request{}, WrapExitError(ExitCommandError, "invalid max chunk", err)
	}

	req, err := planner.Request(o.contract, o.end, o.duration, o.barSize, o.wts)
	if err != nil {
		return nil, hist.Request{}, err
	}
	return planner, req, nil
}

// HistChunk is one row of hist split output.
type HistChunk struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	EndDateTime string `json:"endDateTime"`
	Duration    string `json:"duration"`
}

// NewHistCommand creates the hist command group.
func NewHistCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Build historical data request descriptors",
	}

	cmd.AddCommand(newHistKeyCommand(rootOpts))
	cmd.AddCommand(newHistSplitCommand(rootOpts))
	return cmd
}

func newHistKeyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &histOptions{}

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the series key (<conId>_<wts>_<bar>_<rth|all>) for a request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			_, req, err := opts.plan(cmd, rootOpts)
			if err != nil {
				return histFail(f, err)
			}
			return f.Success(req.Key(), map[string]string{"id": req.ID.String(), "key": req.Key()})
		},
	}

	opts.bind(cmd)
	return cmd
}

func newHistSplitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &histOptions{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a long request into chunks no longer than the max chunk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			planner, req, err := opts.plan(cmd, rootOpts)
			if err != nil {
				return histFail(f, err)
			}

			chunks, err := planner.Split(req, time.Now())
			if err != nil {
				return histFail(f, err)
			}

			rows := make([]HistChunk, len(chunks))
			lines := make([]string, len(chunks))
			for i, c := range chunks {
				rows[i] = HistChunk{
					ID:          c.ID.String(),
					Key:         c.Key(),
					EndDateTime: c.EndDateTime,
					Duration:    c.Duration,
				}
				lines[i] = fmt.Sprintf("%s\t%s\t%s\t%s", rows[i].ID, rows[i].Key, rows[i].EndDateTime, rows[i].Duration)
			}
			return f.Success(strings.Join(lines, "\n"), rows)
		},
	}

	opts.bind(cmd)
	return cmd
}

// histFail reports invalid requests as input failures and passes other errors through.
func histFail(f *OutputFormatter, err error) error {
	if errors.Is(err, hist.ErrInvalidRequest) {
		return f.Fail("invalid request", err)
	}
	return err
}
