package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickgao/tws-tools/internal/tws"
)

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current time in milliseconds and as local time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ms := tws.NowMillis()
			local := tws.FormatMillis(ms)
			return rootOpts.formatter(cmd).Success(
				fmt.Sprintf("%d %s", ms, local),
				map[string]any{"millis": ms, "local": local},
			)
		},
	}
}

// NewTimeCommand creates the time command.
func NewTimeCommand(rootOpts *RootOptions) *cobra.Command {
	var millis bool

	cmd := &cobra.Command{
		Use:   "time <epoch>",
		Short: "Render epoch seconds (or milliseconds with --ms) as local time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return f.Fail(fmt.Sprintf("invalid epoch %q", args[0]), err)
			}

			var local string
			if millis {
				local = tws.FormatMillis(v)
			} else {
				local = tws.FormatTime(v)
			}
			return f.Success(local, map[string]any{"epoch": v, "local": local})
		},
	}

	cmd.Flags().BoolVar(&millis, "ms", false, "epoch is in milliseconds")
	return cmd
}

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date <platform-date>",
		Short: "Normalize \"YYYYMMDD[ HH:MM:SS]\" to \"YYYY-MM-DD[ HH:MM:SS]\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			input := strings.Join(args, " ")

			iso := tws.DateToISO(input)
			if iso == "" {
				return f.Fail(fmt.Sprintf("cannot normalize date %q", input), nil)
			}
			return f.Success(iso, map[string]string{"input": input, "iso": iso})
		},
	}
}

// CalendarTime is the broken-down result of the parse command.
type CalendarTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

func (c CalendarTime) String() string {
	return fmt.Sprintf("year=%d month=%d day=%d hour=%d minute=%d second=%d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <platform-date>",
		Short: "Parse a platform date into calendar fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			input := strings.Join(args, " ")

			t, err := tws.ParseDateTime(input)
			if err != nil {
				return f.Fail("parse date", err)
			}

			ct := CalendarTime{
				Year:   t.Year(),
				Month:  int(t.Month()),
				Day:    t.Day(),
				Hour:   t.Hour(),
				Minute: t.Minute(),
				Second: t.Second(),
			}
			return f.Success(ct.String(), ct)
		},
	}
}

// NewDurationCommand creates the duration command.
func NewDurationCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <count> <S|D|W|M|Y>",
		Short: "Convert a duration string to seconds",
		Long: `Convert a duration string to seconds.

Units: S seconds, D days, W weeks, M 30-day months, Y 365-day years.
The duration may be passed as one argument ("30 D") or two (30 D).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			input := strings.Join(args, " ")

			secs, err := tws.DurationSeconds(input)
			if err != nil {
				return f.Fail("parse duration", err)
			}
			return f.Success(strconv.Itoa(secs), map[string]any{"input": input, "seconds": secs})
		},
	}
}
