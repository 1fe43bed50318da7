package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowCommand(t *testing.T) {
	out, err := execute(t, "", "now")
	require.NoError(t, err)

	fields := strings.SplitN(strings.TrimSpace(out), " ", 2)
	require.Len(t, fields, 2)
	assert.Len(t, fields[1], 23)
	assert.Equal(t, byte('.'), fields[1][19])
}

func TestTimeCommand(t *testing.T) {
	cfg := utcConfig(t)

	out, err := execute(t, "", "--config", cfg, "time", "--ms", "1686839400123")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15 14:30:00.123\n", out)

	out, err = execute(t, "", "--config", cfg, "time", "soon")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `invalid epoch "soon"`)
}

func TestDateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"date", []string{"date", "20230615"}, "2023-06-15\n"},
		{"date time one arg", []string{"date", "20230615 14:30:00"}, "2023-06-15 14:30:00\n"},
		{"date time two args", []string{"date", "20230615", "14:30:00"}, "2023-06-15 14:30:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDateCommandFailure(t *testing.T) {
	out, err := execute(t, "", "date", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "error: cannot normalize date \"bogus\"\n", out)
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "", "parse", "20230615 14:30:05")
	require.NoError(t, err)
	assert.Equal(t, "year=2023 month=6 day=15 hour=14 minute=30 second=5\n", out)
}

func TestParseCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "parse", "20230615")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   CalendarTime `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, CalendarTime{Year: 2023, Month: 6, Day: 15}, resp.Data)
}

func TestParseCommandFailure(t *testing.T) {
	for _, input := range []string{"2023-06-15", "20230615extra"} {
		t.Run(input, func(t *testing.T) {
			out, err := execute(t, "", "--format", "json", "parse", input)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))

			var resp Response
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Contains(t, resp.Error, "parse date")
		})
	}
}

func TestDurationCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"duration", "30 D"}, "2592000\n"},
		{[]string{"duration", "30", "D"}, "2592000\n"},
		{[]string{"duration", "1 Y"}, "31536000\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "_"), func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDurationCommandFailure(t *testing.T) {
	for _, input := range []string{"-5 S", "10 X", "10X S"} {
		t.Run(input, func(t *testing.T) {
			out, err := execute(t, "", "duration", "--", input)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, out, "parse duration")
		})
	}
}
