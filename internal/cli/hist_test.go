package cli

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistKeyCommand(t *testing.T) {
	out, err := execute(t, "", "hist", "key", "--con-id", "756733", "--bar", "1 day", "--wts", "TRADES")
	require.NoError(t, err)
	assert.Equal(t, "756733_T_eod_rth\n", out)

	out, err = execute(t, "", "hist", "key", "--con-id", "756733", "--bar", "5 mins", "--wts", "BID_ASK", "--all-hours")
	require.NoError(t, err)
	assert.Equal(t, "756733_BA_m05_all\n", out)
}

func TestHistKeyCommandInvalid(t *testing.T) {
	out, err := execute(t, "", "hist", "key", "--con-id", "756733", "--bar", "2 days")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "unknown bar size")
}

func TestHistSplitCommand(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "hist", "split",
		"--con-id", "756733",
		"--end", "20231231 16:00:00",
		"--duration", "2 Y",
		"--bar", "1 day",
		"--wts", "TRADES",
	)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []HistChunk `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)

	assert.Equal(t, "20231231 16:00:00", resp.Data[0].EndDateTime)
	assert.Equal(t, "20221231 16:00:00", resp.Data[1].EndDateTime)
	for _, c := range resp.Data {
		assert.Equal(t, "1 Y", c.Duration)
		assert.Equal(t, "756733_T_eod_rth", c.Key)
		_, err := uuid.Parse(c.ID)
		assert.NoError(t, err)
	}
}

func TestHistSplitMaxChunk(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "hist", "split",
		"--end", "20240310 12:00:00",
		"--duration", "3 D",
		"--bar", "1 min",
		"--max-chunk", "1 D",
	)
	require.NoError(t, err)

	var resp struct {
		Data []HistChunk `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Data, 3)

	_, err = execute(t, "", "hist", "split", "--max-chunk", "forever")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
