package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/rickgao/tws-tools/internal/cli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Input failures were already reported on stdout by the command.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitCommandError {
		logger.Error("twsfmt failed", "error", err)
	}
	os.Exit(cli.GetExitCode(err))
}
