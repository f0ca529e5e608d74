// Command leaderboardctl prints a ranked leaderboard in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = service.Version

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "Error: "+err.Error())
		stop()
		os.Exit(1)
	}
}
