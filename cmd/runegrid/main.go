// Command runegrid draws the Runes Reforged tree as a grid of icons.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/runegrid/internal/cli"
	rgerrors "github.com/matzehuels/runegrid/pkg/errors"
)

// Exit codes.
const (
	exitError    = 1
	exitUsage    = 2   // invalid config, flags or input
	exitCanceled = 130 // standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	if err == nil {
		return
	}
	cancel()
	os.Exit(exitCode(err))
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		if code := rgerrors.GetCode(err); code != "" {
			c.Logger.Error(rgerrors.UserMessage(err), "code", code, "err", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitCanceled
	case rgerrors.Is(err, rgerrors.ErrCodeInvalidConfig),
		rgerrors.Is(err, rgerrors.ErrCodeInvalidInput),
		rgerrors.Is(err, rgerrors.ErrCodeInvalidFormat):
		return exitUsage
	default:
		return exitError
	}
}
