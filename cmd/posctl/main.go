package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopipy/posctl/internal/cmd"
	"github.com/shopipy/posctl/internal/errors"
	"github.com/shopipy/posctl/internal/exitcode"
	"github.com/shopipy/posctl/internal/tui"
)

func main() {
	// Create a context that listens for interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Check if the error was due to context cancellation (e.g., Ctrl+C)
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			exitcode.Exit(exitcode.Interrupted)
		}

		// Coded errors carry recovery suggestions; render them alongside
		// the message. Anything else gets the plain treatment.
		var posErr *errors.PosError
		if stderrors.As(err, &posErr) {
			fmt.Fprint(os.Stderr, tui.NewRenderer().Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
