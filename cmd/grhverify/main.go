// Command grhverify numerically tests the explicit inequality that
// certifies a quadratic Dirichlet L-function has no nontrivial zero below
// a target height.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quadlab/grhverify/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(cli.GetExitCode(err))
	}
}
