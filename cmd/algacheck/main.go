// Command algacheck checks the algebraic laws of the structures registered
// with package structure and prints a report.
//
// It exits with status 1 if any law is violated, and with status 2 on usage or
// configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/alga/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	stop()
	if errors.Is(err, cli.ErrLawsViolated) {
		os.Exit(1)
	}
	os.Exit(2)
}
