// Package cli holds the start-up sequence shared by the notebook binaries.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/booklab"
	"github.com/viant/booklab/model/command"
)

// Run starts the variant REPL and returns the process exit code
func Run(variant command.Variant) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config, err := booklab.LoadDefaultConfig(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	srv, err := booklab.New(variant, booklab.WithConfig(config))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// readline reports Ctrl-C itself; this covers piped input and running child processes
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		cancel()
		_ = srv.Close(context.Background())
		if variant == command.PyBook {
			fmt.Fprintln(os.Stdout, "\nExiting PyBook.")
		}
		os.Exit(0)
	}()

	runErr := srv.Run(ctx)
	if err = srv.Close(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return 1
	}
	return 0
}
