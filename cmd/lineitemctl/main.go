// Command lineitemctl runs line item synchronizations by hand against the
// configured ad server.
package main

import (
	"context"
	"io"
	"os"

	"dfp-sync/internal/app"
	"dfp-sync/internal/config"
	"dfp-sync/internal/core/port"
)

func main() {
	if err := newRootCmd(openUseCase).Execute(); err != nil {
		os.Exit(1)
	}
}

// openUseCase wires the synchronizer from the environment. Logs go to
// stderr so stdout carries only command output.
func openUseCase(ctx context.Context, stderr io.Writer) (port.LineItemUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg, cfg.Log.New(stderr))
	if err != nil {
		return nil, nil, err
	}
	return a.UseCase, a.Close, nil
}
