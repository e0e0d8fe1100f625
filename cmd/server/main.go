package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/jobnotes/internal/app"
	flag "github.com/spf13/pflag"
)

func main() {
	opts := app.DefaultOptions()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVarP(&opts.ConfigFile, "config", "c", opts.ConfigFile, "path to the JSONC config file")
	fs.StringVar(&opts.EnvFile, "env-file", opts.EnvFile, "env file loaded outside production")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	slog.Info("Starting server...")
	if err := app.Run(ctx, opts); err != nil {
		slog.Error("Application failed to start.", "reason", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Server shutdown gracefully.")
}
