package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kurochkinivan/order_reporter/internal/pipeline"
)

type loggerKey struct{}

const (
	exitCodeOK = iota
	exitCodeErr
	exitCodeSourceRead
	exitCodeSchema
	exitCodeSinkWrite
	exitCodeInvalidRecipient
	exitCodeMailSink
)

func main() {
	ctx := context.Background()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx = context.WithValue(ctx, loggerKey{}, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	err := cmd().Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "order_reporter: %v\n", err)
	}

	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeOK
	case errors.Is(err, pipeline.ErrSourceRead):
		return exitCodeSourceRead
	case errors.Is(err, pipeline.ErrSchema):
		return exitCodeSchema
	case errors.Is(err, pipeline.ErrSinkWrite):
		return exitCodeSinkWrite
	case errors.Is(err, pipeline.ErrInvalidRecipient):
		return exitCodeInvalidRecipient
	case errors.Is(err, pipeline.ErrMailSink):
		return exitCodeMailSink
	default:
		return exitCodeErr
	}
}
