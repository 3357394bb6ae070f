package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimasmith/printtables/internal/app"
	"github.com/dimasmith/printtables/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		// No-op when the app already configured the logger.
		_ = logger.Init("info", false)
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ printtables server error", logger.ErrorF(err))
		os.Exit(1)
	}
}
