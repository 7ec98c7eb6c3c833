package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/staffdb/internal/app"
	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/config"
	"github.com/dmitrijs2005/staffdb/internal/logging"
	"github.com/dmitrijs2005/staffdb/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return common.StatusUnknown.Code()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	a := app.NewApp(cfg, logger, render.NewTable(os.Stdout))

	return a.Run(ctx).Code()
}
