package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/topup/internal/app"
	"github.com/dmitrijs2005/topup/internal/buildinfo"
	"github.com/dmitrijs2005/topup/internal/config"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.ShowVersion {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	a, err := app.NewApp(cfg, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = a.Run(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
