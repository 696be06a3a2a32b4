package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/popxauth/internal/buildinfo"
	"github.com/dmitrijs2005/popxauth/internal/cli"
	"github.com/dmitrijs2005/popxauth/internal/config"
	"github.com/dmitrijs2005/popxauth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
