package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/adminsuite/tenantconsole/internal/buildinfo"
	"github.com/adminsuite/tenantconsole/internal/client/cli"
	"github.com/adminsuite/tenantconsole/internal/client/config"
	"github.com/adminsuite/tenantconsole/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg, logging.NewZapLogger(zl))
	app.Run(ctx)
}
