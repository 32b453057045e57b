package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/danmuck/avrctl/internal/devices"
	"github.com/danmuck/avrctl/internal/driver"
	"github.com/danmuck/avrctl/internal/logging"
	"github.com/danmuck/avrctl/internal/server"
)

func main() {
	configPath := flag.String("config", "avrctl.toml", "path to the avrctl TOML config")
	flag.Parse()

	logging.ConfigureRuntime()
	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "avrctl: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := loadServiceConfig(path)
	if err != nil {
		return err
	}

	drv, err := driver.New(cfg.Driver)
	if err != nil {
		return err
	}
	devices.Register(drv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	drv.Start(ctx)
	defer drv.Stop()

	if strings.TrimSpace(cfg.AdminListenAddr) == "" {
		<-ctx.Done()
		return nil
	}
	return server.New(cfg.Driver.Name, cfg.AdminListenAddr, cfg.CorsOrigins).Run(ctx)
}
