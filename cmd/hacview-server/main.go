package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"hacview-backend/lib/configutil"
	"hacview-backend/lib/serviceutil"
	"hacview-backend/lib/telemetry"
	"hacview-backend/services/studentdata"

	"github.com/joho/godotenv"
)

type PortalConfig struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type Config struct {
	Port   int          `json:"port"`
	Portal PortalConfig `json:"portal"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	telemetry.SetupSlog(*verbose)

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("load .env", err)
	}

	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "hacview-server")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(ctx)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if base := os.Getenv("HAC_BASE_URL"); base != "" {
		cfg.Portal.BaseUrl = base
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	service := studentdata.NewService(studentdata.ServiceOptions{
		BaseUrl: cfg.Portal.BaseUrl,
		Timeout: time.Duration(cfg.Portal.TimeoutSeconds) * time.Second,
	})

	slog.Info("starting hacview-server", "portal", cfg.Portal.BaseUrl)
	serviceutil.StartHttpServer(cfg.Port, newRouter(service))
}
