package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"hacview-backend/lib/configutil"
	"hacview-backend/lib/hacapi"
	"hacview-backend/lib/serviceutil"
	"hacview-backend/lib/telemetry"

	"github.com/joho/godotenv"
)

type ApiConfig struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type Config struct {
	Port int       `json:"port"`
	Api  ApiConfig `json:"api"`
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

	tel, err := telemetry.SetupFromEnv(ctx, "hacview-lite")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(ctx)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if base := os.Getenv("HAC_API_BASE_URL"); base != "" {
		cfg.Api.BaseUrl = base
	}
	if cfg.Port == 0 {
		cfg.Port = 8001
	}

	client := hacapi.NewClient(hacapi.ClientOptions{
		BaseUrl: cfg.Api.BaseUrl,
		Timeout: time.Duration(cfg.Api.TimeoutSeconds) * time.Second,
	})

	slog.Info("starting hacview-lite", "api", cfg.Api.BaseUrl)
	serviceutil.StartHttpServer(cfg.Port, newRouter(client))
}
