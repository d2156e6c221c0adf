package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cardlink/internal/connector"
	"cardlink/internal/gateway"
)

var version = "0.1.0"

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func envString(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		fmt.Println("Invalid", key, "- defaulting to", fallback)
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on environment variables")
	}

	logger, err := NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := config{
		addr: envString("ADDR", ":8080"),
		env:  envString("ENV", "development"),
		gateway: gatewayConfig{
			connectTimeout: envDuration("GATEWAY_CONNECT_TIMEOUT", 2*time.Second),
			headerTimeout:  envDuration("GATEWAY_RESPONSE_HEADER_TIMEOUT", 3*time.Second),
			overallTimeout: envDuration("GATEWAY_OVERALL_TIMEOUT", 4*time.Second),
		},
	}

	client := gateway.NewClient(gateway.Timeouts{
		Connect:        cfg.gateway.connectTimeout,
		ResponseHeader: cfg.gateway.headerTimeout,
		Overall:        cfg.gateway.overallTimeout,
	}, logger)

	app := &application{
		config:    cfg,
		logger:    logger,
		connector: connector.New(client, logger),
	}

	mux := app.mount()
	logger.Fatal(app.run(mux))
}
