package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/raywall/fast-json-api/api"
	"github.com/raywall/fast-json-api/pkg/config"
	"github.com/raywall/fast-json-api/pkg/logger"
	"github.com/raywall/fast-json-api/pkg/metrics"
	"github.com/raywall/fast-json-api/pkg/models"
	"github.com/raywall/fast-json-api/pkg/observability"
	"github.com/raywall/fast-json-api/pkg/transport"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = func(handler interface{}) { lambda.Start(handler) }
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("FATAL")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger := logger.Configure(cfg.Logging)

	obs, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return fmt.Errorf("falha ao iniciar métricas: %w", err)
	}
	defer obs.Close()

	registry := models.Default()
	pipeline := api.New(registry,
		logger.NewRequestLine(appLogger),
		metrics.NewRequestRecorder(obs.Provider),
	)

	appLogger.Info().
		Str("runtime", cfg.Runtime).
		Strs("models", registry.Names()).
		Msg("Serviço inicializado")

	switch cfg.Runtime {
	case config.RuntimeLocal:
		return serverStarter(ctx, cfg, pipeline, appLogger,
			transport.WithHandler(cfg.Metrics.Prometheus.Path, obs.Handler))
	case config.RuntimeLambda:
		handler := transport.NewLambdaHandler(pipeline, appLogger)
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Runtime)
	}
}
