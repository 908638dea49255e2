package main

import (
	"context"
	"flag"

	"github.com/pthyseba/astar/pkg/engine"
	"github.com/pthyseba/astar/pkg/http"
	"github.com/pthyseba/astar/pkg/http/server"
	"github.com/pthyseba/astar/pkg/http/usecases"
	"github.com/pthyseba/astar/pkg/logger"
	"github.com/pthyseba/astar/pkg/metrics"
	"github.com/pthyseba/astar/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "limit requests per client ip (RATE_LIMIT_RPS, RATE_LIMIT_BURST)")
	apiPort      = flag.Int("port", 0, "api port, overrides API_PORT")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *apiPort > 0 {
		viper.Set("API_PORT", *apiPort)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	met := metrics.DefaultMetric()
	config := engine.NewConfigFromViper()
	routingEngine, err := engine.NewEngine(config, logger, met)
	if err != nil {
		logger.Fatal("could not build routing engine", zap.Error(err))
	}

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), usecases.SystemClock{},
		config.DefaultMaxHopDistance)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api, err := http.NewServer(logger).Use(ctx, logger, *useRateLimit, routingService, met)
	if err != nil {
		logger.Fatal("could not start api", zap.Error(err))
	}

	signal := server.GracefulShutdown()

	logger.Info("Charging A* Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
