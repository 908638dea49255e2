package http

import (
	"context"
	"errors"
	"net/http"

	http_router "github.com/pthyseba/astar/pkg/http/router"
	"github.com/pthyseba/astar/pkg/http/router/controllers"
	http_server "github.com/pthyseba/astar/pkg/http/server"
	"github.com/pthyseba/astar/pkg/metrics"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Wait returns its error once it stops.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
	met *metrics.Metric,
) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_RPS", 100.0)
	viper.SetDefault("RATE_LIMIT_BURST", 200)

	config := http_server.Config{
		Port:      viper.GetInt("API_PORT"),
		Timeout:   viper.GetDuration("API_TIMEOUT"),
		RateLimit: viper.GetFloat64("RATE_LIMIT_RPS"),
		RateBurst: viper.GetInt("RATE_LIMIT_BURST"),
	}

	server := http_router.NewAPI(log, met)

	g, gctx := errgroup.WithContext(ctx)
	s.g = g

	g.Go(func() error {
		err := server.Run(
			gctx, config,
			useRateLimit, routingService,
		)
		if errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
