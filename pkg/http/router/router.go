package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	_ "github.com/pthyseba/astar/docs"
	"github.com/pthyseba/astar/pkg/http/router/controllers"
	router_helper "github.com/pthyseba/astar/pkg/http/router/routerhelper"
	http_server "github.com/pthyseba/astar/pkg/http/server"
	"github.com/pthyseba/astar/pkg/metrics"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "net/http/pprof"
)

type API struct {
	log *zap.Logger
	met *metrics.Metric
}

func NewAPI(log *zap.Logger, met *metrics.Metric) *API {
	return &API{log: log, met: met}
}

// Handler builds the router with its middleware chain.
func (api *API) Handler(config http_server.Config, useRateLimit bool, routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	root := router_helper.NewRouteGroup(router, "/")

	root.GET("/doc/*any", swaggerHandler)

	root.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)
	if api.met != nil {
		root.Handler(http.MethodGet, "/metrics", api.met.Handler())
	}

	group := root.Group("/api")

	navigatorRoutes := controllers.New(routingService, api.log)

	navigatorRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log, api.met)}
	if useRateLimit {
		mwChain = append(mwChain, Limit(config.RateLimit, config.RateBurst))
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			Charging A* API
//	@version		1.0
//	@description	Charging-aware shortest path search on a one-dimensional node network.
//	@host			localhost:6060
//	@BasePath		/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,

	useRateLimit bool,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(config, useRateLimit, routingService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
