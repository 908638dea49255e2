package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pthyseba/astar/pkg/costfunction"
	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
	"go.uber.org/zap"
)

type Engine struct {
	config                Config
	chargingRoutingEngine *routing.ChargingRoutingEngine
}

func (e *Engine) GetRoutingEngine() *routing.ChargingRoutingEngine {
	return e.chargingRoutingEngine
}

func (e *Engine) GetConfig() Config {
	return e.config
}

func NewEngine(config Config, logger *zap.Logger, observer routing.SearchObserver) (*Engine, error) {
	routingEngine, err := initializeRoutingEngine(config, logger, observer)
	if err != nil {
		return nil, err
	}
	return &Engine{
		config:                config,
		chargingRoutingEngine: routingEngine,
	}, nil
}

func initializeRoutingEngine(config Config, logger *zap.Logger, observer routing.SearchObserver,
) (*routing.ChargingRoutingEngine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Starting charging-aware A* routing engine...",
		zap.Uint32("maxNodes", config.MaxNodes),
		zap.Uint64("maxFuel", config.MaxFuel),
		zap.Uint64("defaultMaxHopDistance", config.DefaultMaxHopDistance),
		zap.Int("maxPops", config.MaxPops))

	network := datastructure.NewLineNetwork(config.MaxNodes, config.MaxFuel)
	costFunction := costfunction.NewChargingTimeFunction(network)

	var resultCache *lru.Cache[routing.QueryCacheKey, *routing.SearchResult]
	if config.ResultCacheSize > 0 {
		var err error
		resultCache, err = lru.New[routing.QueryCacheKey, *routing.SearchResult](config.ResultCacheSize)
		if err != nil {
			return nil, err
		}
	}

	return routing.NewChargingRoutingEngine(network, costFunction, logger, resultCache, observer, config.MaxPops), nil
}
