package routing

import (
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/pthyseba/astar/pkg/datastructure"
	"go.uber.org/zap"
)

// QueryCacheKey identifies a departure independent search.
type QueryCacheKey struct {
	Origin         da.Index
	Destination    da.Index
	MaxHopDistance uint64
}

type Query struct {
	Origin         da.Index
	Destination    da.Index
	MaxHopDistance uint64
	Departure      time.Time
	Trace          bool
}

// ChargingRoutingEngine owns the network and cost model shared by all queries. each query runs
// its own ChargingAstar, so queries may run concurrently.
type ChargingRoutingEngine struct {
	network      *da.LineNetwork
	costFunction CostFunction
	logger       *zap.Logger
	resultCache  *lru.Cache[QueryCacheKey, *SearchResult]
	observer     SearchObserver
	maxPops      int
}

func NewChargingRoutingEngine(network *da.LineNetwork, costFunction CostFunction, logger *zap.Logger,
	resultCache *lru.Cache[QueryCacheKey, *SearchResult], observer SearchObserver, maxPops int) *ChargingRoutingEngine {
	if observer == nil {
		observer = noopObserver{}
	}
	return &ChargingRoutingEngine{
		network:      network,
		costFunction: costFunction,
		logger:       logger,
		resultCache:  resultCache,
		observer:     observer,
		maxPops:      maxPops,
	}
}

func (crp *ChargingRoutingEngine) GetNetwork() *da.LineNetwork {
	return crp.network
}

// ShortestPath answers q, from the result cache when possible. traced queries always search.
func (crp *ChargingRoutingEngine) ShortestPath(q Query) (*SearchResult, error) {
	key := QueryCacheKey{Origin: q.Origin, Destination: q.Destination, MaxHopDistance: q.MaxHopDistance}

	if crp.resultCache != nil && !q.Trace {
		cached, ok := crp.resultCache.Get(key)
		crp.observer.ObserveCacheHit(ok)
		if ok {
			return cached.Rebase(q.Departure), nil
		}
	}

	options := []Option{WithMaxPops(crp.maxPops)}
	if q.Trace {
		options = append(options, WithTrace())
	}
	search := NewChargingAstar(crp.network, crp.costFunction, options...)

	before := time.Now()
	result, err := search.ShortestPathSearch(q.Origin, q.Destination, q.MaxHopDistance, q.Departure)
	elapsed := time.Since(before)

	if err != nil {
		outcome := OUTCOME_REJECTED
		if errors.Is(err, ErrSearchLimitExceeded) {
			outcome = OUTCOME_ABORTED
		}
		crp.observer.ObserveSearch(outcome, search.numPops, elapsed)
		crp.logger.Debug("search failed",
			zap.Uint32("origin", uint32(q.Origin)), zap.Uint32("destination", uint32(q.Destination)),
			zap.Uint64("maxHopDistance", q.MaxHopDistance), zap.Error(err))
		return nil, err
	}

	outcome := OUTCOME_UNREACHABLE
	if result.Found {
		outcome = OUTCOME_FOUND
	}
	crp.observer.ObserveSearch(outcome, result.PopCount, elapsed)
	crp.logger.Debug("search finished",
		zap.String("outcome", outcome),
		zap.Uint32("origin", uint32(q.Origin)), zap.Uint32("destination", uint32(q.Destination)),
		zap.Uint64("maxHopDistance", q.MaxHopDistance),
		zap.Uint64("travelTime", result.TravelTime),
		zap.Int("popCount", result.PopCount),
		zap.Int("settledNodes", result.NumSettledNodes),
		zap.Duration("elapsed", elapsed))

	if crp.resultCache != nil && !q.Trace {
		crp.resultCache.Add(key, result.Rebase(q.Departure))
	}
	return result, nil
}
