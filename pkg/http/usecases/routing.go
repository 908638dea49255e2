package usecases

import (
	"errors"
	"time"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
	"github.com/pthyseba/astar/pkg/guidance"
	"github.com/pthyseba/astar/pkg/util"
	"go.uber.org/zap"
)

var (
	ERRPATHNOTFOUND = errors.New("no path found")
)

type RouteRequest struct {
	Origin      datastructure.Index
	Destination datastructure.Index
	// nil picks the configured default
	MaxHopDistance *uint64
	// zero picks the clock
	Departure time.Time
	Trace     bool
}

type RouteResponse struct {
	Result       *routing.SearchResult
	Instructions []guidance.Instruction
}

type RoutingService struct {
	log                   *zap.Logger
	engine                RoutingEngine
	clock                 Clock
	defaultMaxHopDistance uint64
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, clock Clock, defaultMaxHopDistance uint64) *RoutingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &RoutingService{
		log:                   log,
		engine:                engine,
		clock:                 clock,
		defaultMaxHopDistance: defaultMaxHopDistance,
	}
}

func (rs *RoutingService) ShortestPath(req RouteRequest) (*RouteResponse, error) {
	maxHopDistance := rs.defaultMaxHopDistance
	if req.MaxHopDistance != nil {
		maxHopDistance = *req.MaxHopDistance
	}
	departure := req.Departure
	if departure.IsZero() {
		departure = rs.clock.Now()
	}

	result, err := rs.engine.ShortestPath(routing.Query{
		Origin:         req.Origin,
		Destination:    req.Destination,
		MaxHopDistance: maxHopDistance,
		Departure:      departure,
		Trace:          req.Trace,
	})
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrVertexOutOfRange), errors.Is(err, routing.ErrHopDistanceExceedsFuel):
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "%s", err.Error())
		case errors.Is(err, routing.ErrSearchLimitExceeded):
			return nil, util.WrapErrorf(err, util.ErrUnprocessable, "search aborted: %s", err.Error())
		default:
			rs.log.Error("route search failed", zap.Error(err))
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
		}
	}

	if !result.Found {
		return nil, util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound, "no path found from %d to %d with max hop distance %d",
			req.Origin, req.Destination, maxHopDistance)
	}

	network := rs.engine.GetNetwork()
	directionBuilder := guidance.NewDirectionBuilder(network)
	return &RouteResponse{
		Result:       result,
		Instructions: directionBuilder.GetDrivingDirections(result.Path, network.MaxFuel()),
	}, nil
}
