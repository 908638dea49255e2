package usecases

import (
	"errors"
	"testing"
	"time"

	"github.com/pthyseba/astar/pkg/costfunction"
	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
	"github.com/pthyseba/astar/pkg/guidance"
	"github.com/pthyseba/astar/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingEngine struct {
	network *datastructure.LineNetwork
	err     error
}

func (f failingEngine) ShortestPath(q routing.Query) (*routing.SearchResult, error) {
	return nil, f.err
}

func (f failingEngine) GetNetwork() *datastructure.LineNetwork {
	return f.network
}

func newRoutingService(clock Clock) *RoutingService {
	network := datastructure.NewLineNetwork(100, 50)
	engine := routing.NewChargingRoutingEngine(network, costfunction.NewChargingTimeFunction(network), zap.NewNop(),
		nil, nil, 0)
	return NewRoutingService(zap.NewNop(), engine, clock, 5)
}

func TestRoutingServiceShortestPath(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	rs := newRoutingService(FixedClock{At: now})

	resp, err := rs.ShortestPath(RouteRequest{Origin: 0, Destination: 31})
	require.NoError(t, err)

	assert.Equal(t, uint64(57), resp.Result.TravelTime)
	assert.Equal(t, uint64(5), resp.Result.MaxHopDistance)
	assert.Equal(t, now, resp.Result.DepartureTime)
	assert.Equal(t, now.Add(57*time.Second), resp.Result.ArrivalTime)

	require.NotEmpty(t, resp.Instructions)
	assert.Equal(t, guidance.DEPART, resp.Instructions[0].Type)
	last := resp.Instructions[len(resp.Instructions)-1]
	assert.Equal(t, guidance.ARRIVE, last.Type)
	assert.Equal(t, uint64(57), last.CumulativeTravelTime)
}

func TestRoutingServiceExplicitInput(t *testing.T) {
	rs := newRoutingService(FixedClock{At: time.Unix(0, 0).UTC()})
	departure := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	hop := uint64(10)

	resp, err := rs.ShortestPath(RouteRequest{Origin: 0, Destination: 31, MaxHopDistance: &hop, Departure: departure,
		Trace: true})
	require.NoError(t, err)
	assert.Equal(t, uint64(52), resp.Result.TravelTime)
	assert.Equal(t, departure, resp.Result.DepartureTime)
	assert.NotEmpty(t, resp.Result.Trace)
}

func TestRoutingServiceErrors(t *testing.T) {
	zero := uint64(0)
	tooLong := uint64(51)

	testCases := []struct {
		name     string
		service  *RoutingService
		req      RouteRequest
		wantCode error
		wantErr  error
	}{
		{
			name:     "unreachable",
			service:  newRoutingService(nil),
			req:      RouteRequest{Origin: 5, Destination: 90, MaxHopDistance: &zero},
			wantCode: util.ErrNotFound,
			wantErr:  ERRPATHNOTFOUND,
		},
		{
			name:     "vertex out of range",
			service:  newRoutingService(nil),
			req:      RouteRequest{Origin: 5, Destination: 900},
			wantCode: util.ErrBadParamInput,
			wantErr:  routing.ErrVertexOutOfRange,
		},
		{
			name:     "hop longer than a tank",
			service:  newRoutingService(nil),
			req:      RouteRequest{Origin: 5, Destination: 90, MaxHopDistance: &tooLong},
			wantCode: util.ErrBadParamInput,
			wantErr:  routing.ErrHopDistanceExceedsFuel,
		},
		{
			name: "pop limit",
			service: NewRoutingService(zap.NewNop(), failingEngine{err: routing.ErrSearchLimitExceeded},
				SystemClock{}, 5),
			req:      RouteRequest{Origin: 5, Destination: 90},
			wantCode: util.ErrUnprocessable,
			wantErr:  routing.ErrSearchLimitExceeded,
		},
		{
			name: "anything else",
			service: NewRoutingService(zap.NewNop(), failingEngine{err: errors.New("boom")},
				SystemClock{}, 5),
			req:      RouteRequest{Origin: 5, Destination: 90},
			wantCode: util.ErrInternalServerError,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.service.ShortestPath(tt.req)
			assert.Nil(t, resp)

			var uerr *util.Error
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.wantCode, uerr.Code())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSystemClock(t *testing.T) {
	now := SystemClock{}.Now()
	assert.Equal(t, 0, now.Nanosecond())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}
