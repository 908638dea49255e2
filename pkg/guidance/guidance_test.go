package guidance

import (
	"testing"
	"time"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
	"github.com/stretchr/testify/assert"
)

func TestGetDrivingDirections(t *testing.T) {
	network := datastructure.NewLineNetwork(100, 50)
	db := NewDirectionBuilder(network)

	path := []routing.Stop{
		{Node: 0, ArrivalOffset: 0, FuelOnArrival: 50, ChargeTime: 0},
		{Node: 5, ArrivalOffset: 5, FuelOnArrival: 45, ChargeTime: 5},
		{Node: 10, ArrivalOffset: 15, FuelOnArrival: 45},
	}

	got := db.GetDrivingDirections(path, 50)

	want := []struct {
		typ        InstructionType
		from, to   datastructure.Index
		duration   uint64
		cumulative uint64
		fuelAfter  uint64
		desc       string
	}{
		{DEPART, 0, 0, 0, 0, 50, "depart from node 0 with 50 fuel"},
		{DRIVE, 0, 5, 5, 5, 45, "drive from node 0 to node 5 (5 units)"},
		{CHARGE, 5, 5, 5, 10, 50, "charge 5 s at node 5 (45 -> 50 fuel)"},
		{DRIVE, 5, 10, 5, 15, 45, "drive from node 5 to node 10 (5 units)"},
		{ARRIVE, 10, 10, 0, 15, 45, "arrive at node 10 with 45 fuel"},
	}

	if !assert.Len(t, got, len(want)) {
		return
	}
	for i, w := range want {
		assert.Equal(t, w.typ, got[i].Type, "step %d", i)
		assert.Equal(t, w.from, got[i].From, "step %d", i)
		assert.Equal(t, w.to, got[i].To, "step %d", i)
		assert.Equal(t, w.duration, got[i].Duration, "step %d", i)
		assert.Equal(t, w.cumulative, got[i].CumulativeTravelTime, "step %d", i)
		assert.Equal(t, w.fuelAfter, got[i].FuelAfter, "step %d", i)
		assert.Equal(t, w.desc, got[i].Description, "step %d", i)
	}

	// the builder is reusable
	again := db.GetDrivingDirections(path, 50)
	assert.Equal(t, got, again)

	assert.Empty(t, db.GetDrivingDirections(nil, 50))
}

func TestInstructionTypeString(t *testing.T) {
	assert.Equal(t, "depart", DEPART.String())
	assert.Equal(t, "charge", CHARGE.String())
	assert.Equal(t, "drive", DRIVE.String())
	assert.Equal(t, "arrive", ARRIVE.String())
	assert.Equal(t, "unknown", InstructionType(42).String())
}

func TestReport(t *testing.T) {
	departure := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		result *routing.SearchResult
		loc    *time.Location
		want   []string
	}{
		{
			name: "reached",
			result: &routing.SearchResult{
				Origin: 0, Destination: 31, MaxHopDistance: 5, Found: true, TravelTime: 57,
				DepartureTime: departure, ArrivalTime: departure.Add(57 * time.Second), PopCount: 12,
			},
			loc: time.UTC,
			want: []string{
				"Destination 31 reached! Departed at 2024-03-01T08:00:00+0000, arriving at 2024-03-01T08:00:57+0000 (travel time: 57 seconds)",
				"Pop count is 12",
			},
		},
		{
			name: "reached, other zone",
			result: &routing.SearchResult{
				Origin: 0, Destination: 31, MaxHopDistance: 5, Found: true, TravelTime: 57,
				DepartureTime: departure, ArrivalTime: departure.Add(57 * time.Second), PopCount: 12,
			},
			loc: time.FixedZone("UTC+7", 7*60*60),
			want: []string{
				"Destination 31 reached! Departed at 2024-03-01T15:00:00+0700, arriving at 2024-03-01T15:00:57+0700 (travel time: 57 seconds)",
				"Pop count is 12",
			},
		},
		{
			name: "unreachable",
			result: &routing.SearchResult{
				Origin: 5, Destination: 90, MaxHopDistance: 0, DepartureTime: departure, PopCount: 1,
			},
			loc: time.UTC,
			want: []string{
				"Destination 90 unreachable from 5 (max hop distance 0)",
				"Pop count is 1",
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Report(tt.result, tt.loc))
		})
	}
}

func TestTraceLines(t *testing.T) {
	lines := TraceLines([]routing.TraceEntry{
		{Node: 0, TravelTimeFromOrigin: 0, EstimatedTimeToDestination: 31},
		{Node: 5, TravelTimeFromOrigin: 5, EstimatedTimeToDestination: 26},
	})
	assert.Equal(t, []string{"Examining 0 (0, 31)", "Examining 5 (5, 26)"}, lines)
	assert.Empty(t, TraceLines(nil))
}
