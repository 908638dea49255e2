package routing

import (
	"time"

	da "github.com/pthyseba/astar/pkg/datastructure"
)

// Stop is one vertex of the found route.
type Stop struct {
	Node          da.Index
	ArrivalOffset uint64 // time units from departure
	ArrivalTime   time.Time
	FuelOnArrival uint64
	ChargeTime    uint64 // paid at this stop before leaving. zero at the destination
}

// TraceEntry is one label removed from the frontier: its vertex, g and h.
type TraceEntry struct {
	Node                       da.Index
	TravelTimeFromOrigin       uint64
	EstimatedTimeToDestination uint64
}

type SearchResult struct {
	Origin         da.Index
	Destination    da.Index
	MaxHopDistance uint64

	Found         bool
	TravelTime    uint64
	DepartureTime time.Time
	ArrivalTime   time.Time

	PopCount        int // labels removed from the frontier, discarded ones included
	NumSettledNodes int

	Path  []Stop
	Trace []TraceEntry
}

func (sr *SearchResult) TravelDuration() time.Duration {
	return unitsToDuration(sr.TravelTime)
}

// Rebase returns a copy of the result shifted to another departure instant. costs do not depend
// on the departure, only the absolute times move.
func (sr *SearchResult) Rebase(departure time.Time) *SearchResult {
	rebased := *sr
	rebased.DepartureTime = departure
	if sr.Found {
		rebased.ArrivalTime = departure.Add(unitsToDuration(sr.TravelTime))
	}

	rebased.Path = make([]Stop, len(sr.Path))
	for i, stop := range sr.Path {
		stop.ArrivalTime = departure.Add(unitsToDuration(stop.ArrivalOffset))
		rebased.Path[i] = stop
	}
	if sr.Trace != nil {
		rebased.Trace = append([]TraceEntry(nil), sr.Trace...)
	}
	return &rebased
}

// Nodes returns the vertex sequence of the route.
func (sr *SearchResult) Nodes() []da.Index {
	nodes := make([]da.Index, len(sr.Path))
	for i, stop := range sr.Path {
		nodes[i] = stop.Node
	}
	return nodes
}

// one time unit is one second
func unitsToDuration(units uint64) time.Duration {
	return time.Duration(units) * time.Second
}
