package routing

import (
	"time"

	da "github.com/pthyseba/astar/pkg/datastructure"
)

type CostFunction interface {
	TravelTime(a, b da.Index) uint64
	ChargeTime(fuelLeft uint64) uint64
	EstimateTravelTime(a, b da.Index) uint64
	FuelLeftAfter(a, b da.Index) uint64
}

type Router interface {
	ShortestPathSearch(origin, destination da.Index, maxHopDistance uint64,
		departure time.Time) (*SearchResult, error)
}

// SearchObserver receives one call per finished query.
type SearchObserver interface {
	ObserveSearch(outcome string, popCount int, elapsed time.Duration)
	ObserveCacheHit(hit bool)
}

type noopObserver struct{}

func (noopObserver) ObserveSearch(string, int, time.Duration) {}
func (noopObserver) ObserveCacheHit(bool)                     {}
