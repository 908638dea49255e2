package costfunction

import (
	"github.com/pthyseba/astar/pkg/datastructure"
)

type Network interface {
	Distance(a, b datastructure.Index) uint64
	MaxFuel() uint64
}

// CostFunction turns a hop between two vertices into time and fuel.
type CostFunction interface {
	TravelTime(a, b datastructure.Index) uint64
	FuelConsumption(a, b datastructure.Index) uint64
	ChargeTime(fuelLeft uint64) uint64
	EstimateTravelTime(a, b datastructure.Index) uint64
	FuelLeftAfter(a, b datastructure.Index) uint64
}
