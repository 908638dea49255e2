package datastructure

import "time"

const NO_PARENT = -1

// Label is one partial path ending at ArrivalNode. labels are values; several labels may end at
// the same vertex until that vertex is settled.
type Label struct {
	ArrivalNode                Index
	TravelTimeFromOrigin       uint64 // travel + charging time from the origin along this path
	EstimatedTimeToDestination uint64 // heuristic, computed for ArrivalNode, not accumulated
	FuelLeftUponArrival        uint64 // before recharging at ArrivalNode
	ArrivalTime                time.Time

	parent int // position of the predecessor in the settled label list, NO_PARENT at the origin
}

func NewLabel(arrivalNode Index, travelTime, estimate, fuelLeft uint64, arrivalTime time.Time, parent int) Label {
	return Label{
		ArrivalNode:                arrivalNode,
		TravelTimeFromOrigin:       travelTime,
		EstimatedTimeToDestination: estimate,
		FuelLeftUponArrival:        fuelLeft,
		ArrivalTime:                arrivalTime,
		parent:                     parent,
	}
}

func (l Label) GetParent() int {
	return l.parent
}

// Priority is the A* key g + h.
func (l Label) Priority() uint64 {
	return l.TravelTimeFromOrigin + l.EstimatedTimeToDestination
}
