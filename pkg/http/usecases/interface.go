package usecases

import (
	"time"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
)

type RoutingEngine interface {
	ShortestPath(q routing.Query) (*routing.SearchResult, error)
	GetNetwork() *datastructure.LineNetwork
}

// Clock supplies the departure instant when the caller does not pick one.
type Clock interface {
	Now() time.Time
}
