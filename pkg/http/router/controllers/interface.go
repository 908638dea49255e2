package controllers

import (
	"github.com/pthyseba/astar/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(req usecases.RouteRequest) (*usecases.RouteResponse, error)
}
