package controllers

import (
	"time"

	"github.com/pthyseba/astar/pkg/guidance"
	"github.com/pthyseba/astar/pkg/http/usecases"
)

// computeRouteRequest holds the raw query parameters, validated before parsing.
type computeRouteRequest struct {
	Origin         string `json:"origin" validate:"required,number"`
	Destination    string `json:"destination" validate:"required,number"`
	MaxHopDistance string `json:"max_hop_distance" validate:"omitempty,number"`
	DepartureTime  string `json:"departure_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Trace          string `json:"trace" validate:"omitempty,boolean"`
}

type stopResponse struct {
	Node          uint32 `json:"node"`
	ArrivalOffset uint64 `json:"arrival_offset"`
	ArrivalTime   string `json:"arrival_time"`
	FuelOnArrival uint64 `json:"fuel_on_arrival"`
	ChargeTime    uint64 `json:"charge_time"`
}

type instructionResponse struct {
	Type                 string `json:"type"`
	From                 uint32 `json:"from"`
	To                   uint32 `json:"to"`
	Distance             uint64 `json:"distance"`
	Duration             uint64 `json:"duration"`
	CumulativeTravelTime uint64 `json:"cumulative_travel_time"`
	FuelAfter            uint64 `json:"fuel_after"`
	Description          string `json:"description"`
}

type traceResponse struct {
	Node                       uint32 `json:"node"`
	TravelTimeFromOrigin       uint64 `json:"travel_time_from_origin"`
	EstimatedTimeToDestination uint64 `json:"estimated_time_to_destination"`
}

type computeRouteResponse struct {
	Origin         uint32                `json:"origin"`
	Destination    uint32                `json:"destination"`
	MaxHopDistance uint64                `json:"max_hop_distance"`
	TravelTime     uint64                `json:"travel_time"`
	DepartureTime  string                `json:"departure_time"`
	ArrivalTime    string                `json:"arrival_time"`
	PopCount       int                   `json:"pop_count"`
	Path           []stopResponse        `json:"path"`
	Instructions   []instructionResponse `json:"instructions"`
	Trace          []traceResponse       `json:"trace,omitempty"`
}

func NewComputeRouteResponse(resp *usecases.RouteResponse) computeRouteResponse {
	result := resp.Result
	out := computeRouteResponse{
		Origin:         uint32(result.Origin),
		Destination:    uint32(result.Destination),
		MaxHopDistance: result.MaxHopDistance,
		TravelTime:     result.TravelTime,
		DepartureTime:  result.DepartureTime.Format(time.RFC3339),
		ArrivalTime:    result.ArrivalTime.Format(time.RFC3339),
		PopCount:       result.PopCount,
		Path:           make([]stopResponse, len(result.Path)),
		Instructions:   NewInstructions(resp.Instructions),
	}
	for i, stop := range result.Path {
		out.Path[i] = stopResponse{
			Node:          uint32(stop.Node),
			ArrivalOffset: stop.ArrivalOffset,
			ArrivalTime:   stop.ArrivalTime.Format(time.RFC3339),
			FuelOnArrival: stop.FuelOnArrival,
			ChargeTime:    stop.ChargeTime,
		}
	}
	for _, e := range result.Trace {
		out.Trace = append(out.Trace, traceResponse{
			Node:                       uint32(e.Node),
			TravelTimeFromOrigin:       e.TravelTimeFromOrigin,
			EstimatedTimeToDestination: e.EstimatedTimeToDestination,
		})
	}
	return out
}

func NewInstructions(instructions []guidance.Instruction) []instructionResponse {
	out := make([]instructionResponse, len(instructions))
	for i, ins := range instructions {
		out[i] = instructionResponse{
			Type:                 ins.Type.String(),
			From:                 uint32(ins.From),
			To:                   uint32(ins.To),
			Distance:             ins.Distance,
			Duration:             ins.Duration,
			CumulativeTravelTime: ins.CumulativeTravelTime,
			FuelAfter:            ins.FuelAfter,
			Description:          ins.Description,
		}
	}
	return out
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
