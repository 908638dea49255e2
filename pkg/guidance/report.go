package guidance

import (
	"fmt"
	"time"

	"github.com/pthyseba/astar/pkg"
	"github.com/pthyseba/astar/pkg/engine/routing"
)

func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(pkg.TIMESTAMP_LAYOUT)
}

// Report renders the outcome of a search as the lines printed by the command line tools.
func Report(result *routing.SearchResult, loc *time.Location) []string {
	if !result.Found {
		return []string{
			fmt.Sprintf("Destination %d unreachable from %d (max hop distance %d)", result.Destination, result.Origin,
				result.MaxHopDistance),
			fmt.Sprintf("Pop count is %d", result.PopCount),
		}
	}

	return []string{
		fmt.Sprintf("Destination %d reached! Departed at %s, arriving at %s (travel time: %d seconds)",
			result.Destination, FormatTimestamp(result.DepartureTime, loc), FormatTimestamp(result.ArrivalTime, loc),
			result.TravelTime),
		fmt.Sprintf("Pop count is %d", result.PopCount),
	}
}

// TraceLines renders every popped label as "Examining n (g, h)".
func TraceLines(trace []routing.TraceEntry) []string {
	lines := make([]string, len(trace))
	for i, e := range trace {
		lines[i] = fmt.Sprintf("Examining %d (%d, %d)", e.Node, e.TravelTimeFromOrigin, e.EstimatedTimeToDestination)
	}
	return lines
}
