package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine"
	"github.com/pthyseba/astar/pkg/engine/routing"
	"github.com/pthyseba/astar/pkg/guidance"
	"github.com/pthyseba/astar/pkg/logger"
	"github.com/pthyseba/astar/pkg/util"
	"go.uber.org/zap"
)

var (
	origin         = flag.String("origin", "0", "origin node")
	destination    = flag.String("destination", "31", "destination node")
	maxHopDistance = flag.String("max_hop_distance", "", "maximum distance of a single hop, empty uses MAX_HOP_DISTANCE")
	trace          = flag.Bool("trace", false, "print every label taken from the frontier")
	directions     = flag.Bool("directions", false, "print the charge / drive itinerary")
	utc            = flag.Bool("utc", false, "print timestamps in UTC instead of local time")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config := engine.NewConfigFromViper()
	config.ResultCacheSize = 0
	re, err := engine.NewEngine(config, logger, nil)
	if err != nil {
		logger.Fatal("could not build routing engine", zap.Error(err))
	}

	query, err := parseQuery(*origin, *destination, *maxHopDistance, config.DefaultMaxHopDistance)
	if err != nil {
		logger.Fatal("invalid query", zap.Error(err))
	}
	query.Departure = time.Now().Truncate(time.Second)
	query.Trace = *trace

	result, err := re.GetRoutingEngine().ShortestPath(query)
	if err != nil {
		logger.Fatal("route search failed", zap.Error(err))
	}

	loc := time.Local
	if *utc {
		loc = time.UTC
	}

	for _, line := range guidance.TraceLines(result.Trace) {
		fmt.Println(line)
	}
	for _, line := range guidance.Report(result, loc) {
		fmt.Println(line)
	}
	if !result.Found {
		os.Exit(1)
	}

	if *directions {
		network := re.GetRoutingEngine().GetNetwork()
		for _, ins := range guidance.NewDirectionBuilder(network).GetDrivingDirections(result.Path, network.MaxFuel()) {
			fmt.Printf("%6d  %s\n", ins.CumulativeTravelTime, ins.Description)
		}
	}
}

// parseQuery rejects node ids and hop distances that do not fit instead of wrapping them.
func parseQuery(origin, destination, maxHopDistance string, defaultMaxHopDistance uint64) (routing.Query, error) {
	var (
		q   routing.Query
		err error
	)
	q.Origin, err = datastructure.ParseIndex(origin)
	if err != nil {
		return q, fmt.Errorf("origin %q: %w", origin, err)
	}
	q.Destination, err = datastructure.ParseIndex(destination)
	if err != nil {
		return q, fmt.Errorf("destination %q: %w", destination, err)
	}
	q.MaxHopDistance = defaultMaxHopDistance
	if maxHopDistance != "" {
		q.MaxHopDistance, err = strconv.ParseUint(maxHopDistance, 10, 64)
		if err != nil {
			return q, fmt.Errorf("max_hop_distance %q: %w", maxHopDistance, err)
		}
	}
	return q, nil
}
