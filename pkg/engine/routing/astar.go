package routing

import (
	"errors"
	"fmt"
	"time"

	da "github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/util"
)

var (
	ErrVertexOutOfRange       = errors.New("vertex out of range")
	ErrHopDistanceExceedsFuel = errors.New("max hop distance exceeds max fuel")
	ErrSearchLimitExceeded    = errors.New("search pop limit exceeded")
)

type searchOptions struct {
	trace       bool
	maxPops     int
	preallocate int
}

type Option func(*searchOptions)

// WithTrace records every label removed from the frontier in SearchResult.Trace.
func WithTrace() Option {
	return func(o *searchOptions) { o.trace = true }
}

// WithMaxPops aborts the search with ErrSearchLimitExceeded once n labels were popped without
// reaching the destination. n <= 0 means unbounded.
func WithMaxPops(n int) Option {
	return func(o *searchOptions) { o.maxPops = n }
}

// WithPreallocate sizes the frontier up front.
func WithPreallocate(n int) Option {
	return func(o *searchOptions) { o.preallocate = n }
}

// ChargingAstar is an A* search whose edge weight is the charging time at the tail plus the travel
// time of the hop. the closed set is keyed by vertex: once a vertex is expanded, later labels
// reaching it are dropped when popped.
type ChargingAstar struct {
	network      *da.LineNetwork
	costFunction CostFunction
	opts         searchOptions

	pq         *da.MinHeap[da.Label]
	closed     []bool
	expansions []uint32
	settled    []da.Label // expanded labels, predecessors of everything pushed later
	seq        uint64

	numPops         int
	numSettledNodes int
	trace           []TraceEntry
}

func NewChargingAstar(network *da.LineNetwork, costFunction CostFunction, options ...Option) *ChargingAstar {
	opts := searchOptions{}
	for _, option := range options {
		option(&opts)
	}

	return &ChargingAstar{
		network:      network,
		costFunction: costFunction,
		opts:         opts,
		pq:           da.NewdAryHeap[da.Label](HEAP_ARITY),
	}
}

func (us *ChargingAstar) reset() {
	n := us.network.NumberOfVertices()
	us.closed = make([]bool, n)
	us.expansions = make([]uint32, n)
	us.settled = make([]da.Label, 0, n)
	if us.opts.preallocate > 0 {
		us.pq.Preallocate(us.opts.preallocate)
	} else {
		us.pq.Clear()
	}
	us.seq = 0
	us.numPops = 0
	us.numSettledNodes = 0
	us.trace = nil
}

// ShortestPathSearch runs the search from origin to destination. an unreachable destination is
// reported with Found == false and a nil error; errors are reserved for invalid input and for
// hitting the pop limit.
func (us *ChargingAstar) ShortestPathSearch(origin, destination da.Index, maxHopDistance uint64,
	departure time.Time) (*SearchResult, error) {
	if !us.network.IsValidVertex(origin) {
		return nil, fmt.Errorf("origin %d not in [0, %d): %w", origin, us.network.NumberOfVertices(), ErrVertexOutOfRange)
	}
	if !us.network.IsValidVertex(destination) {
		return nil, fmt.Errorf("destination %d not in [0, %d): %w", destination, us.network.NumberOfVertices(), ErrVertexOutOfRange)
	}
	if maxHopDistance > us.network.MaxFuel() {
		return nil, fmt.Errorf("max hop distance %d, max fuel %d: %w", maxHopDistance, us.network.MaxFuel(),
			ErrHopDistanceExceedsFuel)
	}

	us.reset()

	us.push(da.NewLabel(origin, 0, us.costFunction.EstimateTravelTime(origin, destination),
		us.network.MaxFuel(), departure, da.NO_PARENT))

	for !us.pq.IsEmpty() {
		if us.opts.maxPops > 0 && us.numPops >= us.opts.maxPops {
			return nil, fmt.Errorf("%d labels popped, %d still queued: %w", us.numPops, us.pq.Size(),
				ErrSearchLimitExceeded)
		}

		item, _ := us.pq.ExtractMin()
		bestCandidate := item.GetItem()
		us.numPops++
		if us.opts.trace {
			us.trace = append(us.trace, TraceEntry{
				Node:                       bestCandidate.ArrivalNode,
				TravelTimeFromOrigin:       bestCandidate.TravelTimeFromOrigin,
				EstimatedTimeToDestination: bestCandidate.EstimatedTimeToDestination,
			})
		}

		if bestCandidate.ArrivalNode == destination {
			return us.buildResult(origin, destination, maxHopDistance, departure, bestCandidate), nil
		}

		if us.closed[bestCandidate.ArrivalNode] {
			// an earlier, cheaper label already expanded this vertex
			continue
		}

		us.expand(bestCandidate, destination, maxHopDistance)
	}

	return &SearchResult{
		Origin:          origin,
		Destination:     destination,
		MaxHopDistance:  maxHopDistance,
		Found:           false,
		DepartureTime:   departure,
		PopCount:        us.numPops,
		NumSettledNodes: us.numSettledNodes,
		Trace:           us.trace,
	}, nil
}

// expand pushes one successor label per legal candidate of u and closes u.
func (us *ChargingAstar) expand(u da.Label, destination da.Index, maxHopDistance uint64) {
	uPos := len(us.settled)
	us.settled = append(us.settled, u)

	chargeTime := us.costFunction.ChargeTime(u.FuelLeftUponArrival)

	filter := da.NewCandidateFilter(us.network, u.ArrivalNode, maxHopDistance)
	for it := filter.Begin(); it.Next(); {
		v := it.Node()

		timeToNextNode := chargeTime + us.costFunction.TravelTime(u.ArrivalNode, v)

		us.push(da.NewLabel(
			v,
			u.TravelTimeFromOrigin+timeToNextNode,
			us.costFunction.EstimateTravelTime(v, destination),
			us.costFunction.FuelLeftAfter(u.ArrivalNode, v),
			u.ArrivalTime.Add(unitsToDuration(timeToNextNode)),
			uPos,
		))
	}

	us.closed[u.ArrivalNode] = true
	us.expansions[u.ArrivalNode]++
	us.numSettledNodes++
}

func (us *ChargingAstar) push(l da.Label) {
	us.pq.Insert(da.NewPriorityQueueNode(da.NewPriorityKey(l.Priority(), l.ArrivalNode, us.seq), l))
	us.seq++
}

func (us *ChargingAstar) buildResult(origin, destination da.Index, maxHopDistance uint64, departure time.Time,
	target da.Label) *SearchResult {

	labels := []da.Label{target}
	for p := target.GetParent(); p != da.NO_PARENT; p = us.settled[p].GetParent() {
		labels = append(labels, us.settled[p])
	}
	labels = util.ReverseG(labels)

	path := make([]Stop, 0, len(labels))
	for i, l := range labels {
		stop := Stop{
			Node:          l.ArrivalNode,
			ArrivalOffset: l.TravelTimeFromOrigin,
			ArrivalTime:   l.ArrivalTime,
			FuelOnArrival: l.FuelLeftUponArrival,
		}
		if i < len(labels)-1 {
			stop.ChargeTime = us.costFunction.ChargeTime(l.FuelLeftUponArrival)
		}
		path = append(path, stop)
	}

	return &SearchResult{
		Origin:          origin,
		Destination:     destination,
		MaxHopDistance:  maxHopDistance,
		Found:           true,
		TravelTime:      target.TravelTimeFromOrigin,
		DepartureTime:   departure,
		ArrivalTime:     target.ArrivalTime,
		PopCount:        us.numPops,
		NumSettledNodes: us.numSettledNodes,
		Path:            path,
		Trace:           us.trace,
	}
}

// ExpansionCount is how many times v was expanded during the last search. never more than one.
func (us *ChargingAstar) ExpansionCount(v da.Index) int {
	if int(v) >= len(us.expansions) {
		return 0
	}
	return int(us.expansions[v])
}

func (us *ChargingAstar) GetNumSettledNodes() int {
	return us.numSettledNodes
}
