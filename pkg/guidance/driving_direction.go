package guidance

import (
	"fmt"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
)

type InstructionType uint8

const (
	DEPART InstructionType = iota
	CHARGE
	DRIVE
	ARRIVE
)

func (t InstructionType) String() string {
	switch t {
	case DEPART:
		return "depart"
	case CHARGE:
		return "charge"
	case DRIVE:
		return "drive"
	case ARRIVE:
		return "arrive"
	default:
		return "unknown"
	}
}

// Instruction is one step of the itinerary. Duration is the time the step takes,
// CumulativeTravelTime the time elapsed since departure once it is done.
type Instruction struct {
	Type                 InstructionType
	From                 datastructure.Index
	To                   datastructure.Index
	Distance             uint64
	Duration             uint64
	CumulativeTravelTime uint64
	FuelAfter            uint64
	Description          string
}

type DirectionBuilder struct {
	network      Network
	instructions []Instruction
	cumulative   uint64
}

func NewDirectionBuilder(network Network) *DirectionBuilder {
	return &DirectionBuilder{
		network:      network,
		instructions: make([]Instruction, 0),
	}
}

// GetDrivingDirections turns the stops of a found route into depart / charge / drive / arrive steps.
func (db *DirectionBuilder) GetDrivingDirections(path []routing.Stop, maxFuel uint64) []Instruction {
	db.instructions = db.instructions[:0]
	db.cumulative = 0
	if len(path) == 0 {
		return []Instruction{}
	}

	origin := path[0]
	db.add(Instruction{
		Type:        DEPART,
		From:        origin.Node,
		To:          origin.Node,
		FuelAfter:   origin.FuelOnArrival,
		Description: fmt.Sprintf("depart from node %d with %d fuel", origin.Node, origin.FuelOnArrival),
	})

	for i := 0; i < len(path)-1; i++ {
		cur, next := path[i], path[i+1]

		if cur.ChargeTime > 0 {
			db.add(Instruction{
				Type:        CHARGE,
				From:        cur.Node,
				To:          cur.Node,
				Duration:    cur.ChargeTime,
				FuelAfter:   maxFuel,
				Description: fmt.Sprintf("charge %d s at node %d (%d -> %d fuel)", cur.ChargeTime, cur.Node, cur.FuelOnArrival, maxFuel),
			})
		}

		dist := db.network.Distance(cur.Node, next.Node)
		db.add(Instruction{
			Type:        DRIVE,
			From:        cur.Node,
			To:          next.Node,
			Distance:    dist,
			Duration:    next.ArrivalOffset - cur.ArrivalOffset - cur.ChargeTime,
			FuelAfter:   next.FuelOnArrival,
			Description: fmt.Sprintf("drive from node %d to node %d (%d units)", cur.Node, next.Node, dist),
		})
	}

	last := path[len(path)-1]
	db.add(Instruction{
		Type:        ARRIVE,
		From:        last.Node,
		To:          last.Node,
		FuelAfter:   last.FuelOnArrival,
		Description: fmt.Sprintf("arrive at node %d with %d fuel", last.Node, last.FuelOnArrival),
	})

	out := make([]Instruction, len(db.instructions))
	copy(out, db.instructions)
	return out
}

func (db *DirectionBuilder) add(ins Instruction) {
	db.cumulative += ins.Duration
	ins.CumulativeTravelTime = db.cumulative
	db.instructions = append(db.instructions, ins)
}
