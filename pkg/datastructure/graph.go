package datastructure

import (
	"fmt"
	"strconv"
)

type Index uint32

// LineNetwork is the implicit one-dimensional network: vertices are the integers [0, maxNodes)
// and the edge between two vertices is derived from their distance on the line.
type LineNetwork struct {
	maxNodes uint32
	maxFuel  uint64
}

func NewLineNetwork(maxNodes uint32, maxFuel uint64) *LineNetwork {
	return &LineNetwork{
		maxNodes: maxNodes,
		maxFuel:  maxFuel,
	}
}

func (g *LineNetwork) NumberOfVertices() int {
	return int(g.maxNodes)
}

// GetSentinel returns the "no center" vertex id, one past the last valid vertex.
func (g *LineNetwork) GetSentinel() Index {
	return Index(g.maxNodes)
}

func (g *LineNetwork) MaxFuel() uint64 {
	return g.maxFuel
}

func (g *LineNetwork) IsValidVertex(v Index) bool {
	return uint32(v) < g.maxNodes
}

// Distance is |b - a|. symmetric, zero iff a == b.
func (g *LineNetwork) Distance(a, b Index) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

func (g *LineNetwork) String() string {
	return fmt.Sprintf("LineNetwork(maxNodes=%d, maxFuel=%d)", g.maxNodes, g.maxFuel)
}

func ParseIndex(s string) (Index, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(v), nil
}
