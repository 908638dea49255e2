package guidance

import "github.com/pthyseba/astar/pkg/datastructure"

type Network interface {
	Distance(a, b datastructure.Index) uint64
}
