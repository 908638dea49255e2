package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pthyseba/astar/pkg"
	"golang.org/x/exp/rand"
)

var (
	numQueries = flag.Int("n", 10000, "number of queries")
	maxNodes   = flag.Uint("max_nodes", uint(pkg.DEFAULT_MAX_NODES), "queries use nodes in [0, max_nodes)")
	seed       = flag.Uint64("seed", 0, "random seed, 0 uses the clock")
	out        = flag.String("out", "random_queries.txt", "output file")
)

func main() {
	flag.Parse()
	if *maxNodes == 0 {
		panic("max_nodes must be positive")
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	for i := 0; i < *numQueries; i++ {
		origin := rd.Intn(int(*maxNodes))
		destination := rd.Intn(int(*maxNodes))
		if _, err := fmt.Fprintf(w, "%d %d\n", origin, destination); err != nil {
			panic(err)
		}
	}
}
