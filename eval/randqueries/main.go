package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pthyseba/astar/pkg/concurrent"
	da "github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine"
	"github.com/pthyseba/astar/pkg/engine/routing"
	log "github.com/pthyseba/astar/pkg/logger"
	"github.com/pthyseba/astar/pkg/util"
	"go.uber.org/zap"
)

var (
	queriesFile = flag.String("queries", "random_queries.txt", "file with one \"origin destination\" pair per line")
	resultFile  = flag.String("out", "rand_queries_result.txt", "output file")
	workers     = flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxHop      = flag.Uint64("max_hop_distance", 0, "max hop distance, 0 uses MAX_HOP_DISTANCE")
)

type spParam struct {
	row int
	s   da.Index
	t   da.Index
}

type spResult struct {
	row      int
	s        da.Index
	t        da.Index
	found    bool
	sp       uint64
	pops     int
	duration time.Duration
	err      error
}

var errInterrupted = errors.New("interrupted")

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	config := engine.NewConfigFromViper()
	// every query must actually search
	config.ResultCacheSize = 0
	re, err := engine.NewEngine(config, logger, nil)
	if err != nil {
		panic(err)
	}
	hop := config.DefaultMaxHopDistance
	if *maxHop > 0 {
		hop = *maxHop
	}

	queries, err := readQueries(*queriesFile)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	calcsSP := func(p spParam) spResult {
		if util.StopConcurrentOperation(ctx) {
			return spResult{row: p.row, s: p.s, t: p.t, err: errInterrupted}
		}
		before := time.Now()
		res, err := re.GetRoutingEngine().ShortestPath(routing.Query{
			Origin:         p.s,
			Destination:    p.t,
			MaxHopDistance: hop,
			Departure:      before,
		})
		r := spResult{row: p.row, s: p.s, t: p.t, duration: time.Since(before), err: err}
		if err == nil {
			r.found = res.Found
			r.sp = res.TravelTime
			r.pops = res.PopCount
		}
		return r
	}

	pool := concurrent.NewWorkerPool[spParam, spResult](*workers, len(queries))
	for _, q := range queries {
		pool.AddJob(q)
	}
	pool.Close()
	pool.Start(calcsSP)
	go pool.Wait()

	rows := make([]spResult, len(queries))
	done := 0
	for r := range pool.CollectResults() {
		rows[r.row] = r
		done++
		if done%1000 == 0 {
			logger.Sugar().Infof("done query %v", done)
		}
	}

	if err := writeResults(*resultFile, rows); err != nil {
		panic(err)
	}
	logger.Info("finished random queries", zap.Int("queries", len(rows)), zap.String("out", *resultFile))
}

func readQueries(path string) ([]spParam, error) {
	fq, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fq.Close()

	br := bufio.NewReader(fq)
	queries := make([]spParam, 0)
	n := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ff := util.Fields(line)
		if len(ff) < 2 {
			continue
		}
		s, err := da.ParseIndex(ff[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		t, err := da.ParseIndex(ff[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		queries = append(queries, spParam{row: n, s: s, t: t})
		n++
	}
	return queries, nil
}

// writeResults writes "origin destination travel_time pop_count duration_us", travel_time -1 when unreachable.
func writeResults(path string, rows []spResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	for _, r := range rows {
		sp := "-1"
		if r.err != nil {
			sp = "error"
		} else if r.found {
			sp = fmt.Sprintf("%d", r.sp)
		}
		if _, err := fmt.Fprintf(w, "%d %d %s %d %d\n", r.s, r.t, sp, r.pops, r.duration.Microseconds()); err != nil {
			return err
		}
	}
	return w.Flush()
}
