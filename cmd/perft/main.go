package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"cczero/internal/xiangqi"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "position to search")
	depth := flag.Int("depth", 4, "perft depth")
	workers := flag.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	divide := flag.Bool("divide", false, "print node counts per root move")
	cacheSize := flag.Int("cache", 0, "transposition cache entries (0 = off)")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println("pprof listening on", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	pos, _, err := xiangqi.DecodePosition(*fen)
	if err != nil {
		log.Fatalf("Failed to parse FEN: %v", err)
	}

	if *divide {
		runDivide(&pos, *depth)
		return
	}

	var cache *xiangqi.PerftCache
	if *cacheSize > 0 {
		cache = xiangqi.NewPerftCache(*cacheSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes, err := xiangqi.PerftParallel(ctx, &pos, d, *workers, cache)
		if err != nil {
			log.Fatalf("perft(%d) interrupted: %v", d, err)
		}
		duration := time.Since(start)
		fmt.Printf("perft(%d) = %d, Time: %v, NPS: %d\n",
			d, nodes, duration, int64(float64(nodes)/duration.Seconds()))
	}
	if cache != nil {
		hits, misses := cache.Stats()
		log.Printf("cache hits %d misses %d", hits, misses)
	}
}

func runDivide(pos *xiangqi.Position, depth int) {
	start := time.Now()
	div := xiangqi.Divide(pos, depth)
	moves := maps.Keys(div)
	slices.Sort(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m.Format(pos.Flipped()), div[m])
		total += div[m]
	}
	fmt.Printf("\nMoves: %d\nNodes: %d\nTime: %v\n", len(moves), total, time.Since(start))
}
