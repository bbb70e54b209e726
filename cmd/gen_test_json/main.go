package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"cczero/internal/xiangqi"
)

// TestCase 一个局面和它的全部合法着法，供其他实现对拍。
// 着法用棋盘绝对坐标；NN 是走棋方视角下的策略下标。
type TestCase struct {
	FEN      string   `json:"fen"`
	InCheck  bool     `json:"inCheck"`
	Moves    []string `json:"moves"`
	NN       []int    `json:"nn"`
	Captures int      `json:"captures"`
	Perft2   uint64   `json:"perft2,omitempty"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("maxplies", 300, "plies per game at most")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	perft := flag.Bool("perft", false, "also record perft(2) for every position")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		pos := xiangqi.StartPosition()
		counters := xiangqi.Counters{FullMoves: 1}
		for ply := 0; ply < *maxPlies; ply++ {
			legalMoves := pos.GenerateLegalMoves()
			if len(legalMoves) == 0 || pos.TheirKing() == xiangqi.NoSquare {
				break
			}

			tc := TestCase{
				FEN:     pos.Encode(counters),
				InCheck: pos.IsInCheck(),
			}
			for _, mv := range legalMoves {
				tc.Moves = append(tc.Moves, mv.Format(pos.Flipped()))
				tc.NN = append(tc.NN, mv.AsNNIndex())
				if mv.IsCapture() {
					tc.Captures++
				}
			}
			if *perft {
				tc.Perft2 = xiangqi.Perft(&pos, 2)
			}
			testCases = append(testCases, tc)

			// 随机选一步
			black := pos.Flipped()
			if pos.Play(legalMoves[rng.Intn(len(legalMoves))]) {
				counters.NoCapturePly = 0
			} else {
				counters.NoCapturePly++
			}
			if black {
				counters.FullMoves++
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode test cases: %v", err)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
