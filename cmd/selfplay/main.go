package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"cczero/internal/game"
	"cczero/internal/xiangqi"
)

// 随机着法对局，用来压测走法生成和终局判定
func main() {
	totalGames := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("maxplies", 400, "adjudicate a draw after this many plies")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	fen := flag.String("fen", xiangqi.StartFEN, "start position")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	m := game.NewManager()
	tally := make(map[game.Result]int)
	var plies int

	start := time.Now()
	for i := 0; i < *totalGames; i++ {
		g, err := m.NewGameFromFEN(*fen)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		res := playGame(g, rng, *maxPlies)
		tally[res]++
		plies += len(g.Moves())
		log.Printf("game %d: %v after %d plies (%s)", i+1, res, len(g.Moves()), g.FEN())
		if err := m.Delete(g.ID); err != nil {
			log.Fatalf("Failed to delete game: %v", err)
		}
	}
	duration := time.Since(start)

	fmt.Printf("\n=== Final Score (seed %d) ===\n", *seed)
	fmt.Printf("Red: %d\n", tally[game.RedWon])
	fmt.Printf("Black: %d\n", tally[game.BlackWon])
	fmt.Printf("Draws: %d\n", tally[game.Draw]+tally[game.Undecided])
	fmt.Printf("Plies: %d, Time: %v\n", plies, duration)
}

func playGame(g *game.GameState, rng *rand.Rand, maxPlies int) game.Result {
	for ply := 0; ply < maxPlies; ply++ {
		if res := g.Result(); res != game.Undecided {
			return res
		}
		moves := g.LegalMoves()
		if err := g.Play(moves[rng.Intn(len(moves))]); err != nil {
			log.Fatalf("Error: generated move rejected: %v", err)
		}
	}
	return g.Result()
}
