package main

import (
	"flag"
	"fmt"
	"log"

	"cczero/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "position to inspect")
	flag.Parse()

	pos, counters, err := xiangqi.DecodePosition(*fen)
	if err != nil {
		log.Fatalf("Failed to parse FEN: %v", err)
	}
	fmt.Println("FEN:", pos.Encode(counters))
	fmt.Print(pos.DebugString())
	fmt.Println("Side to move:", pos.SideToMove(), "In check:", pos.IsInCheck())

	pseudo := pos.GeneratePseudolegalMoves()
	fmt.Println("Pseudo legal moves:", len(pseudo))

	legal := pos.GenerateLegalMoves()
	fmt.Println("Legal moves:", len(legal))
	for i, m := range legal {
		mark := ""
		if m.IsCapture() {
			mark = "x"
		}
		fmt.Printf("%-6s", m.Format(pos.Flipped())+mark)
		if (i+1)%10 == 0 || i == len(legal)-1 {
			fmt.Println()
		}
	}
	if !pos.HasMatingMaterial() {
		fmt.Println("No mating material left.")
	}
}
