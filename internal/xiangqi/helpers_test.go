package xiangqi

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"
)

// samplePositions 从开局随机对弈，收集沿途所有局面（含开局）。
func samplePositions(t *testing.T, games, plies int) []Position {
	t.Helper()
	var out []Position
	for g := 0; g < games; g++ {
		rng := rand.New(rand.NewSource(int64(g + 1)))
		p := StartPosition()
		out = append(out, p)
		for ply := 0; ply < plies; ply++ {
			moves := p.GenerateLegalMoves()
			if len(moves) == 0 || p.TheirKing() == NoSquare {
				break
			}
			p.Play(moves[rng.Intn(len(moves))])
			out = append(out, p)
		}
	}
	return out
}

func mustDecode(t *testing.T, fen string) Position {
	t.Helper()
	p, _, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return p
}

func sq(name string) Square {
	s, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

// movesFrom 走法里起点为 from 的终点集合
func movesFrom(moves []Move, from Square) BitBoard {
	var bb BitBoard
	for _, m := range moves {
		if m.From() == from {
			bb.Set(m.To())
		}
	}
	return bb
}

func squaresBB(names ...string) BitBoard {
	var bb BitBoard
	for _, n := range names {
		bb.Set(sq(n))
	}
	return bb
}

// swapColors 把 FEN 旋转 180 度、红黑互换、走棋方互换：描述的是同一个局面换一方来下。
func swapColors(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	out := make([]string, len(ranks))
	for i, rank := range ranks {
		rs := []rune(rank)
		for j := range rs {
			ch := rs[len(rs)-1-j]
			if unicode.IsUpper(ch) {
				ch = unicode.ToLower(ch)
			} else {
				ch = unicode.ToUpper(ch)
			}
			out[len(ranks)-1-i] = out[len(ranks)-1-i] + string(ch)
		}
	}
	side := "b"
	if fields[1] == "b" {
		side = "w"
	}
	return strings.Join(out, "/") + " " + side
}
