package game

import (
	"errors"
	"fmt"
	"time"

	"cczero/internal/xiangqi"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrGameNotFound = errors.New("game not found")
)

// 无吃子 120 步（双方合计）判和
const NoCaptureDrawPlies = 120

// 同一局面第三次出现判和
const repetitionDraw = 3

type Result int8

const (
	Undecided Result = iota
	RedWon
	BlackWon
	Draw
)

func (r Result) String() string {
	switch r {
	case RedWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

func winner(side xiangqi.Side) Result {
	if side == xiangqi.Red {
		return RedWon
	}
	return BlackWon
}

// GameState 一盘棋：当前局面、着法记录，以及每个局面的哈希（用于判重复）。
type GameState struct {
	ID        string
	StartFEN  string
	CreatedAt time.Time
	UpdatedAt time.Time

	pos      xiangqi.Position
	counters xiangqi.Counters
	moves    []xiangqi.Move
	hashes   []uint64 // hashes[0] 是开局局面
}

func newGameState(id, fen string) (*GameState, error) {
	pos, counters, err := xiangqi.DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &GameState{
		ID:        id,
		StartFEN:  fen,
		CreatedAt: now,
		UpdatedAt: now,
		pos:       pos,
		counters:  counters,
		hashes:    []uint64{pos.Hash()},
	}, nil
}

func (g *GameState) Position() xiangqi.Position { return g.pos }
func (g *GameState) Counters() xiangqi.Counters { return g.counters }
func (g *GameState) FEN() string                { return g.pos.Encode(g.counters) }
func (g *GameState) SideToMove() xiangqi.Side   { return g.pos.SideToMove() }
func (g *GameState) LegalMoves() []xiangqi.Move { return g.pos.GenerateLegalMoves() }
func (g *GameState) Moves() []xiangqi.Move      { return append([]xiangqi.Move(nil), g.moves...) }
func (g *GameState) Repetitions() int           { return g.countHash(g.hashes[len(g.hashes)-1]) }

func (g *GameState) countHash(h uint64) (n int) {
	for _, x := range g.hashes {
		if x == h {
			n++
		}
	}
	return n
}

// Result 判定胜负。象棋没有逼和：轮到走的一方无子可动就是输。
func (g *GameState) Result() Result {
	side := g.pos.SideToMove()
	if g.pos.OurKing() == xiangqi.NoSquare {
		return winner(side.Opposite())
	}
	if len(g.pos.GenerateLegalMoves()) == 0 {
		return winner(side.Opposite())
	}
	if g.counters.NoCapturePly >= NoCaptureDrawPlies {
		return Draw
	}
	if g.Repetitions() >= repetitionDraw {
		return Draw
	}
	if !g.pos.HasMatingMaterial() {
		return Draw
	}
	return Undecided
}

// Play 走一步合法着法。着法坐标是走棋方视角（见 xiangqi.ParseMove）。
func (g *GameState) Play(m xiangqi.Move) error {
	if g.Result() != Undecided {
		return ErrGameOver
	}
	var legal xiangqi.Move
	for _, lm := range g.pos.GenerateLegalMoves() {
		if lm.Equal(m) {
			legal = lm
			break
		}
	}
	if legal == xiangqi.NoMove {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m.Format(g.pos.Flipped()))
	}

	black := g.pos.Flipped()
	if g.pos.Play(legal) {
		g.counters.NoCapturePly = 0
	} else {
		g.counters.NoCapturePly++
	}
	if black {
		g.counters.FullMoves++
	}
	g.moves = append(g.moves, legal)
	g.hashes = append(g.hashes, g.pos.Hash())
	g.UpdatedAt = time.Now()
	return nil
}

// PlayString 按棋盘绝对坐标（红方视角，如 "h2e2"）走一步。
func (g *GameState) PlayString(s string) error {
	m, err := xiangqi.ParseMove(s, g.pos.Flipped())
	if err != nil {
		return err
	}
	return g.Play(m)
}
