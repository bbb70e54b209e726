package xiangqi

import (
	"fmt"
	"strings"
)

const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// Position 棋盘永远以走棋方视角存放：ours 是将要走棋的一方。
// 走完一步后用 Mirror 翻转，而不是在走法生成里区分红黑。
// 纯值类型，可以直接拷贝。
type Position struct {
	ours   BitBoard
	theirs BitBoard

	rooks     BitBoard
	knights   BitBoard
	elephants BitBoard
	advisors  BitBoard
	cannons   BitBoard
	pawns     BitBoard

	// 将不在上面的分类位棋盘里
	ourKing   Square
	theirKing Square

	flipped bool // 黑方走棋
}

// Counters 是 FEN 里的两个计数，不属于局面本身，也不进哈希。
type Counters struct {
	NoCapturePly int
	FullMoves    int
}

func NewPosition() Position {
	var p Position
	p.Clear()
	return p
}

func StartPosition() Position {
	p, _, err := DecodePosition(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) Clear() {
	p.ours = EmptyBB
	p.theirs = EmptyBB
	p.rooks = EmptyBB
	p.knights = EmptyBB
	p.elephants = EmptyBB
	p.advisors = EmptyBB
	p.cannons = EmptyBB
	p.pawns = EmptyBB
	p.ourKing = NoSquare
	p.theirKing = NoSquare
	p.flipped = false
}

// Mirror 交换双方并把棋盘绕中心翻转 180 度。
func (p *Position) Mirror() {
	p.ours, p.theirs = p.theirs.Mirror(), p.ours.Mirror()
	p.rooks = p.rooks.Mirror()
	p.knights = p.knights.Mirror()
	p.elephants = p.elephants.Mirror()
	p.advisors = p.advisors.Mirror()
	p.cannons = p.cannons.Mirror()
	p.pawns = p.pawns.Mirror()
	p.ourKing, p.theirKing = p.theirKing.Mirror(), p.ourKing.Mirror()
	p.flipped = !p.flipped
}

// Play 走一步并交换走棋方。返回值同 ApplyMove。
func (p *Position) Play(m Move) bool {
	reset := p.ApplyMove(m)
	p.Mirror()
	return reset
}

// SetPiece 摆子用，不做规则检查。our 为真表示放给走棋方。
func (p *Position) SetPiece(sq Square, pt PieceType, our bool) {
	p.RemovePiece(sq)
	if our {
		p.ours.Set(sq)
	} else {
		p.theirs.Set(sq)
	}
	if pt == PieceKing {
		if our {
			p.ourKing = sq
		} else {
			p.theirKing = sq
		}
		return
	}
	if bb := p.typeBoard(pt); bb != nil {
		bb.Set(sq)
	}
}

func (p *Position) RemovePiece(sq Square) {
	p.ours.Reset(sq)
	p.theirs.Reset(sq)
	for _, bb := range p.typeBoards() {
		bb.Reset(sq)
	}
	if p.ourKing == sq {
		p.ourKing = NoSquare
	}
	if p.theirKing == sq {
		p.theirKing = NoSquare
	}
}

func (p *Position) typeBoard(pt PieceType) *BitBoard {
	switch pt {
	case PieceRook:
		return &p.rooks
	case PieceKnight:
		return &p.knights
	case PieceElephant:
		return &p.elephants
	case PieceAdvisor:
		return &p.advisors
	case PieceCannon:
		return &p.cannons
	case PiecePawn:
		return &p.pawns
	}
	return nil
}

func (p *Position) typeBoards() [6]*BitBoard {
	return [6]*BitBoard{&p.rooks, &p.knights, &p.elephants, &p.advisors, &p.cannons, &p.pawns}
}

// PieceAt 返回格子上的棋子类型，以及它是否属于走棋方。
func (p *Position) PieceAt(sq Square) (PieceType, bool) {
	our := p.ours.Test(sq)
	if !our && !p.theirs.Test(sq) {
		return PieceNone, false
	}
	if sq == p.ourKing || sq == p.theirKing {
		return PieceKing, our
	}
	switch {
	case p.rooks.Test(sq):
		return PieceRook, our
	case p.knights.Test(sq):
		return PieceKnight, our
	case p.elephants.Test(sq):
		return PieceElephant, our
	case p.advisors.Test(sq):
		return PieceAdvisor, our
	case p.cannons.Test(sq):
		return PieceCannon, our
	case p.pawns.Test(sq):
		return PiecePawn, our
	}
	return PieceNone, our
}

func (p *Position) Ours() BitBoard      { return p.ours }
func (p *Position) Theirs() BitBoard    { return p.theirs }
func (p *Position) Occupied() BitBoard  { return p.ours.Or(p.theirs) }
func (p *Position) Rooks() BitBoard     { return p.rooks }
func (p *Position) Knights() BitBoard   { return p.knights }
func (p *Position) Elephants() BitBoard { return p.elephants }
func (p *Position) Advisors() BitBoard  { return p.advisors }
func (p *Position) Cannons() BitBoard   { return p.cannons }
func (p *Position) Pawns() BitBoard     { return p.pawns }
func (p *Position) OurKing() Square     { return p.ourKing }
func (p *Position) TheirKing() Square   { return p.theirKing }
func (p *Position) Flipped() bool       { return p.flipped }

func (p *Position) SideToMove() Side {
	if p.flipped {
		return Black
	}
	return Red
}

func (p *Position) Equal(other *Position) bool { return *p == *other }

// HasMatingMaterial 粗略判断是否还有子力可能将死对方：
// 车马炮兵全无（只剩将仕相）时不可能；
// 全盘只剩一个炮和双将时，炮没有炮架，也不可能。
func (p *Position) HasMatingMaterial() bool {
	attackers := p.rooks.Or(p.knights).Or(p.cannons).Or(p.pawns)
	if attackers.IsEmpty() {
		return false
	}
	if attackers.Count() == 1 && !p.cannons.IsEmpty() &&
		p.elephants.IsEmpty() && p.advisors.IsEmpty() {
		return false
	}
	return true
}

func (p *Position) DebugString() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Cols; c++ {
			pt, our := p.PieceAt(SquareAt(r, c))
			sb.WriteRune(pieceToChar(pt, our))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefghi\n")
	if p.flipped {
		sb.WriteString("(from black's eyes)")
	} else {
		sb.WriteString("(from red's eyes)")
	}
	fmt.Fprintf(&sb, " Hash: %d\n", p.Hash())
	return sb.String()
}
