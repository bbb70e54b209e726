package xiangqi

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Move 16 位编码：
//
//	bits 0..6   to
//	bits 7..13  from
//	bit  14     吃子标记，仅供搜索排序，不参与比较和索引
//	bit  15     保留
//
// 零值 NoMove 表示“没有着法”（a0a0 不可能是真实着法）。
type Move uint16

const NoMove Move = 0

const (
	moveSquareMask = 0x7F
	moveFromShift  = 7

	moveFlagCapture = Move(1 << 14)
	moveKeyMask     = Move(1<<14 - 1)

	// NumPackedMoves AsPackedInt 的取值范围 [0, NumPackedMoves)
	NumPackedMoves = NumSquares * NumSquares
	// NumNNMoves 走法生成器能产生的所有 (from, to) 组合数：
	// 1530 直线 + 508 马 + 16 相 + 8 仕
	NumNNMoves = 2062
)

var (
	packedToNN [NumPackedMoves]int16
	nnToMove   [NumNNMoves]Move
)

func NewMove(from, to Square) Move {
	checkSquare(from)
	checkSquare(to)
	return Move(from)<<moveFromShift | Move(to)
}

func (m Move) checkReal() {
	if debugChecks && m.Key() == NoMove {
		panic("xiangqi: decoding NoMove")
	}
}

func (m Move) From() Square {
	m.checkReal()
	return Square(m>>moveFromShift) & moveSquareMask
}

func (m Move) To() Square {
	m.checkReal()
	return Square(m) & moveSquareMask
}

func (m Move) IsCapture() bool       { return m&moveFlagCapture != 0 }
func (m Move) WithCapture() Move     { return m | moveFlagCapture }
func (m Move) Key() Move             { return m & moveKeyMask }
func (m Move) Equal(other Move) bool { return m.Key() == other.Key() }

// Mirror 与 Square.Mirror / Position.Mirror 一致。
func (m Move) Mirror() Move {
	return NewMove(m.From().Mirror(), m.To().Mirror()) | m&^moveKeyMask
}

// AsPackedInt = from*90 + to，范围 [0, NumPackedMoves)。
func (m Move) AsPackedInt() int {
	return int(m.From())*NumSquares + int(m.To())
}

// AsNNIndex 神经网络策略头的下标 [0, NumNNMoves)；生成器不可能产生的着法返回 -1。
func (m Move) AsNNIndex() int {
	return int(packedToNN[m.AsPackedInt()])
}

func MoveFromNNIndex(idx int) Move {
	if idx < 0 || idx >= NumNNMoves {
		return NoMove
	}
	return nnToMove[idx]
}

func (m Move) String() string { return m.Format(false) }

// Format 输出 4 字符坐标，如 "h2e2"。black 为真时先翻转回红方坐标
// （棋盘以走棋方视角存放，黑方走棋时需要翻转）。
func (m Move) Format(black bool) string {
	if m.Key() == NoMove {
		return "0000"
	}
	if black {
		m = m.Mirror()
	}
	return m.From().String() + m.To().String()
}

// ParseMove 解析 "h2e2" 这样的坐标着法；black 为真时按黑方视角翻转。
func ParseMove(str string, black bool) (Move, error) {
	if len(str) != 4 {
		return NoMove, newParseError(ErrInvalidMove, str, "want 4 characters")
	}
	from, err := ParseSquare(str[:2])
	if err != nil {
		return NoMove, newParseError(ErrInvalidMove, str, fmt.Sprintf("bad origin: %v", err))
	}
	to, err := ParseSquare(str[2:])
	if err != nil {
		return NoMove, newParseError(ErrInvalidMove, str, fmt.Sprintf("bad destination: %v", err))
	}
	if from == to {
		return NoMove, newParseError(ErrInvalidMove, str, "origin equals destination")
	}
	m := NewMove(from, to)
	if black {
		m = m.Mirror()
	}
	return m, nil
}

// initMoveIndex 枚举己方视角下所有可能的 (from, to)：
// 车炮将兵都落在同行同列里，另加马、相（本方半场）、仕（本方九宫）。
func initMoveIndex() {
	for i := range packedToNN {
		packedToNN[i] = -1
	}
	var packed []int
	for from := Square(0); from < NumSquares; from++ {
		dests := lineAttacks[from].Or(knightAttacks[from])
		if from.Row() < RiverRow {
			dests = dests.Or(elephantAttacks[from]).Or(advisorAttacks[from])
		}
		for to := range dests.Squares() {
			packed = append(packed, int(from)*NumSquares+int(to))
		}
	}
	slices.Sort(packed)
	if len(packed) != NumNNMoves {
		panic(fmt.Sprintf("xiangqi: move index has %d entries, want %d", len(packed), NumNNMoves))
	}
	for idx, p := range packed {
		packedToNN[p] = int16(idx)
		nnToMove[idx] = NewMove(Square(p/NumSquares), Square(p%NumSquares))
	}
}
