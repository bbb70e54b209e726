package xiangqi

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// BitBoard 是 90 个格子的位集合：Lo 存 0..63，Hi 的低 26 位存 64..89。
// 90 位以上恒为 0。
type BitBoard struct {
	Lo uint64
	Hi uint64
}

const (
	hiBits = NumSquares - 64
	hiMask = uint64(1)<<hiBits - 1

	// 128 位整体反转后，第 s 位落在 127-s，右移 128-90 位即得到 89-s。
	mirrorShift = 128 - NumSquares
)

var (
	EmptyBB = BitBoard{}
	FullBB  = BitBoard{Lo: ^uint64(0), Hi: hiMask}
)

func checkSquare(s Square) {
	if debugChecks && !s.valid() {
		panic(fmt.Sprintf("xiangqi: bit index %d out of range", s))
	}
}

func SquareBB(s Square) BitBoard {
	checkSquare(s)
	if s < 64 {
		return BitBoard{Lo: 1 << s}
	}
	return BitBoard{Hi: 1 << (s - 64)}
}

func (b BitBoard) Test(s Square) bool {
	checkSquare(s)
	if s < 64 {
		return b.Lo&(1<<s) != 0
	}
	return b.Hi&(1<<(s-64)) != 0
}

func (b *BitBoard) Set(s Square) {
	checkSquare(s)
	if s < 64 {
		b.Lo |= 1 << s
	} else {
		b.Hi |= 1 << (s - 64)
	}
}

func (b *BitBoard) Reset(s Square) {
	checkSquare(s)
	if s < 64 {
		b.Lo &^= 1 << s
	} else {
		b.Hi &^= 1 << (s - 64)
	}
}

// SetIf 只在 cond 为真时置位，不会清位。
func (b *BitBoard) SetIf(s Square, cond bool) {
	if cond {
		b.Set(s)
	}
}

func (b BitBoard) And(o BitBoard) BitBoard    { return BitBoard{b.Lo & o.Lo, b.Hi & o.Hi} }
func (b BitBoard) Or(o BitBoard) BitBoard     { return BitBoard{b.Lo | o.Lo, b.Hi | o.Hi} }
func (b BitBoard) Xor(o BitBoard) BitBoard    { return BitBoard{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }
func (b BitBoard) AndNot(o BitBoard) BitBoard { return BitBoard{b.Lo &^ o.Lo, b.Hi &^ o.Hi} }

// Not 只在 90 位范围内取反。
func (b BitBoard) Not() BitBoard { return BitBoard{^b.Lo, ^b.Hi & hiMask} }

func (b BitBoard) Intersects(o BitBoard) bool {
	return b.Lo&o.Lo != 0 || b.Hi&o.Hi != 0
}

func (b BitBoard) IsEmpty() bool { return b.Lo == 0 && b.Hi == 0 }

func (b BitBoard) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// First 返回最低位的格子；空集返回 NoSquare。
func (b BitBoard) First() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return NoSquare
}

// PopFirst 取出并清掉最低位。
func (b *BitBoard) PopFirst() Square {
	if b.Lo != 0 {
		s := Square(bits.TrailingZeros64(b.Lo))
		b.Lo &= b.Lo - 1
		return s
	}
	if b.Hi != 0 {
		s := Square(64 + bits.TrailingZeros64(b.Hi))
		b.Hi &= b.Hi - 1
		return s
	}
	return NoSquare
}

// Squares 按编号升序遍历所有置位的格子；可以重复 range。
func (b BitBoard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for x := b; !x.IsEmpty(); {
			if !yield(x.PopFirst()) {
				return
			}
		}
	}
}

// Mirror 把第 s 位搬到第 89-s 位。
// 先做 128 位反转（每一半用 bits.Reverse64 完成 1..32 的交换，再交换两半即步长 64），
// 再整体右移 mirrorShift 把 90 位窗口对齐回低位。
func (b BitBoard) Mirror() BitBoard {
	rLo := bits.Reverse64(b.Hi)
	rHi := bits.Reverse64(b.Lo)
	return BitBoard{
		Lo: rLo>>mirrorShift | rHi<<(64-mirrorShift),
		Hi: rHi >> mirrorShift,
	}
}

func (b BitBoard) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Cols; c++ {
			if b.Test(SquareAt(r, c)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
