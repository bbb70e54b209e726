package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Encode 从红方视角输出 FEN：10 行用 “/” 隔开，空位用数字压缩，之后是走棋方和两个计数。
func (p *Position) Encode(c Counters) string {
	red := *p
	if red.flipped {
		red.Mirror()
	}
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		if r < Rows-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < Cols; col++ {
			pt, our := red.PieceAt(SquareAt(r, col))
			if pt == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pt, our))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if p.flipped {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	fmt.Fprintf(&sb, " - - %d %d", c.NoCapturePly, c.FullMoves)
	return sb.String()
}

// DecodePosition 解析 FEN。字段数可以是 2（局面 走棋方）、4（再加两个计数）
// 或 6（中间两个 “-” 占位）。出错时不会返回半成品局面。
func DecodePosition(fen string) (Position, Counters, error) {
	counters := Counters{FullMoves: 1}
	fail := func(reason string, args ...any) (Position, Counters, error) {
		return NewPosition(), Counters{}, newParseError(ErrInvalidFEN, fen, fmt.Sprintf(reason, args...))
	}

	fields := strings.Fields(fen)
	var counterFields []string
	switch len(fields) {
	case 2:
	case 4:
		counterFields = fields[2:4]
	case 6:
		if fields[2] != "-" || fields[3] != "-" {
			return fail("fields 3 and 4 must be \"-\"")
		}
		counterFields = fields[4:6]
	default:
		return fail("want 2, 4 or 6 fields, got %d", len(fields))
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Rows {
		return fail("want %d ranks, got %d", Rows, len(rows))
	}

	// 先按红方视角摆好：红方 = ours
	p := NewPosition()
	for i, rank := range rows {
		r := Rows - 1 - i
		c := 0
		for _, ch := range rank {
			if c >= Cols {
				return fail("rank %d is longer than %d squares", i+1, Cols)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return fail("unknown piece letter %q", ch)
			}
			sq := SquareAt(r, c)
			red := unicode.IsUpper(ch)
			if pt == PieceKing {
				if red && p.ourKing != NoSquare || !red && p.theirKing != NoSquare {
					return fail("more than one %s king", sideName(red))
				}
			}
			if err := checkPlacement(pt, red, r, c); err != "" {
				return fail("%s %s on %s: %s", sideName(red), pt, sq, err)
			}
			p.SetPiece(sq, pt, red)
			c++
		}
		if c != Cols {
			return fail("rank %d has %d squares, want %d", i+1, c, Cols)
		}
	}
	if p.ourKing == NoSquare || p.theirKing == NoSquare {
		return fail("both kings are required")
	}

	var black bool
	switch fields[1] {
	case "w", "W", "r", "R":
	case "b", "B":
		black = true
	default:
		return fail("bad side to move %q", fields[1])
	}

	if counterFields != nil {
		n, err := strconv.Atoi(counterFields[0])
		if err != nil || n < 0 {
			return fail("bad no-capture counter %q", counterFields[0])
		}
		m, err := strconv.Atoi(counterFields[1])
		if err != nil || m < 0 {
			return fail("bad move number %q", counterFields[1])
		}
		counters = Counters{NoCapturePly: n, FullMoves: m}
	}

	if black {
		p.Mirror()
	}
	return p, counters, nil
}

func sideName(red bool) string {
	if red {
		return "red"
	}
	return "black"
}

// checkPlacement 红方视角下检查将、仕、相的位置
func checkPlacement(pt PieceType, red bool, row, col int) string {
	own := row < RiverRow
	if !red {
		own = !own
	}
	switch pt {
	case PieceKing:
		if !own || !inPalace(row, col) {
			return "outside its palace"
		}
	case PieceAdvisor:
		if !own || !isAdvisorPoint(row, col) {
			return "not on an advisor point"
		}
	case PieceElephant:
		if !own || !isElephantPoint(row, col) {
			return "not on an elephant point"
		}
	}
	return ""
}
