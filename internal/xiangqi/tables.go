package xiangqi

var rookDirs = [4][2]int{{+1, 0}, {-1, 0}, {0, -1}, {0, +1}}

var bishopDirs = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}

// 8 种“日”字：终点 + 马腿
var knightLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

// 不考虑占位的到达表。车、炮靠方向逐格走，不进表。
var (
	kingAttacks     [NumSquares]BitBoard // 九宫内上下左右
	advisorAttacks  [NumSquares]BitBoard // 九宫内斜一格，只在仕点位之间
	elephantAttacks [NumSquares]BitBoard // 田字，只在本方半场的相点位之间；象眼由走法生成检查
	knightAttacks   [NumSquares]BitBoard // 日字；马腿由走法生成检查
	lineAttacks     [NumSquares]BitBoard // 同行同列，用来预筛车炮

	// pawnAttacks[0] 己方兵（向 row+1 走），pawnAttacks[1] 对方兵（向 row-1 走）
	pawnAttacks [2][NumSquares]BitBoard
	// theirPawnAttackers[sq]：对方兵站在哪些格子上能吃到 sq
	theirPawnAttackers [NumSquares]BitBoard

	advisorPoints  BitBoard
	elephantPoints BitBoard
)

func init() {
	initAttackTables()
	initMoveIndex()
}

func initAttackTables() {
	for sq := Square(0); sq < NumSquares; sq++ {
		row, col := sq.Row(), sq.Col()

		if isAdvisorPoint(row, col) {
			advisorPoints.Set(sq)
		}
		if isElephantPoint(row, col) {
			elephantPoints.Set(sq)
		}

		for _, d := range rookDirs {
			r, c := row+d[0], col+d[1]
			if inPalace(row, col) && IsValid(r, c) && inPalace(r, c) && sameHalf(row, r) {
				kingAttacks[sq].Set(SquareAt(r, c))
			}
			for ; IsValid(r, c); r, c = r+d[0], c+d[1] {
				lineAttacks[sq].Set(SquareAt(r, c))
			}
		}

		for _, d := range bishopDirs {
			r, c := row+d[0], col+d[1]
			if isAdvisorPoint(row, col) && IsValid(r, c) && isAdvisorPoint(r, c) && sameHalf(row, r) {
				advisorAttacks[sq].Set(SquareAt(r, c))
			}
			r, c = row+2*d[0], col+2*d[1]
			if isElephantPoint(row, col) && IsValid(r, c) && isElephantPoint(r, c) && sameHalf(row, r) {
				elephantAttacks[sq].Set(SquareAt(r, c))
			}
		}

		for _, m := range knightLegMoves {
			r, c := row+m.Dr, col+m.Dc
			if IsValid(r, c) {
				knightAttacks[sq].Set(SquareAt(r, c))
			}
		}

		for side, dir := range [2]int{+1, -1} {
			if IsValid(row+dir, col) {
				pawnAttacks[side][sq].Set(SquareAt(row+dir, col))
			}
			crossed := row >= RiverRow
			if side == 1 {
				crossed = row < RiverRow
			}
			if !crossed {
				continue
			}
			for _, dc := range [2]int{-1, +1} {
				if IsValid(row, col+dc) {
					pawnAttacks[side][sq].Set(SquareAt(row, col+dc))
				}
			}
		}
	}

	for from := Square(0); from < NumSquares; from++ {
		for to := range pawnAttacks[1][from].Squares() {
			theirPawnAttackers[to].Set(from)
		}
	}
}

// knightLeg 马从 from 跳到 to 时要求为空的马腿格。
func knightLeg(from, to Square) Square {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	if abs(dr) == 2 {
		return SquareAt(from.Row()+dr/2, from.Col())
	}
	return SquareAt(from.Row(), from.Col()+dc/2)
}

// elephantEye 田字中心
func elephantEye(from, to Square) Square {
	return (from + to) / 2
}

// Attacks 返回某类棋子（己方视角）从 sq 出发、忽略占位时的到达集合。
// 车、炮返回同行同列。
func Attacks(pt PieceType, sq Square) BitBoard {
	checkSquare(sq)
	switch pt {
	case PieceKing:
		return kingAttacks[sq]
	case PieceAdvisor:
		return advisorAttacks[sq]
	case PieceElephant:
		return elephantAttacks[sq]
	case PieceKnight:
		return knightAttacks[sq]
	case PiecePawn:
		return pawnAttacks[0][sq]
	case PieceRook, PieceCannon:
		return lineAttacks[sq]
	}
	return EmptyBB
}
