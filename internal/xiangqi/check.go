package xiangqi

// MoveExecution 一步合法着法以及走完后的局面。
// Position 已经翻转，是对方视角、轮到对方走的局面。
type MoveExecution struct {
	Move         Move
	Position     Position
	ResetCounter bool // 吃子，无吃子计数清零
}

// fileClear 判断同一列上 a、b 之间（不含两端）是否全空。
func fileClear(a, b Square, occ BitBoard) bool {
	if a > b {
		a, b = b, a
	}
	for sq := a + Cols; sq < b; sq += Cols {
		if occ.Test(sq) {
			return false
		}
	}
	return true
}

// kingsFace 两将同列且中间无子
func (p *Position) kingsFace() bool {
	if p.ourKing == NoSquare || p.theirKing == NoSquare {
		return false
	}
	if p.ourKing.Col() != p.theirKing.Col() {
		return false
	}
	return fileClear(p.ourKing, p.theirKing, p.Occupied())
}

// IsUnderAttack 判断对方是否有子能吃到 sq（不管轮到谁走）。
// 对方的将按“飞将”规则也算：sq 视作己方将所在的格子。
// 这里只做几何判断，不会再去检查对方着法是否合法。
func (p *Position) IsUnderAttack(sq Square) bool {
	occ := p.Occupied()

	// 将：九宫相邻 + 同列无遮挡
	if p.theirKing != NoSquare {
		if kingAttacks[p.theirKing].Test(sq) {
			return true
		}
		if sq != p.theirKing && p.theirKing.Col() == sq.Col() && fileClear(sq, p.theirKing, occ) {
			return true
		}
	}

	// 车、炮：从 sq 反向逐格走。第一个子是车则被攻击；隔一个子是炮则被攻击。
	rooks := p.theirs.And(p.rooks)
	cannons := p.theirs.And(p.cannons)
	if lineAttacks[sq].Intersects(rooks.Or(cannons)) {
		row, col := sq.Row(), sq.Col()
		for _, d := range rookDirs {
			screened := false
			for r, c := row+d[0], col+d[1]; IsValid(r, c); r, c = r+d[0], c+d[1] {
				s := SquareAt(r, c)
				if !occ.Test(s) {
					continue
				}
				if !screened {
					if rooks.Test(s) {
						return true
					}
					screened = true
					continue
				}
				if cannons.Test(s) {
					return true
				}
				break
			}
		}
	}

	// 马：日字几何对称，马腿要从马的一侧算
	knights := knightAttacks[sq].And(p.theirs.And(p.knights))
	for !knights.IsEmpty() {
		from := knights.PopFirst()
		if !occ.Test(knightLeg(from, sq)) {
			return true
		}
	}

	// 兵
	if theirPawnAttackers[sq].Intersects(p.theirs.And(p.pawns)) {
		return true
	}

	// 仕、相只在自己半场活动，一般碰不到己方的将，但作为通用判断仍然算上
	if advisorAttacks[sq].Intersects(p.theirs.And(p.advisors)) {
		return true
	}
	elephants := elephantAttacks[sq].And(p.theirs.And(p.elephants))
	for !elephants.IsEmpty() {
		from := elephants.PopFirst()
		if !occ.Test(elephantEye(from, sq)) {
			return true
		}
	}
	return false
}

// IsInCheck 走棋方的将是否被攻击
func (p *Position) IsInCheck() bool {
	if p.ourKing == NoSquare {
		return false
	}
	return p.IsUnderAttack(p.ourKing)
}

// IsLegalMove 伪合法着法走完后己方的将是否安全。
func (p *Position) IsLegalMove(m Move) bool {
	return p.isLegalMove(m, p.IsInCheck())
}

func (p *Position) isLegalMove(m Move, inCheck bool) bool {
	if p.ourKing == NoSquare {
		return true
	}
	from, to := m.From(), m.To()
	// 直接吃将：对局已经结束
	if to == p.theirKing {
		return true
	}
	if from != p.ourKing && !inCheck && !p.mayExposeKing(from, to) {
		return true
	}
	next := *p
	next.ApplyMove(m)
	return !next.IsUnderAttack(next.ourKing)
}

// mayExposeKing 不在将军状态下，非将的一步棋只可能通过以下方式让己方的将被攻击：
// 离开或进入将所在的行列（车、炮、飞将的线路，包括给对方炮添炮架），
// 或者离开将的斜邻格（那是攻击将的马的马腿）。
// 吃子时 to 格仍然有子，占位不变。其余情况不必试走。
func (p *Position) mayExposeKing(from, to Square) bool {
	k := p.ourKing
	kr, kc := k.Row(), k.Col()
	if from.Row() == kr || from.Col() == kc || to.Row() == kr || to.Col() == kc {
		return true
	}
	return abs(from.Row()-kr) == 1 && abs(from.Col()-kc) == 1
}

// GenerateLegalMoves 伪合法着法里过滤掉送将的
func (p *Position) GenerateLegalMoves() []Move {
	moves := p.GeneratePseudolegalMoves()
	inCheck := p.IsInCheck()
	out := moves[:0]
	for _, m := range moves {
		if p.isLegalMove(m, inCheck) {
			out = append(out, m)
		}
	}
	return out
}

// GenerateLegalMovesAndPositions 合法着法以及各自走完（并翻转）后的局面，供搜索树展开。
func (p *Position) GenerateLegalMovesAndPositions() []MoveExecution {
	moves := p.GeneratePseudolegalMoves()
	out := make([]MoveExecution, 0, len(moves))
	for _, m := range moves {
		next := *p
		reset := next.ApplyMove(m)
		if m.To() != p.theirKing && next.IsUnderAttack(next.ourKing) {
			continue
		}
		next.Mirror()
		out = append(out, MoveExecution{Move: m, Position: next, ResetCounter: reset})
	}
	return out
}
