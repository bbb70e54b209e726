package xiangqi

// GeneratePseudolegalMoves 生成走棋方的伪合法走法（可能送将，但将本身不会走进被攻击的格子）。
// 顺序：先将，再按格子编号升序处理其余己方棋子。
func (p *Position) GeneratePseudolegalMoves() []Move {
	if p.ourKing == NoSquare {
		return nil
	}
	moves := make([]Move, 0, 64)
	genKingMoves(p, p.ourKing, &moves)

	pieces := p.ours
	pieces.Reset(p.ourKing)
	for !pieces.IsEmpty() {
		from := pieces.PopFirst()
		switch {
		case p.rooks.Test(from):
			genRookMoves(p, from, &moves)
		case p.cannons.Test(from):
			genCannonMoves(p, from, &moves)
		case p.knights.Test(from):
			genKnightMoves(p, from, &moves)
		case p.elephants.Test(from):
			genElephantMoves(p, from, &moves)
		case p.advisors.Test(from):
			genAdvisorMoves(p, from, &moves)
		case p.pawns.Test(from):
			genPawnMoves(p, from, &moves)
		}
	}
	return moves
}

func (p *Position) addMove(from, to Square, moves *[]Move) {
	m := NewMove(from, to)
	if p.theirs.Test(to) {
		m = m.WithCapture()
	}
	*moves = append(*moves, m)
}

func (p *Position) addTargets(from Square, targets BitBoard, moves *[]Move) {
	for !targets.IsEmpty() {
		p.addMove(from, targets.PopFirst(), moves)
	}
}

// 将：九宫内上下左右一格，不走进被攻击的格子；两将照面时可以直接飞过去吃将
func genKingMoves(p *Position, from Square, moves *[]Move) {
	if p.kingsFace() {
		p.addMove(from, p.theirKing, moves)
	}
	// 把将从原位拿掉再判断，否则将自己会挡住沿线的攻击
	lifted := *p
	lifted.ours.Reset(from)
	targets := kingAttacks[from].AndNot(p.ours)
	for !targets.IsEmpty() {
		to := targets.PopFirst()
		if lifted.IsUnderAttack(to) {
			continue
		}
		p.addMove(from, to, moves)
	}
}

// 车：横竖随便走
func genRookMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	for _, d := range rookDirs {
		for r, c := row+d[0], col+d[1]; IsValid(r, c); r, c = r+d[0], c+d[1] {
			to := SquareAt(r, c)
			if p.ours.Test(to) {
				break
			}
			p.addMove(from, to, moves)
			if p.theirs.Test(to) {
				break
			}
		}
	}
}

// 炮沿一个方向扫描时的两个阶段
type cannonScan int8

const (
	seekScreen cannonScan = iota // 炮架之前：空格都可以走
	seekTarget                   // 越过炮架：遇到的第一个子若是对方的就吃，然后停
)

// 炮：车走法 + 隔一子吃
func genCannonMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	occ := p.Occupied()
	for _, d := range rookDirs {
		state := seekScreen
	ray:
		for r, c := row+d[0], col+d[1]; IsValid(r, c); r, c = r+d[0], c+d[1] {
			to := SquareAt(r, c)
			switch state {
			case seekScreen:
				if !occ.Test(to) {
					*moves = append(*moves, NewMove(from, to))
					continue
				}
				state = seekTarget
			case seekTarget:
				if !occ.Test(to) {
					continue
				}
				if p.theirs.Test(to) {
					*moves = append(*moves, NewMove(from, to).WithCapture())
				}
				break ray
			}
		}
	}
}

// 马：日字，憋马腿
func genKnightMoves(p *Position, from Square, moves *[]Move) {
	occ := p.Occupied()
	targets := knightAttacks[from].AndNot(p.ours)
	for !targets.IsEmpty() {
		to := targets.PopFirst()
		if occ.Test(knightLeg(from, to)) {
			continue // 憋马腿
		}
		p.addMove(from, to, moves)
	}
}

// 相：田字，塞象眼，不过河（表里已限制）
func genElephantMoves(p *Position, from Square, moves *[]Move) {
	occ := p.Occupied()
	targets := elephantAttacks[from].AndNot(p.ours)
	for !targets.IsEmpty() {
		to := targets.PopFirst()
		if occ.Test(elephantEye(from, to)) {
			continue
		}
		p.addMove(from, to, moves)
	}
}

// 仕：九宫内斜走一格
func genAdvisorMoves(p *Position, from Square, moves *[]Move) {
	p.addTargets(from, advisorAttacks[from].AndNot(p.ours), moves)
}

// 兵：向前一格；过河后可以左右
func genPawnMoves(p *Position, from Square, moves *[]Move) {
	p.addTargets(from, pawnAttacks[0][from].AndNot(p.ours), moves)
}
