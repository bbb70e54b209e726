package xiangqi

// ApplyMove 只给走棋方用，不做合法性检查，也不交换走棋方（见 Play）。
// 返回是否吃子，吃子时无吃子计数需要清零。
func (p *Position) ApplyMove(m Move) bool {
	from, to := m.From(), m.To()

	// 吃子：清掉对方在 to 上的所有位
	captured := p.theirs.Test(to)
	if captured {
		p.theirs.Reset(to)
		for _, bb := range p.typeBoards() {
			bb.Reset(to)
		}
		if to == p.theirKing {
			p.theirKing = NoSquare
		}
	}

	p.ours.Reset(from)
	p.ours.Set(to)

	if from == p.ourKing {
		p.ourKing = to
		return captured
	}

	// 分类位棋盘跟着走
	for _, bb := range p.typeBoards() {
		if bb.Test(from) {
			bb.Reset(from)
			bb.Set(to)
			break
		}
	}
	return captured
}
