package xiangqi

import "sync"

var (
	zobristOnce sync.Once

	// [走棋方/对方][PieceType][格子]，将也用 PieceKing 这一栏
	zobristPieces [2][numPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < numPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

var hashedTypes = [...]PieceType{PieceRook, PieceKnight, PieceElephant, PieceAdvisor, PieceCannon, PiecePawn}

// Hash 只取决于局面本身（各子位置、两将、走棋方），与走到这里的路径和计数无关。
// 相等的局面哈希一定相等。
func (p *Position) Hash() uint64 {
	initZobrist()

	var h uint64
	for side, occ := range [2]BitBoard{p.ours, p.theirs} {
		for _, pt := range hashedTypes {
			for bb := p.typeBoard(pt).And(occ); !bb.IsEmpty(); {
				h ^= zobristPieces[side][pt][bb.PopFirst()]
			}
		}
	}
	if p.ourKing != NoSquare {
		h ^= zobristPieces[0][PieceKing][p.ourKing]
	}
	if p.theirKing != NoSquare {
		h ^= zobristPieces[1][PieceKing][p.theirKing]
	}
	if p.flipped {
		h ^= zobristSide
	}
	return h
}
