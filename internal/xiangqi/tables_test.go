package xiangqi

import "testing"

func totalMoves(table *[NumSquares]BitBoard) int {
	n := 0
	for _, bb := range table {
		n += bb.Count()
	}
	return n
}

// 逐格暴力枚举，与预计算表逐一比对
func TestAttackTablesBruteForce(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		row, col := sq.Row(), sq.Col()
		var king, advisor, elephant, knight, line BitBoard
		for to := Square(0); to < NumSquares; to++ {
			if to == sq {
				continue
			}
			dr, dc := to.Row()-row, to.Col()-col
			bothPalace := inPalace(row, col) && inPalace(to.Row(), to.Col())
			if bothPalace && abs(dr)+abs(dc) == 1 {
				king.Set(to)
			}
			if bothPalace && abs(dr) == 1 && abs(dc) == 1 &&
				isAdvisorPoint(row, col) && isAdvisorPoint(to.Row(), to.Col()) {
				advisor.Set(to)
			}
			if abs(dr) == 2 && abs(dc) == 2 && sameHalf(row, to.Row()) &&
				isElephantPoint(row, col) && isElephantPoint(to.Row(), to.Col()) {
				elephant.Set(to)
			}
			if abs(dr)*abs(dc) == 2 {
				knight.Set(to)
			}
			if dr == 0 || dc == 0 {
				line.Set(to)
			}
		}
		if kingAttacks[sq] != king {
			t.Fatalf("king %v:\n%v\nwant\n%v", sq, kingAttacks[sq], king)
		}
		if advisorAttacks[sq] != advisor {
			t.Fatalf("advisor %v:\n%v\nwant\n%v", sq, advisorAttacks[sq], advisor)
		}
		if elephantAttacks[sq] != elephant {
			t.Fatalf("elephant %v:\n%v\nwant\n%v", sq, elephantAttacks[sq], elephant)
		}
		if knightAttacks[sq] != knight {
			t.Fatalf("knight %v:\n%v\nwant\n%v", sq, knightAttacks[sq], knight)
		}
		if lineAttacks[sq] != line || line.Count() != Rows+Cols-2 {
			t.Fatalf("line %v:\n%v", sq, lineAttacks[sq])
		}
	}
}

func TestAttackTableTotals(t *testing.T) {
	cases := []struct {
		name  string
		table *[NumSquares]BitBoard
		want  int
	}{
		{"king", &kingAttacks, 48},       // 每个九宫 12 条边
		{"advisor", &advisorAttacks, 16}, // 每个九宫 4 条斜线
		{"elephant", &elephantAttacks, 32},
		{"knight", &knightAttacks, 508},
		{"our pawn", &pawnAttacks[0], 161},
		{"their pawn", &pawnAttacks[1], 161},
	}
	for _, tc := range cases {
		if got := totalMoves(tc.table); got != tc.want {
			t.Errorf("%s: %d moves, want %d", tc.name, got, tc.want)
		}
	}
	if advisorPoints.Count() != 10 || elephantPoints.Count() != 14 {
		t.Errorf("points: advisor %d elephant %d", advisorPoints.Count(), elephantPoints.Count())
	}
}

func TestPawnTables(t *testing.T) {
	// 未过河只能向前
	if got := pawnAttacks[0][SquareAt(3, 4)]; got != SquareBB(SquareAt(4, 4)) {
		t.Fatalf("pawn e3:\n%v", got)
	}
	// 过河后向前和左右
	want := SquareBB(SquareAt(6, 4)).Or(SquareBB(SquareAt(5, 3))).Or(SquareBB(SquareAt(5, 5)))
	if got := pawnAttacks[0][SquareAt(5, 4)]; got != want {
		t.Fatalf("pawn e5:\n%v", got)
	}
	// 底线只能左右
	want = SquareBB(SquareAt(9, 0)).Or(SquareBB(SquareAt(9, 2)))
	if got := pawnAttacks[0][SquareAt(9, 1)]; got != want {
		t.Fatalf("pawn b9:\n%v", got)
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if pawnAttacks[1][sq] != pawnAttacks[0][sq.Mirror()].Mirror() {
			t.Fatalf("their pawn table is not the mirror of ours at %v", sq)
		}
		for from := Square(0); from < NumSquares; from++ {
			if pawnAttacks[1][from].Test(sq) != theirPawnAttackers[sq].Test(from) {
				t.Fatalf("attacker table mismatch at %v <- %v", sq, from)
			}
		}
	}
}

func TestKnightLegAndElephantEye(t *testing.T) {
	from := SquareAt(4, 4)
	for _, m := range knightLegMoves {
		to := SquareAt(4+m.Dr, 4+m.Dc)
		if got, want := knightLeg(from, to), SquareAt(4+m.Br, 4+m.Bc); got != want {
			t.Errorf("leg %v->%v = %v, want %v", from, to, got, want)
		}
	}
	if got := elephantEye(SquareAt(0, 2), SquareAt(2, 4)); got != SquareAt(1, 3) {
		t.Errorf("eye c0->e2 = %v", got)
	}
	if got := elephantEye(SquareAt(4, 6), SquareAt(2, 8)); got != SquareAt(3, 7) {
		t.Errorf("eye g4->i2 = %v", got)
	}
}
