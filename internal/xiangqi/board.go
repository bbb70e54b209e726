package xiangqi

import "fmt"

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// RiverRow 是己方过河后的第一行；0..4 为己方半场。
	RiverRow = 5
)

// Square 是 0..89 的格子编号：row*9+col。
// 棋盘始终以走棋方视角存放，row 0 为走棋方底线，col 0 为 a 路。
type Square uint8

// NoSquare 表示“没有格子”，例如将被吃掉以后。
const NoSquare Square = 0xFF

func IsValid(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// SquareAt 调用方须保证 IsValid(row, col)。
func SquareAt(row, col int) Square {
	if debugChecks && !IsValid(row, col) {
		panic(fmt.Sprintf("xiangqi: square (%d,%d) off board", row, col))
	}
	return Square(row*Cols + col)
}

func (s Square) Row() int { return int(s) / Cols }
func (s Square) Col() int { return int(s) % Cols }

// Mirror 关于棋盘中心点对称：s -> 89-s。
func (s Square) Mirror() Square {
	if s == NoSquare {
		return NoSquare
	}
	return NumSquares - 1 - s
}

func (s Square) valid() bool { return s < NumSquares }

// String 返回 "e0" 这样的坐标：路 a..i + 行 0..9。
func (s Square) String() string {
	if !s.valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('0' + s.Row())})
}

func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, newParseError(ErrInvalidSquare, str, "want file letter and rank digit")
	}
	col := int(str[0]) - 'a'
	row := int(str[1]) - '0'
	if !IsValid(row, col) {
		return NoSquare, newParseError(ErrInvalidSquare, str, "off board")
	}
	return SquareAt(row, col), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// 九宫：3..5 路，己方 0..2 行，对方 7..9 行
func inPalace(row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	return row <= 2 || row >= Rows-3
}

// 同一半场（象不能过河）
func sameHalf(r1, r2 int) bool {
	return (r1 < RiverRow) == (r2 < RiverRow)
}

// 仕的五个点位（每方）
func isAdvisorPoint(row, col int) bool {
	if !inPalace(row, col) {
		return false
	}
	r := row
	if r >= RiverRow {
		r = Rows - 1 - r
	}
	return (r+col)%2 == 1
}

// 相的七个点位（每方）
func isElephantPoint(row, col int) bool {
	r := row
	if r >= RiverRow {
		r = Rows - 1 - r
	}
	switch r {
	case 0, 4:
		return col == 2 || col == 6
	case 2:
		return col == 0 || col == 4 || col == 8
	}
	return false
}
