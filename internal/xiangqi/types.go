package xiangqi

import "unicode"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceRook               // 车
	PieceKnight             // 马
	PieceCannon             // 炮
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceKing               // 帅 / 将
	PiecePawn               // 兵 / 卒

	numPieceTypes = iota
)

var letterToPieceType = map[rune]PieceType{
	'r': PieceRook,
	'n': PieceKnight,
	'h': PieceKnight, // 部分 FEN 用 h 表示马
	'b': PieceElephant,
	'e': PieceElephant, // 部分 FEN 用 e 表示象
	'a': PieceAdvisor,
	'k': PieceKing,
	'c': PieceCannon,
	'p': PiecePawn,
}

var pieceTypeToLetter = [numPieceTypes]rune{
	PieceNone:     '.',
	PieceRook:     'r',
	PieceKnight:   'n',
	PieceCannon:   'c',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceKing:     'k',
	PiecePawn:     'p',
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= numPieceTypes {
		return "?"
	}
	return string(pieceTypeToLetter[pt])
}

// pieceToChar 红方大写，黑方小写
func pieceToChar(pt PieceType, red bool) rune {
	if pt == PieceNone {
		return '.'
	}
	ch := pieceTypeToLetter[pt]
	if red {
		return unicode.ToUpper(ch)
	}
	return ch
}
