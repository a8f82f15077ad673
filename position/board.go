package position

import "strings"

// Square is a bit-packed board cell: bits 0-2 hold the piece kind, bit 3 the
// side, bit 4 the "has moved" flag, bit 5 the "just moved two squares" flag.
// The layout mirrors the reference C++ implementation's Square struct
// (kindMask/sideBit/movedBit/pawnMovedTwiceBit) this core was distilled
// from; a packed byte keeps BoardState a plain, comparable, hashable value
// so it can be used directly as a Go map key.
type Square uint8

const (
	kindMask        Square = 0b0000_0111
	sideBit         Square = 1 << 3
	hasMovedBit     Square = 1 << 4
	justMovedTwoBit Square = 1 << 5
)

// NewSquare builds a square holding a piece of the given kind and side.
func NewSquare(kind PieceKind, side Side, hasMoved, justMovedTwo bool) Square {
	sq := Square(kind)
	if side == Black {
		sq |= sideBit
	}
	if hasMoved {
		sq |= hasMovedBit
	}
	if justMovedTwo {
		sq |= justMovedTwoBit
	}
	return sq
}

func (sq Square) Kind() PieceKind { return PieceKind(sq & kindMask) }
func (sq Square) Empty() bool     { return sq.Kind() == Empty }

// Side is meaningful only when the square is occupied.
func (sq Square) Side() Side {
	if sq&sideBit != 0 {
		return Black
	}
	return White
}

func (sq Square) HasMoved() bool     { return sq&hasMovedBit != 0 }
func (sq Square) JustMovedTwo() bool { return sq&justMovedTwoBit != 0 }

func (sq Square) withHasMoved(v bool) Square {
	if v {
		return sq | hasMovedBit
	}
	return sq &^ hasMovedBit
}

func (sq Square) withJustMovedTwo(v bool) Square {
	if v {
		return sq | justMovedTwoBit
	}
	return sq &^ justMovedTwoBit
}

// BoardState is 64 squares plus side-to-move. It is a plain value: moves
// produce new BoardStates, never mutate one in place. Value equality
// (hence map-key hashing) covers all 64 squares and the side-to-move field,
// so hasMoved/justMovedTwo differences make otherwise-identical positions
// distinct cache keys, exactly as spec'd.
type BoardState struct {
	squares [64]Square
	Side    Side
}

func idx(p Pos) int { return int(p.Row)*8 + int(p.Col) }

func (b BoardState) At(p Pos) Square    { return b.squares[idx(p)] }
func (b *BoardState) set(p Pos, s Square) { b.squares[idx(p)] = s }

// SetPiece places a square's contents directly, for callers building a
// BoardState from scratch (tests, position setup from FEN-like input).
func (b *BoardState) SetPiece(p Pos, s Square) { b.set(p, s) }

// NewStartingBoardState installs the standard chess initial array.
func NewStartingBoardState() BoardState {
	var b BoardState
	b.Side = White

	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := int8(0); col < 8; col++ {
		b.set(Pos{Row: 0, Col: col}, NewSquare(backRank[col], White, false, false))
		b.set(Pos{Row: 1, Col: col}, NewSquare(Pawn, White, false, false))
		b.set(Pos{Row: 6, Col: col}, NewSquare(Pawn, Black, false, false))
		b.set(Pos{Row: 7, Col: col}, NewSquare(backRank[col], Black, false, false))
	}
	return b
}

// ToASCII renders the board as 8 lines of 8 characters, rank 8 first, plus
// a leading "Move:WHITE"/"Move:BLACK" header. Pieces are uppercase for
// Black, lowercase for White, empty squares are '.', matching the reference
// logBoard() convention this core was distilled from.
func (b BoardState) ToASCII() string {
	var sb strings.Builder
	if b.Side == White {
		sb.WriteString("Move:WHITE\n")
	} else {
		sb.WriteString("Move:BLACK\n")
	}
	for row := int8(7); row >= 0; row-- {
		for col := int8(0); col < 8; col++ {
			sq := b.At(Pos{Row: row, Col: col})
			if sq.Empty() {
				sb.WriteByte('.')
				continue
			}
			ch := pieceLetters[sq.Kind()]
			if sq.Side() == Black {
				ch = ch - 'a' + 'A'
			}
			sb.WriteByte(ch)
		}
		if row != 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
