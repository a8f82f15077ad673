// Package position holds the value types the engine core operates on: the
// board, squares, positions and moves, plus the pure MoveApply function and
// the heuristic Evaluator. Nothing in this package searches — see package
// engine for that.
package position

import "fmt"

// Side is the side to move. The underlying value doubles as the sign used
// throughout scoring: White contributes positively, Black negatively.
type Side int8

const (
	White Side = 1
	Black Side = -1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Sign returns the side as a signed int16 multiplier.
func (s Side) Sign() int16 {
	return int16(s)
}

func (s Side) String() string {
	if s == White {
		return "WHITE"
	}
	return "BLACK"
}

// PieceKind identifies the occupant of a square. Empty is the zero value.
type PieceKind uint8

const (
	Empty PieceKind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var promotionLetters = map[byte]PieceKind{
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
}

var pieceLetters = map[PieceKind]byte{
	Pawn:   'p',
	Rook:   'r',
	Knight: 'n',
	Bishop: 'b',
	Queen:  'q',
	King:   'k',
}

// Pos is a board coordinate: row in [0,7], col in [0,7]. Row 0 is White's
// back rank.
type Pos struct {
	Row, Col int8
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// ParseSquare reads algebraic notation ("e4") into a Pos.
func ParseSquare(s string) (Pos, error) {
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("position: bad square %q", s)
	}
	col := int8(s[0] - 'a')
	row := int8(s[1] - '1')
	p := Pos{Row: row, Col: col}
	if !p.InBounds() {
		return Pos{}, fmt.Errorf("position: bad square %q", s)
	}
	return p, nil
}

func (p Pos) String() string {
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// MoveKind is advisory: it records whether a move was generated as a quiet
// step or a capture, used for move ordering and the search's quiescence
// filter. Apply does not read it.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
)

// Move is a from/to pair plus advisory kind and optional promotion piece.
type Move struct {
	From, To  Pos
	Kind      MoveKind
	Promotion PieceKind
}

// String renders the four/five character wire format: fromTo[promotion].
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(pieceLetters[m.Promotion])
	}
	return s
}

// Less orders two moves by ascending wire representation, the deterministic
// tie-break spec'd for move ordering.
func (m Move) Less(other Move) bool {
	return m.String() < other.String()
}

// ParseMove parses the four or five character UCI-style move string
// ("e2e4", "e7e8q"). Any promotion letter outside {q,r,b,n} is a fatal
// error, matching MoveApply's documented parser contract.
func ParseMove(s string) Move {
	if len(s) != 4 && len(s) != 5 {
		panic(fmt.Sprintf("position: malformed move string %q", s))
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		panic(err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		panic(err)
	}
	m := Move{From: from, To: to, Kind: Quiet}
	if len(s) == 5 {
		kind, ok := promotionLetters[s[4]]
		if !ok {
			panic(fmt.Sprintf("position: invalid promotion letter %q in %q", s[4], s))
		}
		m.Promotion = kind
	}
	return m
}
