package position

// Apply is MoveApply: a pure function from (BoardState, Move) to a new
// BoardState. It handles quiet moves, captures, castling, en-passant and
// promotion, and maintains the transient "pawn moved two squares last turn"
// flag. It performs no legality checking — see package engine for how
// illegal king-capture continuations are pruned by the search instead.
//
// Ported step-for-step from the reference makeMove() this core was
// distilled from: copy, clear stale en-passant flags, flip side, relocate
// the piece, then apply the pawn/castling/promotion special cases in order.
func Apply(b BoardState, m Move) BoardState {
	next := b

	// Step 2: clear justMovedTwo on any pawn on rows 3/4 that still carries it.
	for col := int8(0); col < 8; col++ {
		for _, row := range [2]int8{3, 4} {
			p := Pos{Row: row, Col: col}
			sq := next.At(p)
			if sq.Kind() == Pawn && sq.JustMovedTwo() {
				next.set(p, sq.withJustMovedTwo(false))
			}
		}
	}

	// Step 3: toggle side to move.
	next.Side = next.Side.Opponent()

	// Step 4: relocate the moving piece.
	mover := next.At(m.From)
	next.set(m.From, Square(Empty))
	next.set(m.To, NewSquare(mover.Kind(), mover.Side(), true, false))

	// Step 5: en-passant capture (pawn moves diagonally onto an empty square).
	if mover.Kind() == Pawn && m.From.Col != m.To.Col && b.At(m.To).Empty() {
		next.set(Pos{Row: m.From.Row, Col: m.To.Col}, Square(Empty))
	}

	// Step 6: pawn advanced two squares — mark it reachable by en-passant.
	if mover.Kind() == Pawn {
		delta := m.From.Row - m.To.Row
		if delta == 2 || delta == -2 {
			sq := next.At(m.To)
			next.set(m.To, sq.withJustMovedTwo(true))
		}
	}

	// Step 7: castling — relocate the rook.
	if mover.Kind() == King && m.From.Col == 4 {
		switch m.To.Col {
		case 6:
			rookFrom := Pos{Row: m.From.Row, Col: 7}
			rook := next.At(rookFrom)
			next.set(rookFrom, Square(Empty))
			next.set(Pos{Row: m.From.Row, Col: 5}, NewSquare(rook.Kind(), rook.Side(), true, false))
		case 2:
			rookFrom := Pos{Row: m.From.Row, Col: 0}
			rook := next.At(rookFrom)
			next.set(rookFrom, Square(Empty))
			next.set(Pos{Row: m.From.Row, Col: 3}, NewSquare(rook.Kind(), rook.Side(), true, false))
		}
	}

	// Step 8: promotion overwrites the destination square.
	if m.Promotion != Empty {
		next.set(m.To, NewSquare(m.Promotion, mover.Side(), true, false))
	}

	return next
}
