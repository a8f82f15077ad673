package position

import "testing"

func TestEvaluatePawnRookMobility(t *testing.T) {
	var b BoardState
	b.Side = White
	b.set(Pos{Row: 1, Col: 3}, NewSquare(Pawn, White, false, false))  // d2
	b.set(Pos{Row: 3, Col: 7}, NewSquare(Pawn, White, true, false))   // h4
	b.set(Pos{Row: 3, Col: 2}, NewSquare(Rook, White, true, false))   // c4
	b.set(Pos{Row: 2, Col: 2}, NewSquare(Pawn, Black, true, false))   // c3

	rec := Evaluate(b)

	if len(rec.Moves) != 15 {
		t.Errorf("expected 15 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}
	if rec.Score <= 500 || rec.Score >= 1000 {
		t.Errorf("expected score in (500, 1000), got %d", rec.Score)
	}
	if rec.Status != DoneComplete {
		t.Errorf("expected DoneComplete, got %v", rec.Status)
	}
}

func TestEvaluateStalemate(t *testing.T) {
	var b BoardState
	b.Side = White
	b.set(Pos{Row: 1, Col: 1}, NewSquare(Rook, Black, true, false)) // b2
	b.set(Pos{Row: 7, Col: 1}, NewSquare(Rook, Black, true, false)) // b8
	b.set(Pos{Row: 0, Col: 0}, NewSquare(King, White, false, false)) // a1

	rec := Evaluate(b)

	if len(rec.Moves) != 0 {
		t.Errorf("expected 0 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}
	if rec.Score > 0 || rec.Score <= -400 {
		t.Errorf("expected score in (-400, 0], got %d", rec.Score)
	}
	if rec.Status != DoneComplete {
		t.Errorf("expected DoneComplete, got %v", rec.Status)
	}
}

func TestEvaluateAfterCheckmate(t *testing.T) {
	var b BoardState
	b.Side = Black
	b.set(Pos{Row: 1, Col: 1}, NewSquare(Rook, Black, true, false)) // b2
	b.set(Pos{Row: 0, Col: 1}, NewSquare(Rook, Black, true, false)) // b1
	b.set(Pos{Row: 0, Col: 0}, NewSquare(King, White, false, false)) // a1

	rec := Evaluate(b)

	if rec.Score >= -2000 {
		t.Errorf("expected score < -2000, got %d", rec.Score)
	}
	if rec.Status != DoneComplete {
		t.Errorf("expected DoneComplete, got %v", rec.Status)
	}
	if len(rec.Moves) != 0 {
		t.Errorf("expected no moves recorded, got %v", rec.Moves)
	}
}

func baseCastlingBoard() BoardState {
	var b BoardState
	b.Side = White
	b.set(Pos{Row: 0, Col: 0}, NewSquare(Rook, White, false, false)) // a1
	b.set(Pos{Row: 0, Col: 7}, NewSquare(Rook, White, false, false)) // h1
	b.set(Pos{Row: 0, Col: 4}, NewSquare(King, White, false, false)) // e1
	return b
}

func TestEvaluateCastlingLegality(t *testing.T) {
	base := baseCastlingBoard()
	if rec := Evaluate(base); len(rec.Moves) != 26 {
		t.Errorf("base: expected 26 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}

	shuffled := baseCastlingBoard()
	shuffled.set(Pos{Row: 0, Col: 0}, NewSquare(Rook, White, true, false)) // a1-rook has moved
	if rec := Evaluate(shuffled); len(rec.Moves) != 25 {
		t.Errorf("shuffled rook: expected 25 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}

	pawned := baseCastlingBoard()
	pawned.set(Pos{Row: 0, Col: 6}, NewSquare(Pawn, White, false, false)) // g1
	if rec := Evaluate(pawned); len(rec.Moves) != 24 {
		t.Errorf("pawn at g1: expected 24 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}

	attacked := baseCastlingBoard()
	attacked.set(Pos{Row: 0, Col: 6}, NewSquare(Pawn, White, false, false))  // g1
	attacked.set(Pos{Row: 7, Col: 2}, NewSquare(Rook, Black, true, false))   // c8
	if rec := Evaluate(attacked); len(rec.Moves) != 23 {
		t.Errorf("c-file attacked: expected 23 moves, got %d: %v", len(rec.Moves), rec.Moves)
	}
}

func TestEvaluateEnPassantWindow(t *testing.T) {
	var b BoardState
	b.Side = Black
	b.set(Pos{Row: 3, Col: 1}, NewSquare(Pawn, White, true, true)) // b4, just moved two
	b.set(Pos{Row: 3, Col: 2}, NewSquare(Pawn, Black, false, false)) // c4
	b.set(Pos{Row: 3, Col: 6}, NewSquare(Pawn, Black, false, false)) // g4

	rec := Evaluate(b)
	if len(rec.Moves) != 3 {
		t.Errorf("expected 3 moves after b2b4, got %d: %v", len(rec.Moves), rec.Moves)
	}

	var b2 BoardState
	b2.Side = Black
	b2.set(Pos{Row: 3, Col: 0}, NewSquare(Pawn, White, true, true))  // a4, just moved two
	b2.set(Pos{Row: 3, Col: 2}, NewSquare(Pawn, Black, false, false)) // c4
	b2.set(Pos{Row: 2, Col: 6}, NewSquare(Pawn, Black, true, false))  // g3, already moved

	rec2 := Evaluate(b2)
	if len(rec2.Moves) != 2 {
		t.Errorf("expected 2 moves (no en-passant onto a-file), got %d: %v", len(rec2.Moves), rec2.Moves)
	}
}

func TestEvaluateBoardStateIsMapKey(t *testing.T) {
	m := make(map[BoardState]int)
	a := NewStartingBoardState()
	m[a] = 1
	b := NewStartingBoardState()
	if _, ok := m[b]; !ok {
		t.Fatal("two identical starting positions should hash equal")
	}
}
