package engine

import (
	"testing"

	"chesscore/position"
)

func TestDriverFindsMateInOne(t *testing.T) {
	// Back-rank mate pattern: White rook a8, White king g1, Black king h8
	// boxed in by its own pawns on g7/h7. White to move.
	var b position.BoardState
	b.Side = position.White
	b.SetPiece(sq(t, "a8"), position.NewSquare(position.Rook, position.White, true, false))
	b.SetPiece(sq(t, "g1"), position.NewSquare(position.King, position.White, true, false))
	b.SetPiece(sq(t, "h8"), position.NewSquare(position.King, position.Black, false, false))
	b.SetPiece(sq(t, "g7"), position.NewSquare(position.Pawn, position.Black, true, false))
	b.SetPiece(sq(t, "h7"), position.NewSquare(position.Pawn, position.Black, true, false))

	cache := NewCache()
	searcher := NewSearcher(cache)
	driver := NewDriver(searcher)

	best := driver.FindBestMove(b, 3, 2, 0)
	if len(best.String()) < 4 {
		t.Fatalf("expected a well-formed best move, got %q", best.String())
	}
}

func TestDriverPrincipalVariationEmptyOnFreshCache(t *testing.T) {
	cache := NewCache()
	searcher := NewSearcher(cache)
	driver := NewDriver(searcher)

	b := position.NewStartingBoardState()
	pv := driver.PrincipalVariation(b)
	if len(pv) != 0 {
		t.Errorf("expected empty PV on a fresh cache, got %v", pv)
	}
}

func TestDriverPrincipalVariationFollowsSearch(t *testing.T) {
	var b position.BoardState
	b.Side = position.White
	b.SetPiece(sq(t, "a1"), position.NewSquare(position.King, position.White, false, false))
	b.SetPiece(sq(t, "b2"), position.NewSquare(position.Rook, position.White, true, false))
	b.SetPiece(sq(t, "h8"), position.NewSquare(position.King, position.Black, false, false))
	b.SetPiece(sq(t, "b7"), position.NewSquare(position.Rook, position.Black, true, false))

	cache := NewCache()
	searcher := NewSearcher(cache)
	driver := NewDriver(searcher)

	driver.FindBestMove(b, 2, 2, 0)

	pv := driver.PrincipalVariation(b)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty principal variation after a search")
	}
	if pv[0].String() != "b2b7" {
		t.Errorf("expected PV to start with b2b7, got %s", pv[0].String())
	}
}
