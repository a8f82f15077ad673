package engine

import (
	"math"
	"strings"

	"slices"

	"chesscore/position"
)

// Outcome distinguishes the three shapes an Evaluate call can return.
type Outcome uint8

const (
	Success Outcome = iota
	Timeout
	Loop
)

// Result is what Evaluate hands back to its caller: either a usable score
// bundled with the record it came from, or one of the two control signals.
type Result struct {
	Outcome Outcome
	Record  *position.EvalRecord
	Score   int16
}

const (
	posInf = math.MaxInt16
	negInf = math.MinInt16

	// MateZoneThreshold is half of the evaluator's ±10000 after-checkmate
	// score; a score beyond it counts as mate-family. MateDecay is the bias
	// toward zero the Searcher applies to such a score on a full completion.
	MateZoneThreshold = 5000
	MateDecay         = 5
)

// Searcher is the recursive alpha-beta engine: cache lookups, cycle
// detection, quiescence, and child-score-based move reordering.
type Searcher struct {
	Cache *Cache
}

// NewSearcher wires a fresh Searcher to the given cache.
func NewSearcher(cache *Cache) *Searcher {
	return &Searcher{Cache: cache}
}

// Evaluate is the recursive alpha-beta search entry point described by the
// core's search procedure: lookup-or-create, cycle detection, partial and
// exact record reuse, then a move loop with beta/alpha cutoffs, ending in
// move reordering and (for full completions) mate-distance decay.
func (s *Searcher) Evaluate(b position.BoardState, ctx *Context, depthLeft int8, alpha, beta int16, qsLeft int8, fromQuietMove bool) Result {
	record, created := s.Cache.LookupOrCreate(b)
	if created {
		if ctx.bumpNode() {
			return Result{Outcome: Timeout}
		}
	}

	if record.Status == position.InEvaluation {
		return Result{Outcome: Loop}
	}

	if record.Status == position.DonePartial && record.EvalDepth >= depthLeft && record.QSDepth >= qsLeft {
		if b.Side == position.White && record.BetaHigh >= beta {
			return Result{Outcome: Success, Record: record, Score: beta}
		}
		if b.Side == position.Black && record.AlphaLow <= alpha {
			return Result{Outcome: Success, Record: record, Score: alpha}
		}
		record.Status = position.DoneComplete
		record.EvalDepth = 0
		record.QSDepth = 0
	}

	quietExtensionNeeded := !record.IsQuiet || !fromQuietMove
	if record.EvalDepth >= depthLeft {
		if !quietExtensionNeeded {
			return Result{Outcome: Success, Record: record, Score: record.Score}
		}
		if record.QSDepth >= qsLeft {
			return Result{Outcome: Success, Record: record, Score: record.Score}
		}
	}

	quiescence := record.EvalDepth >= depthLeft

	record.Status = position.InEvaluation
	var best int16
	if b.Side == position.White {
		best = negInf
	} else {
		best = posInf
	}
	var bestMove position.Move

	childOf := make(map[string]*position.EvalRecord, len(record.Moves))

	for moveIndex, move := range record.Moves {
		if quiescence && record.IsQuiet && move.Kind != position.Capture {
			continue
		}
		childQuiet := record.IsQuiet && move.Kind == position.Quiet

		var childDepthLeft, childQsLeft int8
		if depthLeft > 0 {
			childDepthLeft, childQsLeft = depthLeft-1, qsLeft
		} else {
			childDepthLeft, childQsLeft = 0, qsLeft-1
		}

		childBoard := position.Apply(b, move)
		childResult := s.Evaluate(childBoard, ctx, childDepthLeft, alpha, beta, childQsLeft, childQuiet)

		switch childResult.Outcome {
		case Timeout:
			record.Status = position.DoneComplete
			record.EvalDepth = 0
			record.QSDepth = 0
			return Result{Outcome: Timeout}
		case Loop:
			continue
		}

		childOf[move.String()] = childResult.Record

		if b.Side == position.White {
			if childResult.Score > best {
				best, bestMove = childResult.Score, move
			}
			if best >= beta {
				record.BetaHigh = beta
				record.Status = position.DonePartial
				record.EvalDepth = depthLeft
				record.QSDepth = qsLeft
				record.BestMove = bestMove
				reorderMoves(record.Moves[1:moveIndex+1], childOf, b.Side)
				return Result{Outcome: Success, Record: record, Score: beta}
			}
			alpha = Max(alpha, best)
		} else {
			if childResult.Score < best {
				best, bestMove = childResult.Score, move
			}
			if best <= alpha {
				record.AlphaLow = alpha
				record.Status = position.DonePartial
				record.EvalDepth = depthLeft
				record.QSDepth = qsLeft
				record.BestMove = bestMove
				reorderMoves(record.Moves[1:moveIndex+1], childOf, b.Side)
				return Result{Outcome: Success, Record: record, Score: alpha}
			}
			beta = Min(beta, best)
		}
	}

	if best != negInf && best != posInf {
		record.Score = best
	}
	record.Status = position.DoneComplete
	record.EvalDepth = depthLeft
	record.QSDepth = qsLeft
	record.BestMove = bestMove
	reorderMoves(record.Moves, childOf, b.Side)

	if abs16(record.Score) > MateZoneThreshold {
		if record.Score > 0 {
			record.Score -= MateDecay
		} else {
			record.Score += MateDecay
		}
	}

	return Result{Outcome: Success, Record: record, Score: record.Score}
}

// reorderMoves applies the move-ordering total order to moves: moves with a
// child record first, then DoneComplete children before DonePartial ones,
// then by score (best-first for the side to move), falling back to
// captures-before-quiets and finally the move's wire representation for
// determinism. On a cutoff the caller passes only the examined-so-far
// slice, leaving the always-tried-first move at index 0 fixed, matching the
// reference's sortMoveScores(moveScores, moves, 1, moveIndex+1); a full
// completion passes the entire move list.
func reorderMoves(moves []position.Move, childOf map[string]*position.EvalRecord, side position.Side) {
	scoreOf := func(c *position.EvalRecord) int16 {
		if c.Status == position.DonePartial {
			if side == position.White {
				return c.AlphaLow
			}
			return c.BetaHigh
		}
		return c.Score
	}

	slices.SortFunc(moves, func(a, b position.Move) int {
		ca, cb := childOf[a.String()], childOf[b.String()]
		if (ca != nil) != (cb != nil) {
			if ca != nil {
				return -1
			}
			return 1
		}
		if ca == nil {
			if a.Kind != b.Kind {
				if a.Kind == position.Capture {
					return -1
				}
				return 1
			}
			return strings.Compare(a.String(), b.String())
		}
		if ca.Status != cb.Status {
			if ca.Status == position.DoneComplete {
				return -1
			}
			return 1
		}
		if sa, sb := scoreOf(ca), scoreOf(cb); sa != sb {
			return compareForSide(sa, sb, side)
		}
		if a.Kind != b.Kind {
			if a.Kind == position.Capture {
				return -1
			}
			return 1
		}
		if ca.Score != cb.Score {
			return compareForSide(ca.Score, cb.Score, side)
		}
		return strings.Compare(a.String(), b.String())
	})
}

// compareForSide orders x before y (returns -1) when x is the better score
// for side: higher for White, lower for Black.
func compareForSide(x, y int16, side position.Side) int {
	if side == position.White {
		if x > y {
			return -1
		}
		return 1
	}
	if x < y {
		return -1
	}
	return 1
}
