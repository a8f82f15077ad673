package engine

import "chesscore/position"

// Configuration constants for the driver. All of them are the values
// spec'd as defaults; cmd/enginectl exposes flags to override the ones
// meant to be tunable per invocation.
const (
	MaxDepth             = 6
	DefaultQSDepth       = 2
	DefaultAllowedTimeMs = 5000
)

// Driver runs iterative deepening on top of a Searcher and extracts the
// principal variation from whatever the cache holds afterward.
type Driver struct {
	Searcher *Searcher
}

// NewDriver wires a Driver to the given Searcher.
func NewDriver(searcher *Searcher) *Driver {
	return &Driver{Searcher: searcher}
}

// FindBestMove runs iterative deepening from d = min(maxDepth, 3) up through
// maxDepth, and past it (while d < 2*maxDepth) as long as a positive time
// budget is less than one sixth used. It returns the best move found at the
// last depth that completed before the soft time budget fired.
func (d *Driver) FindBestMove(b position.BoardState, maxDepth int8, qsDepth int8, allowedTimeMs int) position.Move {
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	d.Searcher.Cache.TrimIfOversized()

	ctx := NewContext(allowedTimeMs)
	ctx.DepthRequired = maxDepth

	start := int8(3)
	if maxDepth < start {
		start = maxDepth
	}

	var lastBestMove position.Move

	for depth := start; ; depth++ {
		result := d.Searcher.Evaluate(b, ctx, depth, negInf, posInf, qsDepth, true)
		if result.Outcome == Timeout {
			break
		}
		lastBestMove = result.Record.BestMove
		ctx.DepthAchieved = depth

		if depth >= maxDepth {
			extraTime := allowedTimeMs > 0 && depth < 2*maxDepth && ctx.elapsed().Milliseconds() < int64(allowedTimeMs)/6
			if !extraTime {
				break
			}
		}
	}

	return lastBestMove
}

// PrincipalVariation walks bestMove links from B through the cache, stopping
// at an absent record, a heuristic-only record (evalDepth == 0), an empty
// move list, or a previously visited board (cycle guard).
func (d *Driver) PrincipalVariation(b position.BoardState) []position.Move {
	var pv []position.Move
	seen := make(map[position.BoardState]bool)
	cur := b

	for {
		if seen[cur] {
			return pv
		}
		seen[cur] = true

		record, ok := d.Searcher.Cache.entries[cur]
		if !ok {
			return pv
		}
		if record.EvalDepth == 0 || len(record.Moves) == 0 {
			return pv
		}

		move := record.BestMove
		pv = append(pv, move)
		cur = position.Apply(cur, move)
	}
}
