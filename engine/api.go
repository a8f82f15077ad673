package engine

import "chesscore/position"

// Engine bundles a cache, searcher and driver behind the five operations
// the core exposes to an external UCI-style front end. It owns its cache;
// two Engine instances never share one.
type Engine struct {
	cache    *Cache
	searcher *Searcher
	driver   *Driver
}

// NewEngine wires a fresh cache, searcher and driver together.
func NewEngine() *Engine {
	cache := NewCache()
	searcher := NewSearcher(cache)
	return &Engine{cache: cache, searcher: searcher, driver: NewDriver(searcher)}
}

// SetStartingPosition installs the standard chess initial array.
func (e *Engine) SetStartingPosition() position.BoardState {
	return position.NewStartingBoardState()
}

// ApplyMove parses moveStr and applies it to b, panicking on a malformed
// wire string per the parser's documented contract.
func (e *Engine) ApplyMove(b position.BoardState, moveStr string) position.BoardState {
	return position.Apply(b, position.ParseMove(moveStr))
}

// FindBestMove runs iterative deepening and returns the wire form of the
// chosen move. A depth of zero or less is treated as MaxDepth.
func (e *Engine) FindBestMove(b position.BoardState, depth int8, qsDepth int8, timeMs int) string {
	if depth <= 0 {
		depth = MaxDepth
	}
	move := e.driver.FindBestMove(b, depth, qsDepth, timeMs)
	return move.String()
}

// RenderBoard returns the textual board render described in the external
// interfaces: 8 ranks, high rank first, header line, pieces upper/lowercase.
func (e *Engine) RenderBoard(b position.BoardState) string {
	return b.ToASCII()
}

// PrincipalVariation returns the wire forms of the best-move chain the
// cache currently holds for b. Empty if nothing has been searched yet.
func (e *Engine) PrincipalVariation(b position.BoardState) []string {
	pv := e.driver.PrincipalVariation(b)
	out := make([]string, len(pv))
	for i, m := range pv {
		out[i] = m.String()
	}
	return out
}

// MoveReportEntry is one row of a MoveReport: a candidate move together
// with whatever the cache knows about the position it leads to.
type MoveReportEntry struct {
	Move      string
	HasChild  bool
	Status    position.EvalStatus
	Score     int16
	EvalDepth int8
	MoveCount int
	BestReply string
}

// MoveReport enumerates every move from b together with its cached child
// record's status, score, depth and move count, and the best continuation
// from that child if one has been searched. It performs no search of its
// own: if b itself is not cached yet it is evaluated and inserted, while
// child records are only read, never created. It mirrors the reference
// implementation's "print move details" command.
func (e *Engine) MoveReport(b position.BoardState) []MoveReportEntry {
	record, _ := e.cache.LookupOrCreate(b)

	report := make([]MoveReportEntry, 0, len(record.Moves))
	for _, move := range record.Moves {
		entry := MoveReportEntry{Move: move.String()}
		child := position.Apply(b, move)
		if childRecord, ok := e.cache.entries[child]; ok {
			entry.HasChild = true
			entry.Status = childRecord.Status
			entry.Score = childRecord.Score
			entry.EvalDepth = childRecord.EvalDepth
			entry.MoveCount = len(childRecord.Moves)
			if childRecord.EvalDepth > 0 && len(childRecord.Moves) > 0 {
				entry.BestReply = childRecord.BestMove.String()
			}
		}
		report = append(report, entry)
	}
	return report
}
