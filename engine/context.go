package engine

import "time"

// ReportCadence is how often, in newly-evaluated nodes, the context invokes
// its reporting callback and checks the soft time limit.
const ReportCadence = 1000

// Report describes search progress at a reporting tick, handed to whatever
// callback the driver installed.
type Report struct {
	NodesEvaluated int
	DepthAchieved  int8
	Elapsed        time.Duration
}

// Context carries the bookkeeping a single findBestMove call threads through
// every recursive Evaluate call: node counters, the soft deadline, and the
// depth iterative deepening has already completed.
type Context struct {
	NodesEvaluated int
	DepthAchieved  int8
	DepthRequired  int8
	AllowedTimeMs  int
	started        time.Time
	OnReport       func(Report)
}

// NewContext starts a fresh context with the given soft time budget in
// milliseconds. A zero or negative budget means "unbounded".
func NewContext(allowedTimeMs int) *Context {
	return &Context{AllowedTimeMs: allowedTimeMs, started: time.Now()}
}

func (ctx *Context) elapsed() time.Duration {
	return time.Since(ctx.started)
}

// bumpNode increments the node counter and, on cadence, invokes the report
// callback and evaluates the timeout condition described in the design
// notes: the engine guarantees completing the requested depth before it
// ever allows itself to time out.
func (ctx *Context) bumpNode() (timedOut bool) {
	ctx.NodesEvaluated++
	if ctx.NodesEvaluated%ReportCadence != 0 {
		return false
	}
	elapsed := ctx.elapsed()
	if ctx.OnReport != nil {
		ctx.OnReport(Report{
			NodesEvaluated: ctx.NodesEvaluated,
			DepthAchieved:  ctx.DepthAchieved,
			Elapsed:        elapsed,
		})
	}
	if ctx.DepthAchieved < ctx.DepthRequired {
		return false
	}
	if ctx.AllowedTimeMs <= 0 {
		return false
	}
	return elapsed > 2*time.Duration(ctx.AllowedTimeMs)*time.Millisecond
}
