package replay

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Result is the outcome of one replayed match.
type Result struct {
	Name     string
	Index    int // 1-based position in the script
	Plies    int
	GameOver bool
	Winner   string
	Snapshot game.Snapshot
	History  []game.MoveRecord
	Err      error

	// DuplicateOf is the index of an earlier match in the batch that ended
	// in the same position with the same side to move, or 0.
	DuplicateOf int

	sig *hashing.GameSignature
}

// Runner replays matches, several at a time. Each match gets its own Game.
type Runner struct {
	log     *zap.Logger
	opts    []game.Option
	workers int
	buffer  int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithWorkers sets the number of matches replayed in parallel; 0 uses one
// per CPU.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithBufferSize sets the pool's channel capacity.
func WithBufferSize(n int) RunnerOption {
	return func(r *Runner) {
		r.buffer = n
	}
}

// WithGameOptions sets the options every replayed Game is created with.
func WithGameOptions(opts ...game.Option) RunnerOption {
	return func(r *Runner) {
		r.opts = opts
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	if r.buffer <= 0 {
		r.buffer = 2 * r.workers
	}
	return r
}

// Run replays every match and returns the results in script order. If ctx
// is cancelled, matches not yet started are reported with the context error.
func (r *Runner) Run(ctx context.Context, matches []Match) []Result {
	pool := worker.NewPoolWithOptions[Match, Result](
		func(item worker.WorkItem[Match]) worker.ProcessResult[Result] {
			res := r.replay(ctx, item.Item, item.Index+1)
			return worker.ProcessResult[Result]{Result: res, Index: item.Index, Error: res.Err}
		},
		worker.WithWorkers(r.workers),
		worker.WithBufferSize(r.buffer),
	)
	pool.Start()
	r.log.Debug("replay started", zap.Int("matches", len(matches)), zap.Int("workers", pool.NumWorkers()))

	go func() {
		for i, m := range matches {
			if ctx.Err() != nil {
				pool.Stop()
			}
			pool.Submit(worker.WorkItem[Match]{Item: m, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, len(matches))
	done := make([]bool, len(matches))
	for pr := range pool.Results() {
		results[pr.Index] = pr.Result
		done[pr.Index] = true
	}
	for i, ok := range done {
		if !ok {
			results[i] = Result{
				Name:  matches[i].Name,
				Index: i + 1,
				Err:   &errors.MatchError{Err: context.Cause(ctx), Match: matches[i].Name, Index: i + 1},
			}
		}
	}
	markDuplicates(results)
	return results
}

// markDuplicates points every successful match at the first earlier one
// that ended in the same position.
func markDuplicates(results []Result) {
	d := hashing.NewDuplicateDetector(false)
	for i := range results {
		res := &results[i]
		if res.Err != nil || res.sig == nil {
			continue
		}
		if first, dup := d.CheckAndAdd(*res.sig); dup {
			res.DuplicateOf = first
		}
	}
}

// replay drives one match through the turn controller.
func (r *Runner) replay(ctx context.Context, m Match, index int) (res Result) {
	res = Result{Name: m.Name, Index: index}
	fail := func(err error, ply int, mv string) Result {
		res.Err = &errors.MatchError{Err: err, Match: m.Name, Index: index, Ply: ply, Move: mv}
		r.log.Debug("replay failed", zap.String("match", m.Name), zap.Error(res.Err))
		return res
	}

	g, err := game.New(append([]game.Option{game.WithLogger(r.log)}, r.opts...)...)
	if err != nil {
		return fail(err, 0, "")
	}
	defer func() {
		res.Snapshot = g.Snapshot()
		res.History = g.History()
		sig := hashing.NewSignature(g.Board(), g.Current().Colour, len(res.History), index)
		res.sig = &sig
	}()

	for i, mv := range m.Moves {
		if err := ctx.Err(); err != nil {
			return fail(err, i+1, mv.String())
		}
		if g.IsGameOver() {
			return fail(errors.ErrGameOver, i+1, mv.String())
		}
		from, to, err := mv.Squares()
		if err != nil {
			return fail(err, i+1, mv.String())
		}
		if !g.Play(from, to) {
			return fail(errors.ErrIllegalMove, i+1, mv.String())
		}
		res.Plies = i + 1
	}

	var winner chess.Colour
	winner, res.GameOver = g.Winner()
	if res.GameOver {
		res.Winner = winner.String()
	}
	if m.Expect != nil && (m.Expect.GameOver != res.GameOver || m.Expect.Winner != res.Winner) {
		err := fmt.Errorf("got game_over=%v winner=%q, want game_over=%v winner=%q: %w",
			res.GameOver, res.Winner, m.Expect.GameOver, m.Expect.Winner, errors.ErrUnexpectedResult)
		return fail(err, 0, "")
	}
	r.log.Info("match replayed",
		zap.String("match", m.Name),
		zap.Int("plies", res.Plies),
		zap.Bool("game_over", res.GameOver))
	return res
}
