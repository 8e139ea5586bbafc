package demo

import (
	"log/slog"

	"github.com/roach88/recursion/internal/recursion"
)

// Block is the output of one demo.
type Block struct {
	Label   string  `json:"label"`
	Pattern string  `json:"pattern"`
	Args    []int64 `json:"args"`
	Prefix  string  `json:"prefix,omitempty"`

	// Emitted holds emitted values, for emitting patterns.
	Emitted []int64 `json:"emitted,omitempty"`

	// Result holds the returned value, for value-returning patterns.
	Result *int64 `json:"result,omitempty"`
}

// Report is the result of running a plan.
type Report struct {
	RunID  string  `json:"run_id"`
	Plan   string  `json:"plan"`
	Blocks []Block `json:"blocks"`
}

// Runner executes plans.
//
// A Runner owns one recursion.Counter for its lifetime. Running the same plan
// twice on one Runner gives different sum-on-return results, exactly as
// calling the function twice in one process would.
//
// Not safe for concurrent use.
type Runner struct {
	counter *recursion.Counter
	runIDs  RunIDGenerator
	logger  *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithCounter makes the runner use c for sum-on-return demos, e.g.
// recursion.SharedCounter().
func WithCounter(c *recursion.Counter) RunnerOption {
	return func(r *Runner) {
		r.counter = c
	}
}

// WithRunIDGenerator overrides the default UUIDv7 run IDs (for testing).
func WithRunIDGenerator(g RunIDGenerator) RunnerOption {
	return func(r *Runner) {
		r.runIDs = g
	}
}

// WithLogger sets the logger used for per-demo debug output.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a runner with a fresh counter.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		counter: recursion.NewCounter(),
		runIDs:  UUIDv7Generator{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Counter returns the runner's counter.
func (r *Runner) Counter() *recursion.Counter {
	return r.counter
}

// Run executes every demo of plan in order. The plan must be valid; Run
// validates it again and returns the validation error otherwise.
func (r *Runner) Run(plan *Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:  r.runIDs.Generate(),
		Plan:   plan.Name,
		Blocks: make([]Block, 0, len(plan.Demos)),
	}
	r.logger.Debug("running plan", "plan", plan.Name, "run_id", report.RunID, "demos", len(plan.Demos))

	for _, d := range plan.Demos {
		block := r.runDemo(d)
		report.Blocks = append(report.Blocks, block)
	}
	return report, nil
}

func (r *Runner) runDemo(d Demo) Block {
	pattern := LookupPattern(d.Pattern)
	block := Block{
		Label:   d.Label,
		Pattern: d.Pattern,
		Args:    d.Args,
		Prefix:  d.Prefix,
	}

	if pattern.Emits {
		var rec recursion.Recorder
		pattern.Eval(r.counter, d.Args, rec.Emit)
		block.Emitted = rec.Values()
		r.logger.Debug("demo emitted", "label", d.Label, "pattern", d.Pattern, "args", d.Args, "count", len(block.Emitted))
		return block
	}

	result := pattern.Eval(r.counter, d.Args, recursion.Discard)
	block.Result = &result
	r.logger.Debug("demo returned", "label", d.Label, "pattern", d.Pattern, "args", d.Args, "result", result,
		"counter", r.counter.Current())
	return block
}
