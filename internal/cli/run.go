package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/recursion/internal/demo"
	"github.com/roach88/recursion/internal/recursion"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Plan   string
	Repeat int

	// RunIDs overrides the run ID generator (for testing).
	// If nil, defaults to demo.UUIDv7Generator.
	RunIDs demo.RunIDGenerator

	// Counter overrides the counter behind sum-on-return demos (for testing).
	// If nil, the process-lifetime recursion.SharedCounter is used.
	Counter *recursion.Counter
}

// RunResult is the payload of the run command.
type RunResult struct {
	Reports []*demo.Report `json:"reports"`
}

// RenderText prints every report back to back.
func (r RunResult) RenderText(w io.Writer) error {
	for _, report := range r.Reports {
		if err := demo.RenderText(w, report); err != nil {
			return err
		}
	}
	return nil
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a demo plan",
		Long: `Run every demo of a plan and print one labeled block per demo.

Without --plan the built-in walkthrough runs. Sum-on-return demos share one
counter for the life of the process, so --repeat 2 prints a different sum
the second time.

Example:
  recursion run
  recursion run --plan ./plans/powers.yaml --format json
  recursion run --repeat 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Plan, "plan", "p", "", "path to a plan YAML file (default: built-in walkthrough)")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 1, "run the plan this many times in one process")

	return cmd
}

func runPlan(opts *RunOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Repeat < 1 {
		msg := fmt.Sprintf("--repeat must be at least 1, got %d", opts.Repeat)
		_ = formatter.Error(CodeInvalidArgs, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	plan, err := loadPlan(opts.Plan)
	if err != nil {
		_ = formatter.Error(CodeInvalidPlan, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load plan", err)
	}

	return runPlanWith(opts, plan, cmd)
}

// runPlanWith runs an already loaded plan opts.Repeat times on one runner.
func runPlanWith(opts *RunOptions, plan *demo.Plan, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	runner := newRunner(opts.RunIDs, opts.Counter)
	result := RunResult{Reports: make([]*demo.Report, 0, opts.Repeat)}
	for i := 0; i < opts.Repeat; i++ {
		report, err := runner.Run(plan)
		if err != nil {
			_ = formatter.Error(CodeInvalidPlan, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to run plan", err)
		}
		slog.Debug("plan finished", "plan", plan.Name, "run_id", report.RunID, "blocks", len(report.Blocks))
		result.Reports = append(result.Reports, report)
	}

	return formatter.Success(result)
}

// loadPlan returns the plan at path, or the built-in plan when path is empty.
func loadPlan(path string) (*demo.Plan, error) {
	if path == "" {
		return demo.DefaultPlan(), nil
	}
	return demo.LoadPlan(path)
}

func newRunner(runIDs demo.RunIDGenerator, counter *recursion.Counter) *demo.Runner {
	if counter == nil {
		counter = recursion.SharedCounter()
	}
	opts := []demo.RunnerOption{
		demo.WithCounter(counter),
		demo.WithLogger(slog.Default()),
	}
	if runIDs != nil {
		opts = append(opts, demo.WithRunIDGenerator(runIDs))
	}
	return demo.NewRunner(opts...)
}
