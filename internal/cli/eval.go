package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/recursion/internal/demo"
	"github.com/roach88/recursion/internal/recursion"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Stats bool

	// Counter overrides the counter behind sum-on-return (for testing).
	Counter *recursion.Counter
}

// EvalResult is the payload of the eval command.
type EvalResult struct {
	Pattern string           `json:"pattern"`
	Args    []int64          `json:"args"`
	Emitted []int64          `json:"emitted,omitempty"`
	Result  *int64           `json:"result,omitempty"`
	Stats   *recursion.Stats `json:"stats,omitempty"`
}

// RenderText prints "Num: <n>" lines followed by the statistics, if any.
func (r EvalResult) RenderText(w io.Writer) error {
	for _, v := range r.Emitted {
		if _, err := fmt.Fprintf(w, "Num: %d\n", v); err != nil {
			return err
		}
	}
	if r.Result != nil {
		if _, err := fmt.Fprintf(w, "Num: %d\n", *r.Result); err != nil {
			return err
		}
	}
	if r.Stats != nil {
		_, err := fmt.Fprintf(w, "calls=%d max_depth=%d mults=%d\n", r.Stats.Calls, r.Stats.MaxDepth, r.Stats.Mults)
		return err
	}
	return nil
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <pattern> [args...]",
		Short: "Evaluate a single pattern",
		Long: `Evaluate one recursion pattern with integer arguments.

--stats reports call count, maximum recursion depth and multiplications for
nested and power patterns.

Example:
  recursion eval tree 3
  recursion eval nested 95 --stats
  recursion eval power-optimized 2 30 --stats --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalPattern(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "report call statistics")

	return cmd
}

func evalPattern(opts *EvalOptions, name string, rawArgs []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	pattern := demo.LookupPattern(name)
	if pattern == nil {
		msg := fmt.Sprintf("unknown pattern %q (see \"recursion list\")", name)
		_ = formatter.Error(CodeInvalidArgs, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	args, err := parseArgs(rawArgs)
	if err == nil {
		err = pattern.CheckArgs(args)
	}
	if err != nil {
		_ = formatter.Error(CodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}

	if opts.Stats && !pattern.HasStats() {
		msg := fmt.Sprintf("pattern %s does not report statistics", name)
		_ = formatter.Error(CodeInvalidArgs, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	counter := opts.Counter
	if counter == nil {
		counter = recursion.SharedCounter()
	}

	result := EvalResult{Pattern: name, Args: args}
	switch {
	case opts.Stats:
		v, st := pattern.Stats(args)
		result.Result = &v
		result.Stats = &st
	case pattern.Emits:
		var rec recursion.Recorder
		pattern.Eval(counter, args, rec.Emit)
		result.Emitted = rec.Values()
	default:
		v := pattern.Eval(counter, args, recursion.Discard)
		result.Result = &v
	}

	return formatter.Success(result)
}

func parseArgs(raw []string) ([]int64, error) {
	args := make([]int64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
		}
		args[i] = v
	}
	return args, nil
}
