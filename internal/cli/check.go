package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recursion/internal/demo"
	"github.com/roach88/recursion/internal/recursion"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions

	// RunIDs and Counter override the runner defaults (for testing).
	RunIDs  demo.RunIDGenerator
	Counter *recursion.Counter
}

// CheckResult is the payload of the check command.
type CheckResult struct {
	Plan     string         `json:"plan"`
	RunID    string         `json:"run_id"`
	Checked  int            `json:"checked"`
	Failures []demo.Failure `json:"failures,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [plan-file]",
		Short: "Verify a plan's expectations",
		Long: `Run a plan and compare each demo against its expect clause.

Without a plan file the built-in walkthrough is checked.

Exit codes:
  0 - All expectations hold
  1 - One or more expectations failed
  2 - Command error (unreadable or invalid plan)

Example:
  recursion check
  recursion check ./plans/powers.yaml --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return checkPlan(opts, path, cmd)
		},
	}

	return cmd
}

func checkPlan(opts *CheckOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	plan, err := loadPlan(path)
	if err != nil {
		_ = formatter.Error(CodeInvalidPlan, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load plan", err)
	}

	return checkPlanWith(opts, plan, cmd)
}

// checkPlanWith runs an already loaded plan and compares it to its
// expectations.
func checkPlanWith(opts *CheckOptions, plan *demo.Plan, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	report, err := newRunner(opts.RunIDs, opts.Counter).Run(plan)
	if err != nil {
		_ = formatter.Error(CodeInvalidPlan, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to run plan", err)
	}

	result := CheckResult{
		Plan:     plan.Name,
		RunID:    report.RunID,
		Checked:  countExpectations(plan),
		Failures: demo.Check(plan, report),
	}

	if len(result.Failures) == 0 {
		if opts.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d expectation(s) hold in plan %s\n", result.Checked, plan.Name)
		return nil
	}

	if opts.Format == "json" {
		_ = formatter.Error(CodeExpectationFails, "expectations failed", result)
	} else {
		out := cmd.OutOrStdout()
		for _, f := range result.Failures {
			fmt.Fprintf(out, "FAIL %s\n", f.Error())
		}
		fmt.Fprintf(out, "%d of %d expectation(s) failed in plan %s\n", len(result.Failures), result.Checked, plan.Name)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) failed", len(result.Failures)))
}

func countExpectations(plan *demo.Plan) int {
	n := 0
	for _, d := range plan.Demos {
		if d.Expect != nil {
			n++
		}
	}
	return n
}
