package demo

import (
	"fmt"
	"slices"
)

// Failure describes a demo whose output did not match its expect clause.
type Failure struct {
	Label    string `json:"label"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", f.Label, f.Expected, f.Actual)
}

// Check compares each block of report with the expect clause of the demo at
// the same position in plan. Demos without an expect clause always pass.
func Check(plan *Plan, report *Report) []Failure {
	var failures []Failure
	for i, d := range plan.Demos {
		if d.Expect == nil {
			continue
		}
		if i >= len(report.Blocks) {
			failures = append(failures, Failure{Label: d.Label, Expected: "a block", Actual: "no output"})
			continue
		}
		b := report.Blocks[i]

		if d.Expect.Emitted != nil && !slices.Equal(d.Expect.Emitted, b.Emitted) {
			failures = append(failures, Failure{
				Label:    d.Label,
				Expected: fmt.Sprintf("emitted %v", d.Expect.Emitted),
				Actual:   fmt.Sprintf("emitted %v", b.Emitted),
			})
		}
		if d.Expect.Result != nil {
			switch {
			case b.Result == nil:
				failures = append(failures, Failure{
					Label:    d.Label,
					Expected: fmt.Sprintf("result %d", *d.Expect.Result),
					Actual:   "no result",
				})
			case *b.Result != *d.Expect.Result:
				failures = append(failures, Failure{
					Label:    d.Label,
					Expected: fmt.Sprintf("result %d", *d.Expect.Result),
					Actual:   fmt.Sprintf("result %d", *b.Result),
				})
			}
		}
	}
	return failures
}
