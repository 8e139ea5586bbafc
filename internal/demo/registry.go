package demo

import (
	"fmt"
	"strings"

	"github.com/roach88/recursion/internal/recursion"
)

// Param is one integer argument of a pattern.
type Param struct {
	Name string `json:"name"`

	// NonNegative marks arguments that must be >= 0 for the recursion to
	// terminate. Only the driver enforces this; the library functions do not.
	NonNegative bool `json:"non_negative,omitempty"`
}

// Pattern describes one registered recursion function.
type Pattern struct {
	// Name is the identifier used in plans and on the command line.
	Name string `json:"name"`

	// Description is a one-line summary shown by "recursion list".
	Description string `json:"description"`

	// Params describes the integer arguments, in order.
	Params []Param `json:"params"`

	// Emits reports whether the pattern emits values rather than returning one.
	Emits bool `json:"emits"`

	eval  func(c *recursion.Counter, args []int64, emit recursion.Emitter) int64
	stats func(args []int64) (int64, recursion.Stats)
}

// Arity returns the number of arguments the pattern takes.
func (p *Pattern) Arity() int {
	return len(p.Params)
}

// HasStats reports whether the pattern can report call statistics.
func (p *Pattern) HasStats() bool {
	return p.stats != nil
}

// Eval runs the pattern. The result is meaningful only when Emits is false.
// Args must already have the right arity.
func (p *Pattern) Eval(c *recursion.Counter, args []int64, emit recursion.Emitter) int64 {
	return p.eval(c, args, emit)
}

// Stats runs the counting variant of the pattern. It panics if HasStats is
// false.
func (p *Pattern) Stats(args []int64) (int64, recursion.Stats) {
	return p.stats(args)
}

// Pattern names.
const (
	PatternTail           = "tail"
	PatternHead           = "head"
	PatternSumOnReturn    = "sum-on-return"
	PatternTree           = "tree"
	PatternIndirect       = "indirect"
	PatternNested         = "nested"
	PatternSumNaturals    = "sum-naturals"
	PatternFactorial      = "factorial"
	PatternPower          = "power"
	PatternPowerOptimized = "power-optimized"
	PatternPowerIteration = "power-iteration"
)

var registry = []*Pattern{
	{
		Name:        PatternTail,
		Description: "descending recursion: emit n, then recurse on n-1",
		Params:      []Param{{Name: "n"}},
		Emits:       true,
		eval: func(_ *recursion.Counter, a []int64, emit recursion.Emitter) int64 {
			recursion.TailRecursion(a[0], emit)
			return 0
		},
	},
	{
		Name:        PatternHead,
		Description: "ascending recursion: recurse on n-1, then emit n",
		Params:      []Param{{Name: "n"}},
		Emits:       true,
		eval: func(_ *recursion.Counter, a []int64, emit recursion.Emitter) int64 {
			recursion.HeadRecursion(a[0], emit)
			return 0
		},
	},
	{
		Name:        PatternSumOnReturn,
		Description: "accumulate on return against a counter that is never reset",
		Params:      []Param{{Name: "n"}},
		eval: func(c *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.SumOnReturn(c, a[0])
		},
	},
	{
		Name:        PatternTree,
		Description: "tree recursion: emit n, then recurse twice on n-1",
		Params:      []Param{{Name: "n"}},
		Emits:       true,
		eval: func(_ *recursion.Counter, a []int64, emit recursion.Emitter) int64 {
			recursion.TreeRecursion(a[0], emit)
			return 0
		},
	},
	{
		Name:        PatternIndirect,
		Description: "mutual recursion: A emits a and calls B(a-1), B emits b and calls A(b/2)",
		Params:      []Param{{Name: "a"}},
		Emits:       true,
		eval: func(_ *recursion.Counter, a []int64, emit recursion.Emitter) int64 {
			recursion.IndirectRecursionA(a[0], emit)
			return 0
		},
	},
	{
		Name:        PatternNested,
		Description: "nested recursion: f(f(n+11)) up to 100, n-10 above",
		Params:      []Param{{Name: "n"}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.NestedRecursion(a[0])
		},
		stats: func(a []int64) (int64, recursion.Stats) {
			return recursion.NestedRecursionStats(a[0])
		},
	},
	{
		Name:        PatternSumNaturals,
		Description: "sum of natural numbers 0..ceiling",
		Params:      []Param{{Name: "ceiling", NonNegative: true}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.SumOfNaturalNumbers(a[0])
		},
	},
	{
		Name:        PatternFactorial,
		Description: "factorial n!",
		Params:      []Param{{Name: "n", NonNegative: true}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.Factorial(a[0])
		},
	},
	{
		Name:        PatternPower,
		Description: "num^power, one multiplication per level",
		Params:      []Param{{Name: "num"}, {Name: "power", NonNegative: true}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.PowerRecursion(a[0], a[1])
		},
		stats: func(a []int64) (int64, recursion.Stats) {
			return recursion.PowerRecursionStats(a[0], a[1])
		},
	},
	{
		Name:        PatternPowerOptimized,
		Description: "num^power by repeated squaring",
		Params:      []Param{{Name: "num"}, {Name: "power", NonNegative: true}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.PowerRecursionOptimized(a[0], a[1])
		},
		stats: func(a []int64) (int64, recursion.Stats) {
			return recursion.PowerRecursionOptimizedStats(a[0], a[1])
		},
	},
	{
		Name:        PatternPowerIteration,
		Description: "num^power with a loop (non-recursive baseline)",
		Params:      []Param{{Name: "num"}, {Name: "power", NonNegative: true}},
		eval: func(_ *recursion.Counter, a []int64, _ recursion.Emitter) int64 {
			return recursion.PowerIteration(a[0], a[1])
		},
		stats: func(a []int64) (int64, recursion.Stats) {
			return recursion.PowerIterationStats(a[0], a[1])
		},
	},
}

// Patterns returns every registered pattern in registration order.
func Patterns() []*Pattern {
	out := make([]*Pattern, len(registry))
	copy(out, registry)
	return out
}

// LookupPattern returns the pattern with the given name, or nil.
func LookupPattern(name string) *Pattern {
	for _, p := range registry {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Usage returns the pattern name followed by its parameter names,
// e.g. "power <num> <power>".
func (p *Pattern) Usage() string {
	var b strings.Builder
	b.WriteString(p.Name)
	for _, param := range p.Params {
		fmt.Fprintf(&b, " <%s>", param.Name)
	}
	return b.String()
}

// CheckArgs verifies arity and the non-negative preconditions.
func (p *Pattern) CheckArgs(args []int64) error {
	if len(args) != p.Arity() {
		return fmt.Errorf("%s takes %d argument(s), got %d", p.Usage(), p.Arity(), len(args))
	}
	for i, a := range args {
		if p.Params[i].NonNegative && a < 0 {
			return fmt.Errorf("%s: %s must be >= 0, got %d", p.Name, p.Params[i].Name, a)
		}
	}
	return nil
}
