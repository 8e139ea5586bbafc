// Package demo runs recursion patterns as labeled console demonstrations.
//
// A Plan lists demos in order. Each demo names a registered pattern, its
// integer arguments and the label printed above its output:
//
//	name: default
//	description: "Every recursion shape once"
//	demos:
//	  - label: Tail recursion
//	    pattern: tail
//	    args: [3]
//	  - label: Nested recursion
//	    pattern: nested
//	    args: [95]
//	    prefix: "Total: "
//	    expect:
//	      result: 91
//
// A Runner executes a plan into a Report of Blocks. The runner owns a single
// recursion.Counter for its whole lifetime, so a sum-on-return demo observes
// every earlier sum-on-return demo run by the same runner.
//
// RenderText prints a report in the console format:
//
//	Tail recursion:
//	Num: 3
//	Num: 2
//	Num: 1
//	---------------------------
//
// Check compares a report against the expect clauses of its plan.
package demo
