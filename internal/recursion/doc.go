// Package recursion provides small recursive numeric functions, one per
// recursion shape.
//
// Every function is a standalone example:
//   - TailRecursion: work before the recursive call (descending output)
//   - HeadRecursion: work after the recursive call (ascending output)
//   - SumOnReturn: accumulation on return against a persistent Counter
//   - TreeRecursion: two recursive calls per invocation
//   - IndirectRecursionA / IndirectRecursionB: mutual recursion
//   - NestedRecursion: a recursive call whose argument is a recursive call
//   - SumOfNaturalNumbers, Factorial: linear recursion
//   - PowerRecursion, PowerRecursionOptimized, PowerIteration: exponentiation
//
// # Preconditions
//
// No function validates its arguments. Inputs must be non-negative and small
// enough that the recursion terminates without exhausting the goroutine stack.
// SumOfNaturalNumbers, Factorial and the power functions recurse without bound
// on negative arguments, which ends in a fatal stack overflow.
//
// # Integer semantics
//
// All values are int64. Go signed arithmetic wraps on overflow (two's
// complement) and never panics, so Factorial(21) and large powers return a
// wrapped value rather than an error.
//
// # Emission
//
// Functions that "print" in the textbook version call an Emitter instead, so
// the caller decides whether values are written to a console or recorded.
package recursion
