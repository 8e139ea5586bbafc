package recursion

// TailRecursion emits n, n-1, ..., 1. The emission happens before the
// recursive call, so values come out while the stack is growing.
func TailRecursion(n int64, emit Emitter) {
	if n > 0 {
		emit(n)
		TailRecursion(n-1, emit)
	}
}

// HeadRecursion emits 1, 2, ..., n. The emission happens after the recursive
// call returns, so values come out while the stack unwinds.
func HeadRecursion(n int64, emit Emitter) {
	if n > 0 {
		HeadRecursion(n-1, emit)
		emit(n)
	}
}

// SumOfNaturalNumbers returns 0 + 1 + ... + ceiling.
//
// Requires ceiling >= 0; see SumOfNaturalNumbersClosedForm for the O(1)
// equivalent.
func SumOfNaturalNumbers(ceiling int64) int64 {
	if ceiling == 0 {
		return 0
	}
	return SumOfNaturalNumbers(ceiling-1) + ceiling
}

// SumOfNaturalNumbersClosedForm returns ceiling*(ceiling+1)/2.
func SumOfNaturalNumbersClosedForm(ceiling int64) int64 {
	return ceiling * (ceiling + 1) / 2
}

// Factorial returns n!. Requires n >= 0. Wraps past 20!.
func Factorial(n int64) int64 {
	if n == 0 {
		return 1
	}
	return Factorial(n-1) * n
}
