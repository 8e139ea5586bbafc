package recursion

// TreeRecursion emits n and then recurses twice on n-1, visiting the implied
// binary call tree in pre-order. Input n yields 2^n - 1 emissions.
func TreeRecursion(n int64, emit Emitter) {
	if n > 0 {
		emit(n)
		TreeRecursion(n-1, emit)
		TreeRecursion(n-1, emit)
	}
}
