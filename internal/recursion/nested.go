package recursion

// NestedRecursion is McCarthy's 91 function: n-10 above 100, otherwise
// NestedRecursion(NestedRecursion(n+11)).
//
// The inner call completes before the outer one starts. For every n in
// [1, 100] the result is 91; nothing here special-cases that.
func NestedRecursion(n int64) int64 {
	return nestedRecursion(n, nil)
}

// NestedRecursionStats is NestedRecursion with call counting. For n=95 it
// makes 13 calls with a maximum depth of 7; for n=1, 201 calls at depth 20.
func NestedRecursionStats(n int64) (int64, Stats) {
	var st Stats
	r := nestedRecursion(n, &st)
	return r, st
}

func nestedRecursion(n int64, st *Stats) int64 {
	st.enter()
	defer st.leave()

	if n > 100 {
		return n - 10
	}
	return nestedRecursion(nestedRecursion(n+11, st), st)
}
