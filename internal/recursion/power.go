package recursion

// PowerRecursion returns num^power with one multiplication per level.
// Requires power >= 0.
func PowerRecursion(num, power int64) int64 {
	return powerRecursion(num, power, nil)
}

// PowerRecursionOptimized returns num^power by repeated squaring, using
// O(log power) multiplications. Requires power >= 0.
//
//	2^8 = (2*2)^4
//	2^9 = 2 * (2*2)^4
func PowerRecursionOptimized(num, power int64) int64 {
	return powerRecursionOptimized(num, power, nil)
}

// PowerIteration returns num^power with a plain loop. It is the non-recursive
// baseline for the two recursive versions.
func PowerIteration(num, power int64) int64 {
	return powerIteration(num, power, nil)
}

// PowerRecursionStats is PowerRecursion with call and multiplication counts.
func PowerRecursionStats(num, power int64) (int64, Stats) {
	var st Stats
	r := powerRecursion(num, power, &st)
	return r, st
}

// PowerRecursionOptimizedStats is PowerRecursionOptimized with call and
// multiplication counts. The squaring in the last frame is counted even though
// its product is unused.
func PowerRecursionOptimizedStats(num, power int64) (int64, Stats) {
	var st Stats
	r := powerRecursionOptimized(num, power, &st)
	return r, st
}

// PowerIterationStats is PowerIteration with multiplication counts.
func PowerIterationStats(num, power int64) (int64, Stats) {
	var st Stats
	r := powerIteration(num, power, &st)
	return r, st
}

func powerRecursion(num, power int64, st *Stats) int64 {
	st.enter()
	defer st.leave()

	if power == 0 {
		return 1
	}
	st.mul(1)
	return num * powerRecursion(num, power-1, st)
}

func powerRecursionOptimized(num, power int64, st *Stats) int64 {
	st.enter()
	defer st.leave()

	if power == 0 {
		return 1
	}
	if power%2 == 0 {
		st.mul(1)
		return powerRecursionOptimized(num*num, power/2, st)
	}
	st.mul(2)
	return num * powerRecursionOptimized(num*num, (power-1)/2, st)
}

func powerIteration(num, power int64, st *Stats) int64 {
	st.enter()
	defer st.leave()

	res := int64(1)
	for i := int64(0); i < power; i++ {
		st.mul(1)
		res *= num
	}
	return res
}
