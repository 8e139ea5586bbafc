package recursion

// IndirectRecursionA emits a when a > 0 and hands a-1 to IndirectRecursionB.
//
// The pair alternates -1 and /2 transforms: A(20) emits 20 19 9 8 4 3 1.
func IndirectRecursionA(a int64, emit Emitter) {
	if a > 0 {
		emit(a)
		IndirectRecursionB(a-1, emit)
	}
}

// IndirectRecursionB emits b when b > 1 and hands b/2 to IndirectRecursionA.
func IndirectRecursionB(b int64, emit Emitter) {
	if b > 1 {
		emit(b)
		IndirectRecursionA(b/2, emit)
	}
}
