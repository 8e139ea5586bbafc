package recursion

// Emitter receives each integer a pattern emits, in emission order.
type Emitter func(n int64)

// Discard is an Emitter that drops every value.
func Discard(int64) {}

// Recorder collects emitted values.
//
// The zero value is ready to use:
//
//	var rec Recorder
//	TailRecursion(3, rec.Emit)
//	rec.Values() // [3 2 1]
type Recorder struct {
	values []int64
}

// Emit appends n. Pass the method value rec.Emit where an Emitter is expected.
func (r *Recorder) Emit(n int64) {
	r.values = append(r.values, n)
}

// Values returns a copy of the recorded values.
func (r *Recorder) Values() []int64 {
	out := make([]int64, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of recorded values.
func (r *Recorder) Len() int {
	return len(r.values)
}
