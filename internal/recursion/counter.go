package recursion

// Counter is the persistent cell behind SumOnReturn.
//
// It only ever grows and has no Reset. Its value depends on every SumOnReturn
// call made against it; callers that need a fresh state allocate a new Counter.
//
// Not safe for concurrent use.
type Counter struct {
	x int64
}

// NewCounter returns a counter holding 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int64 {
	c.x++
	return c.x
}

// Current returns the value without incrementing.
func (c *Counter) Current() int64 {
	return c.x
}

// sharedCounter lives for the whole process and backs SumOnReturnShared.
var sharedCounter = NewCounter()

// SharedCounter returns the process-lifetime counter used by
// SumOnReturnShared.
func SharedCounter() *Counter {
	return sharedCounter
}

// SumOnReturn increments c once per level on the way down and adds the
// counter's value on the way back up.
//
// Every frame reads the counter after all increments have happened, so each
// level adds the same final value. Starting from x0, the result for n is
// n*(x0+n): 25 for n=5 on a fresh counter, then 50 for a second n=5 call on the
// same counter.
func SumOnReturn(c *Counter, n int64) int64 {
	if n > 0 {
		c.Next()
		// The call must complete before the counter is read. Go does not order
		// a field read against a function call in the same expression.
		sum := SumOnReturn(c, n-1)
		return sum + c.Current()
	}
	return 0
}

// SumOnReturnShared runs SumOnReturn against the process-lifetime counter.
// Its result depends on every earlier call in the same process.
func SumOnReturnShared(n int64) int64 {
	return SumOnReturn(sharedCounter, n)
}
