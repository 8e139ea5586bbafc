package recursion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailRecursion_Descending(t *testing.T) {
	var rec Recorder
	TailRecursion(3, rec.Emit)
	assert.Equal(t, []int64{3, 2, 1}, rec.Values())
}

func TestHeadRecursion_Ascending(t *testing.T) {
	var rec Recorder
	HeadRecursion(3, rec.Emit)
	assert.Equal(t, []int64{1, 2, 3}, rec.Values())
}

func TestTailAndHead_EmitExactlyN(t *testing.T) {
	for n := int64(0); n <= 50; n++ {
		var tail, head Recorder
		TailRecursion(n, tail.Emit)
		HeadRecursion(n, head.Emit)

		require.Equal(t, int(n), tail.Len(), "tail n=%d", n)
		require.Equal(t, int(n), head.Len(), "head n=%d", n)

		tv := tail.Values()
		hv := head.Values()
		for i := range tv {
			require.Equal(t, n-int64(i), tv[i])
			require.Equal(t, int64(i)+1, hv[i])
		}
	}
}

func TestTailAndHead_NonPositiveEmitsNothing(t *testing.T) {
	for _, n := range []int64{0, -1, -100} {
		var rec Recorder
		TailRecursion(n, rec.Emit)
		HeadRecursion(n, rec.Emit)
		assert.Zero(t, rec.Len(), "n=%d", n)
	}
}

func TestSumOfNaturalNumbers(t *testing.T) {
	tests := []struct {
		ceiling int64
		want    int64
	}{
		{0, 0},
		{1, 1},
		{7, 28},
		{10, 55},
		{100, 5050},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SumOfNaturalNumbers(tt.ceiling), "ceiling=%d", tt.ceiling)
	}
}

func TestSumOfNaturalNumbers_MatchesClosedForm(t *testing.T) {
	for n := int64(0); n <= 2000; n++ {
		require.Equal(t, SumOfNaturalNumbersClosedForm(n), SumOfNaturalNumbers(n), "n=%d", n)
	}
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, int64(1), Factorial(0))
	assert.Equal(t, int64(1), Factorial(1))
	assert.Equal(t, int64(120), Factorial(5))
	assert.Equal(t, int64(3628800), Factorial(10))
	assert.Equal(t, int64(2432902008176640000), Factorial(20))
}

func TestFactorial_WrapsPastTwenty(t *testing.T) {
	// 21! does not fit in int64; Go wraps instead of panicking.
	got := Factorial(21)
	assert.Equal(t, Factorial(20)*21, got)
	assert.Less(t, got, int64(0))
}
