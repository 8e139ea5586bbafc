package demo

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	require.Equal(t, "default", plan.Name)
	require.Len(t, plan.Demos, 11)

	labels := make([]string, len(plan.Demos))
	for i, d := range plan.Demos {
		labels[i] = d.Label
	}
	assert.Equal(t, []string{
		"Tail recursion",
		"Head recursion",
		"Sum on return recursion",
		"Tree recursion",
		"Indirect recursion",
		"Nested recursion",
		"Sum of natural numbers up to 7",
		"Factorial of 10",
		"2 to the power of 5",
		"2 to the power of 5, optimized",
		"2 to the power of 5, iteration",
	}, labels)
	assert.Equal(t, "Total: ", plan.Demos[5].Prefix)
}

func TestParsePlan_UnknownFieldRejected(t *testing.T) {
	_, err := ParsePlan([]byte(`
name: typo
demos:
  - label: Tail
    pattern: tail
    arg: [3]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParsePlan_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "demos:\n  - {label: x, pattern: tail, args: [1]}\n",
			want: "name is required",
		},
		{
			name: "no demos",
			yaml: "name: empty\n",
			want: "demos list is required",
		},
		{
			name: "missing label",
			yaml: "name: p\ndemos:\n  - {pattern: tail, args: [1]}\n",
			want: "demos[0]: label is required",
		},
		{
			name: "unknown pattern",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: fibonacci, args: [1]}\n",
			want: `unknown pattern "fibonacci"`,
		},
		{
			name: "wrong arity",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: power, args: [2]}\n",
			want: "power <num> <power> takes 2 argument(s), got 1",
		},
		{
			name: "negative power",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: power, args: [2, -1]}\n",
			want: "power must be >= 0, got -1",
		},
		{
			name: "negative factorial",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: factorial, args: [-3]}\n",
			want: "n must be >= 0, got -3",
		},
		{
			name: "result on emitting pattern",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: tail, args: [1], expect: {result: 1}}\n",
			want: "use emitted instead of result",
		},
		{
			name: "emitted on value pattern",
			yaml: "name: p\ndemos:\n  - {label: x, pattern: factorial, args: [1], expect: {emitted: [1]}}\n",
			want: "use result instead of emitted",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParsePlan_ReportsEveryProblem(t *testing.T) {
	_, err := ParsePlan([]byte(`
name: broken
demos:
  - {pattern: tail, args: [3]}
  - {label: Fibonacci, pattern: fibonacci, args: [10]}
  - {label: Factorial, pattern: factorial, args: [-1]}
`))
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ValidationErrors{
		{Field: "demos[0]", Message: "label is required"},
		{Field: "demos[1]", Message: `unknown pattern "fibonacci"`},
		{Field: "demos[2]", Message: "factorial: n must be >= 0, got -1"},
	}, errs)

	assert.Contains(t, err.Error(), "demos[0]: label is required; demos[1]: unknown pattern")
}

func TestParsePlan_EmptyExpectRejected(t *testing.T) {
	_, err := ParsePlan([]byte("name: p\ndemos:\n  - {label: x, pattern: factorial, args: [3], expect: {}}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demos[0].expect: needs emitted or result")
}

func TestParsePlan_EmptyEmittedAllowed(t *testing.T) {
	// tail(0) emits nothing; an explicit empty list pins that.
	plan, err := ParsePlan([]byte("name: p\ndemos:\n  - {label: x, pattern: tail, args: [0], expect: {emitted: []}}\n"))
	require.NoError(t, err)
	assert.NotNil(t, plan.Demos[0].Expect.Emitted)
}

func TestPlanValidate_NoErrorIsUntypedNil(t *testing.T) {
	assert.Nil(t, DefaultPlan().Validate())
}

func TestParsePlan_NegativeBaseAllowed(t *testing.T) {
	plan, err := ParsePlan([]byte("name: p\ndemos:\n  - {label: x, pattern: power, args: [-2, 3]}\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-2, 3}, plan.Demos[0].Args)
}

func TestParsePlan_NormalizesLabels(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	plan, err := ParsePlan([]byte("name: p\ndemos:\n  - {label: \"Re\u0301cursion\", pattern: tail, args: [1]}\n"))
	require.NoError(t, err)
	assert.Equal(t, "R\u00e9cursion", plan.Demos[0].Label)
}

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan(filepath.Join("testdata", "plans", "twice.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "twice", plan.Name)
	require.Len(t, plan.Demos, 2)
	require.NotNil(t, plan.Demos[1].Expect.Result)
	assert.Equal(t, int64(50), *plan.Demos[1].Expect.Result)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
