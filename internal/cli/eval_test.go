package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recursion/internal/recursion"
	"github.com/roach88/recursion/internal/testutil"
)

func execEval(t *testing.T, format string, counter *recursion.Counter, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	opts := &EvalOptions{RootOptions: &RootOptions{Format: format}, Counter: counter}
	cmd := NewEvalCommand(opts.RootOptions)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	var positional []string
	for _, a := range args {
		if a == "--stats" {
			opts.Stats = true
			continue
		}
		positional = append(positional, a)
	}
	err := evalPattern(opts, positional[0], positional[1:], cmd)
	return buf.String(), err
}

func TestEval_Emitting(t *testing.T) {
	out, err := execEval(t, "text", nil, "tree", "2")
	require.NoError(t, err)
	assert.Equal(t, testutil.Lines("Num: 2", "Num: 1", "Num: 1"), out)
}

func TestEval_Value(t *testing.T) {
	out, err := execEval(t, "text", nil, "factorial", "10")
	require.NoError(t, err)
	assert.Equal(t, "Num: 3628800\n", out)
}

func TestEval_SumOnReturnUsesCounter(t *testing.T) {
	c := recursion.NewCounter()

	out, err := execEval(t, "text", c, "sum-on-return", "5")
	require.NoError(t, err)
	assert.Equal(t, "Num: 25\n", out)

	out, err = execEval(t, "text", c, "sum-on-return", "5")
	require.NoError(t, err)
	assert.Equal(t, "Num: 50\n", out)
}

func TestEval_Stats(t *testing.T) {
	out, err := execEval(t, "text", nil, "nested", "95", "--stats")
	require.NoError(t, err)
	assert.Equal(t, testutil.Lines("Num: 91", "calls=13 max_depth=7 mults=0"), out)
}

func TestEval_StatsJSON(t *testing.T) {
	out, err := execEval(t, "json", nil, "power-optimized", "2", "5", "--stats")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   EvalResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []int64{2, 5}, resp.Data.Args)
	require.NotNil(t, resp.Data.Result)
	assert.Equal(t, int64(32), *resp.Data.Result)
	require.NotNil(t, resp.Data.Stats)
	assert.Equal(t, int64(4), resp.Data.Stats.Calls)
	assert.Equal(t, int64(5), resp.Data.Stats.Mults)
}

func TestEval_StatsUnsupported(t *testing.T) {
	_, err := execEval(t, "text", nil, "tail", "3", "--stats")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "does not report statistics")
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown pattern", []string{"fibonacci", "3"}, `unknown pattern "fibonacci"`},
		{"not an integer", []string{"tail", "three"}, `"three" is not an integer`},
		{"wrong arity", []string{"power", "2"}, "takes 2 argument(s), got 1"},
		{"negative power", []string{"power-iteration", "2", "-1"}, "power must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execEval(t, "text", nil, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E002]")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestEval_ThroughRootCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"eval", "indirect", "20"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, testutil.Lines("Num: 20", "Num: 19", "Num: 9", "Num: 8", "Num: 4", "Num: 3", "Num: 1"), buf.String())
}

func TestEval_NegativeArgumentThroughRootCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	// "--" keeps cobra from reading -2 as a flag.
	cmd.SetArgs([]string{"eval", "power", "--", "-2", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Num: -8\n", buf.String())
}
