package oracle

import (
	"testing"

	"github.com/crillab/cadiback/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverOracleAssumeIsOneShot(t *testing.T) {
	pb := solver.ParseSlice([][]int{{1, 2}})
	o := New(pb)

	o.Assume([]int{-1})
	require.Equal(t, Sat, o.Solve())
	assert.Equal(t, 2, o.Value(2))

	// assumption must not carry over to the next call
	status := o.Solve()
	require.Equal(t, Sat, status)
}

func TestSolverOracleFixed(t *testing.T) {
	pb := solver.ParseSlice([][]int{{1}, {2, 3}})
	o := New(pb)
	assert.Equal(t, 1, o.Fixed(1))
	assert.Equal(t, -1, o.Fixed(-1))
	assert.Equal(t, 0, o.Fixed(2))
}

func TestSolverOracleHasFlipIsFalse(t *testing.T) {
	pb := solver.ParseSlice([][]int{{1}})
	o := New(pb)
	assert.False(t, o.HasFlip())
	assert.False(t, o.Flip(1))
}

func TestSolverOracleCopyIsIndependent(t *testing.T) {
	pb := solver.ParseSlice([][]int{{1, 2}})
	o := New(pb)
	cp, err := o.Copy()
	require.NoError(t, err)

	o.Assume([]int{-1})
	require.Equal(t, Sat, o.Solve())

	// the copy must not see assumptions made on the original
	cp.Assume([]int{-1, -2})
	require.Equal(t, Unsat, cp.Solve())
}

func TestFakeOracleFlip(t *testing.T) {
	f := NewFake(2, [][]int{{1, 2}}, true)
	require.Equal(t, Sat, f.Solve())
	require.True(t, f.HasFlip())
	// whatever model was found, at least one variable can be flipped to
	// true without breaking the single clause {1, 2}.
	flippedSomething := f.Flip(1) || f.Flip(2) || f.Flip(-1) || f.Flip(-2)
	assert.True(t, flippedSomething)
}

func TestFakeOracleUnsat(t *testing.T) {
	f := NewFake(1, [][]int{{1}, {-1}}, false)
	assert.Equal(t, Unsat, f.Solve())
}
