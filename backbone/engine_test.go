package backbone

import (
	"testing"

	"github.com/crillab/cadiback/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backboneSet(t *testing.T, clauses [][]int, nbVars int, cfg Config) (map[int]bool, bool) {
	t.Helper()
	fo := oracle.NewFake(nbVars, clauses, false)
	e := New(fo, nbVars, cfg, nil, nil)
	sat, err := e.Run()
	require.NoError(t, err)
	if !sat {
		return nil, false
	}
	set := map[int]bool{}
	for v := 1; v <= nbVars; v++ {
		if !e.Candidates().IsCandidate(v) {
			if lit := e.Candidates().FixedLit(v); lit != 0 {
				set[lit] = true
			}
		}
	}
	return set, true
}

func TestScenarioBackboneAndDropped(t *testing.T) {
	clauses := [][]int{{1, 2}, {1, -2}, {2, -3}, {-2, -3}}
	set, sat := backboneSet(t, clauses, 3, DefaultConfig())
	require.True(t, sat)
	assert.True(t, set[1])
	assert.True(t, set[-3])
	assert.Len(t, set, 2)
}

func TestScenarioUnsat(t *testing.T) {
	fo := oracle.NewFake(1, [][]int{{1}, {-1}}, false)
	e := New(fo, 1, DefaultConfig(), nil, nil)
	sat, err := e.Run()
	require.NoError(t, err)
	assert.False(t, sat)
}

func TestScenarioEmptyBackbone(t *testing.T) {
	set, sat := backboneSet(t, [][]int{{1, 2}}, 2, DefaultConfig())
	require.True(t, sat)
	assert.Empty(t, set)
}

func TestScenarioAllUnits(t *testing.T) {
	fo := oracle.NewFake(3, [][]int{{1}, {2}, {3}}, false)
	e := New(fo, 3, DefaultConfig(), nil, nil)
	sat, err := e.Run()
	require.NoError(t, err)
	require.True(t, sat)
	for v := 1; v <= 3; v++ {
		assert.False(t, e.Candidates().IsCandidate(v))
		assert.Equal(t, v, e.Candidates().FixedLit(v))
	}
}

func TestScenarioFilterDropsTail(t *testing.T) {
	set, sat := backboneSet(t, [][]int{{1, 2}, {1, -2}}, 2, DefaultConfig())
	require.True(t, sat)
	assert.True(t, set[1])
	assert.Len(t, set, 1)
}

func TestPlainMatchesDefaultBackboneSet(t *testing.T) {
	clauses := [][]int{{1, 2}, {1, -2}, {2, -3}, {-2, -3}}
	defaultSet, _ := backboneSet(t, clauses, 3, DefaultConfig())
	plainSet, _ := backboneSet(t, clauses, 3, PlainConfig())
	assert.Equal(t, defaultSet, plainSet)
}

func TestCheckerDoesNotAlterOutput(t *testing.T) {
	clauses := [][]int{{1, 2}, {1, -2}, {2, -3}, {-2, -3}}
	unchecked, _ := backboneSet(t, clauses, 3, DefaultConfig())
	cfg := DefaultConfig()
	cfg.Check = true
	checked, _ := backboneSet(t, clauses, 3, cfg)
	assert.Equal(t, unchecked, checked)
}

func TestFlipCapableOracleStillYieldsCorrectBackbone(t *testing.T) {
	// With a flip-capable oracle, the probe may drop some non-backbone
	// variables before the driver loop even reaches them, but the final
	// backbone set must be identical to the no-flip case.
	clauses := [][]int{{1, 2}, {1, -2}, {2, -3}, {-2, -3}}
	fo := oracle.NewFake(3, clauses, true)
	e := New(fo, 3, DefaultConfig(), nil, nil)
	sat, err := e.Run()
	require.NoError(t, err)
	require.True(t, sat)
	assert.False(t, e.Candidates().IsCandidate(1))
	assert.Equal(t, 1, e.Candidates().FixedLit(1))
	assert.False(t, e.Candidates().IsCandidate(3))
	assert.Equal(t, -3, e.Candidates().FixedLit(3))
}
