package cnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSortsLiterals(t *testing.T) {
	var b ClauseBuilder
	for _, lit := range []int32{5, -2, 3} {
		if b.Add(lit) {
			t.Fatalf("unexpected tautology adding %d", lit)
		}
	}
	c := b.Clause()
	assert.Equal(t, []int32{-2, 3, 5}, c.Lits())
	assert.Equal(t, Clause{-2, 3, 5}, c)
}

func TestBuilderTautology(t *testing.T) {
	var b ClauseBuilder
	b.Add(4)
	b.Add(-7)
	if !b.Add(-4) {
		t.Error("adding -4 after 4 should flag a tautology")
	}
	if !b.Tautology() {
		t.Error("builder should report tautology")
	}
	b.Reset()
	assert.True(t, b.Empty())
	assert.False(t, b.Tautology())
}

func TestBuilderOverflowPanics(t *testing.T) {
	var b ClauseBuilder
	for i := int32(1); i <= MaxClauseLen; i++ {
		b.Add(i)
	}
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected overflow panic")
		_, ok := r.(ClauseOverflowError)
		assert.True(t, ok, "panic value should be ClauseOverflowError, got %T", r)
	}()
	b.Add(100)
}

func TestDedup(t *testing.T) {
	mk := func(lits ...int32) Clause {
		var b ClauseBuilder
		for _, l := range lits {
			b.Add(l)
		}
		return b.Clause()
	}
	cl := ClauseList{mk(3, 1), mk(1, 3), mk(-2), mk(3, 1, 2), mk(-2)}
	cl = cl.Dedup()
	assert.Equal(t, ClauseList{mk(-2), mk(1, 2, 3), mk(1, 3)}, cl)
}

func TestWriteDIMACS(t *testing.T) {
	var buf bytes.Buffer
	clauses := ClauseList{{-2, 3}, {1}}
	big := []BigClause{{1, 2, 3, 4}}
	require.NoError(t, WriteDIMACS(&buf, 4, clauses, big))
	want := "p cnf 4 3\n-2 3 0\n1 0\n1 2 3 4 0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDIMACSEmptyClause(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDIMACS(&buf, 1, ClauseList{{}}, nil))
	assert.Equal(t, "p cnf 1 1\n0\n", buf.String())
}
