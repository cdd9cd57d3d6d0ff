package hornc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableLookup(t *testing.T) {
	st := NewSymbolTable()

	a := st.Lookup("a")
	b := st.Lookup("b")
	assert.Equal(t, RamDomain(0), a)
	assert.Equal(t, RamDomain(1), b)

	// Interning is idempotent
	assert.Equal(t, a, st.Lookup("a"))
	assert.Equal(t, b, st.Lookup("b"))
	assert.Equal(t, 2, st.Size())
}

func TestSymbolTableResolve(t *testing.T) {
	st := NewSymbolTable()
	idx := st.Lookup("hello")

	sym, ok := st.Resolve(idx)
	require.True(t, ok)
	assert.Equal(t, "hello", sym)

	_, ok = st.Resolve(RamDomain(99))
	assert.False(t, ok)
	_, ok = st.Resolve(RamDomain(-1))
	assert.False(t, ok)
}

func TestSymbolTableContains(t *testing.T) {
	st := NewSymbolTable()
	st.Lookup("x")

	assert.True(t, st.Contains("x"))
	assert.False(t, st.Contains("y"))
}

func TestSymbolTableSymbolsSnapshot(t *testing.T) {
	st := NewSymbolTable()
	st.Lookup("a")
	st.Lookup("b")
	st.Lookup("c")

	assert.Equal(t, []string{"a", "b", "c"}, st.Symbols())
}

func TestSymbolTableConcurrentLookup(t *testing.T) {
	st := NewSymbolTable()
	symbols := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range symbols {
				st.Lookup(s)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(symbols), st.Size())
	for _, s := range symbols {
		idx := st.Lookup(s)
		resolved, ok := st.Resolve(idx)
		require.True(t, ok)
		assert.Equal(t, s, resolved)
	}
}
