package interp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxcore/internal/errs"
)

func TestEnvScopes(t *testing.T) {
	globals := NewEnv(nil)
	globals.Define("a", Number(1))
	globals.Define("b", Number(2))

	local := NewEnv(globals)
	local.Define("a", String("shadow"))

	value, err := local.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, String("shadow"), value)

	value, err = local.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, Number(2), value)

	// assignment updates the scope that owns the binding
	require.NoError(t, local.Assign("b", Number(3)))
	value, err = globals.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, Number(3), value)

	require.NoError(t, local.Assign("a", Nil{}))
	value, err = globals.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, Number(1), value)
}

func TestEnvUndefined(t *testing.T) {
	env := NewEnv(NewEnv(nil))

	_, err := env.Lookup("missing")
	assert.True(t, errs.Is(err, errs.UndefinedName))
	assert.EqualError(t, err, "UndefinedName: undefined variable 'missing'")

	err = env.Assign("missing", Number(1))
	assert.True(t, errs.Is(err, errs.UndefinedName))

	_, err = env.Lookup("missing")
	assert.Error(t, err)
}

func TestEnvConcurrentWriters(t *testing.T) {
	env := NewEnv(nil)
	env.Define("n", Number(0))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				assert.NoError(t, env.Assign("n", Number(w)))
				_, err := env.Lookup("n")
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	value, err := env.Lookup("n")
	require.NoError(t, err)
	assert.IsType(t, Number(0), value)
}
