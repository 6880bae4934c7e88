package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/envault/pkg/dotenv"
)

func mapping(t *testing.T, src string) *dotenv.Mapping {
	t.Helper()
	vars, err := dotenv.Parse(src, nil)
	require.NoError(t, err)
	return vars
}

func TestInjectWithoutOverride(t *testing.T) {
	target := Map{"FOO": "old"}
	vars := mapping(t, "FOO=new\nBAR=added")

	require.NoError(t, Inject(target, vars, false))

	assert.Equal(t, "old", target["FOO"])
	assert.Equal(t, "added", target["BAR"])
}

func TestInjectWithOverride(t *testing.T) {
	target := Map{"FOO": "old"}
	vars := mapping(t, "FOO=new")

	require.NoError(t, Inject(target, vars, true))

	assert.Equal(t, "new", target["FOO"])
}

func TestInjectIsIdempotentWithoutOverride(t *testing.T) {
	target := Map{}
	vars := mapping(t, "FOO=1\nBAR=2")

	require.NoError(t, Inject(target, vars, false))
	before := Map{}
	for k, v := range target {
		before[k] = v
	}

	require.NoError(t, Inject(target, vars, false))
	assert.Equal(t, before, target)
}

func TestSystemEnvironment(t *testing.T) {
	t.Setenv("ENVAULT_TEST_VAR", "from-test")

	value, ok := System().Lookup("ENVAULT_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "from-test", value)

	require.NoError(t, System().Set("ENVAULT_TEST_VAR", "changed"))
	value, _ = System().Lookup("ENVAULT_TEST_VAR")
	assert.Equal(t, "changed", value)
}
