package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArgumentsList(t *testing.T) {
	args, err := ResolveArguments(true, false, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, ModeList, args.Mode)
}

func TestResolveArgumentsListRejectsPositional(t *testing.T) {
	_, err := ResolveArguments(true, false, []string{"0"}, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsRunOrdersAndAllowsDuplicates(t *testing.T) {
	args, err := ResolveArguments(false, true, []string{"2", "0", "1", "0"}, 5)
	require.NoError(t, err)
	assert.Equal(t, ModeRun, args.Mode)
	assert.Equal(t, []int{2, 0, 1, 0}, args.Indices)
}

func TestResolveArgumentsRunRejectsOutOfRange(t *testing.T) {
	_, err := ResolveArguments(false, true, []string{"5"}, 5)
	assert.Error(t, err)

	_, err = ResolveArguments(false, true, []string{"-1"}, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsRunRejectsNonInteger(t *testing.T) {
	_, err := ResolveArguments(false, true, []string{"abc"}, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsRunRequiresAtLeastOneIndex(t *testing.T) {
	_, err := ResolveArguments(false, true, nil, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsBothFlagsRejected(t *testing.T) {
	_, err := ResolveArguments(true, true, nil, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsNeitherFlagRejected(t *testing.T) {
	_, err := ResolveArguments(false, false, nil, 5)
	assert.Error(t, err)
}

func TestResolveArgumentsTooManyIndicesRejected(t *testing.T) {
	positional := make([]string, MaxTests+1)
	for i := range positional {
		positional[i] = "0"
	}
	_, err := ResolveArguments(false, true, positional, 5)
	assert.Error(t, err)
}
