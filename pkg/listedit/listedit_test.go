package listedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "Aimbot"

	out := Append(base, "ESP")
	out[0] = "changed"

	assert.Equal(t, []string{"Aimbot"}, base)
	assert.Equal(t, []string{"changed", "ESP"}, out)
}

func TestRemoveAt(t *testing.T) {
	base := []int{1, 2, 3, 4}

	out, err := RemoveAt(base, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, out)
	assert.Equal(t, []int{1, 2, 3, 4}, base)

	out, err = RemoveAt(base, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestUpdateAt(t *testing.T) {
	base := []string{"a", "b"}

	out, err := UpdateAt(base, 1, "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, out)
	assert.Equal(t, []string{"a", "b"}, base)
}

func TestIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 2, 10} {
		_, err := RemoveAt([]string{"a", "b"}, idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = UpdateAt([]string{"a", "b"}, idx, "x")
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	_, err := RemoveAt([]string{}, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
