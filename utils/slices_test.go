package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first occurrence")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Should return -1 for a missing item")
	require.Equal(t, -1, FindIndex(nil, 3), "Should handle a nil slice")
}

func TestRemoveAt(t *testing.T) {
	in := []int{1, 2, 3}
	out := RemoveAt(in, 1)

	require.Equal(t, []int{1, 3}, out, "Element should be removed")
	require.Equal(t, []int{1, 2, 3}, in, "Input should not be modified")
}

func TestUnique(t *testing.T) {
	require.Equal(t, []int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1}), "Order of first occurrence should be kept")
	require.Nil(t, Unique([]int{}), "Empty input should give nil")
}
