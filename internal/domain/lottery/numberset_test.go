package lottery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, Normalize([]int{3, 1, 2, 3, 1}))
	require.Equal(t, []int{}, Normalize(nil))
}

func TestIntersectionSize(t *testing.T) {
	require.Equal(t, 2, IntersectionSize([]int{1, 2, 3}, []int{3, 2, 9}))
	require.Equal(t, 2, IntersectionSize([]int{1, 1, 2}, []int{1, 2, 2}))
	require.Equal(t, 0, IntersectionSize(nil, []int{1}))
	require.Equal(t, IntersectionSize([]int{4, 5, 6}, []int{6, 4}), IntersectionSize([]int{6, 4}, []int{4, 5, 6}))
}

func TestIsSubset(t *testing.T) {
	require.True(t, IsSubset([]int{2, 1}, []int{1, 2, 3}))
	require.True(t, IsSubset(nil, []int{1}))
	require.False(t, IsSubset([]int{1, 4}, []int{1, 2, 3}))
}

func TestUnion(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, Union([]int{3, 1}, []int{2, 3}, []int{4}))
}

func TestHasDuplicates(t *testing.T) {
	require.True(t, HasDuplicates([]int{1, 2, 1}))
	require.False(t, HasDuplicates([]int{1, 2, 3}))
}
