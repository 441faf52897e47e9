package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt64Slice(t *testing.T) {
	for _, size := range []int{0, 1, 100, 10_000} {
		s, release := GetInt64Slice(size)
		require.Len(t, s, size)
		for i := range s {
			s[i] = int64(i)
		}
		release()
	}
}

func TestGetFloat64Slice_ReusesCapacity(t *testing.T) {
	s, release := GetFloat64Slice(1000)
	require.Len(t, s, 1000)
	release()

	small, release := GetFloat64Slice(10)
	defer release()
	require.Len(t, small, 10)
}
