package iterx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	seq := FromSlice([]int{1, 2, 3})

	require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
}

func TestFromSlice_EarlyStop(t *testing.T) {
	var out []int
	for v := range FromSlice([]int{1, 2, 3}) {
		out = append(out, v)
		if v == 2 {
			break
		}
	}

	require.Equal(t, []int{1, 2}, out)
}
