// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/algoshelf/dfs"
	"github.com/katalvlaran/algoshelf/sink/mocks"
)

// TestDFS_EmitsInPreOrder pins the exact emission sequence on the sink.
func TestDFS_EmitsInPreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockSink[int](ctrl)

	var calls []any
	for _, v := range []int{1, 2, 4, 8, 5, 3, 6, 7} {
		calls = append(calls, out.EXPECT().Emit(v))
	}
	gomock.InOrder(calls...)

	_, err := dfs.DFS(treeGraph(), dfs.WithSink[int](out))
	require.NoError(t, err)
}
