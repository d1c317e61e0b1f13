package bfs_test

import (
	"cmp"
	"context"
	"errors"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoshelf/bfs"
	"github.com/katalvlaran/algoshelf/core"
	"github.com/katalvlaran/algoshelf/sink"
)

// treeGraph builds nodes 1..8 with edges (1,2)(1,3)(2,4)(2,5)(3,6)(3,7)(4,8).
func treeGraph() *core.Graph[int] {
	g := core.NewGraph(cmp.Compare[int])
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}, {3, 7}, {4, 8}} {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[int](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := treeGraph()
	_, err = bfs.BFS(g, bfs.WithStart(42))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// hook typed for another payload type
	_, err = bfs.BFS(g, bfs.WithOnVisit(func(string, int) error { return nil }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, bfs.WithStart("1"))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LevelOrder(t *testing.T) {
	res, err := bfs.BFS(treeGraph())
	require.NoError(t, err)

	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if diff := gocmp.Diff(want, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1}, res.Roots)
	assert.Equal(t, 3, res.Depth[8])
	assert.Equal(t, 4, res.Parent[8])

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8}, path)

	_, err = res.PathTo(99)
	assert.Error(t, err)
}

func TestBFS_EmptyGraph(t *testing.T) {
	var out sink.Collector[string]
	res, err := bfs.BFS(core.NewGraph[string](nil), bfs.WithSink[string](&out))
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Roots)
	assert.Zero(t, out.Len())
}

// TestBFS_Forest ensures every component is covered, roots taken in
// registration order.
func TestBFS_Forest(t *testing.T) {
	g := core.NewGraph[string](nil)
	g.AddEdge("X", "Y")
	g.AddNode("lonely")
	g.AddEdge("P", "Q")
	g.AddEdge("Q", "X") // reaches an already visited tree

	res, err := bfs.BFS(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "lonely", "P", "Q"}, res.Order)
	assert.Equal(t, []string{"X", "lonely", "P"}, res.Roots)
	assert.Equal(t, 1, res.Depth["Q"])
}

func TestBFS_SingleSource(t *testing.T) {
	g := core.NewGraph[string](nil)
	g.AddEdge("X", "Y")
	g.AddEdge("P", "Q")

	res, err := bfs.BFS(g, bfs.WithStart("P"))
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, res.Order)
}

func TestBFS_CycleVisitedOnce(t *testing.T) {
	g := core.NewGraph(cmp.Compare[int])
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.AddEdge(3, 3)
	g.AddEdge(1, 2) // duplicate edge

	res, err := bfs.BFS(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := treeGraph()

	res, err := bfs.BFS(g, bfs.WithStart(1), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	// Nodes below the limit do not become roots of their own.
	res, err = bfs.BFS(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
	assert.Equal(t, []int{1}, res.Roots)

	res, err = bfs.BFS(g, bfs.WithStart(1), bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return nbr != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 7}, res.Order)
}

func TestBFS_HooksAndSink(t *testing.T) {
	var out sink.Collector[int]
	var enq []int
	stop := errors.New("stop")

	res, err := bfs.BFS(treeGraph(),
		bfs.WithSink[int](&out),
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnVisit(func(v, depth int) error {
			if depth == 2 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, res.Order, out.Items())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, enq)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(treeGraph(), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_SnapshotIsolation mutates the graph from a hook; the running
// traversal keeps working on its snapshot.
func TestBFS_SnapshotIsolation(t *testing.T) {
	g := treeGraph()
	res, err := bfs.BFS(g, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			g.RemoveNode(8)
			g.AddEdge(100, 101)
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, res.Order)
	assert.False(t, g.HasNode(8))
}

// TestBFS_VisitsEveryNodeOnce checks the exactly-once property on a
// scrambled graph with cycles and duplicates.
func TestBFS_VisitsEveryNodeOnce(t *testing.T) {
	g := core.NewGraph(cmp.Compare[int])
	const n = 200
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i*7+3)%n)
		g.AddEdge(i, (i*13+5)%n)
		if i%11 == 0 {
			g.AddNode(n + i) // isolated extras
		}
	}

	res, err := bfs.BFS(g)
	require.NoError(t, err)
	seen := make(map[int]int, len(res.Order))
	for _, v := range res.Order {
		seen[v]++
	}
	assert.Len(t, res.Order, g.Len())
	for _, k := range g.Keys() {
		assert.Equal(t, 1, seen[k], "node %d", k)
	}
}

func TestBFS_ForestMaxDepth(t *testing.T) {
	g := core.NewGraph(cmp.Compare[string])
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	res, err := bfs.BFS(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Order)
	assert.Equal(t, []string{"a"}, res.Roots)
	assert.NotContains(t, res.Depth, "c")

	// r is not reachable from a, so it starts a tree and visits c.
	g.AddEdge("r", "c")
	res, err = bfs.BFS(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "r", "c"}, res.Order)
	assert.Equal(t, []string{"a", "r"}, res.Roots)
	assert.Equal(t, 1, res.Depth["c"])
	assert.Equal(t, "r", res.Parent["c"])
}

func TestBFS_ForestMaxDepthWithFilter(t *testing.T) {
	// 1→3 is filtered out, so 3 is not reached from 1 and starts its own tree;
	// 4, 5 and 8 lie below the limit under 2.
	res, err := bfs.BFS(treeGraph(), bfs.WithMaxDepth(1), bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return nbr != 3
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 6, 7}, res.Order)
	assert.Equal(t, []int{1, 3}, res.Roots)
}
