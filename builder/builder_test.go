// SPDX-License-Identifier: MIT
// Package builder_test checks shape constructors against their edge lists.

package builder_test

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoshelf/builder"
	"github.com/katalvlaran/algoshelf/core"
)

// edges flattens g's adjacency into (src,dst) pairs in registration order.
func edges[T comparable](t *testing.T, g *core.Graph[T]) [][2]T {
	t.Helper()
	var out [][2]T
	for _, k := range g.Keys() {
		nbrs, err := g.Neighbors(k)
		require.NoError(t, err)
		for _, n := range nbrs {
			out = append(out, [2]T{k, n})
		}
	}

	return out
}

func build(t *testing.T, c builder.Constructor[int], bopts ...builder.BuilderOption) *core.Graph[int] {
	t.Helper()
	g, err := builder.BuildGraph(cmp.Compare[int], nil, builder.IntIDs(1), bopts, c)
	require.NoError(t, err)

	return g
}

func TestPath(t *testing.T) {
	g := build(t, builder.Path[int](4))
	assert.Equal(t, []int{1, 2, 3, 4}, g.Keys())
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 4}}, edges(t, g))
}

func TestCycle(t *testing.T) {
	g := build(t, builder.Cycle[int](3))
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 1}}, edges(t, g))
}

func TestStar(t *testing.T) {
	g := build(t, builder.Star[int](3, false))
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}}, edges(t, g))

	g = build(t, builder.Star[int](3, true))
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 1}, {3, 1}}, edges(t, g))
}

func TestComplete(t *testing.T) {
	g := build(t, builder.Complete[int](3))
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}}, edges(t, g))

	g = build(t, builder.Complete[int](1))
	assert.Equal(t, 1, g.Len())
	assert.Zero(t, g.EdgeCount())
}

// TestBinaryTree: IntIDs(1) gives node k the children 2k and 2k+1.
func TestBinaryTree(t *testing.T) {
	g := build(t, builder.BinaryTree[int](8))
	assert.Equal(t, [][2]int{
		{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}, {3, 7}, {4, 8},
	}, edges(t, g))
}

func TestRandomSparse(t *testing.T) {
	a := build(t, builder.RandomSparse[int](10, 0.3), builder.WithSeed(7))
	b := build(t, builder.RandomSparse[int](10, 0.3), builder.WithSeed(7))
	assert.Equal(t, edges(t, a), edges(t, b), "same seed, same graph")

	empty := build(t, builder.RandomSparse[int](5, 0), builder.WithRand(rand.New(rand.NewSource(1))))
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, 5, empty.Len())

	full := build(t, builder.RandomSparse[int](4, 1), builder.WithSeed(1))
	assert.Equal(t, 12, full.EdgeCount())
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		c    builder.Constructor[int]
		opts []builder.BuilderOption
		want error
	}{
		{"path", builder.Path[int](1), nil, builder.ErrTooFewVertices},
		{"cycle", builder.Cycle[int](2), nil, builder.ErrTooFewVertices},
		{"star", builder.Star[int](1, false), nil, builder.ErrTooFewVertices},
		{"complete", builder.Complete[int](0), nil, builder.ErrTooFewVertices},
		{"tree", builder.BinaryTree[int](0), nil, builder.ErrTooFewVertices},
		{"p<0", builder.RandomSparse[int](3, -0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p>1", builder.RandomSparse[int](3, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse[int](3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(cmp.Compare[int])
			err := builder.Build(g, builder.IntIDs(0), tc.opts, tc.c)
			require.ErrorIs(t, err, tc.want)
			assert.Zero(t, g.Len(), "rejected constructor must not touch the graph")
		})
	}
}

func TestBuild_Guards(t *testing.T) {
	err := builder.Build[int](nil, builder.IntIDs(0), nil, builder.Path[int](2))
	require.ErrorIs(t, err, core.ErrNilGraph)

	g := core.NewGraph(cmp.Compare[int])
	err = builder.Build(g, nil, nil, builder.Path[int](2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestBuild_Chained: a second constructor reuses payloads already present.
func TestBuild_Chained(t *testing.T) {
	g := core.NewGraph[string](nil)
	err := builder.Build(g, builder.PrefixedIDs("v"), nil,
		builder.Path[string](3),
		builder.Star[string](2, false),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Keys())
	assert.Equal(t, [][2]string{{"v0", "v1"}, {"v0", "v1"}, {"v1", "v2"}}, edges(t, g))
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "42", builder.DecimalIDs(42))
	assert.Equal(t, "n3", builder.PrefixedIDs("n")(3))
	assert.Equal(t, 5, builder.IntIDs(1)(4))
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDs(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDs(-1) })
}
