// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/bfs"
	"github.com/katalvlaran/algoshelf/builder"
	"github.com/katalvlaran/algoshelf/core"
	"github.com/katalvlaran/algoshelf/dfs"
	"github.com/katalvlaran/algoshelf/internal/display"
	"github.com/katalvlaran/algoshelf/sequence"
	"github.com/katalvlaran/algoshelf/sorting"
)

var errBadSize = errors.New("size must not be negative")

type demoOptions struct {
	size     int
	seed     int64
	parallel int
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	opts := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every sort plus sum, LCS and traversals on random data, timed",
		Long: `Generate random input from --seed and run each algorithm on its own copy.
Durations are logged at info level; pass --log-level info to see them.

Examples:
  algoshelf demo --size 100
  algoshelf demo --size 5000 --parallel 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.size < 0 {
				return fmt.Errorf("%w: %d", errBadSize, opts.size)
			}
			reports, err := display.RunAll(cmd.Context(), opts.parallel, opts.demos()...)
			if err != nil {
				return err
			}

			return root.render(cmd, reports, func(w io.Writer) error {
				for _, r := range reports {
					if err := display.Fprint(w, r); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&opts.size, "size", 100, "Number of random values")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 1, "Demos run at once (0: all)")

	return cmd
}

// demos builds the demo list; every sort gets its own copy of the input.
func (o *demoOptions) demos() []display.Demo {
	r := rand.New(rand.NewSource(o.seed))
	nums := make([]int, o.size)
	for i := range nums {
		nums[i] = r.Intn(101)
	}
	a, b := randomWord(r, o.size), randomWord(r, o.size)

	sortDemo := func(name string, fn func([]int) []int) display.Demo {
		return display.Demo{
			Name:  name,
			Input: nums,
			Size:  len(nums),
			Run: func(context.Context) (any, error) {
				return fn(slices.Clone(nums)), nil
			},
		}
	}

	return []display.Demo{
		sortDemo("bubble sort", sorting.Bubble[[]int]),
		sortDemo("selection sort", sorting.Selection[[]int]),
		sortDemo("merge sort", sorting.Merge[[]int]),
		sortDemo("quick sort", sorting.Quick[[]int]),
		display.Of("recursive sum", sequence.Sum[[]int], nums, len(nums)),
		{
			Name:  "longest common subsequence",
			Input: []string{a, b},
			Size:  len(a) + len(b),
			Run: func(context.Context) (any, error) {
				s, n := sequence.LCS(a, b)
				return fmt.Sprintf("%s (%d)", s, n), nil
			},
		},
		o.traversalDemo("depth-first search", func(ctx context.Context, g *core.Graph[int]) ([]int, error) {
			res, err := dfs.DFS(g, dfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return res.Order, nil
		}),
		o.traversalDemo("breadth-first search", func(ctx context.Context, g *core.Graph[int]) ([]int, error) {
			res, err := bfs.BFS(g, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return res.Order, nil
		}),
	}
}

// traversalDemo runs walk over a binary tree of o.size nodes numbered from 1.
func (o *demoOptions) traversalDemo(name string, walk func(context.Context, *core.Graph[int]) ([]int, error)) display.Demo {
	return display.Demo{
		Name:  name,
		Input: "binary tree of " + strconv.Itoa(o.size) + " nodes",
		Size:  o.size,
		Run: func(ctx context.Context) (any, error) {
			g := core.NewGraph[int](nil)
			if err := builder.Build(g, builder.IntIDs(1), nil, builder.BinaryTree[int](max(o.size, 1))); err != nil {
				return nil, err
			}
			return walk(ctx, g)
		},
	}
}

// randomWord returns n letters drawn from a small alphabet.
func randomWord(r *rand.Rand, n int) string {
	const alphabet = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(b)
}
