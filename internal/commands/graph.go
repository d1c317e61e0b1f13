// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/bfs"
	"github.com/katalvlaran/algoshelf/builder"
	"github.com/katalvlaran/algoshelf/core"
	"github.com/katalvlaran/algoshelf/dfs"
	"github.com/katalvlaran/algoshelf/internal/ctxlog"
)

var (
	errBadEdge    = errors.New("edge must look like source:destination, with one colon")
	errBadShape   = errors.New("unknown shape")
	errEmptyGraph = errors.New("no graph given: use --edge, --node or --shape")
)

const (
	shapePath       = "path"
	shapeCycle      = "cycle"
	shapeStar       = "star"
	shapeComplete   = "complete"
	shapeBinaryTree = "binary-tree"
	shapeRandom     = "random"
)

type graphOptions struct {
	*rootOptions
	edges    []string
	nodes    []string
	shape    string
	size     int
	prob     float64
	seed     int64
	start    string
	maxDepth int
}

// traversalOutput is the rendered result of dfs and bfs.
type traversalOutput struct {
	Algorithm string         `json:"algorithm" yaml:"algorithm"`
	Order     []string       `json:"order" yaml:"order"`
	PostOrder []string       `json:"post_order,omitempty" yaml:"post_order,omitempty"`
	Roots     []string       `json:"roots" yaml:"roots"`
	Depth     map[string]int `json:"depth" yaml:"depth"`
}

func (t traversalOutput) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "order: %s\nroots: %s\n", strings.Join(t.Order, " "), strings.Join(t.Roots, " "))
	if err == nil && t.PostOrder != nil {
		_, err = fmt.Fprintf(w, "post:  %s\n", strings.Join(t.PostOrder, " "))
	}

	return err
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	opts := &graphOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build a directed graph from flags and traverse it",
		Long: `Build a directed graph from --edge/--node flags, a generated --shape, or both,
then run a traversal. Shape nodes (numbered from 1) are registered first,
then --node values, then --edge endpoints in flag order.

Examples:
  algoshelf graph dfs --shape binary-tree --size 8
  algoshelf graph bfs --edge a:b --edge a:c --edge b:d --start a
  algoshelf graph topo --edge shirt:tie --edge tie:jacket
  algoshelf graph cycle --shape cycle --size 4`,
	}

	pf := cmd.PersistentFlags()
	pf.StringArrayVar(&opts.edges, "edge", nil, "Directed edge source:destination (repeatable)")
	pf.StringArrayVar(&opts.nodes, "node", nil, "Isolated node (repeatable)")
	pf.StringVar(&opts.shape, "shape", "", "Generated shape: path, cycle, star, complete, binary-tree, random")
	pf.IntVar(&opts.size, "size", 8, "Node count for --shape")
	pf.Float64Var(&opts.prob, "p", 0.2, "Edge probability for --shape random")
	pf.Int64Var(&opts.seed, "seed", 1, "Seed for --shape random")

	traverse := func(use, short string, run func(*cobra.Command, *core.Graph[string]) error) *cobra.Command {
		c := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				g, err := opts.build(c.Context())
				if err != nil {
					return err
				}
				return run(c, g)
			},
		}
		return c
	}

	dfsCmd := traverse("dfs", "Depth-first traversal (preorder)", opts.runDFS)
	bfsCmd := traverse("bfs", "Breadth-first traversal (level order)", opts.runBFS)
	for _, c := range []*cobra.Command{dfsCmd, bfsCmd} {
		c.Flags().StringVar(&opts.start, "start", "", "Traverse only from this node")
		c.Flags().IntVar(&opts.maxDepth, "max-depth", -1, "Do not expand nodes at this depth (-1: unlimited, 0: roots only)")
	}

	cmd.AddCommand(
		dfsCmd,
		bfsCmd,
		traverse("topo", "Topological order (fails on cycles)", opts.runTopo),
		traverse("cycle", "Report one directed cycle, if any", opts.runCycle),
	)

	return cmd
}

// build assembles the graph: shape first, then explicit nodes and edges.
func (o *graphOptions) build(ctx context.Context) (*core.Graph[string], error) {
	logger := ctxlog.FromContext(ctx)
	g := core.NewGraph[string](nil, core.WithLogger(logger))

	if o.shape != "" {
		c, err := o.shapeConstructor()
		if err != nil {
			return nil, err
		}
		if err := builder.Build(g, oneBased, []builder.BuilderOption{builder.WithSeed(o.seed)}, c); err != nil {
			return nil, err
		}
	}
	for _, n := range o.nodes {
		g.AddNode(n)
	}
	for _, e := range o.edges {
		src, dst, ok := strings.Cut(e, ":")
		if !ok || src == "" || dst == "" || strings.Contains(dst, ":") {
			return nil, fmt.Errorf("%w: %q", errBadEdge, e)
		}
		g.AddEdge(src, dst)
	}
	if g.Len() == 0 {
		return nil, errEmptyGraph
	}
	logger.Info("graph built", "nodes", g.Len(), "edges", g.EdgeCount())

	return g, nil
}

// oneBased numbers shape nodes "1", "2", ...
func oneBased(idx int) string { return strconv.Itoa(idx + 1) }

func (o *graphOptions) shapeConstructor() (builder.Constructor[string], error) {
	switch o.shape {
	case shapePath:
		return builder.Path[string](o.size), nil
	case shapeCycle:
		return builder.Cycle[string](o.size), nil
	case shapeStar:
		return builder.Star[string](o.size, false), nil
	case shapeComplete:
		return builder.Complete[string](o.size), nil
	case shapeBinaryTree:
		return builder.BinaryTree[string](o.size), nil
	case shapeRandom:
		return builder.RandomSparse[string](o.size, o.prob), nil
	}

	return nil, fmt.Errorf("%w: %q", errBadShape, o.shape)
}

func (o *graphOptions) runDFS(cmd *cobra.Command, g *core.Graph[string]) error {
	opts := []dfs.Option{dfs.WithContext(cmd.Context()), dfs.WithMaxDepth(o.maxDepth)}
	if o.start != "" {
		opts = append(opts, dfs.WithStart(o.start))
	}
	res, err := dfs.DFS(g, opts...)
	if err != nil {
		return err
	}
	out := traversalOutput{
		Algorithm: "dfs",
		Order:     res.Order,
		PostOrder: res.PostOrder,
		Roots:     res.Roots,
		Depth:     res.Depth,
	}

	return o.render(cmd, out, out.text)
}

func (o *graphOptions) runBFS(cmd *cobra.Command, g *core.Graph[string]) error {
	opts := []bfs.Option{bfs.WithContext(cmd.Context())}
	if o.maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(o.maxDepth))
	}
	if o.start != "" {
		opts = append(opts, bfs.WithStart(o.start))
	}
	res, err := bfs.BFS(g, opts...)
	if err != nil {
		return err
	}
	out := traversalOutput{
		Algorithm: "bfs",
		Order:     res.Order,
		Roots:     res.Roots,
		Depth:     res.Depth,
	}
	// bfs.WithMaxDepth(0) means unlimited; roots only is the depth-0 layer.
	if o.maxDepth == 0 {
		out.Order = res.Roots
		out.Depth = make(map[string]int, len(res.Roots))
		for _, r := range res.Roots {
			out.Depth[r] = 0
		}
	}

	return o.render(cmd, out, out.text)
}

type topoOutput struct {
	Order []string `json:"order" yaml:"order"`
}

func (o *graphOptions) runTopo(cmd *cobra.Command, g *core.Graph[string]) error {
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
	if err != nil {
		return err
	}
	out := topoOutput{Order: order}

	return o.render(cmd, out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, strings.Join(order, " "))
		return err
	})
}

type cycleOutput struct {
	Found bool     `json:"found" yaml:"found"`
	Cycle []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

func (o *graphOptions) runCycle(cmd *cobra.Command, g *core.Graph[string]) error {
	cycle, found := dfs.FindCycle(g)
	out := cycleOutput{Found: found, Cycle: cycle}

	return o.render(cmd, out, func(w io.Writer) error {
		if !found {
			_, err := fmt.Fprintln(w, "acyclic")
			return err
		}
		_, err := fmt.Fprintln(w, strings.Join(cycle, " -> "))
		return err
	})
}
