// SPDX-License-Identifier: MIT

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoshelf/internal/commands"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	out, _, err := run(t, append(args, "--format", "json")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

type traversal struct {
	Algorithm string         `json:"algorithm"`
	Order     []string       `json:"order"`
	PostOrder []string       `json:"post_order"`
	Roots     []string       `json:"roots"`
	Depth     map[string]int `json:"depth"`
}

func TestGraph_DFSBinaryTree(t *testing.T) {
	var got traversal
	runJSON(t, &got, "graph", "dfs", "--shape", "binary-tree", "--size", "8")

	want := traversal{
		Algorithm: "dfs",
		Order:     []string{"1", "2", "4", "8", "5", "3", "6", "7"},
		PostOrder: []string{"8", "4", "5", "2", "6", "7", "3", "1"},
		Roots:     []string{"1"},
		Depth:     map[string]int{"1": 0, "2": 1, "3": 1, "4": 2, "5": 2, "6": 2, "7": 2, "8": 3},
	}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("dfs mismatch (-want +got):\n%s", diff)
	}
}

func TestGraph_BFSText(t *testing.T) {
	out, _, err := run(t, "graph", "bfs", "--shape", "binary-tree", "--size", "8", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "order: 1 2 3 4 5 6 7 8\nroots: 1\n", out)
}

func TestGraph_EdgesStartAndDepth(t *testing.T) {
	edges := []string{"--edge", "a:b", "--edge", "a:c", "--edge", "b:d", "--edge", "d:e", "--node", "z"}

	var got traversal
	runJSON(t, &got, append([]string{"graph", "bfs", "--start", "b"}, edges...)...)
	assert.Equal(t, []string{"b", "d", "e"}, got.Order)

	runJSON(t, &got, append([]string{"graph", "bfs", "--max-depth", "1"}, edges...)...)
	assert.Equal(t, []string{"z", "a", "b", "c"}, got.Order, "--node is registered before --edge")

	runJSON(t, &got, append([]string{"graph", "dfs", "--max-depth", "0"}, edges...)...)
	assert.Equal(t, []string{"z", "a"}, got.Order, "roots only")
	assert.Equal(t, []string{"z", "a"}, got.Roots)

	got = traversal{}
	runJSON(t, &got, append([]string{"graph", "bfs", "--max-depth", "0"}, edges...)...)
	assert.Equal(t, []string{"z", "a"}, got.Order)
	assert.Equal(t, map[string]int{"z": 0, "a": 0}, got.Depth)

	got = traversal{}
	runJSON(t, &got, append([]string{"graph", "dfs", "--max-depth", "1"}, edges...)...)
	assert.Equal(t, []string{"z", "a", "b", "c"}, got.Order)
	assert.Equal(t, []string{"z", "a"}, got.Roots)
}

func TestGraph_TopoAndCycle(t *testing.T) {
	out, _, err := run(t, "graph", "topo", "--edge", "shirt:tie", "--edge", "tie:jacket", "--edge", "pants:jacket", "--format", "yaml")
	require.NoError(t, err)
	var topo struct {
		Order []string `yaml:"order"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &topo))
	assert.Equal(t, []string{"pants", "shirt", "tie", "jacket"}, topo.Order)

	var cyc struct {
		Found bool     `json:"found"`
		Cycle []string `json:"cycle"`
	}
	runJSON(t, &cyc, "graph", "cycle", "--shape", "cycle", "--size", "3")
	assert.True(t, cyc.Found)
	assert.Equal(t, []string{"1", "2", "3", "1"}, cyc.Cycle)

	out, _, err = run(t, "graph", "cycle", "--shape", "path", "--size", "3", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "acyclic\n", out)

	_, _, err = run(t, "graph", "topo", "--shape", "cycle", "--size", "3")
	require.Error(t, err)
}

func TestGraph_Errors(t *testing.T) {
	cases := map[string][]string{
		"bad edge":      {"graph", "dfs", "--edge", "nocolon"},
		"empty side":    {"graph", "dfs", "--edge", "a:"},
		"two colons":    {"graph", "dfs", "--edge", "a:b:c"},
		"no graph":      {"graph", "bfs"},
		"bad shape":     {"graph", "dfs", "--shape", "blob"},
		"small shape":   {"graph", "dfs", "--shape", "cycle", "--size", "2"},
		"missing start": {"graph", "dfs", "--edge", "a:b", "--start", "q"},
		"bad format":    {"graph", "dfs", "--edge", "a:b", "--format", "xml"},
		"bad log level": {"graph", "dfs", "--edge", "a:b", "--log-level", "loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, args...)
			require.Error(t, err)
		})
	}
}

func TestGraph_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "graph", "dfs", "--edge", "a:b", "--log-level", "debug", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "edge added")
	assert.Contains(t, stderr, "graph built")
	assert.Contains(t, stderr, "run=")
}

func TestFormatAutoIsYAMLWhenPiped(t *testing.T) {
	out, _, err := run(t, "lcs", "AGGTAB", "GXTXAYB")
	require.NoError(t, err)
	assert.Equal(t, "lcs: GTAB\nlength: 4\n", out)
}

func TestSort(t *testing.T) {
	for _, alg := range []string{"bubble", "selection", "merge", "quick"} {
		var got struct {
			Input  []int `json:"input"`
			Sorted []int `json:"sorted"`
		}
		runJSON(t, &got, "sort", alg, "5", "-2", "9", "1")
		assert.Equal(t, []int{5, -2, 9, 1}, got.Input, alg)
		assert.Equal(t, []int{-2, 1, 5, 9}, got.Sorted, alg)
	}

	out, _, err := run(t, "sort", "merge", "pear", "Äpfel", "apple", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "[apple pear Äpfel]\n", out, "byte order by default")

	out, _, err = run(t, "sort", "quick", "pear", "Äpfel", "apple", "--collate", "de", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "[Äpfel apple pear]\n", out)

	_, _, err = run(t, "sort", "bogo", "1")
	require.Error(t, err)
	_, _, err = run(t, "sort", "quick", "b", "a", "--collate", "!!")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	var got struct {
		Index int `json:"index"`
	}
	runJSON(t, &got, "search", "linear", "--target", "7", "4", "7", "1")
	assert.Equal(t, 1, got.Index)

	runJSON(t, &got, "search", "binary", "--target", "9", "1", "3", "5", "7", "9")
	assert.Equal(t, 4, got.Index)

	runJSON(t, &got, "search", "binary", "--target", "cid", "ann", "bob", "cid")
	assert.Equal(t, 2, got.Index)

	runJSON(t, &got, "search", "linear", "--target", "x", "a", "b")
	assert.Equal(t, -1, got.Index)

	runJSON(t, &got, "search", "binary", "--target", "-3", "-7", "-3", "0", "4")
	assert.Equal(t, 1, got.Index)

	runJSON(t, &got, "search", "linear", "-1", "5", "--target=5")
	assert.Equal(t, 1, got.Index)

	_, _, err := run(t, "search", "binary", "--target", "1", "3", "1", "2")
	require.Error(t, err, "unsorted input")
}

func TestSearchCount(t *testing.T) {
	var got struct {
		Sample []string `json:"sample"`
		Counts []string `json:"counts"`
	}
	runJSON(t, &got, "search", "count", "--sample", "10", "--seed", "4", "ann", "bob")
	assert.Len(t, got.Sample, 10)
	require.Len(t, got.Counts, 2)
	assert.Regexp(t, `^ann: \d+ occ$`, got.Counts[0])
	assert.Regexp(t, `^bob: \d+ occ$`, got.Counts[1])
}

func TestSequenceCommands(t *testing.T) {
	out, _, err := run(t, "lcs", "AGGTAB", "GXTXAYB", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "GTAB (4)\n", out)

	for _, extra := range [][]string{nil, {"--recursive"}} {
		var d struct {
			Index int `json:"index"`
		}
		runJSON(t, &d, append([]string{"diverge", "prefix", "prefab"}, extra...)...)
		assert.Equal(t, 4, d.Index)
		runJSON(t, &d, append([]string{"diverge", "same", "same"}, extra...)...)
		assert.Equal(t, -1, d.Index)
	}

	var s struct {
		Sum int `json:"sum"`
	}
	runJSON(t, &s, "sum", "1", "2", "3", "4")
	assert.Equal(t, 10, s.Sum)

	runJSON(t, &s, "sum", "-3", "4")
	assert.Equal(t, 1, s.Sum)

	_, _, err = run(t, "sum", "1", "two")
	require.Error(t, err)
	_, _, err = run(t, "lcs", "only-one")
	require.Error(t, err)
}

func TestTreeCommands(t *testing.T) {
	var avl struct {
		Height   int   `json:"height"`
		InOrder  []int `json:"in_order"`
		PreOrder []int `json:"pre_order"`
	}
	runJSON(t, &avl, "tree", "avl", "1", "2", "3", "4", "5", "6", "7")
	assert.Equal(t, 2, avl.Height)
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, avl.PreOrder)

	out, _, err := run(t, "tree", "bst", "50", "30", "70", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "bst: size=3 height=1\nin:   30 50 70\npre:  50 30 70\npost: 30 70 50\n", out)

	runJSON(t, &avl, "tree", "avl", "0", "-1", "-2")
	assert.Equal(t, []int{-2, -1, 0}, avl.InOrder)
	assert.Equal(t, []int{-1, -2, 0}, avl.PreOrder)
}

func TestListCommands(t *testing.T) {
	var got struct {
		Values  []string `json:"values"`
		Reverse []string `json:"reverse"`
		Len     int      `json:"len"`
		Deleted []string `json:"deleted"`
		Missing []string `json:"missing"`
	}
	runJSON(t, &got, "list", "doubly", "a", "b", "c", "--delete", "b", "--delete", "q")
	assert.Equal(t, []string{"a", "c"}, got.Values)
	assert.Equal(t, []string{"c", "a"}, got.Reverse)
	assert.Equal(t, 2, got.Len)
	assert.Equal(t, []string{"b"}, got.Deleted)
	assert.Equal(t, []string{"q"}, got.Missing)

	out, _, err := run(t, "list", "singly", "x", "y", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "singly (2): x y\n", out)
}

func TestDemo(t *testing.T) {
	var reports []struct {
		Name   string `json:"name"`
		Result any    `json:"result"`
	}
	runJSON(t, &reports, "demo", "--size", "20", "--parallel", "0")
	require.Len(t, reports, 8)

	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.Name
		assert.NotNil(t, r.Result, r.Name)
	}
	assert.Equal(t, []string{
		"bubble sort", "selection sort", "merge sort", "quick sort",
		"recursive sum", "longest common subsequence",
		"depth-first search", "breadth-first search",
	}, names)

	_, stderr, err := run(t, "demo", "--size", "5", "--log-level", "info", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stderr, "demo finished")

	_, _, err = run(t, "demo", "--size", "-1")
	require.ErrorContains(t, err, "size must not be negative")
}

func TestValueArgs(t *testing.T) {
	var nums struct {
		Sorted []int `json:"sorted"`
	}
	out, _, err := run(t, "sort", "merge", "--format", "json", "--", "-10", "2", "-3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &nums), out)
	assert.Equal(t, []int{-10, -3, 2}, nums.Sorted)

	var strs struct {
		Sorted []string `json:"sorted"`
	}
	out, _, err = run(t, "sort", "quick", "--format", "json", "--", "3", "-1", "--format")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &strs), out)
	assert.Equal(t, []string{"--format", "-1", "3"}, strs.Sorted, "values after -- are data")

	var list struct {
		Values []string `json:"values"`
	}
	runJSON(t, &list, "list", "singly", "-1", "x", "-1", "--delete", "-1")
	assert.Equal(t, []string{"x", "-1"}, list.Values)

	out, _, err = run(t, "sort", "quick", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Sort the given values ascending")

	_, _, err = run(t, "sort", "quick", "1", "--bogus")
	require.Error(t, err)
	_, _, err = run(t, "sum", "1", "--log-level", "loud")
	require.Error(t, err)
}
