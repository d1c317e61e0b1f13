// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/katalvlaran/algoshelf/sorting"
)

// sorter pairs the ordered and comparator forms of one algorithm.
type sorter struct {
	ints    func([]int) []int
	strings func([]string, func(a, b string) int) []string
}

var sorters = map[string]sorter{
	"bubble":    {sorting.Bubble[[]int], sorting.BubbleFunc[[]string]},
	"selection": {sorting.Selection[[]int], sorting.SelectionFunc[[]string]},
	"merge":     {sorting.Merge[[]int], sorting.MergeFunc[[]string]},
	"quick":     {sorting.Quick[[]int], sorting.QuickFunc[[]string]},
}

func algorithmNames[V any](m map[string]V) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)

	return strings.Join(names, ", ")
}

type sortOutput struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Input     any    `json:"input" yaml:"input"`
	Sorted    any    `json:"sorted" yaml:"sorted"`
}

func newSortCmd(root *rootOptions) *cobra.Command {
	var collation string
	cmd := &cobra.Command{
		Use:   "sort <algorithm> <value>...",
		Short: "Sort values with bubble, selection, merge or quick sort",
		Long: `Sort the given values ascending. If every value is an integer they are
sorted numerically, otherwise as strings: byte order by default, or by the
collation rules of a language with --collate.

Examples:
  algoshelf sort merge 5 3 9 1
  algoshelf sort quick pear Äpfel apple --collate de`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := sorters[args[0]]
			if !ok {
				return fmt.Errorf("%w: %q (choose from %s)", errUnknownAlgorithm, args[0], algorithmNames(sorters))
			}
			values := args[1:]
			out := sortOutput{Algorithm: args[0]}

			if ints, ok := parseInts(values); ok && collation == "" {
				out.Input = slices.Clone(ints)
				out.Sorted = s.ints(ints)
			} else {
				compare, err := stringComparator(collation)
				if err != nil {
					return err
				}
				out.Input = slices.Clone(values)
				out.Sorted = s.strings(slices.Clone(values), compare)
			}

			return root.render(cmd, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%v\n", out.Sorted)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&collation, "collate", "", "BCP 47 language tag for string collation, e.g. de, sv, en-US")

	return valueArgs(cmd, root)
}

// stringComparator returns strings.Compare, or a collator for tag.
func stringComparator(tag string) (func(a, b string) int, error) {
	if tag == "" {
		return strings.Compare, nil
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("collate %q: %w", tag, err)
	}

	return collate.New(lang).CompareString, nil
}

// parseInts converts every arg, reporting false on the first non-integer.
func parseInts(args []string) ([]int, bool) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}

	return out, true
}
