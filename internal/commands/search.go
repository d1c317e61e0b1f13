// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/search"
)

var errNotSorted = errors.New("binary search needs ascending input")

type searchOutput struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Target    string `json:"target" yaml:"target"`
	Index     int    `json:"index" yaml:"index"`
}

func (s searchOutput) text(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.Index)
	return err
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a value's index, or count values in a random sample",
		Long: `Look a target up in the given values. The index is -1 when the target is
absent. Integers are compared numerically, anything else as strings.

Examples:
  algoshelf search linear --target 7 4 7 1
  algoshelf search binary --target 9 1 3 5 7 9
  algoshelf search count --sample 50 ann bob cid`,
	}
	cmd.PersistentFlags().StringVar(&target, "target", "", "Value to look for")

	lookup := func(name string, ints func([]int, int) int, strs func([]string, string) int) *cobra.Command {
		return valueArgs(&cobra.Command{
			Use:   name + " --target <value> <value>...",
			Short: name + " search; prints the index or -1",
			RunE: func(cmd *cobra.Command, args []string) error {
				out := searchOutput{Algorithm: name, Target: target}
				nums, numeric := parseInts(args)
				t, targetNumeric := parseInts([]string{target})
				switch {
				case numeric && targetNumeric:
					if name == "binary" && !slices.IsSorted(nums) {
						return errNotSorted
					}
					out.Index = ints(nums, t[0])
				default:
					if name == "binary" && !slices.IsSorted(args) {
						return errNotSorted
					}
					out.Index = strs(args, target)
				}

				return root.render(cmd, out, out.text)
			},
		}, root)
	}

	cmd.AddCommand(
		lookup("linear", search.Linear[[]int], search.Linear[[]string]),
		lookup("binary", search.Binary[[]int], search.Binary[[]string]),
		newCountCmd(root),
	)

	return cmd
}

type countOutput struct {
	Sample []string `json:"sample" yaml:"sample"`
	Counts []string `json:"counts" yaml:"counts"`
}

func newCountCmd(root *rootOptions) *cobra.Command {
	var (
		size int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "count <value>...",
		Short: "Draw a random sample from the values and count each one in it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := search.Sample(rand.New(rand.NewSource(seed)), args, size)
			if err != nil {
				return err
			}
			out := countOutput{Sample: sample}
			for _, c := range search.Occurrences(args, sample) {
				out.Counts = append(out.Counts, c.String())
			}

			return root.render(cmd, out, func(w io.Writer) error {
				for _, c := range out.Counts {
					if _, err := fmt.Fprintln(w, c); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&size, "sample", 50, "Sample size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	return valueArgs(cmd, root)
}
