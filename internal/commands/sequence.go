// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/sequence"
)

var errNotNumber = errors.New("sum takes integers only")

type lcsOutput struct {
	LCS    string `json:"lcs" yaml:"lcs"`
	Length int    `json:"length" yaml:"length"`
}

func newLCSCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lcs <a> <b>",
		Short: "Longest common subsequence of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, n := sequence.LCS(args[0], args[1])
			out := lcsOutput{LCS: s, Length: n}

			return root.render(cmd, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s (%d)\n", out.LCS, out.Length)
				return err
			})
		},
	}
}

type divergeOutput struct {
	Index int `json:"index" yaml:"index"`
}

func newDivergeCmd(root *rootOptions) *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "diverge <a> <b>",
		Short: "Index of the first differing character (-1 when equal)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			find := sequence.DivergenceIndex
			if recursive {
				find = sequence.DivergenceIndexRecursive
			}
			out := divergeOutput{Index: find(args[0], args[1])}

			return root.render(cmd, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Index)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Use the recursive implementation")

	return cmd
}

type sumOutput struct {
	Sum int `json:"sum" yaml:"sum"`
}

func newSumCmd(root *rootOptions) *cobra.Command {
	return valueArgs(&cobra.Command{
		Use:   "sum <int>...",
		Short: "Recursive sum of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, ok := parseInts(args)
			if !ok {
				return errNotNumber
			}
			out := sumOutput{Sum: sequence.Sum(nums)}

			return root.render(cmd, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Sum)
				return err
			})
		},
	}, root)
}
