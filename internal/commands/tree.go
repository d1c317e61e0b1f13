// SPDX-License-Identifier: MIT

package commands

import (
	"cmp"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/tree"
)

type treeOutput struct {
	Kind      string `json:"kind" yaml:"kind"`
	Size      int    `json:"size" yaml:"size"`
	Height    int    `json:"height" yaml:"height"`
	InOrder   []int  `json:"in_order" yaml:"in_order"`
	PreOrder  []int  `json:"pre_order" yaml:"pre_order"`
	PostOrder []int  `json:"post_order,omitempty" yaml:"post_order,omitempty"`
}

func (t treeOutput) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: size=%d height=%d\nin:   %s\npre:  %s\n",
		t.Kind, t.Size, t.Height, joinValues(t.InOrder), joinValues(t.PreOrder))
	if err == nil && t.PostOrder != nil {
		_, err = fmt.Fprintf(w, "post: %s\n", joinValues(t.PostOrder))
	}

	return err
}

func newTreeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Insert integers into a search tree and print its traversals",
		Long: `Insert the given integers in order and print the tree's traversals.

Examples:
  algoshelf tree bst 50 30 70 20 40
  algoshelf tree avl 1 2 3 4 5 6 7`,
	}

	cmd.AddCommand(
		valueArgs(&cobra.Command{
			Use:   "bst <int>...",
			Short: "Unbalanced binary search tree",
			RunE: func(cmd *cobra.Command, args []string) error {
				keys, ok := parseInts(args)
				if !ok {
					return errNotNumber
				}
				t := tree.NewBST(cmp.Compare[int])
				for _, k := range keys {
					t.Insert(k)
				}
				out := treeOutput{
					Kind:      "bst",
					Size:      t.Len(),
					Height:    t.Height(),
					InOrder:   t.InOrder(),
					PreOrder:  t.PreOrder(),
					PostOrder: t.PostOrder(),
				}

				return root.render(cmd, out, out.text)
			},
		}, root),
		valueArgs(&cobra.Command{
			Use:   "avl <int>...",
			Short: "Self-balancing AVL tree (duplicates ignored)",
			RunE: func(cmd *cobra.Command, args []string) error {
				keys, ok := parseInts(args)
				if !ok {
					return errNotNumber
				}
				t := tree.NewAVL(cmp.Compare[int])
				for _, k := range keys {
					t.Insert(k)
				}
				if err := t.Check(); err != nil {
					return err
				}
				out := treeOutput{
					Kind:     "avl",
					Size:     t.Len(),
					Height:   t.Height(),
					InOrder:  t.InOrder(),
					PreOrder: t.PreOrder(),
				}

				return root.render(cmd, out, out.text)
			},
		}, root),
	)

	return cmd
}
