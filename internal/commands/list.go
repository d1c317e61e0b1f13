// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoshelf/linkedlist"
)

type listOutput struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Values  []string `json:"values" yaml:"values"`
	Reverse []string `json:"reverse,omitempty" yaml:"reverse,omitempty"`
	Len     int      `json:"len" yaml:"len"`
	Deleted []string `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func (l listOutput) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s (%d): %s\n", l.Kind, l.Len, joinValues(l.Values))
	if err == nil && l.Reverse != nil {
		_, err = fmt.Fprintf(w, "reverse: %s\n", joinValues(l.Reverse))
	}

	return err
}

// deleter is the part of both list kinds the command needs.
type deleter interface {
	Delete(string) bool
	Values() []string
	Len() int
}

func newListCmd(root *rootOptions) *cobra.Command {
	var remove []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build a linked list from values, optionally deleting some",
		Long: `Append the values to a linked list, delete each --delete value's first
occurrence, then print the list.

Examples:
  algoshelf list singly a b c --delete b
  algoshelf list doubly 1 2 3 4`,
	}
	cmd.PersistentFlags().StringArrayVar(&remove, "delete", nil, "Value to delete (repeatable)")

	run := func(cmd *cobra.Command, kind string, l deleter, reverse func() []string) error {
		out := listOutput{Kind: kind}
		for _, v := range remove {
			if l.Delete(v) {
				out.Deleted = append(out.Deleted, v)
			} else {
				out.Missing = append(out.Missing, v)
			}
		}
		out.Values = l.Values()
		out.Len = l.Len()
		if reverse != nil {
			out.Reverse = reverse()
		}

		return root.render(cmd, out, out.text)
	}

	cmd.AddCommand(
		valueArgs(&cobra.Command{
			Use:   "singly <value>...",
			Short: "Singly linked list",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, "singly", linkedlist.New(args...), nil)
			},
		}, root),
		valueArgs(&cobra.Command{
			Use:   "doubly <value>...",
			Short: "Doubly linked list, also printed tail to head",
			RunE: func(cmd *cobra.Command, args []string) error {
				l := linkedlist.NewDoubly(args...)
				return run(cmd, "doubly", l, l.Reverse)
			},
		}, root),
	)

	return cmd
}
