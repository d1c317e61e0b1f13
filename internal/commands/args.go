// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// valueArgs lets c take values such as -2 as positional arguments. pflag
// would read them as shorthand flags, so c parses its own flags: anything
// that parses as a number is a value unless it follows a flag that needs
// one, and everything after "--" is a value.
func valueArgs(c *cobra.Command, root *rootOptions) *cobra.Command {
	validate, run := c.Args, c.RunE
	c.DisableFlagParsing = true
	c.Args = cobra.ArbitraryArgs
	c.RunE = func(cmd *cobra.Command, args []string) error {
		values, err := parseValueArgs(cmd, args)
		if err != nil {
			return err
		}
		if help, _ := cmd.Flags().GetBool("help"); help {
			return cmd.Help()
		}
		// persistent flags were still at their defaults in the pre-run hook
		if err = root.installLogger(cmd); err != nil {
			return err
		}
		if validate != nil {
			if err = validate(cmd, values); err != nil {
				return err
			}
		}

		return run(cmd, values)
	}

	return c
}

// parseValueArgs splits args into flags, which it parses into cmd's flag
// set, and positional values, which it returns in order.
func parseValueArgs(cmd *cobra.Command, args []string) ([]string, error) {
	fs := cmd.Flags()
	fs.AddFlagSet(cmd.InheritedFlags())

	var flags, values []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			values = append(values, args[i+1:]...)
			i = len(args)
		case a == "-" || !strings.HasPrefix(a, "-") || isNumber(a):
			values = append(values, a)
		default:
			flags = append(flags, a)
			if needsValue(fs, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}

	return values, nil
}

// needsValue reports whether arg names a flag whose value is the next arg.
func needsValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	switch name := strings.TrimLeft(arg, "-"); {
	case strings.HasPrefix(arg, "--"):
		f = fs.Lookup(name)
	case len(name) == 1:
		f = fs.ShorthandLookup(name)
	}

	return f != nil && f.NoOptDefVal == ""
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
