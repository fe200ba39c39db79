package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isNegativeNumber reports whether arg is a number like "-5" or "-86400.5",
// which pflag would otherwise read as a shorthand flag.
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// separateNegativeNumbers rewrites args so that negative numbers reach the
// command as positional values. When one is present, the command name stays
// first, flags follow, and every positional value moves behind "--" in its
// original order. Args without negative numbers are returned unchanged.
func separateNegativeNumbers(root *cobra.Command, args []string) []string {
	var flags, positional []string
	found := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			found = true
			positional = append(positional, arg)
		case len(arg) > 1 && arg[0] == '-':
			flags = append(flags, arg)
			if takesValue(root, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if !found {
		return args
	}

	out := make([]string, 0, len(args)+1)
	if len(positional) > 0 && !isNegativeNumber(positional[0]) {
		out = append(out, positional[0])
		positional = positional[1:]
	}
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// takesValue reports whether the flag token arg consumes the next argument
// as its value, e.g. "--format" or "-o" but not "--format=yaml", "-oyaml" or
// a boolean flag.
func takesValue(root *cobra.Command, arg string) bool {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
		return f != nil && f.NoOptDefVal == ""
	}

	// Shorthand cluster: only the last letter may take a separate value.
	shorts := arg[1:]
	for i := 0; i < len(shorts); i++ {
		c := shorts[i : i+1]
		f := lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(c) })
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(shorts)-1
		}
	}
	return false
}

// lookupFlag searches the persistent flags of root and the local flags of
// each subcommand.
func lookupFlag(root *cobra.Command, find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	if f := find(root.PersistentFlags()); f != nil {
		return f
	}
	for _, sub := range root.Commands() {
		if f := find(sub.Flags()); f != nil {
			return f
		}
	}
	return nil
}
