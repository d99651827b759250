// Package flagx holds helpers for parsing a subset of command-line flags
// without tripping over flags owned by someone else.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments that belong to flags defined on fs,
// keeping their values. Both "-name" and "--name" spellings are recognised,
// as are "-name value" and "-name=value". Everything else is dropped.
//
// A non-boolean flag always takes the next argument as its value, even one
// starting with "-", the same way fs.Parse would. Boolean flags only accept
// the "-name=value" form.
func FilterArgs(fs *flag.FlagSet, args []string) []string {
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		filtered = append(filtered, arg)
		if hasValue || isBoolFlag(f) {
			continue
		}
		if i+1 < len(args) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(fs, args))

	return path
}
