// Package flagx lets several config loaders share one command line. Each loader
// picks out only the flags it owns, so unknown flags from other loaders never
// make flag.Parse fail.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only allowedFlags (and their values) from args.
//
// Both "-c file" and "-c=file" forms are understood. A value is taken from the
// next argument only when that argument does not itself look like a flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag returns the JSON config path given with -c or -config,
// or "" when neither is present.
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "config", "c", "path to JSON config file")
}

// EnvFileFlag returns the dotenv path given with -e or -env,
// or "" when neither is present.
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env", "e", "path to .env file")
}

func stringFlag(args []string, long, short, usage string) string {
	var value string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&value, long, "", usage)
	fs.StringVar(&value, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return value
}
