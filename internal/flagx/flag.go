// Package flagx lets several independent parsers read their own flags from
// one argument list. Each parser filters os.Args down to the names it owns
// and hands the rest of the line to nobody.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps the arguments naming one of allowed, together with their
// values. Both "-c conf.json" and "-config=conf.json" forms are recognised;
// a following token that starts with '-' is never taken as a value.
func FilterArgs(args []string, allowed ...string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := names[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := names[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// StringValue returns the value given to any of names in args. When the
// flag is repeated the last occurrence wins; "" means absent.
func StringValue(args []string, names ...string) string {
	var v string

	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&v, strings.TrimLeft(n, "-"), "", "")
	}
	_ = fs.Parse(FilterArgs(args, names...))

	return v
}

// ConfigFile is the JSON config path passed with -c or -config.
func ConfigFile() string {
	return StringValue(os.Args[1:], "-c", "-config")
}

// EnvFile is the dotenv path passed with -e or -env-file.
func EnvFile() string {
	return StringValue(os.Args[1:], "-e", "-env-file")
}
