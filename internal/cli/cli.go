package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config. Positional arguments
// are package patterns; the current package is scanned when none are given.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var typesRaw string

	fs := pflag.NewFlagSet("mutty", pflag.ContinueOnError)
	fs.StringVarP(&typesRaw, "type", "t", "", "comma-separated type names to generate (default: all marked types)")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "print artifacts to stdout instead of writing files")
	fs.BoolVar(&cfg.DumpSchema, "dump-schema", false, "dump extracted schemas to stderr")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Patterns = fs.Args()
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"."}
	}
	cfg.Types = splitCommaList(typesRaw)
	return cfg, nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
