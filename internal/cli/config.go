package cli

// Config stores CLI options for a single generation run.
type Config struct {
	Patterns    []string
	Types       []string
	DryRun      bool
	DumpSchema  bool
	ShowVersion bool
}
