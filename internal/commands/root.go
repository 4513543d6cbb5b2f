package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// scanOptions holds the root command's flags
type scanOptions struct {
	configPath   string
	debug        bool
	noHeader     bool
	noColor      bool
	showSources  bool
	includeGlobs []string
	excludeGlobs []string
}

// NewRootCommand builds the cfgscan command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &scanOptions{}

	rootCmd := &cobra.Command{
		Use:   "cfgscan [path]",
		Short: "List the configuration keys a codebase reads",
		Long: `cfgscan statically scans a JavaScript/TypeScript source tree and lists the
configuration keys read through configuration services (.get / .getOrThrow)
and the environment variables read through process.env.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, version, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: <path>/.cfgscan.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noHeader, "no-header", false, "Skip printing the header")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.showSources, "sources", false, "Print the files each key was found in")
	flags.StringSliceVar(&opts.includeGlobs, "include", []string{}, "Glob patterns to include")
	flags.StringSliceVar(&opts.excludeGlobs, "exclude", []string{}, "Glob patterns to exclude")

	rootCmd.AddCommand(newInitConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

func printHeader(w io.Writer, version string) {
	header := `        __                          
  ___  / _| __ _  ___  ___ __ _ _ __  
 / __|| |_ / _' |/ __|/ __/ _' | '_ \ 
| (__ |  _| (_| |\__ \ (_| (_| | | | |
 \___||_|  \__, ||___/\___\__,_|_| |_|
           |___/                      
`
	fmt.Fprint(w, header)
	fmt.Fprintf(w, "Version: %s\n\n", version)
}
