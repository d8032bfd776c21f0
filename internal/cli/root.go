package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zskulcsar/code-duplication-scanner/internal/version"
)

var verbose bool

// NewRootCmd creates the root command for the pyobfuscate CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pyobfuscate",
		Short: "Project-wide identifier obfuscator for Python source",
		Long: `pyobfuscate indexes every declaration, reference, import, and dynamic
name-access site across a project, builds a deterministic rename map, and
rewrites every source file so that all project-owned identifiers become
opaque tokens while external names and runtime behavior are preserved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newObfuscateCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Get()
			fmt.Printf("pyobfuscate %s\n", version.String())
			fmt.Printf("  go: %s\n", v.GoVersion)
			if v.Commit != "unknown" && v.Commit != "" {
				fmt.Printf("  commit: %s\n", v.Commit)
			}
			if v.BuildTime != "unknown" && v.BuildTime != "" {
				fmt.Printf("  built: %s\n", v.BuildTime)
			}
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
