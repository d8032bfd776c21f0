// Package cli provides the pyobfuscate command-line interface.
//
// This package implements the standalone "obfuscate" subcommand, enabling
// the engine to run outside of an MCP client.
package cli

import (
	_ "github.com/spf13/cobra"
	_ "github.com/spf13/pflag"
)
