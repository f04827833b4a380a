package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "riposte",
	Short:   "A small terminal-based HTTP client",
	Version: version,
	Long: `Riposte is a small terminal-based HTTP client written in Go.
Feed get an URL and it retrieves the response for you; feed post an URL
and optional key=value pairs and it sends them as a JSON body.`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
}
