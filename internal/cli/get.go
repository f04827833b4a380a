package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riposte-cli/riposte/internal/http"
	"github.com/riposte-cli/riposte/internal/output"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		noColor, _ := cmd.Flags().GetBool("no-color")

		if err := ValidateURL(url); err != nil {
			return err
		}

		// Argument errors are behind us; a failed request should not
		// echo the usage text.
		cmd.SilenceUsage = true

		client := http.NewClient()
		req := http.NewRequest("GET", url)

		resp, err := client.Do(cmd.Context(), req)
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(noColor || !output.IsTerminal(os.Stdout))
		out, err := formatter.FormatResponse(resp)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	// Add flags to GET command
	getCmd.Flags().Bool("no-color", false, "Disable colored output")
}
