package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riposte-cli/riposte/internal/http"
	"github.com/riposte-cli/riposte/internal/output"
)

var postCmd = &cobra.Command{
	Use:   "post URL [key=value ...]",
	Short: "Make a POST request with a JSON body built from key=value pairs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		noColor, _ := cmd.Flags().GetBool("no-color")

		if err := ValidateURL(url); err != nil {
			return err
		}

		pairs := make([]KVPair, 0, len(args)-1)
		for _, arg := range args[1:] {
			pair, err := ParseKVPair(arg)
			if err != nil {
				return err
			}
			pairs = append(pairs, pair)
		}

		// Argument errors are behind us; a failed request should not
		// echo the usage text.
		cmd.SilenceUsage = true

		client := http.NewClient()
		req := http.NewRequest("POST", url)
		req.WithBody(bodyFromPairs(pairs))

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
	// Add flags to POST command
	postCmd.Flags().Bool("no-color", false, "Disable colored output")
}
