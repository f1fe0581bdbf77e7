package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animdata",
	Short: "Convert AnimData.D2 to and from editable text formats",
	Long: `animdata converts the AnimData.D2 animation table of Diablo II to and from
human-editable representations: a tabbed text table (TXT) and JSON.

Both directions verify the hash bucket layout of the binary form and report
duplicate COF names and out-of-bounds trigger frames as warnings.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
