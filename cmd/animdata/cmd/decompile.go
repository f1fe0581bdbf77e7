package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gostonefire/animdata"
	"github.com/gostonefire/animdata/internal/txt"
	"github.com/spf13/cobra"
)

// decompileCmd represents the decompile command
var decompileCmd = &cobra.Command{
	Use:   "decompile <animdata_d2> <target>",
	Short: "Decompiles AnimData.D2 to JSON or tabbed text",
	Long: `Decompiles a binary AnimData.D2 file to a JSON or tabbed text (TXT) file.

Example:
  animdata decompile --json AnimData.D2 AnimData.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot open animdata file: %w", err)
		}
		records, err := animdata.Decode(data)
		if err != nil {
			return err
		}

		if err = reportDiagnostics(records, opts.strict); err != nil {
			return err
		}
		if opts.sort {
			animdata.SortRecordsByCofName(records)
		}

		target, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("cannot create target file: %w", err)
		}
		defer target.Close()

		if opts.txt {
			return txt.Dump(target, records)
		}

		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		_, err = target.Write(out)

		return err
	},
}

func init() {
	addFormatFlags(decompileCmd)
	rootCmd.AddCommand(decompileCmd)
}
