package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gostonefire/animdata"
	"github.com/gostonefire/animdata/internal/txt"
	"github.com/spf13/cobra"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile <source> <animdata_d2>",
	Short: "Compiles JSON or tabbed text to AnimData.D2",
	Long: `Compiles a JSON or tabbed text (TXT) file to the binary AnimData.D2 form.

Example:
  animdata compile --txt AnimData.txt AnimData.D2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		var records []animdata.Record
		if opts.txt {
			source, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cannot open source file: %w", err)
			}
			records, err = txt.Load(source)
			source.Close()
			if err != nil {
				return err
			}
		} else {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot open source file: %w", err)
			}
			if err = json.Unmarshal(data, &records); err != nil {
				return err
			}
		}

		if err = reportDiagnostics(records, opts.strict); err != nil {
			return err
		}
		if opts.sort {
			animdata.SortRecordsByCofName(records)
		}

		return os.WriteFile(args[1], animdata.Encode(records), 0644)
	},
}

func init() {
	addFormatFlags(compileCmd)
	rootCmd.AddCommand(compileCmd)
}
