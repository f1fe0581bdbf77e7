package cmd

import (
	"fmt"
	"os"

	"github.com/gostonefire/animdata"
	"github.com/gostonefire/animdata/internal/config"
	"github.com/spf13/cobra"
)

// options holds the resolved settings of one command invocation
type options struct {
	json   bool
	txt    bool
	sort   bool
	strict bool
}

// addFormatFlags registers the flags shared by compile and decompile on a command
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "use the JSON format")
	cmd.Flags().Bool("txt", false, "use the tabbed text (TXT) format")
	cmd.Flags().Bool("sort", false, "sort records alphabetically by COF name before saving")
	cmd.Flags().Bool("strict", false, "treat warnings as errors")
	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.MarkFlagsMutuallyExclusive("json", "txt")
	cmd.MarkFlagsOneRequired("json", "txt")
}

// resolveOptions merges config file values and command line flags; an explicitly set
// flag wins over the file
func resolveOptions(cmd *cobra.Command) (opts options, err error) {
	cfg := config.Default()
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return
		}
	}

	opts.sort = cfg.Sort
	opts.strict = cfg.Strict
	if cmd.Flags().Changed("sort") {
		opts.sort, _ = cmd.Flags().GetBool("sort")
	}
	if cmd.Flags().Changed("strict") {
		opts.strict, _ = cmd.Flags().GetBool("strict")
	}
	opts.json, _ = cmd.Flags().GetBool("json")
	opts.txt, _ = cmd.Flags().GetBool("txt")

	return
}

// reportDiagnostics prints integrity warnings for records to stderr. In strict mode any
// warning makes the run fail before output is written.
func reportDiagnostics(records []animdata.Record, strict bool) error {
	warnings := 0

	for _, name := range animdata.FindDuplicateCofNames(records) {
		fmt.Fprintf(os.Stderr, "warning: duplicate COF name: %s\n", name)
		warnings++
	}
	for _, record := range records {
		for _, frame := range animdata.FindOutOfBoundsTriggers(record) {
			fmt.Fprintf(os.Stderr,
				"warning: record %s: trigger frame %d may have no effect because it is same or greater than frames_per_direction (%d)\n",
				record.CofName(), frame, record.FramesPerDirection())
			warnings++
		}
	}

	if strict && warnings > 0 {
		return fmt.Errorf("%d warning(s) treated as errors in strict mode", warnings)
	}

	return nil
}
