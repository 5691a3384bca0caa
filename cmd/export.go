package main

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/marketscout/compete-cli/internal/model"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Run a full analysis and export the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer reg.Close()

		c, err := reg.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Printf("Competitor not found: %s\n", args[0])
			return nil
		}

		if exportFormat != "json" && exportFormat != "csv" {
			return eris.Errorf("unknown output format %q (want json or csv)", exportFormat)
		}

		fmt.Println("Running fresh analysis for export...")
		result, _ := newAnalysisRunner().Run(ctx, *c, model.AllKinds())

		path := exportOutput
		if path == "" {
			path = filepath.Join(cfg.Export.OutputDir, c.Name+"_analysis."+exportFormat)
		}
		if err := exportResult(result, path, exportFormat); err != nil {
			return err
		}

		fmt.Printf("Exported to: %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json or csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
