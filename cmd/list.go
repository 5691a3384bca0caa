package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked competitors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer reg.Close()

		competitors, err := reg.List(ctx)
		if err != nil {
			return err
		}

		if len(competitors) == 0 {
			fmt.Println("No competitors tracked yet.")
			fmt.Println("Use 'compete add <name> --url <url>' to add one.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.SetTitle("Tracked Competitors")
		t.AppendHeader(table.Row{"Name", "URL", "Twitter", "LinkedIn"})
		for _, c := range competitors {
			t.AppendRow(table.Row{c.Name, orDash(c.URL), orDash(c.Twitter), orDash(c.LinkedIn)})
		}
		t.Render()
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(listCmd)
}
