package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a competitor from tracking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer reg.Close()

		removed, err := reg.Remove(ctx, args[0])
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("Removed competitor: %s\n", args[0])
		} else {
			fmt.Printf("Competitor not found: %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
