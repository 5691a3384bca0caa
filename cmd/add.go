package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketscout/compete-cli/internal/model"
)

var (
	addURL      string
	addTwitter  string
	addLinkedIn string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a competitor to track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer reg.Close()

		c := model.Competitor{
			Name:     args[0],
			URL:      addURL,
			Twitter:  addTwitter,
			LinkedIn: addLinkedIn,
		}
		if err := reg.Add(ctx, c); err != nil {
			return err
		}

		fmt.Printf("Added competitor: %s\n", c.Name)
		if c.URL != "" {
			fmt.Printf("  URL: %s\n", c.URL)
		}
		if c.Twitter != "" {
			fmt.Printf("  Twitter: %s\n", c.Twitter)
		}
		if c.LinkedIn != "" {
			fmt.Printf("  LinkedIn: %s\n", c.LinkedIn)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "competitor website URL")
	addCmd.Flags().StringVarP(&addTwitter, "twitter", "t", "", "Twitter/X handle")
	addCmd.Flags().StringVarP(&addLinkedIn, "linkedin", "l", "", "LinkedIn profile URL")
	rootCmd.AddCommand(addCmd)
}
