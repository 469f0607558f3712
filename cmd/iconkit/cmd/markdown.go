package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/internal/catalog"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Print the registered icons as a Markdown table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), catalog.Markdown(reg))
		return err
	},
}

func init() {
	rootCmd.AddCommand(markdownCmd)
}
