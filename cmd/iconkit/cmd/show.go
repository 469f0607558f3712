package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/internal/render"
)

var showClass []string

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an icon as a standalone SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		name := args[0]
		glyph, ok := reg.Resolve(name)
		if !ok {
			return fmt.Errorf("icon not found: %s", name)
		}
		if err := render.SVG(name, glyph, render.WithClass(showClass...)).Render(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	showCmd.Flags().StringSliceVar(&showClass, "class", nil, "extra CSS classes for the svg element")
	rootCmd.AddCommand(showCmd)
}
