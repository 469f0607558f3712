package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/internal/icons"
)

var listFamily string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered icons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		family := icons.Family(listFamily)
		if listFamily != "" && !family.Valid() {
			return fmt.Errorf("%w: %s", icons.ErrUnknownFamily, listFamily)
		}

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		byTarget := make(map[string][]string)
		for alias, target := range reg.Aliases() {
			byTarget[target] = append(byTarget[target], alias)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tFAMILY\tSIZE\tALIASES")
		for _, e := range reg.Entries() {
			if listFamily != "" && e.Glyph.Family != family {
				continue
			}
			aliases := byTarget[e.Name]
			sort.Strings(aliases)
			fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\n", e.Name, e.Glyph.Family, e.Glyph.Width, e.Glyph.Height, strings.Join(aliases, ","))
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listFamily, "family", "", "only list icons resolved in this family (solid, regular, brands)")
	rootCmd.AddCommand(listCmd)
}
