package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/cmd/iconkit/internal/analyzer"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Report icon names used in Go source that are not registered",
	Long: `Scans the Go packages under dir (default ".") for string literals passed
as the icon name to render.IconNode or render.Icon, and reports every name
the catalog cannot resolve. Names built at runtime are not checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		usages, err := analyzer.Load(dir)
		if err != nil {
			return err
		}

		missing := analyzer.Missing(usages, func(name string) bool {
			_, ok := reg.Resolve(name)
			return ok
		})
		out := cmd.OutOrStdout()
		for _, u := range missing {
			fmt.Fprintf(out, "%s: unknown icon %q in %s\n", u.Pos, u.Name, u.Func)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d of %d icon references are not registered", len(missing), len(usages))
		}
		fmt.Fprintf(out, "%d icon references, all registered\n", len(usages))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
