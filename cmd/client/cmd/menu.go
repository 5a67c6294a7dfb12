// cmd/client/cmd/menu.go
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
)

var menuPath string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Показать боковое меню",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		menu := app.Menu()
		active := menu.ActiveFor(menuPath)
		if menuPath == "" {
			active = menu.Active
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, item := range menu.Items {
			marker := " "
			name := item.Name
			if item.Name == active {
				marker = "▶"
				name = color.New(color.Bold).Sprint(item.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", marker, name, item.Path, item.Icon)
		}
		return w.Flush()
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuPath, "path", "", "путь текущего раздела")
}
