package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Session().Logout(); err != nil {
			return err
		}

		fmt.Println("Вы вышли из системы")
		return nil
	},
}
