package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		state := app.Session().Current()
		fmt.Printf("Пользователь: %s\n", state.UserName)
		fmt.Printf("Email:        %s\n", state.UserEmail)
		fmt.Printf("Вход:         %s\n", state.LastLogin.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
