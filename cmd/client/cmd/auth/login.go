// cmd/client/cmd/auth/login.go
package auth

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
	"studentdash/internal/domain/user"
)

var (
	loginUsername string
	loginPassword string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Вход по email и паролю.

Принимаются учетные данные из конфигурации (CORRECT_USERNAME / CORRECT_PASSWORD)
или учетная запись, созданная командой auth signup.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		email := promptLine("Email: ", loginUsername)
		password, err := promptPassword("Пароль: ", loginPassword)
		if err != nil {
			return err
		}

		state, err := app.Session().Login(cmd.Context(), user.LoginRequest{
			Username: email,
			Password: password,
		})
		if err != nil {
			if printFieldErrors(err) {
				return errors.New("вход не выполнен")
			}
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		color.Green("✅ Добро пожаловать, %s!", state.UserName)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "email пользователя")
	LoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "пароль (по умолчанию запрашивается)")
}
