// cmd/client/cmd/auth/signup.go
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
	signupFirstName string
	signupLastName  string
	signupEmail     string
)

var SignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация локальной учетной записи.

Пароль: минимум 6 символов, заглавная и строчная буква, цифра и спецсимвол.
После регистрации вход выполняется автоматически.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация нового пользователя ===")
		fmt.Println()

		req := user.SignupRequest{
			FirstName: promptLine("Имя: ", signupFirstName),
			LastName:  promptLine("Фамилия: ", signupLastName),
			Email:     promptLine("Email: ", signupEmail),
		}
		if req.Password, err = promptPassword("Пароль: ", ""); err != nil {
			return err
		}
		if req.ConfirmPassword, err = promptPassword("Повторите пароль: ", ""); err != nil {
			return err
		}

		state, err := app.Session().Signup(cmd.Context(), req)
		if err != nil {
			if printFieldErrors(err) {
				return errors.New("регистрация не выполнена")
			}
			if errors.Is(err, user.ErrExists) {
				return fmt.Errorf("пользователь %s уже зарегистрирован", req.Email)
			}
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		color.Green("✅ Учетная запись создана, вы вошли как %s", state.UserName)
		return nil
	},
}

func init() {
	SignupCmd.Flags().StringVar(&signupFirstName, "first-name", "", "имя")
	SignupCmd.Flags().StringVar(&signupLastName, "last-name", "", "фамилия")
	SignupCmd.Flags().StringVar(&signupEmail, "email", "", "email")
}
