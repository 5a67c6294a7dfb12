package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"studentdash/internal/domain/user"
)

// AuthCmd - родительская команда для всех операций с авторизацией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Вход, регистрация, выход и просмотр текущей сессии.`,
}

func init() {
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(SignupCmd)
	AuthCmd.AddCommand(LogoutCmd)
	AuthCmd.AddCommand(WhoamiCmd)
}

var stdin = bufio.NewReader(os.Stdin)

// promptLine читает строку, если значение не передано флагом
func promptLine(label, value string) string {
	if value != "" {
		return value
	}
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptPassword читает пароль без эха, если значение не передано флагом
func promptPassword(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Print(label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

// printFieldErrors выводит ошибки формы по полям
func printFieldErrors(err error) bool {
	var fe user.FieldErrors
	if !errors.As(err, &fe) {
		return false
	}

	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	red := color.New(color.FgRed)
	for _, f := range fields {
		red.Printf("  %s: %s\n", f, fe[f])
	}
	return true
}
