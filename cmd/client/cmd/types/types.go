package types

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentdash/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым приложение лежит в контексте команды
const ClientAppKey contextKey = "app"

// AppFrom достает приложение из контекста команды
func AppFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// LoggedInApp достает приложение и проверяет, что пользователь вошел
func LoggedInApp(cmd *cobra.Command) (*client.App, error) {
	app, err := AppFrom(cmd)
	if err != nil {
		return nil, err
	}
	if err := app.RequireLogin(); err != nil {
		return nil, err
	}
	return app, nil
}
