// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"studentdash/cmd/client/cmd/auth"
	"studentdash/cmd/client/cmd/student"
	"studentdash/cmd/client/cmd/types"
	"studentdash/internal/app/client"
	"studentdash/internal/app/client/config"
	"studentdash/internal/utils/logger"
)

var (
	cfgFile string
	apiURL  string
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
)

var rootCmd = &cobra.Command{
	Use:   "studentdash",
	Short: "Student Dashboard - таблица студентов с локальным кешем",
	Long: `Student Dashboard ведет таблицу студентов поверх удаленной коллекции.

Все изменения сначала сохраняются локально, поэтому данные не теряются,
даже если сервер недоступен. При следующем обновлении списка локальные
записи объединяются с удаленными.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func shutdownApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Shutdown()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".studentdash"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "URL удаленной коллекции студентов")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(student.StudentCmd)
	rootCmd.AddCommand(menuCmd)
}
