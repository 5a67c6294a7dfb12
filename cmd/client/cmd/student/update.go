// cmd/client/cmd/student/update.go
package student

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
	"studentdash/internal/app/client"
	"studentdash/internal/domain/student"
)

var updateFields fieldFlags

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить студента",
	Long: `Изменение записи студента. Заданные флагами поля заменяют текущие значения,
запись отправляется на сервер целиком.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		store := app.Store()

		// в новом процессе список пуст, сначала подтягиваем актуальные данные
		_, outcome := store.Refresh(cmd.Context())
		if outcome.Status == client.StatusFailed {
			printOutcome("list", outcome)
		}

		existing, ok := store.Find(id)
		if !ok {
			color.Yellow("⚠️  Запись %s не найдена, список обновлен", id)
			return nil
		}

		rec := updateFields.apply(cmd, existing)
		if err := student.NewValidator().Validate(rec); err != nil {
			color.Red("✗ %v", err)
			return err
		}

		outcome, err = store.Update(cmd.Context(), rec)
		if err != nil {
			return err
		}
		printOutcome("update", outcome)

		if !outcome.OK() {
			return outcome.Err
		}
		return nil
	},
}

func init() {
	updateFields.register(UpdateCmd)
}
