package student

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studentdash/internal/app/client"
)

// StudentCmd - родительская команда для всех операций со студентами
var StudentCmd = &cobra.Command{
	Use:     "student",
	Aliases: []string{"students"},
	Short:   "Управление студентами",
	Long:    `Просмотр, добавление, изменение и удаление записей студентов.`,
}

func init() {
	StudentCmd.AddCommand(ListCmd)
	StudentCmd.AddCommand(AddCmd)
	StudentCmd.AddCommand(UpdateCmd)
	StudentCmd.AddCommand(DeleteCmd)
}

// printOutcome выводит итог операции в stderr, чтобы не мешать json/csv выводу
func printOutcome(op string, outcome client.Outcome) {
	msg := outcome.Message(op)
	switch outcome.Status {
	case client.StatusSynced:
		color.New(color.FgGreen).Fprintln(os.Stderr, "✓ "+msg)
	case client.StatusFailed:
		color.New(color.FgRed).Fprintln(os.Stderr, "✗ "+msg)
		if outcome.Err != nil {
			fmt.Fprintf(os.Stderr, "  %v\n", outcome.Err)
		}
	default:
		color.New(color.FgYellow).Fprintln(os.Stderr, "⚠️  "+msg)
	}
}
