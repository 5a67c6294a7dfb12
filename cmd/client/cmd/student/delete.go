// cmd/client/cmd/student/delete.go
package student

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить студента",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		if !deleteYes && !confirm(fmt.Sprintf("Удалить запись %s? [y/N]: ", id)) {
			fmt.Println("Отменено")
			return nil
		}

		outcome, err := app.Store().Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOutcome("delete", outcome)

		if !outcome.OK() {
			return outcome.Err
		}
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "д" || answer == "да"
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
