// cmd/client/cmd/student/add.go
package student

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
	"studentdash/internal/domain/student"
)

// fieldFlags - поля формы студента, общие для add и update
type fieldFlags struct {
	firstName string
	lastName  string
	age       string
	phone     string
	mail      string
	role      string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "firstname", "", "имя")
	cmd.Flags().StringVar(&f.lastName, "lastname", "", "фамилия")
	cmd.Flags().StringVar(&f.age, "age", "", "возраст")
	cmd.Flags().StringVar(&f.phone, "phone", "", "телефон")
	cmd.Flags().StringVar(&f.mail, "mail", "", "email")
	cmd.Flags().StringVar(&f.role, "role", "", "роль")
}

// apply переносит на запись только явно заданные флаги
func (f *fieldFlags) apply(cmd *cobra.Command, s student.Student) student.Student {
	if cmd.Flags().Changed("firstname") {
		s.FirstName = strings.TrimSpace(f.firstName)
	}
	if cmd.Flags().Changed("lastname") {
		s.LastName = strings.TrimSpace(f.lastName)
	}
	if cmd.Flags().Changed("age") {
		s.Age = student.Age(strings.TrimSpace(f.age))
	}
	if cmd.Flags().Changed("phone") {
		s.Phone = strings.TrimSpace(f.phone)
	}
	if cmd.Flags().Changed("mail") {
		s.Mail = strings.TrimSpace(f.mail)
	}
	if cmd.Flags().Changed("role") {
		s.Role = strings.TrimSpace(f.role)
	}
	return s
}

var addFields fieldFlags

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить студента",
	Long: `Добавление нового студента.

Незаданные флагами поля запрашиваются интерактивно.
Если сервер недоступен, запись сохраняется в локальном кеше.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		rec := addFields.apply(cmd, student.Student{})
		rec = promptMissing(rec)

		if err := student.NewValidator().Validate(rec); err != nil {
			color.Red("✗ %v", err)
			return err
		}

		created, outcome := app.Store().Add(cmd.Context(), rec)
		printOutcome("add", outcome)

		if !outcome.OK() {
			return outcome.Err
		}
		fmt.Printf("ID: %s\n", created.ID)
		return nil
	},
}

func promptMissing(s student.Student) student.Student {
	reader := bufio.NewReader(os.Stdin)
	ask := func(label, current string) string {
		if current != "" {
			return current
		}
		fmt.Printf("%s: ", label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	s.FirstName = ask("Имя", s.FirstName)
	s.LastName = ask("Фамилия", s.LastName)
	s.Age = student.Age(ask("Возраст", string(s.Age)))
	s.Phone = ask("Телефон", s.Phone)
	s.Mail = ask("Email", s.Mail)
	s.Role = ask("Роль", s.Role)
	return s
}

func init() {
	addFields.register(AddCmd)
}
