// cmd/client/cmd/student/list.go
package student

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"studentdash/cmd/client/cmd/types"
	"studentdash/internal/domain/student"
)

var (
	listSearch string
	listField  string
	listPage   int
	listRows   int
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список студентов",
	Long: `Просмотр таблицы студентов.

Поиск по полю all или firstname ищет по началу имени, по остальным полям
(lastname, phone, age, role) - по вхождению. При поиске строки сортируются по имени.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.LoggedInApp(cmd)
		if err != nil {
			return err
		}

		field := student.FilterField(listField)
		if err := field.Validate(); err != nil {
			return err
		}

		rows := listRows
		if rows <= 0 {
			rows = app.Config().RowsPerPage
		}

		list, outcome := app.Store().Refresh(cmd.Context())
		printOutcome("list", outcome)

		page := student.Apply(list, student.Query{
			Term:        listSearch,
			Field:       field,
			Page:        listPage,
			RowsPerPage: rows,
		})

		switch listFormat {
		case "json":
			return printJSON(page)
		case "csv":
			return gocsv.Marshal(page.Rows, os.Stdout)
		default:
			return printTable(page)
		}
	},
}

func printTable(page student.Page) error {
	if page.Total == 0 {
		fmt.Println("Студенты не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tИмя\tФамилия\tВозраст\tТелефон\tEmail\tРоль\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")

	for _, s := range page.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.ID,
			truncate(s.FirstName, 20),
			truncate(s.LastName, 20),
			s.Age,
			s.Phone,
			s.Mail,
			s.Role,
		)
	}

	w.Flush()
	fmt.Printf("\nСтраница %d из %d, всего записей: %d\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func printJSON(page student.Page) error {
	out := struct {
		Students   []student.Student `json:"students"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
	}{
		Students:   page.Rows,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "строка поиска")
	ListCmd.Flags().StringVar(&listField, "field", string(student.FilterAll), "поле поиска (all, firstname, lastname, phone, age, role)")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "номер страницы")
	ListCmd.Flags().IntVar(&listRows, "rows", 0, "строк на странице (по умолчанию ROWS_PER_PAGE)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json, csv)")
}
