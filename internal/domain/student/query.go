package student

import (
	"fmt"
	"sort"
	"strings"
)

// FilterField - поле, по которому выполняется поиск
type FilterField string

const (
	FilterAll       FilterField = "all"
	FilterFirstName FilterField = "firstname"
	FilterLastName  FilterField = "lastname"
	FilterPhone     FilterField = "phone"
	FilterAge       FilterField = "age"
	FilterRole      FilterField = "role"
)

// DefaultRowsPerPage - размер страницы таблицы по умолчанию
const DefaultRowsPerPage = 10

// Validate проверяет, что поле поиска поддерживается
func (f FilterField) Validate() error {
	switch f {
	case FilterAll, FilterFirstName, FilterLastName, FilterPhone, FilterAge, FilterRole:
		return nil
	}
	return fmt.Errorf("неверное поле поиска: %s", f)
}

// Query - параметры поиска, сортировки и пагинации таблицы
type Query struct {
	Term        string
	Field       FilterField
	Page        int
	RowsPerPage int
}

// Page - одна страница результата
type Page struct {
	Rows       []Student
	Total      int
	Page       int
	TotalPages int
}

// Filter оставляет записи, подходящие под поисковую строку.
// all и firstname ищут по префиксу имени, остальные поля - по подстроке.
func Filter(list []Student, field FilterField, term string) []Student {
	term = strings.ToLower(term)
	if term == "" {
		return list
	}
	if field == "" {
		field = FilterAll
	}

	out := make([]Student, 0, len(list))
	for _, s := range list {
		if field == FilterAll || field == FilterFirstName {
			if strings.HasPrefix(strings.ToLower(s.FirstName), term) {
				out = append(out, s)
			}
			continue
		}
		if strings.Contains(strings.ToLower(fieldValue(s, field)), term) {
			out = append(out, s)
		}
	}
	return out
}

// SortByFirstName сортирует копию по имени без учета регистра
func SortByFirstName(list []Student) []Student {
	out := make([]Student, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
	})
	return out
}

// Apply выполняет поиск, сортировку (только при заданной строке) и пагинацию
func Apply(list []Student, q Query) Page {
	rows := Filter(list, q.Field, q.Term)
	if q.Term != "" {
		rows = SortByFirstName(rows)
	}
	return Paginate(rows, q.Page, q.RowsPerPage)
}

// Paginate возвращает страницу с номером page (с единицы)
func Paginate(list []Student, page, rowsPerPage int) Page {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	if page < 1 {
		page = 1
	}

	total := len(list)
	totalPages := total / rowsPerPage
	if total%rowsPerPage != 0 {
		totalPages++
	}

	// страницы за пределами списка пустые; умножаем только в пределах списка
	first, last := total, total
	if page-1 < totalPages {
		first = (page - 1) * rowsPerPage
		last = total
		if total-first > rowsPerPage {
			last = first + rowsPerPage
		}
	}

	return Page{
		Rows:       list[first:last],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func fieldValue(s Student, field FilterField) string {
	switch field {
	case FilterFirstName:
		return s.FirstName
	case FilterLastName:
		return s.LastName
	case FilterPhone:
		return s.Phone
	case FilterAge:
		return string(s.Age)
	case FilterRole:
		return s.Role
	default:
		return ""
	}
}
