package student

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout - формат даты создания записи (как у toISOString)
const DateLayout = "2006-01-02T15:04:05.000Z"

// Student - запись студента
type Student struct {
	ID        string `json:"id,omitempty" csv:"id"`
	FirstName string `json:"firstname,omitempty" csv:"firstname" validate:"required"`
	LastName  string `json:"lastname,omitempty" csv:"lastname" validate:"required"`
	Age       Age    `json:"age,omitempty" csv:"age" validate:"required,age"`
	Phone     string `json:"phone,omitempty" csv:"phone" validate:"required,phone"`
	Mail      string `json:"mail,omitempty" csv:"mail" validate:"required,email"`
	Role      string `json:"role,omitempty" csv:"role" validate:"required"`
	Date      string `json:"date,omitempty" csv:"date"`
}

// HasID проверяет, назначен ли записи идентификатор
func (s Student) HasID() bool {
	return strings.TrimSpace(s.ID) != ""
}

// Age - возраст, который удаленный источник отдает то числом, то строкой
type Age string

// AgeOf строит Age из числа
func AgeOf(n int) Age {
	return Age(strconv.Itoa(n))
}

// Int возвращает числовое значение возраста
func (a Age) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(a)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (a Age) String() string {
	return string(a)
}

// MarshalJSON пишет число только для канонической записи числа, иначе строку как есть
func (a Age) MarshalJSON() ([]byte, error) {
	if n, ok := a.Int(); ok && strconv.Itoa(n) == string(a) {
		return []byte(string(a)), nil
	}
	return json.Marshal(string(a))
}

// UnmarshalJSON принимает число, строку или null
func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parse age: %w", err)
		}
		*a = Age(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse age: %w", err)
	}
	*a = Age(n.String())
	return nil
}

// MarshalCSV реализует gocsv.TypeMarshaller
func (a Age) MarshalCSV() (string, error) {
	return string(a), nil
}

// NowDate возвращает текущую дату в формате DateLayout
func NowDate(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
