package student

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldAliases сопоставляет варианты написания полей с каноническими именами.
// Ключи записаны в нормализованном виде: нижний регистр, без '_' и '-'.
var FieldAliases = map[string]string{
	"id":           "id",
	"studentid":    "id",
	"firstname":    "firstname",
	"fname":        "firstname",
	"givenname":    "firstname",
	"name":         "firstname",
	"lastname":     "lastname",
	"lname":        "lastname",
	"surname":      "lastname",
	"familyname":   "lastname",
	"age":          "age",
	"phone":        "phone",
	"phonenumber":  "phone",
	"mobile":       "phone",
	"tel":          "phone",
	"mail":         "mail",
	"email":        "mail",
	"emailaddress": "mail",
	"role":         "role",
	"position":     "role",
	"date":         "date",
	"createdat":    "date",
	"created":      "date",
}

// Canonical возвращает каноническое имя поля или "" для неизвестных полей
func Canonical(field string) string {
	k := strings.ToLower(strings.TrimSpace(field))
	k = strings.ReplaceAll(k, "_", "")
	k = strings.ReplaceAll(k, "-", "")
	return FieldAliases[k]
}

// Normalize приводит произвольный JSON-объект к Student.
// При конфликте алиасов побеждает поле с каноническим именем,
// затем поле с меньшим именем, чтобы результат не зависел от порядка ключей.
func Normalize(raw map[string]any) (Student, error) {
	values := make(map[string]string, len(raw))
	source := make(map[string]string, len(raw))

	for field, v := range raw {
		canon := Canonical(field)
		if canon == "" {
			continue
		}
		if prev, seen := source[canon]; seen && !preferField(field, prev, canon) {
			continue
		}
		str, err := scalarString(v)
		if err != nil {
			return Student{}, fmt.Errorf("field %q: %w", field, err)
		}
		values[canon] = str
		source[canon] = field
	}

	return Student{
		ID:        values["id"],
		FirstName: values["firstname"],
		LastName:  values["lastname"],
		Age:       Age(values["age"]),
		Phone:     values["phone"],
		Mail:      values["mail"],
		Role:      values["role"],
		Date:      values["date"],
	}, nil
}

// NormalizeJSON разбирает один JSON-объект через таблицу алиасов
func NormalizeJSON(data []byte) (Student, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return Student{}, fmt.Errorf("decode student: %w", err)
	}
	return Normalize(raw)
}

// NormalizeList разбирает JSON-массив объектов через таблицу алиасов
func NormalizeList(data []byte) ([]Student, error) {
	var raw []map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}

	out := make([]Student, 0, len(raw))
	for i, item := range raw {
		s, err := Normalize(item)
		if err != nil {
			return nil, fmt.Errorf("student #%d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func preferField(field, prev, canon string) bool {
	if prev == canon {
		return false
	}
	if field == canon {
		return true
	}
	return field < prev
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
