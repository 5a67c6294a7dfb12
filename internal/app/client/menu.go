package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/exp/slog"
)

// MenuItem - пункт бокового меню
type MenuItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	Icon string `json:"icon"`
}

// Menu - пункты меню и активный раздел
type Menu struct {
	Items  []MenuItem
	Active string
}

// DefaultMenu возвращает меню по умолчанию
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Home", Path: "/", Icon: "Home"},
		{ID: "2", Name: "About", Path: "/about", Icon: "User"},
		{ID: "3", Name: "Finance", Path: "/finance", Icon: "DollarSign"},
		{ID: "4", Name: "Travel", Path: "/travel", Icon: "Plane"},
		{ID: "5", Name: "Academic", Path: "/academic", Icon: "GraduationCap"},
	}
}

// knownIcons - иконки, которые понимает CLI; остальные заменяются на User
var knownIcons = map[string]struct{}{
	"Home": {}, "User": {}, "DollarSign": {}, "Plane": {}, "GraduationCap": {},
}

// LoadMenu читает menu.json. При отсутствии или ошибке файла используется меню по умолчанию.
func LoadMenu(path string, log *slog.Logger) *Menu {
	menu := &Menu{Items: DefaultMenu(), Active: "Academic"}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Не удалось прочитать меню, используем меню по умолчанию", "error", err)
		}
		return menu
	}

	items, err := parseMenu(data)
	if err != nil {
		log.Warn("Меню повреждено, используем меню по умолчанию", "error", err)
		return menu
	}
	menu.Items = items
	return menu
}

// ActiveFor возвращает имя пункта меню для пути или текущий активный пункт
func (m *Menu) ActiveFor(path string) string {
	for _, item := range m.Items {
		if item.Path == path {
			return item.Name
		}
	}
	return m.Active
}

func parseMenu(data []byte) ([]MenuItem, error) {
	var raw []struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
		Path string          `json:"path"`
		Icon string          `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make([]MenuItem, 0, len(raw))
	for i, r := range raw {
		id, err := menuID(r.ID)
		if err != nil {
			return nil, fmt.Errorf("пункт %d: %w", i, err)
		}
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		icon := r.Icon
		if _, ok := knownIcons[icon]; !ok {
			icon = "User"
		}
		items = append(items, MenuItem{ID: id, Name: r.Name, Path: r.Path, Icon: icon})
	}
	return items, nil
}

// menuID принимает id числом или строкой
func menuID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("неверный id: %s", raw)
	}
	return n.String(), nil
}
