package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	gosync "sync"

	"studentdash/internal/domain/user"
)

// FileAccounts хранит зарегистрированные учетные записи в JSON-файле
type FileAccounts struct {
	path string
	mu   gosync.Mutex
}

func NewFileAccounts(path string) *FileAccounts {
	return &FileAccounts{path: path}
}

func (f *FileAccounts) Create(_ context.Context, account user.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	accounts, err := f.load()
	if err != nil {
		return err
	}
	key := strings.ToLower(account.Email)
	if _, ok := accounts[key]; ok {
		return user.ErrExists
	}
	accounts[key] = account

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}

func (f *FileAccounts) FindByEmail(_ context.Context, email string) (user.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	accounts, err := f.load()
	if err != nil {
		return user.Account{}, err
	}
	account, ok := accounts[strings.ToLower(email)]
	if !ok {
		return user.Account{}, user.ErrNotFound
	}
	return account, nil
}

func (f *FileAccounts) load() (map[string]user.Account, error) {
	accounts := make(map[string]user.Account)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return accounts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения учетных записей: %w", err)
	}
	if len(data) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("ошибка парсинга учетных записей: %w", err)
	}
	return accounts, nil
}
