package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"studentdash/internal/domain/student"
)

// Status - итог одной операции над коллекцией
type Status string

const (
	// StatusSynced - удаленный источник подтвердил операцию
	StatusSynced Status = "synced"
	// StatusLocalOnly - удаленный источник недоступен, применено только локально
	StatusLocalOnly Status = "local_only"
	// StatusReconciled - сервер уже не знает запись, локальное состояние выровнено
	StatusReconciled Status = "reconciled"
	// StatusFailed - операция не удалась
	StatusFailed Status = "failed"
)

// Outcome описывает результат операции для вывода пользователю.
// Err заполнен, если удаленный вызов не удался.
type Outcome struct {
	Status Status
	Err    error
}

// OK сообщает, что данные пользователя не потеряны
func (o Outcome) OK() bool {
	return o.Status != StatusFailed
}

// Message возвращает короткую сводку для пользователя
func (o Outcome) Message(op string) string {
	switch o.Status {
	case StatusSynced:
		return fmt.Sprintf("%s: synced with server", op)
	case StatusLocalOnly:
		if op == "list" {
			return "could not reach server, showing local data"
		}
		return "could not reach server, saved locally"
	case StatusReconciled:
		return fmt.Sprintf("%s: record no longer exists on server, removed locally", op)
	default:
		return fmt.Sprintf("%s failed", op)
	}
}

// Store согласует удаленную коллекцию, локальный кеш и список в памяти.
// Сетевые вызовы выполняются без блокировки, побеждает последняя завершенная операция.
type Store struct {
	remote      Remote
	cache       Cache
	log         *slog.Logger
	listTimeout time.Duration
	now         func() time.Time

	mu       gosync.RWMutex
	students []student.Student
}

func NewStore(remote Remote, cache Cache, log *slog.Logger, listTimeout time.Duration) *Store {
	return &Store{
		remote:      remote,
		cache:       cache,
		log:         log.With("component", "store"),
		listTimeout: listTimeout,
		now:         time.Now,
		students:    []student.Student{},
	}
}

// Students возвращает копию текущего списка
func (s *Store) Students() []student.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]student.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Find ищет запись в памяти по id
func (s *Store) Find(id string) (student.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return student.Student{}, false
}

// Refresh перечитывает коллекцию. Локальный кеш имеет приоритет над удаленной копией.
func (s *Store) Refresh(ctx context.Context) ([]student.Student, Outcome) {
	listCtx := ctx
	if s.listTimeout > 0 {
		var cancel context.CancelFunc
		listCtx, cancel = context.WithTimeout(ctx, s.listTimeout)
		defer cancel()
	}

	remote, err := s.remote.List(listCtx)
	local := s.cache.Load(ctx)

	if err != nil {
		s.log.Warn("Не удалось получить список с сервера", "error", err)
		merged := student.Merge(local)
		s.set(merged)
		if len(merged) == 0 {
			return merged, Outcome{Status: StatusFailed, Err: err}
		}
		return merged, Outcome{Status: StatusLocalOnly, Err: err}
	}

	combined := [][]student.Student{local, student.ExcludeShadowed(remote, local)}
	if dups := student.Duplicates(combined...); len(dups) > 0 {
		s.log.Warn("Обнаружены дубликаты записей", "keys", dups)
	}

	merged := student.Merge(combined...)
	s.set(merged)

	s.log.Debug("Список обновлен", "local", len(local), "remote", len(remote), "total", len(merged))
	return merged, Outcome{Status: StatusSynced}
}

// Add создает запись. Запись сохраняется в кеше даже при недоступном сервере.
func (s *Store) Add(ctx context.Context, rec student.Student) (student.Student, Outcome) {
	now := s.now()
	if rec.Date == "" {
		rec.Date = student.NowDate(now)
	}
	placeholder := !rec.HasID()
	if placeholder {
		rec.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}

	outbound := rec
	if placeholder {
		outbound.ID = ""
	}

	outcome := Outcome{Status: StatusSynced}
	created, err := s.remote.Create(ctx, outbound)
	if err != nil {
		s.log.Warn("Не удалось создать запись на сервере, сохраняем локально", "mail", rec.Mail, "error", err)
		outcome = Outcome{Status: StatusLocalOnly, Err: err}
	} else {
		if !created.HasID() {
			created.ID = rec.ID
		}
		rec = created
	}

	if err := s.cache.Prepend(ctx, rec); err != nil {
		s.log.Warn("Не удалось сохранить запись локально", "error", err)
	}

	// новая запись стоит первой и ее значение не перетирается старой копией
	s.mu.Lock()
	merged := student.Merge([]student.Student{rec}, s.students)
	merged[0] = rec
	s.students = merged
	s.mu.Unlock()

	return rec, outcome
}

// Update заменяет запись целиком. Ошибка возвращается только для записи без id.
func (s *Store) Update(ctx context.Context, rec student.Student) (Outcome, error) {
	if !rec.HasID() {
		return Outcome{Status: StatusFailed, Err: ErrInvalidState}, ErrInvalidState
	}
	if rec.Date == "" {
		rec.Date = student.NowDate(s.now())
	}

	updated, err := s.remote.Update(ctx, rec.ID, rec)
	if errors.Is(err, ErrNotFound) {
		s.log.Warn("Запись не найдена на сервере, удаляем локально", "id", rec.ID)
		s.forget(ctx, rec.ID)
		return Outcome{Status: StatusReconciled}, nil
	}
	if err != nil {
		s.log.Error("Не удалось обновить запись", "id", rec.ID, "error", err)
		return Outcome{Status: StatusFailed, Err: err}, nil
	}

	if err := s.cache.Replace(ctx, updated); err != nil {
		s.log.Warn("Не удалось обновить запись в локальном кеше", "error", err)
	}

	s.mu.Lock()
	list, _ := student.ReplaceByID(s.students, updated)
	s.students = student.Merge(list)
	s.mu.Unlock()

	return Outcome{Status: StatusSynced}, nil
}

// Delete удаляет запись. Локальное состояние очищается при любом ответе сервера.
func (s *Store) Delete(ctx context.Context, id string) (Outcome, error) {
	if id == "" {
		return Outcome{Status: StatusFailed, Err: ErrInvalidState}, ErrInvalidState
	}

	err := s.remote.Delete(ctx, id)
	s.forget(ctx, id)

	if err != nil {
		s.log.Error("Не удалось удалить запись на сервере", "id", id, "error", err)
		return Outcome{Status: StatusFailed, Err: err}, nil
	}
	return Outcome{Status: StatusSynced}, nil
}

func (s *Store) forget(ctx context.Context, id string) {
	if err := s.cache.RemoveByID(ctx, id); err != nil {
		s.log.Warn("Не удалось удалить запись из локального кеша", "error", err)
	}

	s.mu.Lock()
	s.students = student.Merge(student.WithoutID(s.students, id))
	s.mu.Unlock()
}

func (s *Store) set(list []student.Student) {
	stored := make([]student.Student, len(list))
	copy(stored, list)

	s.mu.Lock()
	s.students = stored
	s.mu.Unlock()
}
