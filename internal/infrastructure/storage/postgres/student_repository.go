package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"studentdash/internal/domain/student"
)

type StudentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewStudentRepository(storage *Storage, log *slog.Logger) *StudentRepository {
	return &StudentRepository{
		pool: storage.Pool(),
		log:  log.With("component", "student_repository"),
	}
}

const studentColumns = `id, firstname, lastname, age, phone, mail, role, date`

func (r *StudentRepository) List(ctx context.Context) ([]student.Student, error) {
	const query = `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	list := []student.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return list, nil
}

func (r *StudentRepository) Get(ctx context.Context, id string) (*student.Student, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, student.ErrNotFound
	}

	const query = `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, student.ErrNotFound
		}
		r.log.Error("failed to get student", "id", id, "error", err)
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) (string, error) {
	const query = `
		INSERT INTO students (firstname, lastname, age, phone, mail, role, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		s.FirstName, s.LastName, string(s.Age), s.Phone, s.Mail, s.Role, s.Date,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create student", "mail", s.Mail, "error", err)
		return "", fmt.Errorf("create student: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	key, ok := parseID(s.ID)
	if !ok {
		return student.ErrNotFound
	}

	const query = `
		UPDATE students
		SET firstname = $2, lastname = $3, age = $4, phone = $5, mail = $6, role = $7,
		    date = $8, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		key, s.FirstName, s.LastName, string(s.Age), s.Phone, s.Mail, s.Role, s.Date,
	)
	if err != nil {
		r.log.Error("failed to update student", "id", s.ID, "error", err)
		return fmt.Errorf("update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return student.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, key)
	if err != nil {
		r.log.Error("failed to delete student", "id", id, "error", err)
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

func scanStudent(row pgx.Row) (student.Student, error) {
	var (
		s   student.Student
		id  int64
		age string
	)
	if err := row.Scan(&id, &s.FirstName, &s.LastName, &age, &s.Phone, &s.Mail, &s.Role, &s.Date); err != nil {
		return student.Student{}, err
	}
	s.ID = strconv.FormatInt(id, 10)
	s.Age = student.Age(age)
	return s, nil
}

// parseID - идентификаторы в таблице числовые, любой другой id заведомо не найден
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
