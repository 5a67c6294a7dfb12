package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"studentdash/internal/app/client/config"
	"studentdash/internal/domain/student"
)

// Remote - удаленная коллекция студентов
type Remote interface {
	List(ctx context.Context) ([]student.Student, error)
	Create(ctx context.Context, s student.Student) (student.Student, error)
	Update(ctx context.Context, id string, s student.Student) (student.Student, error)
	Delete(ctx context.Context, id string) error
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "remote"),
		baseURL:   cfg.APIURL,
		userAgent: "StudentDash-Client/1.0",
	}
}

// List читает всю коллекцию
func (h *httpClient) List(ctx context.Context) ([]student.Student, error) {
	status, body, err := h.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if !isSuccess(status) {
		return nil, &FetchError{Status: status}
	}

	list, err := student.NormalizeList(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return list, nil
}

// Create отправляет новую запись и возвращает версию сервера
func (h *httpClient) Create(ctx context.Context, s student.Student) (student.Student, error) {
	status, body, err := h.do(ctx, http.MethodPost, "", s)
	if err != nil {
		return student.Student{}, &WriteError{Op: "create", Err: err}
	}
	if !isSuccess(status) {
		return student.Student{}, &WriteError{Op: "create", Status: status}
	}

	return h.confirmed(body, s, "create")
}

// Update заменяет запись целиком. 404 возвращается как ErrNotFound.
func (h *httpClient) Update(ctx context.Context, id string, s student.Student) (student.Student, error) {
	s.ID = id
	status, body, err := h.do(ctx, http.MethodPut, "/"+url.PathEscape(id), s)
	if err != nil {
		return student.Student{}, &WriteError{Op: "update", Err: err}
	}
	if status == http.StatusNotFound {
		return student.Student{}, ErrNotFound
	}
	if !isSuccess(status) {
		return student.Student{}, &WriteError{Op: "update", Status: status}
	}

	confirmed, err := h.confirmed(body, s, "update")
	if err != nil {
		return student.Student{}, err
	}
	if confirmed.ID == "" {
		confirmed.ID = id
	}
	return confirmed, nil
}

// Delete удаляет запись; отсутствующая на сервере запись считается удаленной
func (h *httpClient) Delete(ctx context.Context, id string) error {
	status, _, err := h.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil)
	if err != nil {
		return &WriteError{Op: "delete", Err: err}
	}
	if status == http.StatusNotFound {
		h.log.Debug("Запись уже отсутствует на сервере", "id", id)
		return nil
	}
	if !isSuccess(status) {
		return &WriteError{Op: "delete", Status: status}
	}
	return nil
}

// confirmed разбирает ответ сервера; пустой ответ означает, что сервер принял запись как есть
func (h *httpClient) confirmed(body []byte, sent student.Student, op string) (student.Student, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return sent, nil
	}
	s, err := student.NormalizeJSON(body)
	if err != nil {
		return student.Student{}, &WriteError{Op: op, Err: err}
	}
	return s, nil
}

func (h *httpClient) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	return resp.StatusCode, payload, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}
