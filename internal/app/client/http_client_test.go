package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"studentdash/internal/app/client/config"
	"studentdash/internal/domain/student"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPClient(&config.Config{
		APIURL:         srv.URL + "/students",
		RequestTimeout: 2 * time.Second,
	}, slog.Default())
}

func TestHTTPClient_List_NormalizesFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/students", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = io.WriteString(w, `[{"_id":1,"firstName":"Ada","email":"ada@x.com","age":"36"}]`)
	})

	list, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, student.Student{ID: "1", FirstName: "Ada", Mail: "ada@x.com", Age: "36"}, list[0])
}

func TestHTTPClient_List_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.List(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestHTTPClient_List_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.List(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c@x.com", body["mail"])
		assert.Equal(t, float64(20), body["age"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"42","mail":"c@x.com","age":20}`)
	})

	created, err := client.Create(context.Background(), student.Student{Mail: "c@x.com", Age: "20"})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
	assert.Equal(t, student.Age("20"), created.Age)
}

func TestHTTPClient_Create_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Create(context.Background(), student.Student{Mail: "c@x.com"})
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, http.StatusServiceUnavailable, writeErr.Status)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestHTTPClient_Create_Unreachable(t *testing.T) {
	client := NewHTTPClient(&config.Config{
		APIURL:         "http://127.0.0.1:1/students",
		RequestTimeout: time.Second,
	}, slog.Default())

	_, err := client.Create(context.Background(), student.Student{Mail: "c@x.com"})
	assert.ErrorIs(t, err, ErrWrite)
}

func TestHTTPClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		switch r.URL.Path {
		case "/students/1":
			_, _ = io.WriteString(w, `{"id":"1","mail":"a@x.com","role":"admin"}`)
		case "/students/2":
			w.WriteHeader(http.StatusOK)
		case "/students/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	updated, err := client.Update(ctx, "1", student.Student{Mail: "a@x.com", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	updated, err = client.Update(ctx, "2", student.Student{Mail: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID, "пустой ответ - сервер принял запись как есть")

	_, err = client.Update(ctx, "404", student.Student{Mail: "a@x.com"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.Update(ctx, "500", student.Student{Mail: "a@x.com"})
	assert.ErrorIs(t, err, ErrWrite)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestHTTPClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		switch r.URL.Path {
		case "/students/1":
			w.WriteHeader(http.StatusOK)
		case "/students/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	assert.NoError(t, client.Delete(ctx, "1"))
	assert.NoError(t, client.Delete(ctx, "gone"), "404 считается успешным удалением")
	assert.ErrorIs(t, client.Delete(ctx, "broken"), ErrWrite)
}
