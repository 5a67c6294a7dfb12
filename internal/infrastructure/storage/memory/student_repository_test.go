package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentdash/internal/domain/student"
)

func TestStudentRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	first := student.Student{FirstName: "Ann", Mail: "ann@x.io"}
	id, err := repo.Create(ctx, &first)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	second := student.Student{FirstName: "Bob", Mail: "bob@x.io"}
	id2, err := repo.Create(ctx, &second)
	require.NoError(t, err)
	assert.Equal(t, "2", id2)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].FirstName)
	assert.Equal(t, "1", list[0].ID)

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)

	got.FirstName = "Robert"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.FirstName)

	require.NoError(t, repo.Delete(ctx, "1"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)
}

func TestStudentRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	_, err := repo.Get(ctx, "7")
	assert.ErrorIs(t, err, student.ErrNotFound)

	err = repo.Update(ctx, &student.Student{ID: "7"})
	assert.ErrorIs(t, err, student.ErrNotFound)

	err = repo.Delete(ctx, "7")
	assert.ErrorIs(t, err, student.ErrNotFound)
}

func TestStudentRepository_Seed(t *testing.T) {
	repo := NewStudentRepository(
		student.Student{FirstName: "Ann"},
		student.Student{FirstName: "Bob"},
	)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[1].ID)
}
