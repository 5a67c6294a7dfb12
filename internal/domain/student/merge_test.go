package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name     string
		student  Student
		expected string
	}{
		{
			name:     "id and mail",
			student:  Student{ID: "1", Mail: "a@x.com"},
			expected: "1-a@x.com",
		},
		{
			name:     "mail only",
			student:  Student{Mail: "a@x.com"},
			expected: "a@x.com",
		},
		{
			name:     "id without mail",
			student:  Student{ID: "7"},
			expected: "7-",
		},
		{
			name:     "neither id nor mail",
			student:  Student{FirstName: "Ghost"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KeyOf(tt.student))
		})
	}
}

func TestIdentityOf(t *testing.T) {
	assert.Equal(t, "1", IdentityOf(Student{ID: "1", Mail: "a@x.com"}))
	assert.Equal(t, "a@x.com", IdentityOf(Student{Mail: "a@x.com"}))
	assert.Equal(t, "", IdentityOf(Student{}))
}

func TestMerge_LastValueFirstPosition(t *testing.T) {
	first := Student{ID: "1", Mail: "a@x.com", FirstName: "old"}
	other := Student{ID: "2", Mail: "b@x.com"}
	later := Student{ID: "1", Mail: "a@x.com", FirstName: "new"}

	merged := Merge([]Student{first, other}, []Student{later})

	require.Len(t, merged, 2)
	assert.Equal(t, "new", merged[0].FirstName, "значение берется у последней записи")
	assert.Equal(t, "2", merged[1].ID, "позиция берется у первой записи")
}

func TestMerge_SameKeyAppearsOnce(t *testing.T) {
	a := Student{ID: "1", Mail: "a@x.com"}
	merged := Merge([]Student{a, a, a}, []Student{a})

	require.Len(t, merged, 1)
	assert.Equal(t, a, merged[0])
}

func TestMerge_DifferentMailIsDifferentKey(t *testing.T) {
	merged := Merge([]Student{
		{ID: "1", Mail: "a@x.com"},
		{ID: "1", Mail: "other@x.com"},
	})
	assert.Len(t, merged, 2)
}

func TestMerge_EmptyKeyCollapses(t *testing.T) {
	merged := Merge([]Student{
		{FirstName: "first"},
		{Mail: "a@x.com"},
		{FirstName: "second"},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "second", merged[0].FirstName)
	assert.Equal(t, "a@x.com", merged[1].Mail)
}

func TestMerge_Deterministic(t *testing.T) {
	local := []Student{{ID: "3", Mail: "c@x.com"}, {Mail: "d@x.com"}}
	remote := []Student{{ID: "1", Mail: "a@x.com"}, {ID: "3", Mail: "c@x.com", Role: "admin"}}

	first := Merge(local, remote)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Merge(local, remote))
	}
}

func TestMerge_NoInput(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, []Student{}))
}

func TestExcludeShadowed(t *testing.T) {
	local := []Student{{ID: "1", Mail: "a@x.com"}, {Mail: "c@x.com"}}
	remote := []Student{
		{ID: "1", Mail: "a@x.com", FirstName: "stale"},
		{ID: "2", Mail: "b@x.com"},
		{Mail: "c@x.com"},
	}

	out := ExcludeShadowed(remote, local)

	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestLocalPriorityScenario(t *testing.T) {
	local := []Student{{ID: "1", Mail: "a@x.com", FirstName: "local"}}
	remote := []Student{
		{ID: "1", Mail: "a@x.com", FirstName: "remote"},
		{ID: "2", Mail: "b@x.com"},
	}

	merged := Merge(local, ExcludeShadowed(remote, local))

	require.Len(t, merged, 2)
	assert.Equal(t, "local", merged[0].FirstName)
	assert.Equal(t, "2", merged[1].ID)
}

func TestDuplicates(t *testing.T) {
	dups := Duplicates(
		[]Student{{ID: "1", Mail: "a@x.com"}, {Mail: "b@x.com"}},
		[]Student{{ID: "1", Mail: "a@x.com"}, {ID: "1", Mail: "a@x.com"}},
	)
	assert.Equal(t, []string{"1-a@x.com"}, dups)
}

func TestWithoutIDAndReplaceByID(t *testing.T) {
	list := []Student{{ID: "1", Mail: "a@x.com"}, {ID: "2", Mail: "b@x.com"}}

	assert.Equal(t, []Student{{ID: "2", Mail: "b@x.com"}}, WithoutID(list, "1"))
	assert.Len(t, WithoutID(list, "missing"), 2)

	replaced, ok := ReplaceByID(list, Student{ID: "2", Mail: "b@x.com", Role: "admin"})
	assert.True(t, ok)
	assert.Equal(t, "admin", replaced[1].Role)
	assert.Empty(t, list[1].Role, "исходный срез не меняется")

	_, ok = ReplaceByID(list, Student{ID: "9"})
	assert.False(t, ok)
}
