package student

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStudents() []Student {
	return []Student{
		{ID: "1", FirstName: "bob", LastName: "Marley", Phone: "555-0101", Age: "30", Role: "admin", Mail: "bob@x.com"},
		{ID: "2", FirstName: "Alice", LastName: "Smith", Phone: "555-0202", Age: "21", Role: "student", Mail: "alice@x.com"},
		{ID: "3", FirstName: "Albert", LastName: "Bobson", Phone: "555-0303", Age: "45", Role: "teacher", Mail: "al@x.com"},
	}
}

func TestFilter(t *testing.T) {
	list := sampleStudents()

	tests := []struct {
		name     string
		field    FilterField
		term     string
		expected []string
	}{
		{"empty term keeps all", FilterAll, "", []string{"1", "2", "3"}},
		{"all is firstname prefix", FilterAll, "AL", []string{"2", "3"}},
		{"firstname prefix only", FilterFirstName, "ob", nil},
		{"lastname substring", FilterLastName, "bob", []string{"3"}},
		{"phone substring", FilterPhone, "0202", []string{"2"}},
		{"age substring", FilterAge, "4", []string{"3"}},
		{"role substring", FilterRole, "TEACH", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, s := range Filter(list, tt.field, tt.term) {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSortByFirstName(t *testing.T) {
	list := sampleStudents()
	sorted := SortByFirstName(list)

	assert.Equal(t, "Albert", sorted[0].FirstName)
	assert.Equal(t, "Alice", sorted[1].FirstName)
	assert.Equal(t, "bob", sorted[2].FirstName)
	assert.Equal(t, "bob", list[0].FirstName, "исходный срез не меняется")
}

func TestApply_SortsOnlyWithTerm(t *testing.T) {
	list := sampleStudents()

	page := Apply(list, Query{})
	assert.Equal(t, "bob", page.Rows[0].FirstName)

	page = Apply(list, Query{Term: "a", Field: FilterAll})
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "Albert", page.Rows[0].FirstName)
}

func TestPaginate(t *testing.T) {
	list := make([]Student, 23)
	for i := range list {
		list[i] = Student{Mail: string(rune('a'+i)) + "@x.com"}
	}

	page := Paginate(list, 1, 10)
	assert.Len(t, page.Rows, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 23, page.Total)

	page = Paginate(list, 3, 10)
	assert.Len(t, page.Rows, 3)

	page = Paginate(list, 9, 10)
	assert.Empty(t, page.Rows)

	page = Paginate(list, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Rows, DefaultRowsPerPage)

	page = Paginate(nil, 1, 10)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Rows)
}

func TestPaginate_HugeValues(t *testing.T) {
	list := []Student{{ID: "1"}, {ID: "2"}}

	page := Paginate(list, math.MaxInt, 10)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, math.MaxInt, page.Page)

	page = Paginate(list, 1, math.MaxInt)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 1, page.TotalPages)

	page = Paginate(list, math.MaxInt, math.MaxInt)
	assert.Empty(t, page.Rows)
}

func TestFilterField_Validate(t *testing.T) {
	assert.NoError(t, FilterRole.Validate())
	assert.Error(t, FilterField("mail").Validate())
}
