package directory_test

import (
	"testing"

	"github.com/UnknownOlympus/athena/internal/directory"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/stretchr/testify/assert"
)

func team() []models.Employee {
	return []models.Employee{
		{ID: "1", EmployeeName: "Alice Smith", Department: "Engineering", Designation: "Backend Engineer"},
		{ID: "2", EmployeeName: "Bob Lee", Department: "Sales", Designation: "Account Executive"},
	}
}

func names(employees []models.Employee) []string {
	result := make([]string, 0, len(employees))
	for _, e := range employees {
		result = append(result, e.EmployeeName)
	}
	return result
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria directory.Criteria
		want     []string
	}{
		{"search all departments", directory.Criteria{Search: "ali", Department: directory.AllDepartments}, []string{"Alice Smith"}},
		{"department only", directory.Criteria{Department: "Sales"}, []string{"Bob Lee"}},
		{"empty criteria", directory.Criteria{}, []string{"Alice Smith", "Bob Lee"}},
		{"matches designation", directory.Criteria{Search: "ACCOUNT"}, []string{"Bob Lee"}},
		{"search and department combine", directory.Criteria{Search: "ali", Department: "Sales"}, []string{}},
		{"unknown department", directory.Criteria{Department: "HR"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, names(directory.Filter(team(), tt.criteria)))
		})
	}
}

func TestDepartments(t *testing.T) {
	t.Parallel()

	employees := append(team(), models.Employee{EmployeeName: "Carol King", Department: "Engineering"})

	assert.Equal(t, []string{"Engineering", "Sales"}, directory.Departments(employees))
	assert.Empty(t, directory.Departments(nil))
}
