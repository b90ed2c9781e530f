package directory

import (
	"strings"

	"github.com/UnknownOlympus/athena/internal/models"
)

// AllDepartments is the department option that disables department filtering.
const AllDepartments = "All Departments"

// Criteria narrows the displayed employees.
type Criteria struct {
	Search     string
	Department string
}

// allDepartments reports whether the criteria select every department.
func (c Criteria) allDepartments() bool {
	return c.Department == "" || c.Department == AllDepartments
}

// Filter keeps employees whose name or designation contains the search term,
// ignoring case, and whose department equals the selected one.
func Filter(employees []models.Employee, criteria Criteria) []models.Employee {
	term := strings.ToLower(criteria.Search)

	result := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		matchesSearch := strings.Contains(strings.ToLower(employee.EmployeeName), term) ||
			strings.Contains(strings.ToLower(employee.Designation), term)
		matchesDepartment := criteria.allDepartments() || employee.Department == criteria.Department

		if matchesSearch && matchesDepartment {
			result = append(result, employee)
		}
	}

	return result
}

// Departments returns the distinct departments in order of first appearance.
func Departments(employees []models.Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	result := make([]string, 0)

	for _, employee := range employees {
		if _, ok := seen[employee.Department]; ok {
			continue
		}
		seen[employee.Department] = struct{}{}
		result = append(result, employee.Department)
	}

	return result
}
