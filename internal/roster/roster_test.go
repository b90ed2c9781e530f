package roster_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseEmployees(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Name", "Dept", "Phone", "Position", "Reports To", "Shoe Size"},
		{" Alice Smith ", "Engineering", "+15550100", "Backend Engineer", "Carol King", "38"},
		{"", "", "", ""},
		{"Bob Lee", "Sales", "+15550101"},
	}

	parsed, err := roster.ParseEmployees(rows)

	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, roster.Row{
		Line: 2,
		Input: models.EmployeeInput{
			EmployeeName:  "Alice Smith",
			Department:    "Engineering",
			ContactNumber: "+15550100",
			Designation:   "Backend Engineer",
			Manager:       "Carol King",
		},
	}, parsed[0])
	assert.Equal(t, 4, parsed[1].Line)
	assert.Empty(t, parsed[1].Input.Designation)
}

func TestParseEmployees_MissingColumn(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Employee Name", "Department", "Contact Number"},
		{"Alice Smith", "Engineering", "+15550100"},
	}

	_, err := roster.ParseEmployees(rows)

	require.EqualError(t, err, "missing required column: designation")
}

func TestParseEmployees_Empty(t *testing.T) {
	t.Parallel()

	_, err := roster.ParseEmployees(nil)

	require.ErrorIs(t, err, roster.ErrEmptyWorksheet)
}

func TestWriteEmployees_ReadableBack(t *testing.T) {
	t.Parallel()

	employees := []models.Employee{
		{
			EmployeeName:  "Alice Smith",
			Department:    "Engineering",
			ContactNumber: "+15550100",
			Designation:   "Backend Engineer",
			Email:         "alice@example.com",
			Bio:           "Likes Go.",
		},
		{EmployeeName: "Bob Lee", Department: "Sales", ContactNumber: "+15550101", Designation: "Account Executive"},
	}

	var buf bytes.Buffer
	require.NoError(t, roster.WriteEmployees(&buf, employees))

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, roster.SheetName, file.GetSheetName(0))

	rows, err := roster.ReadRows(bytes.NewReader(buf.Bytes()), "export.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, roster.Header, rows[0])

	parsed, err := roster.ParseEmployees(rows)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "alice@example.com", parsed[0].Input.Email)
	assert.Equal(t, "Likes Go.", parsed[0].Input.Bio)
	assert.Equal(t, "Bob Lee", parsed[1].Input.EmployeeName)
}

func TestReadRows_InvalidWorkbook(t *testing.T) {
	t.Parallel()

	_, err := roster.ReadRows(strings.NewReader("not a workbook"), "roster.xlsx")
	require.Error(t, err)
}

func TestReadRows_LegacyFirstSheetOnly(t *testing.T) {
	t.Parallel()

	// testdata/multi_sheet.xls: "Employees" with rows 0, 1 and 3 filled,
	// followed by an "Archive" sheet that must not be read.
	file, err := os.Open(filepath.Join("testdata", "multi_sheet.xls"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	rows, err := roster.ReadRows(file, "multi_sheet.XLS")
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Employee Name", "Department", "Contact Number", "Designation", "Email"}, rows[0])
	assert.Equal(t, []string{"Alice Smith", "Engineering", "555-0100", "Backend Engineer", "alice@example.com"}, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"Bob Lee", "Sales", "555-0101", "Account Executive"}, rows[3])

	parsed, err := roster.ParseEmployees(rows)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, 2, parsed[0].Line)
	assert.Equal(t, 4, parsed[1].Line)
	assert.Equal(t, "Bob Lee", parsed[1].Input.EmployeeName)
	for _, row := range parsed {
		assert.NotEqual(t, "Old Timer", row.Input.EmployeeName)
	}
}

func TestReadRows_InvalidLegacyWorkbook(t *testing.T) {
	t.Parallel()

	_, err := roster.ReadRows(strings.NewReader("not a workbook"), "roster.xls")
	require.Error(t, err)
}
