// Package roster converts between employee records and spreadsheet workbooks.
// Reading accepts modern .xlsx files and legacy .xls files; writing always produces .xlsx.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet written by WriteEmployees.
const SheetName = "Employees"

const (
	maxLegacyRows = 100000
	// minLegacyColumns is scanned when a row carries no ROW record and so no width.
	minLegacyColumns = 16
)

var (
	ErrNoWorksheet    = errors.New("no worksheet found")
	ErrEmptyWorksheet = errors.New("worksheet is empty")
)

// Header is the header row written by WriteEmployees.
var Header = []string{
	"Employee Name", "Department", "Contact Number", "Designation", "Email", "Location", "Manager", "Bio",
}

// headerAliases maps normalized column titles to the field they fill.
var headerAliases = map[string]string{
	"employee name":  "employeeName",
	"employeename":   "employeeName",
	"name":           "employeeName",
	"full name":      "employeeName",
	"department":     "department",
	"dept":           "department",
	"contact number": "contactNumber",
	"contactnumber":  "contactNumber",
	"phone":          "contactNumber",
	"phone number":   "contactNumber",
	"designation":    "designation",
	"position":       "designation",
	"title":          "designation",
	"email":          "email",
	"e-mail":         "email",
	"location":       "location",
	"manager":        "manager",
	"reports to":     "manager",
	"bio":            "bio",
	"biography":      "bio",
}

var requiredColumns = []string{"employeeName", "department", "contactNumber", "designation"}

// Row is one parsed data row. Line is the 1-based row number in the sheet.
type Row struct {
	Line  int
	Input models.EmployeeInput
}

// ReadRows returns every row of the first worksheet. The format is picked by file extension.
func ReadRows(reader io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return readLegacyRows(data)
	default:
		file, openErr := excelize.OpenReader(bytes.NewReader(data))
		if openErr != nil {
			return nil, fmt.Errorf("failed to open xlsx workbook: %w", openErr)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, ErrNoWorksheet
		}

		rows, rowsErr := file.GetRows(sheetName)
		if rowsErr != nil {
			return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, rowsErr)
		}
		if len(rows) == 0 {
			return nil, ErrEmptyWorksheet
		}
		return rows, nil
	}
}

// readLegacyRows reads the first worksheet of an .xls workbook. Rows the sheet
// has no record of come back empty so line numbers stay aligned.
func readLegacyRows(data []byte) (rows [][]string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			rows, err = nil, fmt.Errorf("failed to read xls workbook: %v", recovered)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if workbook == nil || workbook.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoWorksheet
	}

	last := min(int(sheet.MaxRow), maxLegacyRows-1)
	rows = make([][]string, 0, last+1)
	for i := 0; i <= last; i++ {
		rows = append(rows, legacyCells(legacyRow(sheet, i)))
	}

	if isBlankSheet(rows) {
		return nil, ErrEmptyWorksheet
	}
	return rows, nil
}

// legacyRow returns nil for rows missing from the sheet, where xls panics.
func legacyRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func legacyCells(row *xls.Row) []string {
	if row == nil {
		return []string{}
	}

	width := max(row.LastCol(), minLegacyColumns)
	cells := make([]string, width)
	for col := range width {
		cells[col] = row.Col(col)
	}

	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	return cells[:end]
}

func isBlankSheet(rows [][]string) bool {
	for _, row := range rows {
		if !isBlank(row) {
			return false
		}
	}
	return true
}

// ParseEmployees maps the header row to employee fields and returns one Row per
// non-blank data row. Unknown columns are ignored.
func ParseEmployees(rows [][]string) ([]Row, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyWorksheet
	}

	columns := map[string]int{}
	for idx, title := range rows[0] {
		field, ok := headerAliases[normalizeHeader(title)]
		if !ok {
			continue
		}
		if _, seen := columns[field]; !seen {
			columns[field] = idx
		}
	}

	for _, field := range requiredColumns {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("missing required column: %s", field)
		}
	}

	cell := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	parsed := make([]Row, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		parsed = append(parsed, Row{
			Line: i + 2, //nolint:mnd // header is line 1
			Input: models.EmployeeInput{
				EmployeeName:  cell(row, "employeeName"),
				Department:    cell(row, "department"),
				ContactNumber: cell(row, "contactNumber"),
				Designation:   cell(row, "designation"),
				Email:         cell(row, "email"),
				Location:      cell(row, "location"),
				Manager:       cell(row, "manager"),
				Bio:           cell(row, "bio"),
			},
		})
	}

	return parsed, nil
}

// WriteEmployees writes employees as an xlsx workbook with a single sheet.
func WriteEmployees(writer io.Writer, employees []models.Employee) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]any, 0, len(Header))
	for _, title := range Header {
		header = append(header, title)
	}
	if err := file.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, employee := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2) //nolint:mnd // data starts below the header
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		values := []any{
			employee.EmployeeName,
			employee.Department,
			employee.ContactNumber,
			employee.Designation,
			employee.Email,
			employee.Location,
			employee.Manager,
			employee.Bio,
		}
		if err = file.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := file.Write(writer); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
