package employees

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/UnknownOlympus/athena/internal/roster"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ImportReport summarizes a roster import.
type ImportReport struct {
	Created  int           `json:"created"`
	Rejected []RejectedRow `json:"rejected"`
}

// RejectedRow is a spreadsheet row that failed validation.
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Staff is the record access layer for employees.
type Staff struct {
	log      *slog.Logger
	repo     repository.EmployeeRepoIface
	metrics  *metrics.Metrics
	validate *validator.Validate
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Staff{log: log, repo: repo, metrics: metrics, validate: validate}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Create validates input and stores it as a new employee.
// A nil input means the request carried no body and is rejected.
func (s *Staff) Create(ctx context.Context, input *models.EmployeeInput) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	if input == nil {
		return models.Employee{}, &ValidationError{Message: "form is empty"}
	}

	normalized := normalizeInput(*input)
	if err := s.validateInput(normalized); err != nil {
		log.DebugContext(ctx, "Rejected employee input", sl.Err(err))
		return models.Employee{}, err
	}

	employee, err := s.repo.CreateEmployee(ctx, normalized)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	log.InfoContext(ctx, "Employee created", "id", employee.ID, "fullname", employee.EmployeeName)

	return employee, nil
}

// ListAll returns every stored employee.
func (s *Staff) ListAll(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// GetByID returns the employee with the given identifier.
func (s *Staff) GetByID(ctx context.Context, identifier string) (models.Employee, error) {
	id, ok := canonicalID(identifier)
	if !ok {
		return models.Employee{}, &NotFoundError{ID: identifier}
	}

	employee, err := s.repo.GetEmployeeByID(ctx, id)
	if err != nil {
		return models.Employee{}, translateRepoError(identifier, "failed to get employee", err)
	}

	return employee, nil
}

// Update replaces the fields present in patch. Required fields present in patch
// must not be blank.
func (s *Staff) Update(ctx context.Context, identifier string, patch *models.EmployeePatch) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	id, ok := canonicalID(identifier)
	if !ok {
		return models.Employee{}, &NotFoundError{ID: identifier}
	}
	if patch == nil {
		return models.Employee{}, &ValidationError{Message: "form is empty"}
	}

	normalized := normalizePatch(*patch)
	if err := s.validatePatch(normalized); err != nil {
		log.DebugContext(ctx, "Rejected employee patch", "id", identifier, sl.Err(err))
		return models.Employee{}, err
	}

	if normalized.IsEmpty() {
		return s.GetByID(ctx, identifier)
	}

	employee, err := s.repo.UpdateEmployee(ctx, id, normalized)
	if err != nil {
		return models.Employee{}, translateRepoError(identifier, "failed to update employee", err)
	}

	log.InfoContext(ctx, "Employee updated", "id", employee.ID)

	return employee, nil
}

// Delete removes the employee with the given identifier.
func (s *Staff) Delete(ctx context.Context, identifier string) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	id, ok := canonicalID(identifier)
	if !ok {
		return &NotFoundError{ID: identifier}
	}

	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return translateRepoError(identifier, "failed to delete employee", err)
	}

	log.InfoContext(ctx, "Employee deleted", "id", id)

	return nil
}

// Import creates one employee per data row of the spreadsheet. Rows are independent:
// invalid rows are reported and skipped, valid rows are stored.
func (s *Staff) Import(ctx context.Context, reader io.Reader, filename string) (ImportReport, error) {
	const opn = "Employee.Import"
	log := s.initLogger(opn)

	rows, err := roster.ReadRows(reader, filename)
	if err != nil {
		return ImportReport{}, &ValidationError{Message: err.Error()}
	}

	parsed, err := roster.ParseEmployees(rows)
	if err != nil {
		return ImportReport{}, &ValidationError{Message: err.Error()}
	}

	report := ImportReport{Rejected: make([]RejectedRow, 0)}
	for _, row := range parsed {
		input := normalizeInput(row.Input)
		if validationErr := s.validateInput(input); validationErr != nil {
			report.Rejected = append(report.Rejected, RejectedRow{Line: row.Line, Reason: validationErr.Error()})
			s.metrics.RowsImported.WithLabelValues("rejected").Inc()
			continue
		}

		if _, err = s.repo.CreateEmployee(ctx, input); err != nil {
			return report, fmt.Errorf("failed to import row %d: %w", row.Line, err)
		}
		report.Created++
		s.metrics.RowsImported.WithLabelValues("created").Inc()
	}

	if len(report.Rejected) != 0 {
		log.WarnContext(ctx, "Some roster rows were rejected", "value", len(report.Rejected))
	}
	log.InfoContext(ctx, "Roster imported", "file", filename, "created", report.Created)

	return report, nil
}

// Export writes every employee to writer as an xlsx workbook.
func (s *Staff) Export(ctx context.Context, writer io.Writer) error {
	employees, err := s.ListAll(ctx)
	if err != nil {
		return err
	}

	if err = roster.WriteEmployees(writer, employees); err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	return nil
}

func (s *Staff) validateInput(input models.EmployeeInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Field())
	}

	return &ValidationError{Fields: fields, Message: "required fields are missing"}
}

func (s *Staff) validatePatch(patch models.EmployeePatch) error {
	required := []struct {
		name  string
		value *string
	}{
		{"employeeName", patch.EmployeeName},
		{"department", patch.Department},
		{"contactNumber", patch.ContactNumber},
		{"designation", patch.Designation},
	}

	var fields []string
	for _, field := range required {
		if field.value == nil {
			continue
		}
		if err := s.validate.Var(*field.value, "required"); err != nil {
			fields = append(fields, field.name)
		}
	}

	if len(fields) != 0 {
		return &ValidationError{Fields: fields, Message: "required fields cannot be blank"}
	}

	return nil
}

func translateRepoError(identifier, msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{ID: identifier}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// canonicalID returns identifier in the hyphenated form the repository issues.
// Urn, braced and unhyphenated forms are accepted and rewritten.
func canonicalID(identifier string) (string, bool) {
	parsed, err := uuid.Parse(identifier)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func normalizeInput(input models.EmployeeInput) models.EmployeeInput {
	return models.EmployeeInput{
		EmployeeName:  strings.TrimSpace(input.EmployeeName),
		Department:    strings.TrimSpace(input.Department),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		Designation:   strings.TrimSpace(input.Designation),
		Email:         strings.TrimSpace(input.Email),
		Location:      strings.TrimSpace(input.Location),
		Manager:       strings.TrimSpace(input.Manager),
		Bio:           strings.TrimSpace(input.Bio),
	}
}

func normalizePatch(patch models.EmployeePatch) models.EmployeePatch {
	trim := func(value *string) *string {
		if value == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*value)
		return &trimmed
	}

	return models.EmployeePatch{
		EmployeeName:  trim(patch.EmployeeName),
		Department:    trim(patch.Department),
		ContactNumber: trim(patch.ContactNumber),
		Designation:   trim(patch.Designation),
		Email:         trim(patch.Email),
		Location:      trim(patch.Location),
		Manager:       trim(patch.Manager),
		Bio:           trim(patch.Bio),
	}
}
