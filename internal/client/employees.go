package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/UnknownOlympus/athena/internal/models"
)

var (
	ErrNotFound   = errors.New("employee not found")
	ErrValidation = errors.New("employee rejected by the API")
)

// APIError carries a non-success response from the employee API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("employee API returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return nil
	}
}

// EmployeeAPI is a typed client for the /employees REST surface.
type EmployeeAPI struct {
	client  *http.Client
	baseURL string
}

func NewEmployeeAPI(client *http.Client, baseURL string) *EmployeeAPI {
	return &EmployeeAPI{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// ListEmployees fetches the full collection.
func (a *EmployeeAPI) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var result []models.Employee
	if err := a.do(ctx, http.MethodGet, "/employees", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return result, nil
}

// GetEmployee fetches one employee by identifier.
func (a *EmployeeAPI) GetEmployee(ctx context.Context, identifier string) (models.Employee, error) {
	var result models.Employee
	if err := a.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(identifier), nil, &result); err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return result, nil
}

// CreateEmployee stores a new employee and returns it with its identifier.
func (a *EmployeeAPI) CreateEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	var result models.Employee
	if err := a.do(ctx, http.MethodPost, "/employees", input, &result); err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

// UpdateEmployee applies a partial update.
func (a *EmployeeAPI) UpdateEmployee(
	ctx context.Context,
	identifier string,
	patch models.EmployeePatch,
) (models.Employee, error) {
	var result models.Employee
	if err := a.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(identifier), patch, &result); err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return result, nil
}

// DeleteEmployee removes an employee.
func (a *EmployeeAPI) DeleteEmployee(ctx context.Context, identifier string) error {
	if err := a.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(identifier), nil, nil); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (a *EmployeeAPI) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create new request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
