package server

import (
	"bytes"
	"net/http"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/services/employees"
)

const (
	maxUploadBytes = 32 << 20
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *Server) handleCreate(writer http.ResponseWriter, req *http.Request) {
	input, err := decodeBody[models.EmployeeInput](writer, req)
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	employee, err := s.staff.Create(req.Context(), input)
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	writeJSON(writer, http.StatusCreated, employee)
}

func (s *Server) handleList(writer http.ResponseWriter, req *http.Request) {
	result, err := s.staff.ListAll(req.Context())
	if err != nil {
		s.handleError(writer, req, err)
		return
	}
	if result == nil {
		result = []models.Employee{}
	}

	writeJSON(writer, http.StatusOK, result)
}

func (s *Server) handleGet(writer http.ResponseWriter, req *http.Request) {
	employee, err := s.staff.GetByID(req.Context(), req.PathValue("id"))
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	writeJSON(writer, http.StatusOK, employee)
}

func (s *Server) handleUpdate(writer http.ResponseWriter, req *http.Request) {
	patch, err := decodeBody[models.EmployeePatch](writer, req)
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	employee, err := s.staff.Update(req.Context(), req.PathValue("id"), patch)
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	writeJSON(writer, http.StatusOK, employee)
}

func (s *Server) handleDelete(writer http.ResponseWriter, req *http.Request) {
	if err := s.staff.Delete(req.Context(), req.PathValue("id")); err != nil {
		s.handleError(writer, req, err)
		return
	}

	writeJSON(writer, http.StatusOK, messageResponse{Message: "Deleted Successfully"})
}

func (s *Server) handleImport(writer http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(writer, req.Body, maxUploadBytes)

	file, header, err := req.FormFile("file")
	if err != nil {
		s.handleError(writer, req, &employees.ValidationError{Message: "roster file is required"})
		return
	}
	defer file.Close()

	report, err := s.staff.Import(req.Context(), file, header.Filename)
	if err != nil {
		s.handleError(writer, req, err)
		return
	}

	writeJSON(writer, http.StatusOK, report)
}

func (s *Server) handleExport(writer http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := s.staff.Export(req.Context(), &buf); err != nil {
		s.handleError(writer, req, err)
		return
	}

	writer.Header().Set("Content-Type", xlsxMediaType)
	writer.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	writer.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(writer)
}
