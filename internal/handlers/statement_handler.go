package handlers

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatementHandler handles owner statement endpoints
type StatementHandler struct {
	statementService services.StatementServiceInterface
	documentService  services.StatementDocumentServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementService services.StatementServiceInterface, documentService services.StatementDocumentServiceInterface) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		documentService:  documentService,
	}
}

// ListStatements returns the statements visible to the caller
// @Summary List owner statements
// @Description Admins see every statement. Owners see published statements of properties they currently own.
// @Tags Statements
// @Produce json
// @Security BearerAuth
// @Param year query int false "Statement year"
// @Param property_id query string false "Property ID"
// @Param owner_id query string false "Owner ID (admin only)"
// @Success 200 {object} SuccessResponse{data=dto.StatementListResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /statements [get]
func (h *StatementHandler) ListStatements(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.StatementFilters{}
	if raw := strings.TrimSpace(c.QueryParam("year")); raw != "" {
		year, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("year must be a number"))
		}
		filters.Year = &year
	}

	if filters.PropertyID, err = parseUUIDQuery(c, "property_id"); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if filters.OwnerID, err = parseUUIDQuery(c, "owner_id"); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	statements, err := h.statementService.List(c.Request().Context(), caller, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewStatementListResponse(statements))
}

// GenerateStatement creates the statement for one property and month
// @Summary Generate an owner statement
// @Tags Statements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateStatementRequest true "Property and month"
// @Success 201 {object} SuccessResponse{data=dto.StatementResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or STATEMENT_002 (already generated)"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001"
// @Router /statements [post]
func (h *StatementHandler) GenerateStatement(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.GenerateStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	statement, err := h.statementService.Generate(c.Request().Context(), caller, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewStatementResponse(statement))
}

// GetStatement returns one statement
// @Summary Get an owner statement
// @Tags Statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {object} SuccessResponse{data=dto.StatementResponse}
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001"
// @Router /statements/{id} [get]
func (h *StatementHandler) GetStatement(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	statement, err := h.statementService.Get(c.Request().Context(), caller, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewStatementResponse(statement))
}

// PublishStatement makes a statement visible to the property owner. Publishing twice is a no-op.
// @Summary Publish an owner statement
// @Tags Statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {object} SuccessResponse{data=dto.StatementResponse}
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001"
// @Router /statements/{id}/publish [post]
func (h *StatementHandler) PublishStatement(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	statement, err := h.statementService.Publish(c.Request().Context(), caller, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewStatementResponse(statement))
}

// UpdateNotes replaces the notes printed on a statement
// @Summary Update statement notes
// @Tags Statements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Param request body dto.UpdateStatementNotesRequest true "Notes"
// @Success 200 {object} SuccessResponse{data=dto.StatementResponse}
// @Router /statements/{id}/notes [patch]
func (h *StatementHandler) UpdateNotes(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	var req dto.UpdateStatementNotesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	statement, err := h.statementService.UpdateNotes(c.Request().Context(), caller, id, req.Notes)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewStatementResponse(statement))
}

// DownloadPDF streams the statement as a PDF attachment
// @Summary Download statement PDF
// @Tags Statements
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001"
// @Router /statements/{id}/pdf [get]
func (h *StatementHandler) DownloadPDF(c echo.Context) error {
	return h.download(c, "pdf")
}

// DownloadXLSX streams the statement as a spreadsheet attachment
// @Summary Download statement spreadsheet
// @Tags Statements
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001"
// @Router /statements/{id}/xlsx [get]
func (h *StatementHandler) DownloadXLSX(c echo.Context) error {
	return h.download(c, "xlsx")
}

func (h *StatementHandler) download(c echo.Context, format string) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	doc, err := h.documentService.Render(c.Request().Context(), caller, id, format)
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachmentDisposition(doc.Filename))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}

// attachmentDisposition encodes non-ASCII filenames as RFC 2231 filename* parameters.
func attachmentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
