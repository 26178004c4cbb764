package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rental-ops/internal/documents"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
)

type StatementDocumentService struct {
	statements      StatementServiceInterface
	propertyRepo    repositories.PropertyRepositoryInterface
	reservationRepo repositories.ReservationRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	renderers       map[string]documents.Renderer
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewStatementDocumentService(
	statements StatementServiceInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	reservationRepo repositories.ReservationRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	renderers map[string]documents.Renderer,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StatementDocumentServiceInterface {
	return &StatementDocumentService{
		statements:      statements,
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		expenseRepo:     expenseRepo,
		renderers:       renderers,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// Render builds the document for a statement the caller may read. Line items are queried again for
// the statement's month; the stored totals are printed as they are.
func (s *StatementDocumentService) Render(ctx context.Context, caller models.Caller, id uuid.UUID, format string) (*models.RenderedDocument, error) {
	start := time.Now()
	format = strings.ToLower(strings.TrimSpace(format))

	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	statement, err := s.statements.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.buildDocument(ctx, statement)
	if err != nil {
		s.renderFailed(format)
		return nil, err
	}

	content, err := renderer.Render(doc)
	if err != nil {
		s.renderFailed(format)
		s.logger.ErrorContext(ctx, "failed to render statement document",
			"statement_id", id,
			"format", format,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("statement_document_rendered", map[string]string{"format": format, "status": "success"})
	s.metrics.RecordProcessingTime("statement_render", duration)
	s.auditLogger.LogStatementRendered(ctx, id, format, len(content), duration.Milliseconds())

	return &models.RenderedDocument{
		Filename:    documents.Filename(doc.Property.Name, doc.Period(), format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func (s *StatementDocumentService) buildDocument(ctx context.Context, statement *models.OwnerStatement) (*models.StatementDocument, error) {
	property, err := s.propertyRepo.GetByID(ctx, statement.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	period := statement.Period()
	from, to := period.FirstDay(), period.NextMonthStart()

	reservations, err := s.reservationRepo.ListLines(ctx, statement.PropertyID, from, to)
	if err != nil {
		return nil, storageError("list reservation lines", err)
	}

	expenses, err := s.expenseRepo.ListLines(ctx, statement.PropertyID, from, to)
	if err != nil {
		return nil, storageError("list expense lines", err)
	}

	return &models.StatementDocument{
		Statement:    statement,
		Property:     property,
		Owner:        property.Owner,
		Reservations: reservations,
		Expenses:     expenses,
	}, nil
}

func (s *StatementDocumentService) renderFailed(format string) {
	s.metrics.IncrementCounter("statement_document_rendered", map[string]string{"format": format, "status": "failed"})
}
