package services

import (
	"context"
	"log/slog"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
)

// AuditLogger writes statement lifecycle events as structured log lines.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogStatementGenerated(ctx context.Context, statement *models.OwnerStatement, durationMs int64) {
	al.logger.InfoContext(ctx, "statement generated",
		slog.String("event_type", "statement_generated"),
		slog.String("statement_id", statement.ID.String()),
		slog.String("property_id", statement.PropertyID.String()),
		slog.String("period", statement.Period().String()),
		slog.String("net_income", statement.NetIncome.StringFixed(2)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementGenerationFailed(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod, reason string) {
	al.logger.WarnContext(ctx, "statement generation failed",
		slog.String("event_type", "statement_generation_failed"),
		slog.String("property_id", propertyID.String()),
		slog.String("period", period.String()),
		slog.String("error", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementPublished(ctx context.Context, statement *models.OwnerStatement, alreadyPublished bool) {
	attrs := []slog.Attr{
		slog.String("event_type", "statement_published"),
		slog.String("statement_id", statement.ID.String()),
		slog.String("property_id", statement.PropertyID.String()),
		slog.String("period", statement.Period().String()),
		slog.Bool("already_published", alreadyPublished),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if statement.PublishedAt != nil {
		attrs = append(attrs, slog.Time("published_at", *statement.PublishedAt))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "statement published", attrs...)
}

func (al *AuditLogger) LogStatementRendered(ctx context.Context, statementID uuid.UUID, format string, sizeBytes int, durationMs int64) {
	al.logger.InfoContext(ctx, "statement document rendered",
		slog.String("event_type", "statement_rendered"),
		slog.String("statement_id", statementID.String()),
		slog.String("format", format),
		slog.Int("size_bytes", sizeBytes),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementAccessDenied(ctx context.Context, statementID uuid.UUID, caller models.Caller) {
	al.logger.WarnContext(ctx, "statement access denied",
		slog.String("event_type", "statement_access_denied"),
		slog.String("statement_id", statementID.String()),
		slog.String("user_id", caller.UserID.String()),
		slog.String("role", caller.Role),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationKey string

// CorrelationIDKey is the request context key carrying the trace id of the current request.
const CorrelationIDKey correlationKey = "correlation_id"

// WithCorrelationID returns a context carrying id for log correlation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
