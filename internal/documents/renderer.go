// Package documents lays out owner statements as downloadable files.
package documents

import (
	"fmt"
	"strings"

	"rental-ops/internal/config"
	"rental-ops/internal/models"
)

// Renderer turns a statement document into file bytes. Renderers must be deterministic:
// the same document yields the same bytes.
type Renderer interface {
	Format() string
	ContentType() string
	Render(doc *models.StatementDocument) ([]byte, error)
}

// NewRenderers returns every supported renderer keyed by format.
func NewRenderers(branding config.BrandingConfig) map[string]Renderer {
	return map[string]Renderer{
		models.DocumentFormatPDF:  NewPDFRenderer(branding),
		models.DocumentFormatXLSX: NewXLSXRenderer(branding),
	}
}

// Filename is Statement_<property>_<Month>_<year>.<ext> with whitespace runs in the property name
// collapsed to underscores.
func Filename(propertyName string, period models.StatementPeriod, ext string) string {
	name := strings.Join(strings.Fields(propertyName), "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return -1
		}
		return r
	}, name)
	if name == "" {
		name = "Property"
	}
	return fmt.Sprintf("Statement_%s_%s_%d.%s", name, period.MonthName(), period.Year, ext)
}

func validateDocument(doc *models.StatementDocument) error {
	if doc == nil || doc.Statement == nil {
		return fmt.Errorf("statement document is incomplete")
	}
	if doc.Property == nil {
		return fmt.Errorf("statement document has no property")
	}
	return nil
}
