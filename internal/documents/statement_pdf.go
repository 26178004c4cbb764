package documents

import (
	"bytes"
	"fmt"
	"strings"

	"rental-ops/internal/config"
	"rental-ops/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pageMargin   = 20.0
	bottomMargin = 25.0
	rowHeight    = 7.0
	cellPadding  = 1.5
	summaryWidth = 85.0
	fontFamily   = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	brandGreen         = rgb{38, 122, 84}
	incomeFill         = rgb{240, 249, 244}
	expenseFill        = rgb{255, 245, 245}
	expenseText        = rgb{180, 60, 60}
	bodyText           = rgb{60, 60, 60}
	mutedText          = rgb{100, 100, 100}
	faintText          = rgb{150, 150, 150}
	ruleColor          = rgb{200, 200, 200}
	black              = rgb{0, 0, 0}
	reservationColumns = []column{
		{title: "Guest", align: "L"},
		{title: "Unit", align: "L"},
		{title: "Platform", align: "L"},
		{title: "Check-in", align: "L"},
		{title: "Check-out", align: "L"},
		{title: "Amount", align: "R"},
	}
	expenseColumns = []column{
		{title: "Date", align: "L"},
		{title: "Category", align: "L"},
		{title: "Description", align: "L"},
		{title: "Amount", align: "R"},
	}
)

type column struct {
	title string
	align string
}

type tableStyle struct {
	fill rgb
	text rgb
}

// PDFRenderer lays out a statement on A4 pages with gofpdf.
type PDFRenderer struct {
	branding config.BrandingConfig
	compress bool
}

func NewPDFRenderer(branding config.BrandingConfig) *PDFRenderer {
	return &PDFRenderer{branding: branding, compress: true}
}

func (r *PDFRenderer) Format() string {
	return models.DocumentFormatPDF
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// Render draws the statement. Every date printed or embedded comes from the statement itself so
// that output does not depend on the wall clock.
func (r *PDFRenderer) Render(doc *models.StatementDocument) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	created := doc.Statement.CreatedAt.UTC()
	period := doc.Period()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AliasNbPages("{nb}")

	l := &pdfLayout{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		symbol: r.branding.CurrencySymbol,
	}

	pdf.SetTitle(l.tr(fmt.Sprintf("Owner Statement %s %s", doc.Property.Name, period.Label())), false)
	pdf.SetAuthor(l.tr(r.branding.CompanyName), false)
	pdf.SetCreator(l.tr(r.branding.CompanyName), false)

	footer := fmt.Sprintf("Generated on %s | %s", formatLongDate(created), brandingFooter(r.branding.CompanyName, r.branding.Tagline))
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		l.font("", 8, faintText)
		pdf.CellFormat(0, 4, l.tr(footer), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	l.masthead(r.branding, period)
	l.parties(doc.Owner, doc.Property)
	l.section("Rental Income", reservationColumns, tableStyle{fill: incomeFill, text: brandGreen},
		reservationRows(doc.Reservations, l.symbol), "No reservations this month")
	l.section("Expenses", expenseColumns, tableStyle{fill: expenseFill, text: expenseText},
		expenseRows(doc.Expenses, l.symbol), "No expenses this month")
	l.summary(doc.Statement)
	l.notes(doc.Statement.Notes)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func reservationRows(lines []models.ReservationLine, symbol string) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			orDash(line.GuestName),
			orDash(line.UnitName),
			platformLabel(line.Platform),
			formatShortDate(line.CheckIn),
			formatShortDate(line.CheckOut),
			FormatMoney(symbol, line.Amount),
		})
	}
	return rows
}

func expenseRows(lines []models.ExpenseLine, symbol string) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			formatShortDate(line.ExpenseDate),
			categoryLabel(line.Category),
			orDash(line.Description),
			FormatMoney(symbol, line.Amount),
		})
	}
	return rows
}

type pdfLayout struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	symbol string
}

func (l *pdfLayout) font(style string, size float64, color rgb) {
	l.pdf.SetFont(fontFamily, style, size)
	l.pdf.SetTextColor(color.r, color.g, color.b)
}

func (l *pdfLayout) contentWidth() float64 {
	width, _ := l.pdf.GetPageSize()
	return width - 2*pageMargin
}

// needsBreak reports whether h more millimetres would run into the footer.
func (l *pdfLayout) needsBreak(h float64) bool {
	_, height := l.pdf.GetPageSize()
	return l.pdf.GetY()+h > height-bottomMargin
}

func (l *pdfLayout) rule(x1, x2 float64) {
	y := l.pdf.GetY()
	l.pdf.SetDrawColor(ruleColor.r, ruleColor.g, ruleColor.b)
	l.pdf.Line(x1, y, x2, y)
}

// fit encodes s for the core fonts and truncates it with an ellipsis to fit width.
func (l *pdfLayout) fit(s string, width float64) string {
	s = l.tr(s)
	limit := width - 2*cellPadding
	if l.pdf.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && l.pdf.GetStringWidth(s+ellipsis) > limit {
		s = s[:len(s)-1]
	}
	return strings.TrimRight(s, " ") + ellipsis
}

func (l *pdfLayout) masthead(branding config.BrandingConfig, period models.StatementPeriod) {
	pdf := l.pdf
	half := l.contentWidth() / 2

	l.font("B", 22, brandGreen)
	pdf.CellFormat(half, 10, l.fit(branding.CompanyName, half), "", 0, "L", false, 0, "")
	l.font("B", 16, black)
	pdf.CellFormat(half, 10, "Owner Statement", "", 1, "R", false, 0, "")

	l.font("", 10, mutedText)
	pdf.CellFormat(half, 6, l.fit(branding.Tagline, half), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, period.Label(), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	l.rule(pageMargin, pageMargin+l.contentWidth())
	pdf.Ln(8)
}

func (l *pdfLayout) parties(owner *models.User, property *models.Property) {
	pdf := l.pdf
	half := l.contentWidth() / 2
	ownerName, ownerEmail := ownerLines(owner)

	l.font("B", 11, black)
	pdf.CellFormat(half, 6, "Property Owner", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Property", "", 1, "L", false, 0, "")

	l.font("", 10, bodyText)
	pdf.CellFormat(half, 5, l.fit(ownerName, half), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, l.fit(property.Name, half), "", 1, "L", false, 0, "")
	pdf.CellFormat(half, 5, l.fit(ownerEmail, half), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, l.fit(property.AddressLine(), half), "", 1, "L", false, 0, "")

	pdf.Ln(10)
}

// section draws a titled table, or the placeholder when there are no rows. The header row is
// repeated at the top of every page the table spills onto.
func (l *pdfLayout) section(title string, columns []column, style tableStyle, rows [][]string, placeholder string) {
	pdf := l.pdf

	if l.needsBreak(8 + 2*rowHeight) {
		pdf.AddPage()
	}

	l.font("B", 12, black)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	if len(rows) == 0 {
		l.font("I", 10, faintText)
		pdf.CellFormat(0, 8, placeholder, "", 1, "L", false, 0, "")
		pdf.Ln(6)
		return
	}

	widths := l.columnWidths(columns, rows)
	l.tableHeader(columns, widths, style)

	for _, row := range rows {
		if l.needsBreak(rowHeight) {
			pdf.AddPage()
			l.tableHeader(columns, widths, style)
		}
		l.font("", 9, bodyText)
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, l.fit(cell, widths[i]), "B", 0, columns[i].align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}

func (l *pdfLayout) tableHeader(columns []column, widths []float64, style tableStyle) {
	l.font("B", 9, style.text)
	l.pdf.SetFillColor(style.fill.r, style.fill.g, style.fill.b)
	l.pdf.SetDrawColor(ruleColor.r, ruleColor.g, ruleColor.b)
	for i, c := range columns {
		l.pdf.CellFormat(widths[i], rowHeight, c.title, "", 0, c.align, true, 0, "")
	}
	l.pdf.Ln(-1)
}

// columnWidths measures the widest cell of each column and fits the result to the page width.
func (l *pdfLayout) columnWidths(columns []column, rows [][]string) []float64 {
	natural := make([]float64, len(columns))

	l.pdf.SetFont(fontFamily, "B", 9)
	for i, c := range columns {
		natural[i] = l.pdf.GetStringWidth(c.title) + 2*cellPadding
	}

	l.pdf.SetFont(fontFamily, "", 9)
	for _, row := range rows {
		for i, cell := range row {
			if w := l.pdf.GetStringWidth(l.tr(cell)) + 2*cellPadding; w > natural[i] {
				natural[i] = w
			}
		}
	}

	return fitColumns(natural, l.contentWidth())
}

// fitColumns scales natural widths to total. When they do not fit, columns narrower than an even
// share keep their width and the rest split what remains in proportion to their natural width.
func fitColumns(natural []float64, total float64) []float64 {
	widths := make([]float64, len(natural))

	sum := 0.0
	for _, w := range natural {
		sum += w
	}
	if sum == 0 {
		return widths
	}
	if sum <= total {
		for i, w := range natural {
			widths[i] = w * total / sum
		}
		return widths
	}

	open := make([]bool, len(natural))
	for i := range open {
		open[i] = true
	}
	remaining := total

	for {
		openCount, openSum := 0, 0.0
		for i, w := range natural {
			if open[i] {
				openCount++
				openSum += w
			}
		}
		if openCount == 0 {
			return widths
		}

		share := remaining / float64(openCount)
		fixed := false
		for i, w := range natural {
			if open[i] && w <= share {
				widths[i] = w
				remaining -= w
				open[i] = false
				fixed = true
			}
		}

		if !fixed {
			for i, w := range natural {
				if open[i] {
					widths[i] = w * remaining / openSum
				}
			}
			return widths
		}
	}
}

func (l *pdfLayout) summary(statement *models.OwnerStatement) {
	pdf := l.pdf
	if l.needsBreak(60) {
		pdf.AddPage()
	}

	x := pageMargin + l.contentWidth() - summaryWidth
	labelWidth := summaryWidth * 0.6
	amountWidth := summaryWidth - labelWidth

	pdf.Ln(4)
	l.rule(x, x+summaryWidth)
	pdf.Ln(4)

	lines := []struct {
		label  string
		amount decimal.Decimal
		deduct bool
	}{
		{"Total Revenue", statement.TotalRevenue, false},
		{"Total Expenses", statement.TotalExpenses, true},
		{"Net Income", statement.NetIncome, false},
		{"Management Fee", statement.ManagementFee, true},
	}

	l.font("", 10, bodyText)
	for _, line := range lines {
		value := FormatMoney(l.symbol, line.amount)
		if line.deduct {
			value = FormatDeduction(l.symbol, line.amount)
		}
		pdf.SetX(x)
		pdf.CellFormat(labelWidth, 7, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 7, l.tr(value), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	l.rule(x, x+summaryWidth)
	pdf.Ln(3)

	l.font("B", 12, brandGreen)
	pdf.SetX(x)
	pdf.CellFormat(labelWidth, 8, "Net Payout", "", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, 8, l.tr(FormatMoney(l.symbol, statement.NetPayout())), "", 1, "R", false, 0, "")
}

func (l *pdfLayout) notes(notes string) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return
	}

	pdf := l.pdf
	pdf.Ln(12)
	if l.needsBreak(16) {
		pdf.AddPage()
	}

	l.font("I", 10, mutedText)
	pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
	l.font("", 10, bodyText)
	pdf.MultiCell(l.contentWidth(), 5, l.tr(notes), "", "L", false)
}
