package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet      = "Summary"
	ReservationsSheet = "Reservations"
	ExpensesSheet     = "Expenses"
)

// XLSXRenderer writes a statement as a workbook with a summary sheet and one sheet per line item table.
type XLSXRenderer struct {
	branding config.BrandingConfig
}

func NewXLSXRenderer(branding config.BrandingConfig) *XLSXRenderer {
	return &XLSXRenderer{branding: branding}
}

func (r *XLSXRenderer) Format() string {
	return models.DocumentFormatXLSX
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XLSXRenderer) Render(doc *models.StatementDocument) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	w, err := newWorkbookWriter(f, r.branding.CurrencySymbol)
	if err != nil {
		return nil, err
	}

	created := doc.Statement.CreatedAt.UTC().Format(time.RFC3339)
	w.check(f.SetDocProps(&excelize.DocProperties{
		Title:          fmt.Sprintf("Owner Statement %s %s", doc.Property.Name, doc.Period().Label()),
		Creator:        r.branding.CompanyName,
		LastModifiedBy: r.branding.CompanyName,
		Created:        created,
		Modified:       created,
	}))

	w.check(f.SetSheetName("Sheet1", SummarySheet))
	r.writeSummary(w, doc)

	w.newSheet(ReservationsSheet)
	r.writeReservations(w, doc.Reservations)

	w.newSheet(ExpensesSheet)
	r.writeExpenses(w, doc.Expenses)

	if w.err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *XLSXRenderer) writeSummary(w *workbookWriter, doc *models.StatementDocument) {
	const sheet = SummarySheet
	ownerName, ownerEmail := ownerLines(doc.Owner)

	w.set(sheet, 1, 1, r.branding.CompanyName)
	w.style(sheet, 1, 1, w.titleStyle)
	w.set(sheet, 1, 2, r.branding.Tagline)
	w.set(sheet, 3, 1, "Owner Statement")
	w.style(sheet, 3, 1, w.boldStyle)
	w.set(sheet, 3, 2, doc.Period().Label())

	w.labelled(sheet, 5, "Property Owner", ownerName)
	w.labelled(sheet, 6, "Owner Email", orDash(ownerEmail))
	w.labelled(sheet, 7, "Property", doc.Property.Name)
	w.labelled(sheet, 8, "Address", orDash(doc.Property.AddressLine()))

	s := doc.Statement
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Total Revenue", s.TotalRevenue},
		{"Total Expenses", s.TotalExpenses.Neg()},
		{"Net Income", s.NetIncome},
		{"Management Fee", s.ManagementFee.Neg()},
		{"Net Payout", s.NetPayout()},
	}
	for i, row := range rows {
		line := 10 + i
		w.set(sheet, line, 1, row.label)
		w.money(sheet, line, 2, row.amount)
	}
	payoutRow := 10 + len(rows) - 1
	w.style(sheet, payoutRow, 1, w.boldStyle)
	w.style(sheet, payoutRow, 2, w.boldMoneyStyle)

	if notes := strings.TrimSpace(s.Notes); notes != "" {
		w.set(sheet, 16, 1, "Notes")
		w.style(sheet, 16, 1, w.boldStyle)
		w.set(sheet, 16, 2, notes)
	}

	footer := fmt.Sprintf("Generated on %s | %s", formatLongDate(s.CreatedAt), brandingFooter(r.branding.CompanyName, r.branding.Tagline))
	w.set(sheet, 18, 1, footer)

	w.check(w.f.SetColWidth(sheet, "A", "A", 22))
	w.check(w.f.SetColWidth(sheet, "B", "B", 40))
}

func (r *XLSXRenderer) writeReservations(w *workbookWriter, lines []models.ReservationLine) {
	const sheet = ReservationsSheet
	w.header(sheet, "Guest", "Unit", "Platform", "Check-in", "Check-out", "Amount")
	if len(lines) == 0 {
		w.set(sheet, 2, 1, "No reservations this month")
		return
	}
	for i, line := range lines {
		row := i + 2
		w.set(sheet, row, 1, line.GuestName)
		w.set(sheet, row, 2, orDash(line.UnitName))
		w.set(sheet, row, 3, platformLabel(line.Platform))
		w.set(sheet, row, 4, line.CheckIn.Format(time.DateOnly))
		w.set(sheet, row, 5, line.CheckOut.Format(time.DateOnly))
		w.money(sheet, row, 6, line.Amount)
	}
	w.check(w.f.SetColWidth(sheet, "A", "C", 24))
	w.check(w.f.SetColWidth(sheet, "D", "F", 14))
}

func (r *XLSXRenderer) writeExpenses(w *workbookWriter, lines []models.ExpenseLine) {
	const sheet = ExpensesSheet
	w.header(sheet, "Date", "Category", "Description", "Amount", "Billable")
	if len(lines) == 0 {
		w.set(sheet, 2, 1, "No expenses this month")
		return
	}
	for i, line := range lines {
		row := i + 2
		billable := "No"
		if line.IsBillable {
			billable = "Yes"
		}
		w.set(sheet, row, 1, line.ExpenseDate.Format(time.DateOnly))
		w.set(sheet, row, 2, categoryLabel(line.Category))
		w.set(sheet, row, 3, line.Description)
		w.money(sheet, row, 4, line.Amount)
		w.set(sheet, row, 5, billable)
	}
	w.check(w.f.SetColWidth(sheet, "A", "B", 14))
	w.check(w.f.SetColWidth(sheet, "C", "C", 48))
	w.check(w.f.SetColWidth(sheet, "D", "E", 14))
}

// workbookWriter keeps the first excelize error so cell writes can be chained without checks.
type workbookWriter struct {
	f              *excelize.File
	err            error
	titleStyle     int
	boldStyle      int
	headerStyle    int
	moneyStyle     int
	boldMoneyStyle int
}

func newWorkbookWriter(f *excelize.File, symbol string) (*workbookWriter, error) {
	w := &workbookWriter{f: f}
	moneyFormat := fmt.Sprintf(`"%s"#,##0.00;-"%s"#,##0.00`, symbol, symbol)

	styles := []struct {
		target *int
		style  *excelize.Style
	}{
		{&w.titleStyle, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: "267A54"}}},
		{&w.boldStyle, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&w.headerStyle, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "267A54"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F9F4"}},
		}},
		{&w.moneyStyle, &excelize.Style{CustomNumFmt: &moneyFormat}},
		{&w.boldMoneyStyle, &excelize.Style{Font: &excelize.Font{Bold: true, Color: "267A54"}, CustomNumFmt: &moneyFormat}},
	}
	for _, s := range styles {
		id, err := f.NewStyle(s.style)
		if err != nil {
			return nil, fmt.Errorf("failed to create workbook style: %w", err)
		}
		*s.target = id
	}
	return w, nil
}

func (w *workbookWriter) check(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *workbookWriter) cell(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	w.check(err)
	return name
}

func (w *workbookWriter) newSheet(name string) {
	_, err := w.f.NewSheet(name)
	w.check(err)
}

func (w *workbookWriter) set(sheet string, row, col int, value interface{}) {
	w.check(w.f.SetCellValue(sheet, w.cell(row, col), value))
}

// money stores the amount as a number so spreadsheet formulas keep working.
func (w *workbookWriter) money(sheet string, row, col int, amount decimal.Decimal) {
	w.check(w.f.SetCellFloat(sheet, w.cell(row, col), amount.Round(2).InexactFloat64(), 2, 64))
	w.style(sheet, row, col, w.moneyStyle)
}

func (w *workbookWriter) style(sheet string, row, col, styleID int) {
	cell := w.cell(row, col)
	w.check(w.f.SetCellStyle(sheet, cell, cell, styleID))
}

func (w *workbookWriter) labelled(sheet string, row int, label, value string) {
	w.set(sheet, row, 1, label)
	w.style(sheet, row, 1, w.boldStyle)
	w.set(sheet, row, 2, value)
}

func (w *workbookWriter) header(sheet string, titles ...string) {
	for i, title := range titles {
		w.set(sheet, 1, i+1, title)
		w.style(sheet, 1, i+1, w.headerStyle)
	}
}
