// Package pdf renders a project estimate as a printable report.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Project Cost Estimate  │  date + strategy          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: positions (kind | parameters | monthly salary)      │
//	│  TABLE: expenses  (name | amount)                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TAX STACK: gross fund / income tax / social / stamp duty   │
//	│  TOTALS: service value / VAT / FINAL PRICE                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/hashiv-am/hashiv-api/internal/application/dto"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// EstimatePDFGenerator renders estimate reports using Maroto v2.
type EstimatePDFGenerator struct{}

// NewEstimatePDFGenerator builds the generator.
func NewEstimatePDFGenerator() *EstimatePDFGenerator {
	return &EstimatePDFGenerator{}
}

// GenerateEstimatePDF renders the report and returns its bytes.
func (g *EstimatePDFGenerator) GenerateEstimatePDF(req dto.EstimateRequest, res *dto.EstimateResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Project Cost Estimate", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("POSITIONS"))
	m.AddRows(positionsHeaderRow())
	for _, r := range positionRows(req.Positions) {
		m.AddRows(r)
	}

	if len(req.Expenses) > 0 {
		m.AddRows(sectionTitle("EXPENSES"))
		for _, r := range expenseRows(req.Expenses) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(taxStackRows(res)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(res)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(res *dto.EstimateResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("PROJECT COST ESTIMATE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Margin model: "+res.Strategy, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

func positionsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Kind", 3, align.Left),
		h("Parameters", 6, align.Left),
		h("Monthly salary", 3, align.Right),
	)
}

func positionRows(positions []dto.PositionRequest) []core.Row {
	result := make([]core.Row, 0, len(positions))
	for _, p := range positions {
		params, monthly := describePosition(p)
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(p.Kind, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(params, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(monthly.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// describePosition summarizes the kind-specific fields; absent fields render
// as zero (presence was validated before the PDF stage).
func describePosition(p dto.PositionRequest) (string, decimal.Decimal) {
	v := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	switch p.Kind {
	case "hourly":
		return fmt.Sprintf("%s AMD/h × %s h/day × %s days",
				v(p.HourlyRate), v(p.HoursPerDay), v(p.DaysPerMonth)),
			v(p.HourlyRate).Mul(v(p.HoursPerDay)).Mul(v(p.DaysPerMonth))
	case "daily":
		return fmt.Sprintf("%s AMD/day × %s days", v(p.DailyRate), v(p.DaysPerMonth)),
			v(p.DailyRate).Mul(v(p.DaysPerMonth))
	default:
		return "fixed monthly salary", v(p.MonthlySalary)
	}
}

func expenseRows(expenses []dto.ExpenseRequest) []core.Row {
	result := make([]core.Row, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, row.New(6).Add(
			col.New(9).Add(text.New(e.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(e.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func taxStackRows(res *dto.EstimateResponse) []core.Row {
	return []core.Row{
		labeledAmount("Net salary fund", res.SalaryFundNet, false),
		labeledAmount("Gross salary fund", res.GrossAmount, false),
		labeledAmount("Income tax (20%)", res.IncomeTax, false),
		labeledAmount("Social payment (5%)", res.SocialPayment, false),
		labeledAmount(fmt.Sprintf("Stamp duty (%d positions)", res.PositionsCount), res.StampDuty, false),
		labeledAmount("Salary fund with taxes", res.TotalSalaryWithTaxes, true),
		labeledAmount("Expenses", res.ExpensesTotal, false),
	}
}

func totalsRows(res *dto.EstimateResponse) []core.Row {
	rows := []core.Row{
		labeledAmount("Profit", res.ProfitValue, false),
		labeledAmount("Service value", res.ServiceValue, true),
	}
	if res.VAT.IsPositive() {
		rows = append(rows, labeledAmount("VAT (20%)", res.VAT, false))
	}
	rows = append(rows, labeledAmount("TOTAL PRICE", res.FinalTotal, true))
	return rows
}

func labeledAmount(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(9).Add(text.New(label, props.Text{Size: 9, Style: style, Top: 1})),
		col.New(3).Add(text.New(amount.StringFixed(2)+" AMD", props.Text{
			Size: 9, Style: style, Align: align.Right, Top: 1,
		})),
	)
}
