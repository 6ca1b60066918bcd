package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// RowKind classifies a statement row.
type RowKind string

const (
	RowInput    RowKind = "input"    // externally supplied, defaults to zero
	RowSubtotal RowKind = "subtotal" // sum of its DependsOn rows
	RowComputed RowKind = "computed" // formula over earlier rows
)

// StatementRow describes one of the 79 rows of the profit tax return.
type StatementRow struct {
	Number    int
	Label     string
	Kind      RowKind
	DependsOn []int
	compute   func(v map[int]decimal.Decimal) decimal.Decimal
}

// Well-known row numbers of the statement.
const (
	RowTotalIncomes     = 24
	RowTotalExpenses    = 45
	RowTotalLosses      = 50
	RowTotalReductions  = 66
	RowTaxableProfit    = 68
	RowProfitTax        = 71
	RowPayableTax       = 78
	RowCarryForwardLoss = 79
	StatementRowCount   = 79
)

// profitTaxRate is the statutory corporate rate (18%).
var profitTaxRate = decimal.NewFromFloat(0.18)

func input(n int, label string) StatementRow {
	return StatementRow{Number: n, Label: label, Kind: RowInput}
}

func subtotal(n int, label string, deps ...int) StatementRow {
	return StatementRow{
		Number: n, Label: label, Kind: RowSubtotal, DependsOn: deps,
		compute: func(v map[int]decimal.Decimal) decimal.Decimal {
			sum := decimal.Zero
			for _, d := range deps {
				sum = sum.Add(v[d])
			}
			return sum
		},
	}
}

func computed(n int, label string, deps []int, fn func(v map[int]decimal.Decimal) decimal.Decimal) StatementRow {
	return StatementRow{Number: n, Label: label, Kind: RowComputed, DependsOn: deps, compute: fn}
}

func rng(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

// statementRows is the static 79-row table of the Armenian profit tax return.
// Row numbers double as the topological evaluation order: every row depends
// only on lower-numbered rows, which validateStatementTable enforces at init.
//
// Rows 33 and 34 are "of which" memo subtotals; they break down rows already
// counted elsewhere and are deliberately excluded from row 45 so no expense
// is added twice.
var statementRows = buildStatementRows()

func buildStatementRows() []StatementRow {
	rows := []StatementRow{
		// Incomes (1-23)
		input(1, "Revenue from sale of goods"),
		input(2, "Revenue from services rendered"),
		input(3, "Revenue from sale of fixed assets"),
		input(4, "Revenue from sale of intangible assets"),
		input(5, "Rental income"),
		input(6, "Interest income"),
		input(7, "Dividends received"),
		input(8, "Royalties"),
		input(9, "Foreign exchange gains"),
		input(10, "Insurance compensation received"),
		input(11, "Grants and subsidies"),
		input(12, "Written-off accounts payable"),
		input(13, "Inventory surpluses identified"),
		input(14, "Income from joint activities"),
		input(15, "Income from securities transactions"),
		input(16, "Assets received free of charge"),
		input(17, "Penalties and fines received"),
		input(18, "Recovered receivables previously written off"),
		input(19, "Revaluation gains"),
		input(20, "Prior-year income identified in the reporting year"),
		input(21, "Income from agricultural production"),
		input(22, "Non-operating income"),
		input(23, "Other income"),
		subtotal(RowTotalIncomes, "Total incomes", rng(1, 23)...),

		// Expenses (25-45)
		input(25, "Materials and inventory used"),
		input(26, "Production wages and salaries"),
		input(27, "Depreciation of production assets"),
		subtotal(28, "Cost of sales, total", 25, 26, 27),
		input(29, "Administrative wages and salaries"),
		input(30, "Depreciation of administrative assets"),
		input(31, "Other administrative expenses"),
		subtotal(32, "Administrative expenses, total", 29, 30, 31),
		subtotal(33, "of which: total wage expenses", 26, 29),
		subtotal(34, "of which: total depreciation", 27, 30),
		input(35, "Selling and distribution expenses"),
		subtotal(36, "Operating expenses, total", 28, 32, 35),
		input(37, "Interest and other financial expenses"),
		input(38, "Foreign exchange losses"),
		input(39, "Losses from disposal of assets"),
		input(40, "Representation expenses"),
		input(41, "Business trip expenses"),
		input(42, "Charity and sponsorship expenses"),
		input(43, "Non-operating expenses"),
		input(44, "Other deductible expenses"),
		subtotal(RowTotalExpenses, "Total expenses", append([]int{36}, rng(37, 44)...)...),

		// Losses (46-50)
		input(46, "Losses from write-off of receivables"),
		input(47, "Losses carried forward from prior years"),
		input(48, "Natural and qualitative losses"),
		input(49, "Other documented losses"),
		subtotal(RowTotalLosses, "Total losses", rng(46, 49)...),

		// Reductions of taxable income (51-66)
		input(51, "Dividends already taxed at source"),
		input(52, "Income taxed in foreign jurisdictions"),
		input(53, "Exempt share of agricultural income"),
		input(54, "Income from securities exempt by law"),
		input(55, "Assets received under state programs"),
		input(56, "Non-taxable share of insurance compensation"),
		input(57, "Revaluation results excluded by law"),
		input(58, "Prior-year income already taxed"),
		input(59, "Reduction for new workplaces created"),
		input(60, "Reduction for certified IT activity"),
		input(61, "Reduction for border-region activity"),
		input(62, "Charitable contributions within statutory limits"),
		input(63, "Accumulated pension payments within limits"),
		input(64, "Reinvested profit reduction"),
		input(65, "Other reductions established by law"),
		subtotal(RowTotalReductions, "Total reductions", rng(51, 65)...),

		// Tax computation (67-79)
		subtotal(67, "Total expenses, losses and reductions", RowTotalExpenses, RowTotalLosses, RowTotalReductions),
		computed(RowTaxableProfit, "Taxable profit", []int{RowTotalIncomes, 67},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[RowTotalIncomes].Sub(v[67]) }),
		input(69, "Profit exempt from taxation"),
		computed(70, "Profit subject to taxation", []int{RowTaxableProfit, 69},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[RowTaxableProfit].Sub(v[69]) }),
		computed(RowProfitTax, "Profit tax at the statutory rate", []int{70},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[70].Mul(profitTaxRate).Round(2) }),
		input(72, "Tax benefits"),
		input(73, "Tax discounts"),
		computed(74, "Tax after benefits and discounts", []int{RowProfitTax, 72, 73},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[RowProfitTax].Sub(v[72]).Sub(v[73]) }),
		input(75, "Prepayments made during the year"),
		computed(76, "Tax after prepayments", []int{74, 75},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[74].Sub(v[75]) }),
		input(77, "Prior-year minimum tax carryover"),
		computed(RowPayableTax, "Payable tax", []int{76, 77},
			func(v map[int]decimal.Decimal) decimal.Decimal { return v[76].Sub(v[77]) }),
		// Only a negative payable tax transfers forward.
		computed(RowCarryForwardLoss, "Carried-forward loss", []int{RowPayableTax},
			func(v map[int]decimal.Decimal) decimal.Decimal {
				if v[RowPayableTax].IsNegative() {
					return v[RowPayableTax]
				}
				return decimal.Zero
			}),
	}
	validateStatementTable(rows)
	return rows
}

// validateStatementTable fails fast on a malformed static table: every row
// number 1..79 present exactly once, in ascending order, with dependencies
// that reference only earlier rows. Input rows may not declare dependencies.
func validateStatementTable(rows []StatementRow) {
	if len(rows) != StatementRowCount {
		panic(fmt.Sprintf("tax: statement table has %d rows, want %d", len(rows), StatementRowCount))
	}
	for i, row := range rows {
		if row.Number != i+1 {
			panic(fmt.Sprintf("tax: statement row %d out of order (position %d)", row.Number, i+1))
		}
		if row.Kind == RowInput {
			if len(row.DependsOn) != 0 {
				panic(fmt.Sprintf("tax: input row %d declares dependencies", row.Number))
			}
			continue
		}
		if row.compute == nil {
			panic(fmt.Sprintf("tax: derived row %d has no formula", row.Number))
		}
		if len(row.DependsOn) == 0 {
			panic(fmt.Sprintf("tax: derived row %d declares no dependencies", row.Number))
		}
		for _, dep := range row.DependsOn {
			if dep < 1 || dep > StatementRowCount {
				panic(fmt.Sprintf("tax: row %d references nonexistent row %d", row.Number, dep))
			}
			if dep >= row.Number {
				panic(fmt.Sprintf("tax: row %d references forward row %d", row.Number, dep))
			}
		}
	}
}

// StatementRows returns the static row table (labels, kinds, dependencies)
// for presentation. The returned slice is shared; callers must not mutate it.
func StatementRows() []StatementRow {
	return statementRows
}

// EvaluateProfitStatement computes all 79 rows of the profit tax return from
// the caller-supplied input rows. Missing input rows default to zero; values
// supplied for subtotal or computed rows are ignored; the engine is the sole
// writer of derived rows. The evaluation is a pure function of its inputs.
func EvaluateProfitStatement(inputs map[int]decimal.Decimal) (map[int]decimal.Decimal, error) {
	values := make(map[int]decimal.Decimal, StatementRowCount)
	for _, row := range statementRows {
		switch row.Kind {
		case RowInput:
			val, ok := inputs[row.Number]
			if !ok {
				values[row.Number] = decimal.Zero
				continue
			}
			if val.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			values[row.Number] = val
		default:
			values[row.Number] = row.compute(values)
		}
	}
	return values, nil
}
