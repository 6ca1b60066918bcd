package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hashiv-am/hashiv-api/internal/application/dto"
	"github.com/hashiv-am/hashiv-api/internal/domain"
	"github.com/hashiv-am/hashiv-api/internal/domain/entity"
	"github.com/hashiv-am/hashiv-api/internal/domain/repository"
	"github.com/hashiv-am/hashiv-api/internal/domain/tax"
	"github.com/hashiv-am/hashiv-api/pkg/logger"
)

// CalculatorUseCase fronts the pure tax engines and records every successful
// invocation in the calculation history. History is best effort: a failed
// insert is logged and the calculation result is returned anyway.
type CalculatorUseCase struct {
	calcRepo repository.CalculationRepository
	log      *logger.Logger
}

// NewCalculatorUseCase builds the use case. calcRepo may be nil to disable
// history (used by tests).
func NewCalculatorUseCase(calcRepo repository.CalculationRepository, log *logger.Logger) *CalculatorUseCase {
	return &CalculatorUseCase{calcRepo: calcRepo, log: log}
}

// ConvertSalary runs a gross/net salary conversion.
func (uc *CalculatorUseCase) ConvertSalary(in dto.PayrollRequest) (*dto.PayrollResponse, error) {
	result, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:              in.Amount,
		Direction:           tax.Direction(in.Direction),
		IsSocialContributor: in.IsSocialContributor,
		IsITCompany:         in.IsITCompany,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.PayrollResponse{
		Gross:              result.Gross,
		Net:                result.Net,
		IncomeTax:          result.IncomeTax,
		SocialContribution: result.SocialContribution,
		StampDuty:          result.StampDuty,
		TotalDeductions:    result.TotalDeductions,
	}
	uc.record(entity.CalculationPayroll, in, out)
	return out, nil
}

// ComputeTurnover runs a turnover tax computation over the activity rows.
func (uc *CalculatorUseCase) ComputeTurnover(in dto.TurnoverRequest) (*dto.TurnoverResponse, error) {
	if len(in.Rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	rows := make([]tax.ActivityRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, tax.ActivityRow{
			Turnover:         r.Turnover,
			DirectCosts:      r.DirectCosts,
			AdminCosts:       r.AdminCosts,
			TaxRatePercent:   r.TaxRatePercent,
			DeductionPercent: r.DeductionPercent,
			MinTaxPercent:    r.MinTaxPercent,
			IsFixedRate:      r.IsFixedRate,
		})
	}
	result, err := tax.ComputeTurnoverTax(rows)
	if err != nil {
		return nil, err
	}
	out := &dto.TurnoverResponse{
		Rows:              make([]dto.ActivityRowResponse, 0, len(result.Rows)),
		TotalTaxPayable:   result.TotalTaxPayable,
		TotalTurnover:     result.TotalTurnover,
		OverallTaxPercent: result.OverallTaxPercent,
	}
	for _, r := range result.Rows {
		out.Rows = append(out.Rows, dto.ActivityRowResponse{
			Turnover:         r.Turnover,
			MinTaxAmount:     r.MinTaxAmount,
			ActualTaxPercent: r.ActualTaxPercent,
			TaxPayable:       r.TaxPayable,
		})
	}
	uc.record(entity.CalculationTurnover, in, out)
	return out, nil
}

// EvaluateProfit evaluates the 79-row profit tax statement.
func (uc *CalculatorUseCase) EvaluateProfit(in dto.ProfitRequest) (*dto.ProfitResponse, error) {
	values, err := tax.EvaluateProfitStatement(in.Inputs)
	if err != nil {
		return nil, err
	}
	out := &dto.ProfitResponse{
		Rows:       make([]dto.ProfitRowResponse, 0, tax.StatementRowCount),
		PayableTax: values[tax.RowPayableTax],
	}
	for _, row := range tax.StatementRows() {
		out.Rows = append(out.Rows, dto.ProfitRowResponse{
			Number: row.Number,
			Label:  row.Label,
			Kind:   string(row.Kind),
			Value:  values[row.Number],
		})
	}
	uc.record(entity.CalculationProfit, in, out)
	return out, nil
}

// EstimateProject runs a project estimation under the requested margin strategy.
func (uc *CalculatorUseCase) EstimateProject(in dto.EstimateRequest) (*dto.EstimateResponse, error) {
	strategy, err := strategyByName(in.Strategy)
	if err != nil {
		return nil, err
	}
	input, err := toEstimateInput(in)
	if err != nil {
		return nil, err
	}
	result, err := tax.EstimateProject(*input, strategy)
	if err != nil {
		return nil, err
	}
	out := &dto.EstimateResponse{
		SalaryFundNet:        result.SalaryFundNet,
		PositionsCount:       result.PositionsCount,
		StampDuty:            result.StampDuty,
		GrossAmount:          result.GrossAmount,
		IncomeTax:            result.IncomeTax,
		SocialPayment:        result.SocialPayment,
		TotalSalaryWithTaxes: result.TotalSalaryWithTaxes,
		ExpensesTotal:        result.ExpensesTotal,
		ProfitValue:          result.ProfitValue,
		ServiceValue:         result.ServiceValue,
		VAT:                  result.VAT,
		FinalTotal:           result.FinalTotal,
		Strategy:             strategy.Name(),
	}
	uc.record(entity.CalculationEstimate, in, out)
	return out, nil
}

func strategyByName(name string) (tax.MarginStrategy, error) {
	switch name {
	case "additive":
		return tax.AdditiveMarginEstimator{}, nil
	case "divisive":
		return tax.DivisiveMarginEstimator{}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// toEstimateInput validates presence of the kind-specific position fields
// (pointers in the DTO) and maps to the domain input.
func toEstimateInput(in dto.EstimateRequest) (*tax.EstimateInput, error) {
	if len(in.Positions) == 0 {
		return nil, domain.ErrInvalidInput
	}
	positions := make([]tax.Position, 0, len(in.Positions))
	for _, p := range in.Positions {
		pos := tax.Position{Kind: tax.PositionKind(p.Kind)}
		switch pos.Kind {
		case tax.PositionHourly:
			if p.HourlyRate == nil || p.HoursPerDay == nil || p.DaysPerMonth == nil {
				return nil, domain.ErrInvalidInput
			}
			pos.HourlyRate = *p.HourlyRate
			pos.HoursPerDay = *p.HoursPerDay
			pos.DaysPerMonth = *p.DaysPerMonth
		case tax.PositionDaily:
			if p.DailyRate == nil || p.DaysPerMonth == nil {
				return nil, domain.ErrInvalidInput
			}
			pos.DailyRate = *p.DailyRate
			pos.DaysPerMonth = *p.DaysPerMonth
		case tax.PositionMonthly:
			if p.MonthlySalary == nil {
				return nil, domain.ErrInvalidInput
			}
			pos.MonthlySalary = *p.MonthlySalary
		default:
			return nil, domain.ErrInvalidInput
		}
		positions = append(positions, pos)
	}
	expenses := make([]tax.ExpenseItem, 0, len(in.Expenses))
	for _, e := range in.Expenses {
		expenses = append(expenses, tax.ExpenseItem{Name: e.Name, Value: e.Value})
	}
	return &tax.EstimateInput{
		Positions:           positions,
		Expenses:            expenses,
		ProfitMarginPercent: in.ProfitMarginPercent,
		IsVATPayer:          in.IsVATPayer,
	}, nil
}

// record snapshots a successful calculation into history.
func (uc *CalculatorUseCase) record(kind string, request, result any) {
	if uc.calcRepo == nil {
		return
	}
	reqJSON, err := json.Marshal(request)
	if err != nil {
		uc.logWarn(kind, err)
		return
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		uc.logWarn(kind, err)
		return
	}
	calc := &entity.Calculation{
		ID:        uuid.New().String(),
		Kind:      kind,
		Request:   reqJSON,
		Result:    resJSON,
		CreatedAt: time.Now(),
	}
	if err := uc.calcRepo.Create(calc); err != nil {
		uc.logWarn(kind, err)
	}
}

func (uc *CalculatorUseCase) logWarn(kind string, err error) {
	if uc.log != nil {
		uc.log.Warn().Err(err).Str("kind", kind).Msg("calculation history not recorded")
	}
}
