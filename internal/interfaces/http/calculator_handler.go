package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hashiv-am/hashiv-api/internal/application/dto"
	"github.com/hashiv-am/hashiv-api/internal/application/usecase"
	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// EstimatePDFGenerator renders an estimate as a PDF report.
type EstimatePDFGenerator interface {
	GenerateEstimatePDF(req dto.EstimateRequest, res *dto.EstimateResponse) ([]byte, error)
}

// CalculatorHandler handles the public calculator endpoints.
type CalculatorHandler struct {
	uc  *usecase.CalculatorUseCase
	pdf EstimatePDFGenerator
}

// NewCalculatorHandler builds the handler.
func NewCalculatorHandler(uc *usecase.CalculatorUseCase, pdf EstimatePDFGenerator) *CalculatorHandler {
	return &CalculatorHandler{uc: uc, pdf: pdf}
}

// Payroll godoc
// @Summary      Convert between gross and net salary
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollRequest  true  "amount, direction, flags"
// @Success      200   {object}  dto.PayrollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculators/payroll [post]
func (h *CalculatorHandler) Payroll(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.ConvertSalary(in)
	if err != nil {
		return calculatorError(c, err)
	}
	return c.JSON(res)
}

// Turnover godoc
// @Summary      Compute turnover tax per activity row
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TurnoverRequest  true  "activity rows"
// @Success      200   {object}  dto.TurnoverResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculators/turnover [post]
func (h *CalculatorHandler) Turnover(c *fiber.Ctx) error {
	var in dto.TurnoverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.ComputeTurnover(in)
	if err != nil {
		return calculatorError(c, err)
	}
	return c.JSON(res)
}

// Profit godoc
// @Summary      Evaluate the 79-row profit tax statement
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfitRequest  true  "input rows keyed by row number"
// @Success      200   {object}  dto.ProfitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculators/profit [post]
func (h *CalculatorHandler) Profit(c *fiber.Ctx) error {
	var in dto.ProfitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.EvaluateProfit(in)
	if err != nil {
		return calculatorError(c, err)
	}
	return c.JSON(res)
}

// Estimate godoc
// @Summary      Estimate a project price
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstimateRequest  true  "positions, expenses, margin, strategy"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculators/estimate [post]
func (h *CalculatorHandler) Estimate(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.EstimateProject(in)
	if err != nil {
		return calculatorError(c, err)
	}
	return c.JSON(res)
}

// EstimatePDF godoc
// @Summary      Estimate a project price and download the report
// @Tags         calculators
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.EstimateRequest  true  "positions, expenses, margin, strategy"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculators/estimate/pdf [post]
func (h *CalculatorHandler) EstimatePDF(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.EstimateProject(in)
	if err != nil {
		return calculatorError(c, err)
	}
	pdfBytes, err := h.pdf.GenerateEstimatePDF(in, res)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estimate.pdf"`)
	return c.Send(pdfBytes)
}

// calculatorError maps domain errors to HTTP responses.
func calculatorError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid calculation input"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
