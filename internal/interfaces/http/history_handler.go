package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hashiv-am/hashiv-api/internal/application/dto"
	"github.com/hashiv-am/hashiv-api/internal/application/usecase"
	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// HistoryHandler handles the protected calculation-history endpoints.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler builds the handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List godoc
// @Summary      List recorded calculations
// @Tags         calculations
// @Produce      json
// @Param        kind    query  string  false  "payroll | turnover | profit | estimate"
// @Param        limit   query  int     false  "page size (default 20)"
// @Param        offset  query  int     false  "page offset"
// @Success      200  {object}  dto.CalculationListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calculations [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	kind := c.Query("kind")
	res, err := h.uc.List(kind, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown calculation kind"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// GetByID godoc
// @Summary      Fetch one recorded calculation
// @Tags         calculations
// @Produce      json
// @Param        id   path      string  true  "calculation id"
// @Success      200  {object}  dto.CalculationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/{id} [get]
func (h *HistoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	res, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if res == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "calculation not found"})
	}
	return c.JSON(res)
}
