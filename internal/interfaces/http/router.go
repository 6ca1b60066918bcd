package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hashiv-am/hashiv-api/internal/application/auth"
	"github.com/hashiv-am/hashiv-api/internal/application/usecase"
	"github.com/hashiv-am/hashiv-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CalculatorUC *usecase.CalculatorUseCase
	HistoryUC    *usecase.HistoryUseCase
	AuthUC       *auth.AuthUseCase
	EstimatePDF  EstimatePDFGenerator
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Calculators (public, same as the website)
	calculators := api.Group("/calculators")
	calculatorHandler := NewCalculatorHandler(deps.CalculatorUC, deps.EstimatePDF)
	calculators.Post("/payroll", calculatorHandler.Payroll)
	calculators.Post("/turnover", calculatorHandler.Turnover)
	calculators.Post("/profit", calculatorHandler.Profit)
	calculators.Post("/estimate", calculatorHandler.Estimate)
	calculators.Post("/estimate/pdf", calculatorHandler.EstimatePDF)

	// Calculation history (protected, dashboard only)
	history := api.Group("/calculations",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleEditor),
	)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history.Get("/", historyHandler.List)
	history.Get("/:id", historyHandler.GetByID)
}
