package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/auth"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Resolver     *auth.Resolver
	VendorUC     *procurement.VendorUseCase
	OrderUC      *procurement.OrderUseCase
	OrderPDFUC   *procurement.OrderPDFUseCase
	QuoteUC      *procurement.QuoteUseCase
	DecideUC     *procurement.DecideQuoteUseCase
	AssignmentUC *procurement.AssignmentUseCase
	DocumentUC   *procurement.DocumentUseCase
	SearchUC     *procurement.SearchUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: JWT + identidad resuelta contra la DB
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), CallerMiddleware(deps.Resolver))

	protected.Get("/me", authHandler.Me)

	// Cuentas internas (solo managers)
	accounts := protected.Group("/accounts", RequireRole(entity.RoleManager))
	accounts.Post("/", authHandler.CreateAccount)
	accounts.Delete("/:id", authHandler.DeactivateAccount)

	// Directorio de proveedores
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", RequireRole(entity.RoleManager), vendorHandler.Create)
	vendors.Patch("/:id", vendorHandler.Update)
	vendors.Post("/:id/verify", RequireRole(entity.RoleManager), vendorHandler.Verify)

	// Órdenes de compra
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	orders.Post("/", RequireRole(entity.RoleManager), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", RequireRole(entity.RoleManager), orderHandler.Delete)
	orders.Get("/:id/pdf", orderHandler.PDF)

	// Documentos adjuntos (anidados bajo la orden)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	orders.Post("/:id/documents", documentHandler.Upload)
	orders.Get("/:id/documents", documentHandler.ListByOrder)

	// Cotizaciones
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.DecideUC)
	quotes.Post("/", RequireRole(entity.RoleVendor), quoteHandler.Submit)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Patch("/:id", RequireRole(entity.RoleVendor), quoteHandler.Update)
	quotes.Post("/:id/decision", RequireRole(entity.RoleManager), quoteHandler.Decide)
	quotes.Delete("/:id", quoteHandler.Delete)

	// Asignaciones orden↔staff
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", RequireRole(entity.RoleManager), assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Búsqueda y dashboard
	searchHandler := NewSearchHandler(deps.SearchUC)
	protected.Get("/search", searchHandler.Search)
	protected.Get("/dashboard", searchHandler.Dashboard)
}
