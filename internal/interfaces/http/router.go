package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/alerts"
	"github.com/tu-usuario/estoque-api/internal/application/auth"
	"github.com/tu-usuario/estoque-api/internal/application/ledger"
	"github.com/tu-usuario/estoque-api/internal/application/reports"
	"github.com/tu-usuario/estoque-api/internal/application/usecase"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	ClientUC   *usecase.ClientUseCase
	UserUC     *usecase.UserUseCase
	LedgerUC   *ledger.UseCase
	Alerts     *alerts.Engine
	ReportsUC  *reports.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo excepto login y health va detrás
// del Bearer token; las mutaciones de catálogo exigen supervisor y la
// administración de usuarios exige administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	supervisor := RequireLevel(entity.LevelSupervisor)
	admin := RequireLevel(entity.LevelAdministrador)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", supervisor, productHandler.Create)
	products.Put("/:id", supervisor, productHandler.Update)
	products.Delete("/:id", supervisor, productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supervisor, supplierHandler.Create)
	suppliers.Put("/:id", supervisor, supplierHandler.Update)
	suppliers.Delete("/:id", supervisor, supplierHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", supervisor, clientHandler.Create)
	clients.Put("/:id", supervisor, clientHandler.Update)
	clients.Delete("/:id", supervisor, clientHandler.Delete)

	// Users (solo administradores)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Movements (ledger)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/product/:id", movementHandler.ListByProduct)
	movements.Delete("/:id", supervisor, movementHandler.Reverse)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Alerts)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/read", notificationHandler.ClearRead)
	notifications.Post("/inactivity-check", supervisor, notificationHandler.CheckInactivity)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/summary/:productID", reportHandler.SummaryForProduct)
	reportsGroup.Get("/financials/:productID", reportHandler.Financials)
	reportsGroup.Get("/sales-by-product", reportHandler.SalesByProduct)
}
