package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *catalog.ProductUseCase
	AccountUC *auth.UserAccountUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cuentas y login (público)
	users := api.Group("/users")
	userHandler := NewUserAccountHandler(deps.AccountUC)
	users.Post("/", userHandler.Register)
	users.Get("/", userHandler.List)
	users.Get("/:user_id", userHandler.GetByID)

	authHandler := NewAuthHandler(deps.AccountUC)
	api.Post("/auth/login", authHandler.Login)

	// Catálogo (protegido, requiere Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:product_id", productHandler.GetByID)
	products.Put("/:product_id", productHandler.Edit)
	products.Delete("/:product_id", productHandler.Delete)
	products.Post("/:product_id/stock", productHandler.AlterStock)
}
