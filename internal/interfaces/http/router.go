package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

// RouterDeps dependencias para el router del servidor de desarrollo.
type RouterDeps struct {
	Users     *memory.UserRepository
	Products  *memory.ProductRepository
	Suppliers *memory.SupplierRepository
	Locale    dto.Locale
	JWT       JWTConfig
}

// Router registra las rutas del contrato REST. Las rutas de productos y
// proveedores se localizan según el vocabulario configurado; auth y
// usuarios no varían entre revisiones.
func Router(app *fiber.App, deps RouterDeps) {
	protected := AuthMiddleware(deps.JWT.Secret)

	// Auth
	authHandler := NewAuthHandler(deps.Users, deps.JWT)
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", protected, authHandler.Profile)
	auth.Patch("/profile", protected, authHandler.UpdateProfile)

	// Users (solo admin)
	userHandler := NewUserHandler(deps.Users)
	users := app.Group("/users", protected, RequireRole("admin"))
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)

	productsPath := "/products"
	bySupplierSegment := "/supplier/:supplierId"
	suppliersPath := "/suppliers"
	supplierProductsSegment := "/:id/products"
	if deps.Locale == dto.LocaleES {
		productsPath = "/productos"
		bySupplierSegment = "/proveedor/:supplierId"
		suppliersPath = "/suplidores"
		supplierProductsSegment = "/:id/productos"
	}

	// Products (protegido). Las rutas específicas van antes de /:id.
	productHandler := NewProductHandler(deps.Products, deps.Locale)
	products := app.Group(productsPath, protected)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get(bySupplierSegment, productHandler.ListBySupplier)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.UpdateStock)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers (protegido)
	supplierHandler := NewSupplierHandler(deps.Suppliers, deps.Products, deps.Locale)
	suppliers := app.Group(suppliersPath, protected)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get(supplierProductsSegment, supplierHandler.WithProducts)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
}
