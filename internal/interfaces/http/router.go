// Package http expone la API REST sobre Fiber: middleware de auth,
// handlers y registro de rutas.
package http

import (
	"github.com/gofiber/fiber/v2"
)

// Router agrupa los handlers y registra las rutas de la API.
type Router struct {
	Auth      *AuthHandler
	Customers *CustomerHandler
	Employees *EmployeeHandler
	Products  *ProductHandler
	Invoices  *InvoiceHandler
	Dashboard *DashboardHandler
	Activity  *ActivityHandler
	JWTSecret string
}

// Register monta todas las rutas bajo /api. Todo excepto register y login
// pasa por el middleware de JWT.
func (r *Router) Register(app *fiber.App) {
	api := app.Group("/api")

	// Rutas públicas
	api.Post("/register", r.Auth.Register)
	api.Post("/login", r.Auth.Login)

	// Rutas protegidas
	protected := api.Group("", AuthMiddleware(r.JWTSecret))
	protected.Get("/profile", r.Auth.Profile)

	customers := protected.Group("/customers")
	customers.Get("/", r.Customers.List)
	customers.Post("/", r.Customers.Create)
	customers.Put("/:id", r.Customers.Update)
	customers.Delete("/:id", r.Customers.Delete)

	employees := protected.Group("/employees")
	employees.Get("/", r.Employees.List)
	employees.Post("/", r.Employees.Create)
	employees.Put("/:id", r.Employees.Update)
	employees.Delete("/:id", r.Employees.Delete)

	products := protected.Group("/products")
	products.Get("/", r.Products.List)
	products.Post("/", r.Products.Create)
	products.Put("/:id", r.Products.Update)
	products.Delete("/:id", r.Products.Delete)

	invoices := protected.Group("/invoices")
	invoices.Get("/", r.Invoices.List)
	invoices.Post("/", r.Invoices.Create)
	invoices.Put("/:id", r.Invoices.Update)
	invoices.Delete("/:id", r.Invoices.Delete)
	invoices.Get("/:id/pdf", r.Invoices.DownloadPDF)

	protected.Get("/dashboard", r.Dashboard.Get)
	protected.Get("/activities", r.Activity.List)
}
