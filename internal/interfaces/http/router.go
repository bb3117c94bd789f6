package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asmendustri/asm-endustri-api/internal/application/auth"
	"github.com/asmendustri/asm-endustri-api/internal/application/usecase"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
	"github.com/asmendustri/asm-endustri-api/internal/infrastructure/storage"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	GalleryUC   *usecase.GalleryUseCase
	ContactUC   *usecase.ContactUseCase
	UploadStore *storage.Store
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	authed := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	admin := RequireAdmin()

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/verify", authed, authHandler.Verify)

	// Products: public reads, admin writes
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/categories/list", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authed, admin, productHandler.Create)
	products.Put("/:id", authed, admin, productHandler.Update)
	products.Delete("/:id", authed, admin, productHandler.Delete)

	// Gallery: public read, admin writes
	galleryHandler := NewGalleryHandler(deps.GalleryUC)
	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.List)
	gallery.Post("/", authed, admin, galleryHandler.Create)
	gallery.Put("/:id", authed, admin, galleryHandler.Update)
	gallery.Delete("/:id", authed, admin, galleryHandler.Delete)

	// Contact: public submit, admin inbox
	contactHandler := NewContactHandler(deps.ContactUC)
	contact := api.Group("/contact")
	contact.Post("/submit", contactHandler.Submit)
	contact.Get("/messages", authed, admin, contactHandler.Messages)
	contact.Put("/messages/:id/read", authed, admin, contactHandler.MarkRead)
	contact.Delete("/messages/:id", authed, admin, contactHandler.Delete)

	// Uploads: admin only
	uploadHandler := NewUploadHandler(deps.UploadStore)
	upload := api.Group("/upload", authed, admin)
	upload.Post("/product-image", uploadHandler.ProductImage)
	upload.Post("/product-catalog", uploadHandler.ProductCatalog)
	upload.Post("/gallery-image", uploadHandler.GalleryImage)
	upload.Delete("/delete", uploadHandler.Delete)
}
