// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/handlers"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the handler set wired by the server
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Auth    *handlers.AuthHandler
	Cart    *handlers.CartHandler
	Order   *handlers.OrderHandler
	Address *handlers.AddressHandler
	Blog    *handlers.BlogHandler
}

// SetupCatalogRoutes sets up catalog browsing and search routes
func SetupCatalogRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		products.GET("", h.Catalog.GetProducts)
		products.GET("/featured", h.Catalog.GetFeaturedProducts)
		products.GET("/:id", h.Catalog.GetProduct)
	}

	rg.GET("/categories", h.Catalog.GetCategories)
	rg.GET("/health-concerns", h.Catalog.GetHealthConcerns)
	rg.GET("/lab-tests", h.Catalog.GetLabTests)
	rg.GET("/baby-care", h.Catalog.GetBabyCareProducts)
	rg.GET("/search", h.Catalog.Search)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		// Sign-in is credential-less, so register and login share a handler
		auth.POST("/register", h.Auth.Login)
		auth.POST("/login", h.Auth.Login)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", h.Auth.Logout)
			protected.GET("/profile", h.Auth.Profile)
		}
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", h.Cart.GetCart)
		cart.GET("/count", h.Cart.GetCount)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/items/:id/increase", h.Cart.IncreaseQuantity)
		cart.POST("/items/:id/decrease", h.Cart.DecreaseQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.ClearCart)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	// Quotes are priced before sign-in; placing the order is not
	checkout := rg.Group("/checkout")
	checkout.POST("/quote", middleware.OptionalAuthMiddleware(cfg), h.Order.Quote)
	checkout.POST("", middleware.AuthMiddleware(cfg), h.Order.Checkout)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", h.Order.GetOrders)
		orders.GET("/:number", h.Order.GetOrder)
		orders.GET("/:number/invoice", h.Order.DownloadInvoice)
	}
}

// SetupAddressRoutes sets up saved address routes
func SetupAddressRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	addresses := rg.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(cfg))
	{
		addresses.GET("", h.Address.GetAddresses)
		addresses.POST("", h.Address.CreateAddress)
		addresses.PUT("/:id", h.Address.UpdateAddress)
		addresses.DELETE("/:id", h.Address.DeleteAddress)
	}
}

// SetupBlogRoutes sets up health article routes
func SetupBlogRoutes(rg *gin.RouterGroup, h *Handlers) {
	blog := rg.Group("/blog")
	{
		blog.GET("", h.Blog.GetPosts)
		blog.GET("/categories", h.Blog.GetCategories)
		blog.GET("/:id", h.Blog.GetPost)
	}
}
