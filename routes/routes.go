package routes

import (
	"studio-service/config"
	"studio-service/controllers"
	"studio-service/database"
	"studio-service/logger"
	"studio-service/middleware"
	"studio-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires controllers for every concern onto the router. The
// booking service is constructed by the caller so it can be closed on
// shutdown.
func RegisterRoutes(
	r *gin.Engine,
	store database.SessionStore,
	bookingService *services.BookingService,
	cfg config.Config,
) {
	r.Use(cors.Default())
	r.Use(logger.RequestLogger())
	r.Use(middleware.Session())

	tokenService := services.NewTokenService(cfg.JWTSecret)

	cartController := controllers.NewCartController(services.NewCartService(store, logger.Log))
	bookingController := controllers.NewBookingController(bookingService)
	blogController := controllers.NewBlogController(services.NewBlogService(store, logger.Log))
	authController := controllers.NewAuthController(services.NewAuthService(store, tokenService, logger.Log))
	catalogController := controllers.NewCatalogController()
	searchController := controllers.NewSearchController(services.NewSearchService())
	sessionController := controllers.NewSessionController(services.NewSessionService(store))

	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/services", catalogController.ListServices)
		catalogGroup.GET("/menu", catalogController.GetMenu)
		catalogGroup.GET("/memberships", catalogController.ListMemberships)
		catalogGroup.GET("/gallery", catalogController.ListGallery)
		catalogGroup.GET("/timeslots", catalogController.ListTimeSlots)
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartController.GetCart)
		cartGroup.POST("/items", cartController.AddItem)
		cartGroup.PATCH("/items/:item_id", cartController.UpdateQuantity)
		cartGroup.DELETE("/items/:item_id", cartController.RemoveItem)
		cartGroup.DELETE("", cartController.ClearCart)
	}

	bookingGroup := r.Group("/booking")
	{
		bookingGroup.GET("", bookingController.GetBooking)
		bookingGroup.PUT("/selection", bookingController.UpdateSelection)
		bookingGroup.POST("/confirmation", bookingController.OpenConfirmation)
		bookingGroup.DELETE("/confirmation", bookingController.CloseConfirmation)
		bookingGroup.POST("/confirm", bookingController.Confirm)
	}

	blogGroup := r.Group("/blog")
	{
		blogGroup.GET("", blogController.ListPosts)
		blogGroup.GET("/categories", blogController.ListCategories)
		blogGroup.POST("/:post_id/like", blogController.ToggleLike)
		blogGroup.POST("/:post_id/save", blogController.ToggleSave)
	}

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit())
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", middleware.Auth(tokenService), authController.Me)
	}

	r.GET("/search", searchController.Search)
	r.DELETE("/session", sessionController.ClearSession)
}
