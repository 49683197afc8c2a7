package routes

import (
	"net/http"
	"strings"
	"time"

	"mingo-hotel-api/config"
	"mingo-hotel-api/controllers"
	"mingo-hotel-api/middleware"
	"mingo-hotel-api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and the full REST surface. Three tiers:
// public (auth, availability search, content), authenticated (bookings,
// own profile), and admin-only (management CRUD, audit log).
func SetupRouter(cfg config.App, bookingCtl *controllers.BookingController, authCtl *controllers.AuthController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigins != "" {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	api := r.Group("/api")

	// Public surface: registration, login, guest-facing content and the
	// availability search used by the booking widget.
	api.POST("/register", authCtl.Register)
	api.POST("/login", authCtl.Login)
	api.GET("/rooms", controllers.GetRooms)
	api.GET("/rooms/:id", controllers.GetRoomByID)
	api.GET("/room-categories", controllers.GetRoomCategories)
	api.GET("/room-categories/:id", controllers.GetRoomCategoryByID)
	api.GET("/hero-sliders", controllers.GetHeroSliders)
	api.GET("/hero-sliders/:id", controllers.GetHeroSliderByID)
	api.GET("/room-features", controllers.GetRoomFeatures)
	api.GET("/faqs", controllers.GetFaqs)
	api.POST("/check-room-availability", bookingCtl.CheckAvailability)

	auth := api.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		auth.GET("/get-logged-in-user", authCtl.GetLoggedInUser)

		auth.GET("/room-bookings", bookingCtl.Index)
		auth.POST("/room-bookings", bookingCtl.Create)
		auth.GET("/room-bookings/:id", bookingCtl.Show)
		auth.GET("/rooms/:id/availability", bookingCtl.Calendar)
	}

	admin := api.Group("")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(models.RoleSystemAdmin))
	{
		admin.PUT("/room-bookings/:id", bookingCtl.Update)
		admin.PATCH("/room-bookings/:id", bookingCtl.Update)
		admin.DELETE("/room-bookings/:id", bookingCtl.Destroy)
		admin.POST("/bulk-destroy-room-bookings", bookingCtl.BulkDestroy)

		admin.POST("/rooms", controllers.CreateRoom)
		admin.PUT("/rooms/:id", controllers.UpdateRoom)
		admin.DELETE("/rooms/:id", controllers.DeleteRoom)
		admin.POST("/bulk-destroy-rooms", controllers.BulkDestroyRooms)

		admin.POST("/room-categories", controllers.CreateRoomCategory)
		admin.PUT("/room-categories/:id", controllers.UpdateRoomCategory)
		admin.DELETE("/room-categories/:id", controllers.DeleteRoomCategory)
		admin.POST("/bulk-destroy-room-categories", controllers.BulkDestroyRoomCategories)

		admin.POST("/room-features", controllers.CreateRoomFeature)
		admin.PUT("/room-features/:id", controllers.UpdateRoomFeature)
		admin.DELETE("/room-features/:id", controllers.DeleteRoomFeature)

		admin.POST("/hero-sliders", controllers.CreateHeroSlider)
		admin.PUT("/hero-sliders/:id", controllers.UpdateHeroSlider)
		admin.DELETE("/hero-sliders/:id", controllers.DeleteHeroSlider)
		admin.POST("/bulk-destroy-hero-sliders", controllers.BulkDestroyHeroSliders)

		admin.POST("/faqs", controllers.CreateFaq)
		admin.PUT("/faqs/:id", controllers.UpdateFaq)
		admin.DELETE("/faqs/:id", controllers.DeleteFaq)

		admin.GET("/users", controllers.GetUsers)
		admin.GET("/users/:id", controllers.GetUserByID)
		admin.POST("/users", controllers.CreateUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.POST("/bulk-destroy-users", controllers.BulkDestroyUsers)
		admin.GET("/roles", controllers.GetRoles)

		admin.GET("/activity-logs", controllers.GetActivityLogs)
		admin.POST("/bulk-destroy-activity-logs", controllers.BulkDestroyActivityLogs)

		admin.GET("/getAllStatisticsCards", controllers.GetStatisticsCards)
	}

	return r
}
