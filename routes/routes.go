package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"akkor-hotel-backend/controllers"
	"akkor-hotel-backend/middleware"
)

// SetupRouter wires the middleware chain and the full route table around
// the injected controllers.
func SetupRouter(
	log *zap.Logger,
	authmw *middleware.AuthMiddleware,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	urc *controllers.UserRoleController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Akkor Hotel API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("", uc.Create)
		users.POST("/login", uc.Login)

		// /me must be registered alongside /:id; gin resolves the
		// static segment first.
		users.GET("/me", authmw.RequireAuth(), uc.Me)
		users.GET("", authmw.RequireAuth(), uc.List)
		users.GET("/:id", authmw.RequireAuth(), uc.Get)
		users.PATCH("/:id", authmw.RequireAuth(), uc.Update)
		users.DELETE("/:id", authmw.RequireAuth(), uc.Delete)
	}

	hotels := r.Group("/hotels")
	{
		hotels.GET("", hc.List)
		hotels.GET("/search", hc.List)
		hotels.GET("/:id", hc.Get)

		hotels.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), hc.Create)
		hotels.PATCH("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), hc.Update)
		hotels.DELETE("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), hc.Delete)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("/hotel/:hotel_id", rc.ListByHotel)
		rooms.GET("/:id", rc.Get)

		rooms.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), rc.Create)
		rooms.PATCH("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), rc.Update)
		rooms.DELETE("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), rc.Delete)
	}

	bookings := r.Group("/bookings", authmw.RequireAuth())
	{
		bookings.GET("", bc.List)
		bookings.GET("/user/:user_id", bc.ListByUser)
		bookings.GET("/:id", bc.Get)
		bookings.POST("", bc.Create)
		bookings.PATCH("/:id", bc.Update)
		bookings.DELETE("/:id", bc.Delete)
	}

	roles := r.Group("/user-roles")
	{
		roles.GET("/:user_id", authmw.RequireAuth(), urc.Get)
		roles.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), urc.Assign)
		roles.DELETE("/:user_id", authmw.RequireAuth(), authmw.RequireAdmin(), urc.Delete)
	}

	return r
}
