package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/dinehub/reservation-app/controllers"
	"github.com/dinehub/reservation-app/metrics"
	"github.com/dinehub/reservation-app/middlewares"
	"github.com/dinehub/reservation-app/utils"
	"gorm.io/gorm"
)

// SetupRouter wires the full route table around an injected database
// handle; no package-level connection state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(metricsMiddleware())
	// General per-IP limit; auth endpoints carry a stricter one below.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.RespondError(c, &utils.APIError{
			Status:  http.StatusMethodNotAllowed,
			Message: c.Request.Method + " not allowed for " + c.Request.URL.Path,
		})
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, utils.NotFoundf("Path not found: %s", c.Request.URL.Path))
	})

	reservationCtrl := controllers.NewReservationController(db)
	tableCtrl := controllers.NewTableController(db)
	userCtrl := controllers.NewUserController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.ListReservations)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservation)
	r.PUT("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	r.PUT("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	// TABLES
	r.GET("/tables", tableCtrl.ListTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTable)
	r.PUT("/tables/:table_id/seat", tableCtrl.SeatTable)
	r.DELETE("/tables/:table_id/seat", tableCtrl.ClearTable)

	// AUTH, rate limited
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	admin.Use(middlewares.RequireRole("manager"))
	{
		admin.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
	}

	return r
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
