package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"property-backend/controllers"
	"property-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and the API route groups.
func SetupRouter(
	ac *controllers.AuthController,
	dc *controllers.DashboardController,
	rc *controllers.ReservationController,
	pc *controllers.PropertyController,
	mc *controllers.MenuController,
	oc *controllers.OrderController,
	bc *controllers.BillingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}

	// everything below requires a bearer token
	protected := api.Group("")
	protected.Use(middleware.Auth())

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/kpi", dc.KPIs)
		dashboard.GET("/reservations", dc.Reservations)
	}

	reservations := protected.Group("/reservations")
	{
		// fixed paths before /:id so "calendar" is not parsed as an id
		reservations.GET("/calendar/range", rc.Calendar)
		reservations.GET("", rc.List)
		reservations.GET("/:id", rc.Get)
		reservations.POST("", rc.Create)
		reservations.PATCH("/:id", rc.Update)
		reservations.POST("/:id/checkout", rc.Checkout)
	}

	properties := protected.Group("/properties")
	{
		properties.GET("/rooms", pc.ListRooms)
		properties.POST("/rooms", pc.CreateRoom)
		properties.PATCH("/rooms/:id", pc.UpdateRoom)
		properties.DELETE("/rooms/:id", pc.DeleteRoom)
		properties.GET("", pc.List)
		properties.POST("", pc.Create)
	}

	menus := protected.Group("/menus")
	{
		menus.GET("", mc.List)
		menus.POST("", mc.Create)
		menus.POST("/:id/items", mc.AddItem)
		menus.PATCH("/items/:id", mc.UpdateItem)
		menus.DELETE("/items/:id", mc.DeleteItem)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", oc.List)
		orders.POST("", oc.Create)
		orders.PATCH("/:id/status", oc.UpdateStatus)
	}

	billing := protected.Group("/billing")
	{
		billing.GET("/tables", bc.ListTables)
		billing.GET("/:tableId", bc.GetBill)
		billing.POST("/:tableId/pay", bc.Pay)
	}

	return r
}
