package handler

import (
	"campus_security_backend/internal/core/port"
	"campus_security_backend/internal/core/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Policies  *PolicyHandler
	Devices   *DeviceHandler
	Alerts    *AlertHandler
	Dashboard *DashboardHandler
	Seeder    port.DemoSeeder
	Scheduler *service.DemoScheduler
}

// NewRouter builds the gin engine. All API routes live under /api.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(corsOrigins)))

	// Serves the Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", h.Dashboard.Health)

		api.GET("/policies", h.Policies.ListPolicies)
		api.POST("/policies", h.Policies.CreatePolicy)
		api.GET("/policies/:id", h.Policies.GetPolicy)
		api.PUT("/policies/:id", h.Policies.UpdatePolicy)
		api.DELETE("/policies/:id", h.Policies.DeletePolicy)

		api.GET("/network/devices", h.Devices.ListDevices)
		api.POST("/network/devices", h.Devices.CreateDevice)
		api.GET("/network/devices/:id", h.Devices.GetDevice)
		api.PUT("/network/devices/:id", h.Devices.UpdateDevice)
		api.DELETE("/network/devices/:id", h.Devices.DeleteDevice)

		api.GET("/alerts", h.Alerts.ListAlerts)
		api.POST("/alerts", h.Alerts.CreateAlert)
		api.PUT("/alerts/:id/resolve", h.Alerts.ResolveAlert)

		api.GET("/dashboard/stats", h.Dashboard.GetStats)
		api.GET("/dashboard/stream", h.Dashboard.StreamStats)
	}
	RegisterDemoRoutes(api, h.Seeder, h.Scheduler)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
