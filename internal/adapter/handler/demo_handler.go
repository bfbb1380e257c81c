package handler

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"campus_security_backend/internal/core/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDemoRoutes mounts the demo data routes under /demo
func RegisterDemoRoutes(api *gin.RouterGroup, seeder port.DemoSeeder, scheduler *service.DemoScheduler) {
	demo := api.Group("/demo")
	{
		demo.POST("/initialize", InitializeDemoHandler(seeder))
		demo.GET("/schedule", GetDemoScheduleHandler(scheduler))
	}
}

// InitializeDemoHandler resets every collection to the demo data set
// @Summary Initialize demo data
// @Description Deletes all policies, devices and alerts, then inserts 4 policies, 4 devices and 3 alerts.
// @Tags Demo
// @Produce json
// @Success 200 {object} domain.MessageResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/demo/initialize [post]
func InitializeDemoHandler(seeder port.DemoSeeder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seeder.Initialize(c.Request.Context()); err != nil {
			respondError(c, err, "", "Error initializing demo data")
			return
		}
		c.JSON(http.StatusOK, domain.MessageResponse{Message: "Demo data initialized successfully"})
	}
}

// GetDemoScheduleHandler reports the periodic reset schedule
// @Summary Get the demo reset schedule
// @Tags Demo
// @Produce json
// @Success 200 {object} domain.DemoSchedule
// @Router /api/demo/schedule [get]
func GetDemoScheduleHandler(scheduler *service.DemoScheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, scheduler.Status())
	}
}
