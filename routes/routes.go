package routes

import (
	"time"

	"shuttlesync/handlers"
	"shuttlesync/middleware"
	"shuttlesync/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewAgentRouter builds a gin engine with the middleware stack every agent
// shares.
func NewAgentRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

// RegisterPartyRoutes registers one party agent's diary endpoints.
func RegisterPartyRoutes(r *gin.Engine, h *handlers.PartyHandler) {
	r.GET("/", h.RootHandler)
	r.GET("/.well-known/agent.json", h.AgentCardHandler)
	r.GET("/diary", h.GetDiaryHandler)
	r.POST("/check_availability", h.CheckAvailabilityHandler)
	r.POST("/book_appointment", h.BookAppointmentHandler)
	r.POST("/reset_diary", h.ResetDiaryHandler)
}

// RegisterOrganizerRoutes registers the coordination endpoints.
func RegisterOrganizerRoutes(r *gin.Engine, h *handlers.OrganizerHandler) {
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)
	r.POST("/schedule_badminton", h.ScheduleHandler)
}
