package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "gigworks.com/gigworks/internal/http/middlewares"
	model "gigworks.com/gigworks/internal/models"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	gigs := e.Group("/gigs", middleware.Identity())
	gigs.POST("", h.CreateGig, middleware.RequireRoles(model.RoleStore))
	gigs.GET("", h.ListGigs)
	gigs.GET("/mine", h.ListMyGigs)
	gigs.GET("/:id", h.GetGig)
	gigs.PUT("/:id", h.UpdateGig, middleware.RequireRoles(model.RoleStore))
	gigs.POST("/:id/applications", h.ApplyForGig, middleware.RequireRoles(model.RoleWorker))
	gigs.POST("/:id/applications/:applicationId/resolve", h.ResolveApplication, middleware.RequireRoles(model.RoleStore))
	gigs.POST("/:id/start", h.StartGig, middleware.RequireRoles(model.RoleWorker))
	gigs.POST("/:id/complete", h.CompleteGig, middleware.RequireRoles(model.RoleWorker))
	gigs.POST("/:id/cancel", h.CancelGig, middleware.RequireRoles(model.RoleStore))
	gigs.POST("/:id/reviews", h.AddReview)

	payments := e.Group("/payments", middleware.Identity())
	payments.POST("/:id/initiate", h.InitiatePayment, middleware.RequireRoles(model.RoleStore))
}
