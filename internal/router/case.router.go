package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	hrest "github.com/Finaxis002/FCOBackend/internal/handler/http"
	wshandler "github.com/Finaxis002/FCOBackend/internal/handler/ws"
	"github.com/Finaxis002/FCOBackend/internal/middleware"
)

// SetupRoutes configures the HTTP routes for the case service.
func SetupRoutes(
	r chi.Router,
	caseHandler *hrest.CaseHandler,
	userHandler *hrest.UserHandler,
	notificationHandler *hrest.NotificationHandler,
	serviceHandler *hrest.ServiceHandler,
	wsHandler *wshandler.WSHandler,
	rdb *redis.Client,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-User-Id",
			"X-User-Name",
			"X-User-Role",
		},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Identity must run before the limiter so authenticated clients are
	// limited per user rather than per IP.
	limit := middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global")

	r.Route("/api/cases", func(r chi.Router) {
		r.Use(middleware.Identity, limit)

		r.Post("/add", caseHandler.AddCase)
		r.Get("/", caseHandler.GetCases)
		r.Get("/{id}", caseHandler.GetCase)
		r.Put("/{id}", caseHandler.UpdateCase)
		r.Delete("/{id}", caseHandler.DeleteCase)

		// Per-service remarks inside a case
		r.Get("/{caseId}/services/{serviceId}/remarks", serviceHandler.ListRemarks)
		r.Post("/{caseId}/services/{serviceId}/remarks", serviceHandler.CreateRemark)
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Identity, limit)

		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.Identity, limit)

		r.Get("/", notificationHandler.ListNotifications)
		r.Put("/{id}/read", notificationHandler.MarkAsRead)
		r.Delete("/{id}", notificationHandler.DeleteNotification)
		r.Delete("/", notificationHandler.DeleteAll)

		// WebSocket endpoint for live pushes
		r.Get("/ws", wsHandler.HandleNotifications)
	})

	r.Route("/api/services", func(r chi.Router) {
		r.Use(middleware.Identity, limit)

		r.Get("/", serviceHandler.ListServices)
		r.Post("/", serviceHandler.CreateService)
	})

	return r
}
