package routers

import (
	"fmt"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/delivery/http/controllers"
	"interview-scheduler/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(chiMiddleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)
	writeLimiter := middlewares.WriteRateLimiter()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/days", func(r chi.Router) {
				attachDayRoutes(r, appointmentController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, writeLimiter, appointmentController)
			})

			r.Route("/interviewers", func(r chi.Router) {
				attachInterviewerRoutes(r, writeLimiter, appointmentController)
			})

			r.Route("/debug", func(r chi.Router) {
				attachDebugRoutes(r, writeLimiter, appointmentController)
			})
		})
	})
}
