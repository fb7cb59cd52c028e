package routers

import (
	"interview-scheduler/internal/app/delivery/http/controllers"
	"interview-scheduler/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDayRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAllDays)
}

func attachAppointmentRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAllAppointments)

	router.With(writeLimiter.Limit).Put("/{appointmentID}", appointmentController.BookInterview)
	router.With(writeLimiter.Limit).Delete("/{appointmentID}", appointmentController.CancelInterview)
}

func attachInterviewerRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAllInterviewers)

	router.Get("/{interviewerID}/avatar", appointmentController.RedirectAvatar)
	router.With(writeLimiter.Limit).Put("/{interviewerID}/avatar", appointmentController.UploadAvatar)
}

func attachDebugRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, appointmentController *controllers.AppointmentController) {
	router.With(writeLimiter.Limit).Post("/reset", appointmentController.ResetSchedule)
}
