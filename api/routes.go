package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public and admin routes under the /api prefix.
// Blob-read endpoints and every list/detail read are public; all writes
// except contact submission sit behind the auth middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"alive"}`))
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"message":"Portfolio API is running!"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public routes
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/projects/{projectID}/image", handlers.projectHandler.getProjectImage())

		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())

		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Get("/certifications/{certificationID}/image", handlers.certificationHandler.getCertificationImage())

		r.Get("/resume/info", handlers.resumeHandler.getResumeInfo())
		r.Get("/resume/download", handlers.resumeHandler.downloadResume())

		r.Post("/contact", handlers.messageHandler.createMessage())

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Delete("/skills/{name}", handlers.skillHandler.deleteSkill())

			r.Post("/experiences", handlers.experienceHandler.createExperience())
			r.Put("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
			r.Delete("/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

			r.Post("/certifications", handlers.certificationHandler.createCertification())
			r.Delete("/certifications/{certificationID}", handlers.certificationHandler.deleteCertification())

			r.Post("/resume/upload", handlers.resumeHandler.uploadResume())
			r.Delete("/resume", handlers.resumeHandler.deleteResume())

			r.Get("/contact", handlers.messageHandler.getAllMessages())
			r.Delete("/contact/{messageID}", handlers.messageHandler.deleteMessage())
		})
	})
}
