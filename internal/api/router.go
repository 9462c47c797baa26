package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/accessihire/backend/internal/api/handlers"
	mw "github.com/accessihire/backend/internal/api/middleware"
	"github.com/accessihire/backend/internal/auth"
	"github.com/accessihire/backend/internal/repository"
)

type Dependencies struct {
	Tokens          *auth.TokenManager
	Users           repository.UserRepository
	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	ResumeHandler   *handlers.ResumeHandler
	TaxonomyHandler *handlers.TaxonomyHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(chimid.Compress(5))

	authed := mw.Auth(dep.Tokens, dep.Users)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", dep.HealthHandler.Health)

		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)

			ar.Group(func(pr chi.Router) {
				pr.Use(authed)
				pr.Get("/me", dep.AuthHandler.Me)
				// legacy alias kept for older clients
				pr.Get("/verify", dep.AuthHandler.Me)
			})
		})

		api.Route("/resume", func(rr chi.Router) {
			rr.Post("/upload", dep.ResumeHandler.Upload)

			rr.Group(func(pr chi.Router) {
				pr.Use(authed)
				pr.Post("/", dep.ResumeHandler.Create)
				pr.Get("/", dep.ResumeHandler.List)
				pr.Post("/generate", dep.ResumeHandler.Generate)
				pr.Get("/{id}", dep.ResumeHandler.Get)
				pr.Put("/{id}", dep.ResumeHandler.Update)
				pr.Delete("/{id}", dep.ResumeHandler.Delete)
			})
		})

		api.Route("/skills", func(sr chi.Router) {
			sr.Get("/", dep.TaxonomyHandler.ListSkills)
			sr.Get("/autocomplete", dep.TaxonomyHandler.AutocompleteSkills)
			sr.Get("/{id}", dep.TaxonomyHandler.GetSkill)
		})

		api.Route("/jobs", func(jr chi.Router) {
			jr.Get("/", dep.TaxonomyHandler.ListJobs)
			jr.Get("/autocomplete", dep.TaxonomyHandler.AutocompleteJobs)
			jr.Get("/{id}", dep.TaxonomyHandler.GetJob)
		})
	})

	return r
}
