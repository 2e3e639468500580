package app

import (
	"github.com/avc-dev/shlink-dashboard/internal/handler"
	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type routerDeps struct {
	handler *handler.Handler
	auth    *middleware.AuthMiddleware
	authRL  *middleware.IPRateLimiter
	general *middleware.IPRateLimiter
}

// newRouter создает и настраивает роутер приложения
func newRouter(d routerDeps, logger *zap.Logger) *chi.Mux {
	h := d.handler
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.GzipMiddleware(logger))
	r.Use(middleware.RateLimit(d.general, logger))

	r.Get("/ping", h.Ping)
	r.Get("/teapot", h.Teapot)

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(d.authRL, logger))
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		// Второй фактор доступен только с кукой ожидания
		r.Route("/2fa", func(r chi.Router) {
			r.Use(middleware.RateLimit(d.authRL, logger))
			r.Use(d.auth.RequirePending2FA)
			r.Post("/totp", h.VerifyTOTP)
			r.Post("/webauthn/begin", h.BeginWebAuthnLogin)
			r.Post("/webauthn/finish", h.FinishWebAuthnLogin)
		})

		r.Get("/oauth/{provider}", h.OAuthLogin)
		r.Get("/oauth/{provider}/callback", h.OAuthCallback)
	})

	r.Group(func(r chi.Router) {
		r.Use(d.auth.RequireAuth)

		r.Route("/api", func(r chi.Router) {
			r.Get("/me", h.Me)
			r.Post("/me/totp/setup", h.SetupTOTP)
			r.Post("/me/totp/enable", h.EnableTOTP)
			r.Post("/me/totp/disable", h.DisableTOTP)
			r.Get("/me/webauthn", h.ListWebAuthn)
			r.Post("/me/webauthn/begin", h.BeginWebAuthnRegistration)
			r.Post("/me/webauthn/finish", h.FinishWebAuthnRegistration)
			r.Delete("/me/webauthn/{id}", h.DeleteWebAuthn)

			r.Get("/short-urls", h.ListShortURLs)
			r.Post("/short-urls", h.CreateShortURL)
			r.Patch("/short-urls/{code}", h.UpdateShortURL)
			r.Delete("/short-urls/{code}", h.DeleteShortURL)
			r.Get("/short-urls/{code}/redirect-rules", h.RedirectRules)

			r.Post("/sync", h.Sync)
		})

		r.Get("/statistics/overall", h.OverallStatistics)
		r.Get("/statistics/individual/{code}", h.IndividualStatistics)

		r.Route("/admin", func(r chi.Router) {
			r.Use(d.auth.RequireAdmin)

			r.Get("/users", h.ListUsers)
			r.Patch("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)

			r.Get("/settings", h.ListSettings)
			r.Patch("/settings", h.UpdateSettings)

			r.Get("/jobs", h.ListJobs)
			r.Post("/jobs/retry", h.RetryAllJobs)
			r.Post("/jobs/{id}/retry", h.RetryJob)
			r.Delete("/jobs/{id}", h.DiscardJob)
		})
	})

	return r
}
