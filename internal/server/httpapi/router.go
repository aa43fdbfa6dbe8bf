// Package httpapi exposes the dev server's REST surface. It mirrors the
// slice of the platform API the console uses: authentication plus the admin
// management sections, with role enforcement matching the console's route
// policies.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/logging"
	"github.com/jobboardhq/backoffice/internal/server/store"
)

// Handler owns the HTTP surface.
type Handler struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
}

func NewHandler(st *store.Store, secret []byte, tokenTTL time.Duration, log logging.Logger) *Handler {
	return &Handler{store: st, secret: secret, tokenTTL: tokenTTL, log: log}
}

// Router builds the route tree under /api/v1/admin.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Post("/auth/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Route("/users", func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Get("/", h.listUsers)
				r.Get("/recruiters", h.listRecruiters)
				r.Get("/job-seekers", h.listJobSeekers)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Patch("/{id}/status", h.toggleUserStatus)
				r.Delete("/{id}", h.deleteUser)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", h.listOffers)
				r.Get("/{id}", h.getOffer)
				r.Post("/", h.createOffer)
				r.Put("/{id}", h.updateOffer)
				r.Delete("/{id}", h.deleteOffer)
			})

			r.Route("/skill-types", func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Get("/", h.listSkillTypes)
				r.Post("/", h.createSkillType)
				r.Put("/{id}", h.updateSkillType)
				r.Delete("/{id}", h.deleteSkillType)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Get("/", h.listRoles)
				r.Post("/", h.createRole)
				r.Put("/{id}", h.updateRole)
				r.Delete("/{id}", h.deleteRole)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin, models.RoleRecruiter))
				r.Get("/", h.listNotifications)
				r.Patch("/{id}/read", h.markNotificationRead)
				r.Delete("/{id}", h.deleteNotification)
			})
		})
	})

	return r
}
