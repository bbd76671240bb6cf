package router

import (
	"context"

	"recruitgateway/src/auth"
	"recruitgateway/src/handler"
	"recruitgateway/src/model"

	"github.com/go-chi/chi/v5"
)

// ApplicantStore is the persistence surface the v1 routes need.
type ApplicantStore interface {
	Create(ctx context.Context, applicant *model.Applicant) error
	FindByID(ctx context.Context, id uint) (*model.Applicant, error)
}

// NewAPIRouter builds the versioned route table mounted under /api/v1.
// An empty apiKeyHash leaves the mutating routes open (local runs).
func NewAPIRouter(n *handler.Normalizer, store ApplicantStore, apiKeyHash string) chi.Router {
	r := chi.NewRouter()

	r.Get("/applicants/{id}", handler.GetApplicantHandler(n, store))

	r.Group(func(r chi.Router) {
		if apiKeyHash != "" {
			r.Use(auth.RequireAPIKey(apiKeyHash, n))
		}
		r.Post("/applicants", handler.CreateApplicantHandler(n, store))
	})

	return r
}
