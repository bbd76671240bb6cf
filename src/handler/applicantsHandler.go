package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"recruitgateway/src/model"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type applicantStore interface {
	Create(ctx context.Context, applicant *model.Applicant) error
	FindByID(ctx context.Context, id uint) (*model.Applicant, error)
}

// CreateApplicantHandler returns a handler that registers a new applicant.
// Payload failures surface as normalized 422 responses.
func CreateApplicantHandler(n *Normalizer, store applicantStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.CreateApplicantPayload
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil {
			logger.WithError(err).Warn("invalid applicant payload")
			n.WriteValidationError(w, r, []model.FieldError{
				{Loc: []string{"body"}, Msg: "invalid JSON payload"},
			})
			return
		}

		if err := validate.Struct(payload); err != nil {
			n.WriteValidationError(w, r, bodyFieldErrors(err))
			return
		}

		applicant := &model.Applicant{
			Name:     payload.Name,
			Email:    payload.Email,
			Age:      payload.Age,
			Position: payload.Position,
		}
		if err := store.Create(r.Context(), applicant); err != nil {
			logger.WithError(err).Error("failed to create applicant")
			n.WriteHTTPError(w, r, model.NewHTTPErrorDetail(http.StatusInternalServerError, model.Detail{
				Error:   "Internal Server Error",
				Message: "failed to create applicant",
				Alert:   true,
			}))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(applicant); err != nil {
			logger.WithError(err).Error("failed to encode applicant response")
		}
	}
}

// GetApplicantHandler returns a handler that fetches one applicant by id.
func GetApplicantHandler(n *Normalizer, store applicantStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			n.WriteHTTPError(w, r, model.NewHTTPError(http.StatusBadRequest, "invalid applicant id"))
			return
		}

		applicant, err := store.FindByID(r.Context(), uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			n.WriteHTTPError(w, r, model.NewHTTPErrorDetail(http.StatusNotFound, model.Detail{
				Error:   "Not Found",
				Message: fmt.Sprintf("applicant %d not found", id),
			}))
			return
		}
		if err != nil {
			logger.WithError(err).Error("failed to load applicant")
			n.WriteHTTPError(w, r, model.NewHTTPErrorDetail(http.StatusInternalServerError, model.Detail{
				Error:   "Internal Server Error",
				Message: "failed to load applicant",
				Alert:   true,
			}))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(applicant); err != nil {
			logger.WithError(err).Error("failed to encode applicant response")
		}
	}
}
