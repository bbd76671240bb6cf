package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recruitgateway/src/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockApplicantStore struct {
	created   *model.Applicant
	applicant *model.Applicant
	err       error
}

func (m *mockApplicantStore) Create(_ context.Context, applicant *model.Applicant) error {
	m.created = applicant
	return m.err
}

func (m *mockApplicantStore) FindByID(context.Context, uint) (*model.Applicant, error) {
	return m.applicant, m.err
}

func newApplicantRouter(store applicantStore) chi.Router {
	n := NewNormalizer(nil)
	r := chi.NewRouter()
	r.Post("/applicants", CreateApplicantHandler(n, store))
	r.Get("/applicants/{id}", GetApplicantHandler(n, store))
	return r
}

func TestCreateApplicantHandler(t *testing.T) {
	store := &mockApplicantStore{}
	router := newApplicantRouter(store)

	body := `{"name":"Kim","email":"kim@example.com","age":29,"position":"backend"}`
	req := httptest.NewRequest(http.MethodPost, "/applicants", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", rr.Code, rr.Body.String())
	}
	if store.created == nil || store.created.Name != "Kim" {
		t.Fatalf("applicant was not passed to the store: %+v", store.created)
	}
}

func TestCreateApplicantHandlerValidation(t *testing.T) {
	router := newApplicantRouter(&mockApplicantStore{})

	req := httptest.NewRequest(http.MethodPost, "/applicants", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}

	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Request Validation Error", env.Error)
	assert.Equal(t, "name: field required email: field required age: field required", env.Message)
}

func TestCreateApplicantHandlerMalformedBody(t *testing.T) {
	router := newApplicantRouter(&mockApplicantStore{})

	req := httptest.NewRequest(http.MethodPost, "/applicants", strings.NewReader(`{"name":`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}

	env := decodeEnvelope(t, rr)
	assert.Contains(t, env.Message, "invalid JSON payload")
}

func TestGetApplicantHandlerInvalidID(t *testing.T) {
	router := newApplicantRouter(&mockApplicantStore{})

	req := httptest.NewRequest(http.MethodGet, "/applicants/abc", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	env := decodeEnvelope(t, rr)
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, 400, env.Code)
}

func TestGetApplicantHandlerNotFound(t *testing.T) {
	router := newApplicantRouter(&mockApplicantStore{err: gorm.ErrRecordNotFound})

	req := httptest.NewRequest(http.MethodGet, "/applicants/7", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}

	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Not Found", env.Error)
	assert.Equal(t, "applicant 7 not found", env.Message)
}

func TestGetApplicantHandlerStoreError(t *testing.T) {
	router := newApplicantRouter(&mockApplicantStore{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/applicants/7", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}

	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Internal Server Error", env.Error)
}
