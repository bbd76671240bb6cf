package auth

import (
	"context"
	"net/http"
	"strings"

	"recruitgateway/src/handler"
	"recruitgateway/src/model"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RequireAPIKey guards mutating routes with a bcrypt-hashed API key taken
// from the Authorization header ("Bearer <key>" or the bare key). Failures
// go through the normalizer so clients always see the envelope shape.
func RequireAPIKey(keyHash string, n *handler.Normalizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if key == "" {
				n.WriteHTTPError(w, r, model.NewHTTPErrorDetail(http.StatusUnauthorized, model.Detail{
					Error:   "Authorization header missing",
					Message: "an API key is required for this endpoint",
				}))
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.WithField("path", r.URL.Path).Warn("rejected invalid API key")
				n.WriteHTTPError(w, r, model.NewHTTPErrorDetail(http.StatusUnauthorized, model.Detail{
					Error:   "Authorization failed",
					Message: "the supplied API key is not valid",
				}))
				return
			}

			ctx := context.WithValue(r.Context(), ClientKey, &Client{Name: "api-key"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
