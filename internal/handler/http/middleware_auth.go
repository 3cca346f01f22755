package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/utils"
)

// auth is an HTTP middleware that enforces credential-based authentication.
//
// It inspects the incoming "Authorization" header, which must carry a literal
// `email:password` pair, verifies the pair via
// [service.AuthService.Authenticate], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests in the following cases:
//   - HTTP 401 with "Authorization required" if the header is absent.
//   - HTTP 400 with "invalid Authorization header" if the header has no
//     colon separator.
//   - HTTP 401 with "Invalid credentials" if the pair does not match a
//     stored account.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		email, password, err := credentialsFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		authenticatedUser, err := h.services.AuthService.Authenticate(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				log.Debug().Str("email", email).Msg("credentials rejected")
				writeError(w, "Invalid credentials", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during credential verification")
				writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-verifying credentials.
		ctx = context.WithValue(ctx, utils.UserCtxKey, authenticatedUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialsFromAuthHeader splits a raw "Authorization" header value into an
// email/password pair.
//
// The header is expected to follow the format:
//
//	Authorization: <email>:<password>
//
// Only the first colon separates the pair, so passwords containing colons
// survive the split. Returns [ErrInvalidAuthorizationHeader] if no colon is
// present.
func credentialsFromAuthHeader(authHeader string) (string, string, error) {
	email, password, found := strings.Cut(authHeader, ":")
	if !found {
		return "", "", ErrInvalidAuthorizationHeader
	}

	return email, password, nil
}
