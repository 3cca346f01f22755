package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, want: http.StatusBadRequest},
		{name: "missing user", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "missing advert", err: store.ErrAdvertNotFound, want: http.StatusNotFound},
		{name: "wrapped missing advert", err: fmt.Errorf("advert update ended with error: %w", store.ErrAdvertNotFound), want: http.StatusNotFound},
		{name: "store fault", err: store.ErrExecutingStatement, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("something odd"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, want: "Email already exists"},
		{name: "missing user", err: store.ErrUserNotFound, want: "User not found"},
		{name: "missing advert", err: store.ErrAdvertNotFound, want: "Advert not found"},
		{name: "wrapped missing user", err: fmt.Errorf("user update ended with error: %w", store.ErrUserNotFound), want: "User not found"},
		// raw store faults must never leak their text to clients
		{name: "store fault", err: store.ErrScanningRow, want: http.StatusText(http.StatusInternalServerError)},
		{name: "unknown error", err: errors.New("pq: relation does not exist"), want: http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err))
		})
	}
}
