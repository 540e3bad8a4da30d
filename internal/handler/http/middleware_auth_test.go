package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-humans/internal/app"
	"github.com/MKhiriev/go-humans/internal/service"
	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", wantToken: "abc"},
		{name: "only spaces", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme without token", header: "Bearer", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		parse      bool
		wantDetail string
	}{
		{name: "missing header", wantDetail: app.MsgNotAuthenticated},
		{name: "wrong scheme", header: "Basic abc", wantDetail: app.MsgCouldNotValidateCredentials},
		{name: "empty token", header: "Bearer", wantDetail: app.MsgCouldNotValidateCredentials},
		{
			name:       "expired token",
			header:     "Bearer expired",
			parse:      true,
			parseErr:   service.ErrTokenIsExpired,
			wantDetail: app.MsgTokenIsExpired,
		},
		{
			name:       "forged token",
			header:     "Bearer forged",
			parse:      true,
			parseErr:   errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("signature is invalid")),
			wantDetail: app.MsgCouldNotValidateCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, false)
			if tt.parse {
				m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.parseErr)
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/humans", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

func TestAuthMiddleware_StoresUsername(t *testing.T) {
	h, _ := newTestHandler(t, false)

	var username string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/humans", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "admin", username)
}
