// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/constants"
	"github.com/kasaneapp/kasane/internal/platform/middleware"
	requestutil "github.com/kasaneapp/kasane/internal/platform/request"
	"github.com/kasaneapp/kasane/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the account lifecycle HTTP endpoints.
//
// The refresh token travels only in an HttpOnly cookie scoped to the auth
// path; it never appears in a response body, so scripts cannot read it.
type Handler struct {
	service       *Service
	secureCookies bool
}

// NewHandler constructs a new auth [Handler]. secureCookies should be
// false only in local development over plain HTTP.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)
		authed.Get("/me", handler.me)
	})

	return router
}

// # Request & Response Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// tokenResponse is the body returned by login and refresh. The refresh
// token is deliberately absent: it lives in the cookie.
type tokenResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// # Endpoints

/*
POST /api/v1/auth/register.

Response:
  - 201: User: The created reader account
  - 409: The username or email is already taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var payload registerRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
POST /api/v1/auth/login.

Response:
  - 200: tokenResponse: Access token in the body, refresh token as an
    HttpOnly cookie
  - 401: Unknown account or wrong password (indistinguishable)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Login:    payload.Login,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken)
	respond.OK(writer, tokenResponse{
		User:        session.User,
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   session.ExpiresIn,
	})
}

/*
POST /api/v1/auth/refresh.

Description: Rotates the refresh session: the presented cookie value is
consumed and replaced. A replayed cookie fails with 401.

Response:
  - 200: tokenResponse: Fresh access token and rotated cookie
  - 401: Session absent, expired, already rotated, or account gone
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.service.Refresh(request.Context(), handler.refreshCookie(request))
	if err != nil {
		handler.clearRefreshCookie(writer)
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken)
	respond.OK(writer, tokenResponse{
		User:        session.User,
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   session.ExpiresIn,
	})
}

/*
POST /api/v1/auth/logout.

Response:
  - 204: The session is revoked and the cookie cleared; idempotent
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Logout(request.Context(), handler.refreshCookie(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearRefreshCookie(writer)
	respond.NoContent(writer)
}

/*
GET /api/v1/auth/me.

Response:
  - 200: User: The authenticated caller's account
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// # Cookie Plumbing

// refreshCookie reads the refresh token cookie; absent means "".
func (handler *Handler) refreshCookie(request *http.Request) string {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setRefreshCookie installs the rotated refresh token, scoped to the auth
// endpoints so it is never sent with regular API traffic.
func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    token,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  time.Now().Add(constants.RefreshSessionTTL),
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the cookie immediately.
func (handler *Handler) clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
