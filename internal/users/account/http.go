// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// # HTTP Delivery
//
// All endpoints in this file require an active authentication session
// provided by the Authenticate/RequireAuth middleware chain; the stats
// endpoint additionally requires the premium tier.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockseer/api/internal/platform/middleware"
	requestutil "github.com/stockseer/api/internal/platform/request"
	"github.com/stockseer/api/internal/platform/respond"
	"github.com/stockseer/api/internal/platform/sec"
	"github.com/stockseer/api/internal/platform/validate"
)

// Handler implements the HTTP layer for profile and preference management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Profile & Preferences
	router.Get("/me", handler.getMe)
	router.Get("/me/preferences", handler.getPreferences)
	router.Put("/me/preferences", handler.updatePreferences)

	// Operator surface
	router.With(middleware.RequireTier(sec.TierPremium)).Get("/admin/stats", handler.getStats)

	return router
}

// # Profile Endpoints

/*
GET /api/v1/me.

Description: Retrieves the full private profile of the authenticated user.

Response:
  - 200: Account: Fully hydrated user profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
GET /api/v1/me/preferences.

Description: Returns the authenticated user's current preference document.

Response:
  - 200: Preferences: JSON document (possibly empty object)
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getPreferences(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account.Preferences)
}

/*
PUT /api/v1/me/preferences.

Description: Replaces the authenticated user's preference document with the
request body. The replacement is wholesale; omitted keys are dropped.

Request:
  - Body: arbitrary JSON object

Response:
  - 200: Preferences: The stored document
  - 400: ErrInvalidJSON: Body is not a JSON object
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) updatePreferences(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var preferences map[string]any
	if err := requestutil.DecodeJSON(request, &preferences); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	stored, err := handler.accountService.ReplacePreferences(request.Context(), userID, preferences)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stored)
}

// # Operator Endpoints

/*
GET /api/v1/admin/stats.

Description: Returns platform-level account statistics. Premium tier only.

Response:
  - 200: Stats: Aggregated counters
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Subscription tier below premium
*/
func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.accountService.GetStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}
