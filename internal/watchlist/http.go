// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// # HTTP Delivery
//
// Every endpoint operates on the authenticated user's own watchlist; the
// user ID comes from the session principal, never from the URL.

package watchlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockseer/api/internal/platform/middleware"
	requestutil "github.com/stockseer/api/internal/platform/request"
	"github.com/stockseer/api/internal/platform/respond"
	"github.com/stockseer/api/internal/platform/validate"
	"github.com/stockseer/api/pkg/pagination"
)

// Handler implements the HTTP layer for watchlist management.
type Handler struct {
	watchlistService *Service
}

// NewHandler constructs a watchlist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{watchlistService: service}
}

// Routes returns a [chi.Router] configured with the watchlist endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.add)
	router.Put("/{ticker}/note", handler.replaceNote)
	router.Delete("/{ticker}", handler.remove)

	return router
}

// # Request Payloads

type addRequest struct {
	Ticker string `json:"ticker"`
	Note   string `json:"note"`
}

type noteRequest struct {
	Note string `json:"note"`
}

/*
GET /api/v1/watchlist.

Description: Returns one page of the authenticated user's watchlist,
oldest first.

Response:
  - 200: []Item + pagination meta
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	items, meta, err := handler.watchlistService.List(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, meta)
}

/*
POST /api/v1/watchlist.

Description: Tracks a new ticker with an optional initial note.

Request:
  - Body: addRequest (Ticker, Note)

Response:
  - 201: Item: The tracked ticker
  - 400: ErrInvalidJSON: Malformed ticker or oversized note
  - 409: ErrConflict: Ticker already tracked
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTicker, input.Ticker).
		Ticker(FieldTicker, input.Ticker).
		MaxLen(FieldNote, input.Note, MaxNoteLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.watchlistService.Add(request.Context(), userID, input.Ticker, input.Note)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

/*
PUT /api/v1/watchlist/{ticker}/note.

Description: Replaces the research note on a tracked ticker.

Request:
  - Body: noteRequest (Note)

Response:
  - 200: Item: The updated item
  - 404: ErrNotFound: Ticker not tracked
*/
func (handler *Handler) replaceNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ticker := requestutil.Param(request, FieldTicker)

	var input noteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTicker, ticker).
		Ticker(FieldTicker, ticker).
		MaxLen(FieldNote, input.Note, MaxNoteLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.watchlistService.ReplaceNote(request.Context(), userID, ticker, input.Note)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
DELETE /api/v1/watchlist/{ticker}.

Description: Stops tracking a ticker. Removing an untracked ticker still
returns 204.

Response:
  - 204: No Content: Ticker no longer tracked
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ticker := requestutil.Param(request, FieldTicker)
	if err := handler.watchlistService.Remove(request.Context(), userID, ticker); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
