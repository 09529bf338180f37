// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockseer/api/internal/platform/apperr"
	"github.com/stockseer/api/internal/platform/ctxutil"
	"github.com/stockseer/api/internal/platform/sec"
	"github.com/stockseer/api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
User extracts the authenticated session principal from the request context.

Returns nil if the request is not authenticated.
*/
func User(request *http.Request) *sec.Principal {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredUser ensures the request is authenticated and returns the principal.

Returns:
  - *sec.Principal: The resolved session user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredUser(request *http.Request) (*sec.Principal, error) {

	// Get the resolved principal
	user := ctxutil.GetAuthUser(request.Context())

	// If the user is not authenticated, return an error
	if user == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return user, nil
}

/*
RequiredUserID returns the numeric account ID of the currently logged-in user.

Returns:
  - int64: Account ID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (int64, error) {

	// Get the resolved principal
	user, err := RequiredUser(request)

	// If the user is not authenticated, return an error
	if err != nil {
		return 0, err
	}

	return user.UserID, nil
}

/*
SessionToken returns the raw bearer token the current request presented.

Returns an empty string for anonymous requests.
*/
func SessionToken(request *http.Request) string {
	return ctxutil.GetSessionToken(request.Context())
}
