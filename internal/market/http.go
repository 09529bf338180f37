// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// # HTTP Delivery
//
// Market configuration is public (clients need it before login to render
// the market picker); every per-ticker surface requires authentication,
// and analyst coverage requires at least the pro tier.

package market

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockseer/api/internal/platform/middleware"
	requestutil "github.com/stockseer/api/internal/platform/request"
	"github.com/stockseer/api/internal/platform/respond"
	"github.com/stockseer/api/internal/platform/sec"
	"github.com/stockseer/api/internal/platform/validate"
)

// FieldTicker is the validation identifier for ticker path parameters.
const FieldTicker = "ticker"

// Handler implements the HTTP layer for market data.
type Handler struct {
	marketService *Service
}

// NewHandler constructs a market [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{marketService: service}
}

// MarketRoutes returns the public market-configuration routes.
func (handler *Handler) MarketRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listMarkets)
	return router
}

// StockRoutes returns the authenticated per-ticker routes.
//
// # Endpoints
//   - GET /{ticker}            : Company profile.
//   - GET /{ticker}/quote      : Latest price snapshot.
//   - GET /{ticker}/statistics : Fundamentals panel.
//   - GET /{ticker}/news       : Recent headlines.
//   - GET /{ticker}/analysts   : Sell-side coverage (pro tier).
func (handler *Handler) StockRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{ticker}", handler.getProfile)
	router.Get("/{ticker}/quote", handler.getQuote)
	router.Get("/{ticker}/statistics", handler.getStatistics)
	router.Get("/{ticker}/news", handler.getNews)
	router.With(middleware.RequireTier(sec.TierPro)).Get("/{ticker}/analysts", handler.getAnalysts)

	return router
}

// tickerParam extracts and validates the {ticker} path parameter.
func tickerParam(request *http.Request) (string, error) {
	ticker := requestutil.Param(request, FieldTicker)

	validator := &validate.Validator{}
	validator.Required(FieldTicker, ticker).Ticker(FieldTicker, ticker)
	if err := validator.Err(); err != nil {
		return "", err
	}

	return ticker, nil
}

/*
GET /api/v1/markets.

Description: Returns the static market configurations (exchanges,
currencies, headline tickers, planning parameters).

Response:
  - 200: []Config: Supported markets
*/
func (handler *Handler) listMarkets(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.marketService.ListMarkets(request.Context()))
}

/*
GET /api/v1/stocks/{ticker}.

Description: Returns the company profile for a ticker.

Response:
  - 200: Profile: Company profile
  - 400: ErrValidation: Malformed ticker
  - 404: ErrNotFound: Unknown ticker
  - 502: ErrUpstream: Provider outage
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	ticker, err := tickerParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.marketService.GetProfile(request.Context(), ticker)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
GET /api/v1/stocks/{ticker}/quote.

Description: Returns the latest price snapshot for a ticker.

Response:
  - 200: Quote: Price snapshot
  - 404: ErrNotFound: Unknown ticker
  - 502: ErrUpstream: Provider outage
*/
func (handler *Handler) getQuote(writer http.ResponseWriter, request *http.Request) {
	ticker, err := tickerParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	quote, err := handler.marketService.GetQuote(request.Context(), ticker)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, quote)
}

/*
GET /api/v1/stocks/{ticker}/statistics.

Description: Returns the fundamentals panel for a ticker.

Response:
  - 200: KeyStatistics: Fundamentals with display strings
  - 404: ErrNotFound: Unknown ticker
  - 502: ErrUpstream: Provider outage
*/
func (handler *Handler) getStatistics(writer http.ResponseWriter, request *http.Request) {
	ticker, err := tickerParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	statistics, err := handler.marketService.GetStatistics(request.Context(), ticker)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statistics)
}

/*
GET /api/v1/stocks/{ticker}/news.

Description: Returns recent headlines for a ticker.

Response:
  - 200: []NewsArticle: Headlines, newest first
  - 404: ErrNotFound: Unknown ticker
  - 502: ErrUpstream: Provider outage
*/
func (handler *Handler) getNews(writer http.ResponseWriter, request *http.Request) {
	ticker, err := tickerParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, err := handler.marketService.GetNews(request.Context(), ticker)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articles)
}

/*
GET /api/v1/stocks/{ticker}/analysts.

Description: Returns sell-side coverage for a ticker. Pro tier and above.

Response:
  - 200: AnalystCoverage: Ratings and price targets
  - 403: ErrForbidden: Subscription tier below pro
  - 404: ErrNotFound: Unknown ticker
  - 502: ErrUpstream: Provider outage
*/
func (handler *Handler) getAnalysts(writer http.ResponseWriter, request *http.Request) {
	ticker, err := tickerParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	coverage, err := handler.marketService.GetAnalystCoverage(request.Context(), ticker)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, coverage)
}
