package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/milanbojovic/OrderOook/pkg/errors"
	"github.com/milanbojovic/OrderOook/pkg/logger"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

var currencyPairPattern = regexp.MustCompile(`^[A-Za-z]{6}$`)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type limitOrderRequest struct {
	Side         orderv1.Side `json:"side"`
	Quantity     float64      `json:"quantity"`
	Price        int          `json:"price"`
	CurrencyPair string       `json:"currencyPair"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondCode(w, errors.ErrInvalidCredentials)
		return
	}

	user, err := s.users.Login(req.Username, req.Password)
	if err != nil {
		respondCode(w, errors.CodeOf(err))
		return
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.Field{Key: "action", Value: "generate_token"})
		respondCode(w, errors.GeneralInternalServerError)
		return
	}

	respondJSON(w, map[string]string{"Bearer": token})
}

func (s *Server) handleGetOrderBook(w http.ResponseWriter, r *http.Request) {
	currencyPair := mux.Vars(r)["currencyPair"]
	if !currencyPairPattern.MatchString(currencyPair) {
		respondCode(w, errors.ErrInvalidCurrencyPair)
		return
	}

	respondJSON(w, s.engine.OrderBook(strings.ToUpper(currencyPair)))
}

func (s *Server) handleCreateLimitOrder(w http.ResponseWriter, r *http.Request) {
	var req limitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondCode(w, errors.ErrInvalidOrder)
		return
	}

	if !currencyPairPattern.MatchString(req.CurrencyPair) || req.Quantity <= 0 || req.Price <= 0 || !req.Side.IsValid() {
		respondCode(w, errors.ErrInvalidOrder)
		return
	}

	result, trades := s.engine.SubmitLimitOrder(
		r.Context(),
		req.Side,
		req.Quantity,
		req.Price,
		strings.ToUpper(req.CurrencyPair),
	)

	tradeIDs := make([]int, 0, len(trades))
	for _, t := range trades {
		tradeIDs = append(tradeIDs, t.ID)
	}

	respondJSON(w, map[string]any{
		"message":  "Limit order created successfully.",
		"outcome":  result.Outcome,
		"tradeIds": tradeIDs,
	})
}

func (s *Server) handleGetTrades(w http.ResponseWriter, r *http.Request) {
	currencyPair := mux.Vars(r)["currencyPair"]
	if !currencyPairPattern.MatchString(currencyPair) {
		respondCode(w, errors.ErrInvalidCurrencyPair)
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		respondCode(w, errors.ErrInvalidPagination)
		return
	}
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		respondCode(w, errors.ErrInvalidPagination)
		return
	}
	if skip < 0 || limit < 0 || limit > 100 {
		respondCode(w, errors.ErrInvalidPagination)
		return
	}

	respondJSON(w, s.engine.TradeHistory(strings.ToUpper(currencyPair), skip, limit))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, apiErr Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
