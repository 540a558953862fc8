package api

import (
	"net/http"

	"github.com/milanbojovic/OrderOook/pkg/errors"
)

// Error is the error body returned by the REST boundary.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	codeInternalError       = -1
	codeInvalidCurrencyPair = -21
	codeInvalidPagination   = -22
	codeInvalidLimitOrder   = -23
	codeInvalidLogin        = -24
)

const (
	currencyPairValidationError = "Invalid currency pair. Please provide a 6 character currency pair - valid example: BTCZAR | btczar."
	paginationValidationError   = "Invalid skip or limit value. Please provide a positive integer value for skip and limit (max limit is 100)."
	limitOrderValidationError   = "Invalid limitOrder. Please provide a 6 character currency pair - valid example: BTCZAR | btczar.\n" +
		"Quantity and price must be greater than 0.\n" +
		"Side must be either 'BUY' or 'SELL'."
	loginValidationError = "Invalid login request. Invalid username or password."
	internalServerError  = "Internal server error."
)

// errorFor maps a domain error code onto the status and wire body the
// boundary returns for it. Unknown codes fall back to an internal error so
// domain details never leak.
func errorFor(code errors.ErrorCode) (int, Error) {
	switch code {
	case errors.ErrInvalidCurrencyPair:
		return http.StatusBadRequest, Error{codeInvalidCurrencyPair, currencyPairValidationError}
	case errors.ErrInvalidPagination:
		return http.StatusBadRequest, Error{codeInvalidPagination, paginationValidationError}
	case errors.ErrInvalidOrder:
		return http.StatusBadRequest, Error{codeInvalidLimitOrder, limitOrderValidationError}
	case errors.ErrInvalidCredentials, errors.GeneralUnauthorizedError:
		return http.StatusUnauthorized, Error{codeInvalidLogin, loginValidationError}
	default:
		return http.StatusInternalServerError, Error{codeInternalError, internalServerError}
	}
}

func respondCode(w http.ResponseWriter, code errors.ErrorCode) {
	status, body := errorFor(code)
	respondError(w, status, body)
}
