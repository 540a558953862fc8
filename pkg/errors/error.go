package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralUnauthorizedError represents a generic unauthorized error.
	GeneralUnauthorizedError ErrorCode = "general_unauthorized_error"

	// ErrInvalidOrder represents an order that fails sanity checks before submission.
	ErrInvalidOrder ErrorCode = "invalid_order"
	// ErrInvalidCurrencyPair represents a malformed currency pair symbol.
	ErrInvalidCurrencyPair ErrorCode = "invalid_currency_pair"
	// ErrInvalidPagination represents out-of-range skip/limit values.
	ErrInvalidPagination ErrorCode = "invalid_pagination"
	// ErrInvalidCredentials represents a failed login attempt.
	ErrInvalidCredentials ErrorCode = "invalid_credentials"

	// TradePublishError represents a failure to publish a trade event.
	TradePublishError ErrorCode = "trade_publish_error"
)
