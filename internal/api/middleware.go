package api

import (
	"net/http"
	"strings"

	"github.com/milanbojovic/OrderOook/pkg/errors"
	"github.com/milanbojovic/OrderOook/pkg/logger"
	"github.com/milanbojovic/OrderOook/pkg/util"
)

// requestID attaches a request id to the request context, generating one
// when the client did not send an X-Request-ID header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", util.GetRequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequest logs every request with its id.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.InfoContext(r.Context(), "request",
			logger.Field{Key: "method", Value: r.Method},
			logger.Field{Key: "path", Value: r.URL.Path},
		)
		next.ServeHTTP(w, r)
	})
}

// authenticated rejects requests without a valid bearer token.
func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			status, body := errorFor(errors.GeneralUnauthorizedError)
			body.Message = "Missing bearer token."
			respondError(w, status, body)
			return
		}

		username, err := s.tokens.ValidateToken(token)
		if err != nil {
			status, body := errorFor(errors.GeneralUnauthorizedError)
			body.Message = "Invalid or expired token."
			respondError(w, status, body)
			return
		}

		s.logger.DebugContext(r.Context(), "authenticated request",
			logger.Field{Key: "username", Value: username},
		)
		next(w, r)
	}
}
