package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/milanbojovic/OrderOook/pkg/config"
	"github.com/milanbojovic/OrderOook/pkg/logger"
	"github.com/rs/cors"

	"github.com/milanbojovic/OrderOook/internal/app/engine"
	userv1 "github.com/milanbojovic/OrderOook/internal/domain/user/v1"
)

// Server is the REST and WebSocket boundary in front of the engine. All
// input validation happens here; the engine only ever sees well-formed
// orders and queries.
type Server struct {
	engine *engine.Engine
	users  userv1.Service
	tokens *TokenManager
	hub    *Hub
	logger *logger.Logger

	httpServer *http.Server
}

// NewServer wires the routes and middleware.
func NewServer(
	eng *engine.Engine,
	users userv1.Service,
	tokens *TokenManager,
	hub *Hub,
	cfg config.ServerConfig,
	log *logger.Logger,
) *Server {
	s := &Server{
		engine: eng,
		users:  users,
		tokens: tokens,
		hub:    hub,
		logger: log,
	}

	router := mux.NewRouter()
	router.Use(s.requestID, s.logRequest)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/user/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/order/limit", s.authenticated(s.handleCreateLimitOrder)).Methods(http.MethodPost)
	api.HandleFunc("/{currencyPair}/orderbook", s.handleGetOrderBook).Methods(http.MethodGet)
	api.HandleFunc("/{currencyPair}/trades", s.handleGetTrades).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.handleWebSocket)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	})

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: c.Handler(router),
	}

	return s
}

// Handler exposes the configured handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the hub and serves HTTP until the listener fails or the
// server is shut down.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)

	s.logger.Info("api server starting", logger.Field{Key: "addr", Value: s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
