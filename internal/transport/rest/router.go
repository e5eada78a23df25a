package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/transport/middleware"
)

// sessionManager combines what the router needs from the session layer:
// issuing for the auth handler, validating for the data middleware.
type sessionManager interface {
	sessionIssuer
	Validate(token string) (string, error)
}

// NewRouter assembles the full HTTP handler: routes, session gating on the
// data endpoints, CORS, and the common middleware chain.
func NewRouter(
	accounts accountService,
	sessions sessionManager,
	store docStore,
	cfg config.Config,
	logger *slog.Logger,
	version string,
) http.Handler {
	health := NewHealthHandler(version)
	authH := NewAuthHandler(accounts, sessions, logger)
	dataH := NewDataHandler(store, cfg.Server.MaxBodyBytes, logger)

	r := mux.NewRouter()
	r.HandleFunc("/api/health", health.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/config", authH.Config).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/login", authH.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/signup", authH.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", authH.Logout).Methods(http.MethodPost)

	protected := middleware.Session(sessions)
	r.Handle("/api/data", protected(http.HandlerFunc(dataH.Get))).Methods(http.MethodGet)
	r.Handle("/api/data", protected(http.HandlerFunc(dataH.Put))).Methods(http.MethodPut)

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowedMethods:   strings.Split(cfg.CORS.AllowedMethods, ","),
		AllowedHeaders:   strings.Split(cfg.CORS.AllowedHeaders, ","),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
	)(c.Handler(r))
}
