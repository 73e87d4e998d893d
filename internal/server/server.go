package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mghkill/burguer-saas/internal/config"
	custommiddleware "github.com/mghkill/burguer-saas/internal/middleware"
	"github.com/mghkill/burguer-saas/internal/service"
	"github.com/mghkill/burguer-saas/internal/store"
	"github.com/mghkill/burguer-saas/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config       *config.Config
	logger       *zap.Logger
	orderService service.OrderService
}

// NewServer wires the in-memory stores, services and handlers into a chi
// router. The scheduler is injected so tests can drive the order simulation
// without real delays.
func NewServer(cfg *config.Config, logger *zap.Logger, sched service.Scheduler) *Server {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Landing surface
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{
			"name":    "BURGERAÇAÍ",
			"message": "Hambúrgueres e açaís artesanais",
		})
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize stores; all state lives in memory and resets on restart
	catalogStore := store.NewCatalogStore()
	store.Seed(catalogStore)
	cartStore := store.NewCartStore()

	// Initialize services
	catalogService := service.NewCatalogService(catalogStore, logger)
	cartService := service.NewCartService(cartStore, catalogStore)
	authService := service.NewAuthService(cfg.Admin.Username, cfg.Admin.Password)
	orderService := service.NewOrderService(cartStore, catalogStore, sched, service.OrderTiming{
		Accept:  cfg.Order.AcceptDelay,
		Prepare: cfg.Order.PrepareDelay,
		Ready:   cfg.Order.ReadyDelay,
		Reset:   cfg.Order.ResetDelay,
	}, logger)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)
	authHandler := transport.NewAuthHandler(authService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)

	adminGate := custommiddleware.RequireAdmin(authService, logger)

	// Register routes
	authHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router, adminGate)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:       cfg,
		logger:       logger,
		orderService: orderService,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Cancel any pending order simulation timer
	s.orderService.Stop()

	s.logger.Sync()
	return nil
}
