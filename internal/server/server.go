// Package server boots the HTTP kernel: configuration, backing stores,
// the route table, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/forkful/forkful/app/controllers"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/app/routes"
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/cache"
	"github.com/forkful/forkful/pkg/database"
	"github.com/forkful/forkful/pkg/logger"
	"github.com/forkful/forkful/pkg/metrics"
	"github.com/forkful/forkful/pkg/middleware"
	"github.com/forkful/forkful/pkg/payments"
	"github.com/forkful/forkful/pkg/reqid"
	"github.com/forkful/forkful/pkg/router"
	"github.com/forkful/forkful/pkg/storage"
)

// Server is the assembled application.
type Server struct {
	httpSrv  *http.Server
	router   *router.Router
	mongoLog *logger.MongoHandler
}

// New wires configuration, stores, services, and routes into a
// ready-to-run server. Redis being down is a warning, not a failure.
func New(ctx context.Context) (*Server, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}

	var mongoLog *logger.MongoHandler
	if config.LogMongoEnabled() {
		h, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDatabase(), "logs")
		if err != nil {
			logger.Warn("server: mongo log handler disabled", "error", err)
		} else {
			mongoLog = h
			logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), h))
		}
	}

	if err := database.Connect(ctx); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("server: cache unavailable, running without it", "error", err)
	}
	storage.Connect()

	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		metrics.Middleware(),
	)

	routes.Register(r, buildDeps())

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return &Server{httpSrv: srv, router: r, mongoLog: mongoLog}, nil
}

// buildDeps constructs the store → service → controller graph.
func buildDeps() routes.Deps {
	db := database.DB()

	accounts := repositories.NewAccountStore(db)
	addresses := repositories.NewAddressStore(db)
	restaurants := repositories.NewRestaurantStore(db)
	menus := repositories.NewMenuStore(db)
	menuItems := repositories.NewMenuItemStore(db)
	carts := repositories.NewCartStore(db)
	items := repositories.NewItemStore(db)
	orders := repositories.NewOrderStore(db)
	paymentStore := repositories.NewPaymentStore(db)

	gateway := payments.NewStripeGateway(config.StripeSecretKey(), "")

	authSvc := services.NewAuthService(accounts, carts)
	catalogSvc := services.NewCatalogService(restaurants, menus, menuItems)
	addressSvc := services.NewAddressService(addresses, accounts)
	cartSvc := services.NewCartService(carts, items, menuItems)
	checkoutSvc := services.NewCheckoutService(carts, items, menuItems, orders, paymentStore, gateway)

	return routes.Deps{
		Table: acl.DefaultTable(),

		Auth:        controllers.NewAuthController(authSvc),
		Restaurants: controllers.NewRestaurantController(catalogSvc),
		Menus:       controllers.NewMenuController(catalogSvc),
		MenuItems:   controllers.NewMenuItemController(catalogSvc),
		Addresses:   controllers.NewAddressController(addressSvc),
		Cart:        controllers.NewCartController(cartSvc),
		Payments:    controllers.NewPaymentController(checkoutSvc),

		AddressStore: addresses,
		CartService:  cartSvc,
	}
}

// Router exposes the route table, e.g. for route listing commands.
func (s *Server) Router() *router.Router { return s.router }

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes every backing connection.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", s.httpSrv.Addr, "env", config.AppEnv())
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.close()
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.httpSrv.Shutdown(shutdownCtx)
	s.close()
	return err
}

func (s *Server) close() {
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cache.Close(); err != nil {
		logger.Warn("server: cache close", "error", err)
	}
	if err := database.Close(closeCtx); err != nil {
		logger.Warn("server: database close", "error", err)
	}
	if s.mongoLog != nil {
		s.mongoLog.Close()
	}
}
