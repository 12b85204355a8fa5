package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/parworldgolf/storefront-backend/internal/cart"
	"github.com/parworldgolf/storefront-backend/internal/catalog"
	"github.com/parworldgolf/storefront-backend/internal/checkout"
	"github.com/parworldgolf/storefront-backend/internal/community"
	"github.com/parworldgolf/storefront-backend/internal/config"
	"github.com/parworldgolf/storefront-backend/internal/db"
	"github.com/parworldgolf/storefront-backend/internal/handler"
	"github.com/parworldgolf/storefront-backend/internal/session"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting ParWorld storefront API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to Redis session store
	sessions, err := session.NewRedisStore(session.RedisConfig{
		URL: cfg.Session.RedisURL,
		TTL: cfg.Session.TTL,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sessions.Close()

	// Connect to the catalog document store
	catalogRepo, disconnect, err := catalog.NewMongoRepository(ctx, catalog.MongoConfig{
		URI:        cfg.Catalog.MongoURI,
		Database:   cfg.Catalog.Database,
		Collection: cfg.Catalog.Collection,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to catalog store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := disconnect(shutdownCtx); err != nil {
			logger.Error("catalog disconnect failed", slog.String("error", err.Error()))
		}
	}()

	// Connect to database
	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Initialize the messaging channel
	channel, err := checkout.NewWhatsAppChannel(cfg.Checkout.WhatsAppNumber, logger)
	if err != nil {
		logger.Error("invalid WhatsApp configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize services
	catalogSvc := catalog.NewService(catalogRepo, cfg.Catalog.CacheTTL, logger)
	carts := cart.NewManager(sessions, logger)
	contacts := checkout.NewContactCache(sessions, logger)
	dispatcher := checkout.NewDispatcher(channel, contacts, time.Now, logger)
	communitySvc := community.NewService(community.NewMemberRepository(database.DB), logger)

	// Initialize handlers
	cartHandler := handler.NewCartHandler(carts, dispatcher, contacts, logger)
	catalogHandler := handler.NewCatalogHandler(catalogSvc, logger)
	communityHandler := handler.NewCommunityHandler(communitySvc, logger)
	healthHandler := handler.NewHealthHandler(sessions, catalogSvc, database, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.LoggingMiddleware(logger))
	r.Use(handler.CORSMiddleware)
	r.Use(handler.SessionMiddleware)

	// Register routes
	r.Get("/health", healthHandler.Health)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalogHandler.ListProducts)
		r.Get("/featured", catalogHandler.FeaturedProducts)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/{id}", catalogHandler.GetProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{id}", cartHandler.UpdateQuantity)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
		r.Post("/checkout", cartHandler.Checkout)
	})

	r.Get("/customer", cartHandler.GetCustomer)
	r.Put("/customer", cartHandler.SaveCustomer)
	r.Delete("/customer", cartHandler.ClearCustomer)
	r.Post("/contact", cartHandler.SendInquiry)

	r.Route("/community", func(r chi.Router) {
		r.Post("/members", communityHandler.JoinCommunity)
		r.Get("/members", communityHandler.ListMembers)
		r.Get("/members/count", communityHandler.MemberCount)
	})

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
