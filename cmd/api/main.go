package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfarer/flightbook/internal/api"
	"github.com/skyfarer/flightbook/internal/ports"
	"github.com/skyfarer/flightbook/internal/repository"
	"github.com/skyfarer/flightbook/internal/service"
	"github.com/skyfarer/flightbook/internal/utils"
	"github.com/skyfarer/flightbook/pkg/config"
	"github.com/skyfarer/flightbook/pkg/health"
)

type App struct {
	config *config.Config
	server *http.Server
	db     *pgxpool.Pool
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupDatabase(ctx); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := a.setupStorage(ctx); err != nil {
		return fmt.Errorf("storage setup failed: %w", err)
	}

	if err := a.setupServer(); err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) setupStorage(ctx context.Context) error {
	repo := repository.NewBookingRepository(a.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if a.config.Seed.DemoData {
		if err := repo.SeedDemoData(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Println("Demo fares and flights seeded")
	}
	return nil
}

func (a *App) setupServer() error {
	services := a.setupServices()
	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      router,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	Users    ports.UserService
	Flights  ports.FlightService
	Fares    ports.FareService
	Bookings ports.BookingService
}

func (a *App) setupServices() Services {
	repo := repository.NewBookingRepository(a.db)

	return Services{
		Users:    service.NewUserService(repo),
		Flights:  service.NewFlightService(repo),
		Fares:    service.NewFareService(repo),
		Bookings: service.NewBookingService(repo),
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /health", health.HealthGet())

	router.HandleFunc("POST /users", utils.AllowedContentTypes(
		api.CreateUserHandler(services.Users), "application/json"))
	router.HandleFunc("GET /users/{user_id}", api.GetUserHandler(services.Users))

	router.HandleFunc("GET /flights", api.SearchFlightsHandler(services.Flights))
	router.HandleFunc("GET /flights/{flight_id}", api.GetFlightHandler(services.Flights))

	router.HandleFunc("POST /bookings", utils.AllowedContentTypes(
		api.CreateBookingHandler(services.Bookings), "application/json"))
	router.HandleFunc("GET /bookings/{booking_id}", api.GetBookingHandler(services.Bookings))

	router.HandleFunc("GET /fares", api.ListFaresHandler(services.Fares))
	router.HandleFunc("GET /fares/{fare_id}", api.GetFareHandler(services.Fares))

	return router
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		log.Println("Starting graceful shutdown")
		return a.Shutdown(ctx)
	case <-ctx.Done():
		return a.Shutdown(ctx)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := NewApp(cfg)
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
