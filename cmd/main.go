package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/get_available_slots"
	getProfileHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/get_profile"
	getSettingsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/get_settings"
	getStatsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/list_clients"
	listServicesHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/list_services"
	suggestServiceHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/suggest_service"
	updateBookingStatusHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/update_booking_status"
	updateProfileHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/update_profile"
	updateSettingsHandler "github.com/kazilop/CarCleanTGApp2/internal/api/handlers/update_settings"
	"github.com/kazilop/CarCleanTGApp2/internal/api/middleware"
	"github.com/kazilop/CarCleanTGApp2/internal/config"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/booking"
	clientRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/client"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
	settingsRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/settings"
	geminiClient "github.com/kazilop/CarCleanTGApp2/internal/integrations/assistant"
	assistantService "github.com/kazilop/CarCleanTGApp2/internal/service/assistant"
	bookingsService "github.com/kazilop/CarCleanTGApp2/internal/service/bookings"
	clientsService "github.com/kazilop/CarCleanTGApp2/internal/service/clients"
	settingsService "github.com/kazilop/CarCleanTGApp2/internal/service/settings"
	createBookingUC "github.com/kazilop/CarCleanTGApp2/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/kazilop/CarCleanTGApp2/internal/usecase/get_available_slots"
	"github.com/kazilop/CarCleanTGApp2/pkg/logger"
	"github.com/kazilop/CarCleanTGApp2/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (секреты не хранятся в config.toml)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TurboClean API...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем key-value хранилище
	store, cleanup, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage backend %q: %v", cfg.Storage.Backend, err)
	}
	defer cleanup()

	if cfg.Metrics.Enabled {
		store = kv.WithMetrics(store, metricsCollector)
		log.Info("Storage metrics collection enabled")
	}

	// Инициализируем репозитории
	bookingRepository := booking.NewRepository(store)
	clientRepository := clientRepo.NewRepository(store)
	settingsRepository := settingsRepo.NewRepository(store)

	// Засеиваем демо-клиентов (только если база пуста)
	if cfg.Storage.SeedDemoData {
		if err := clientRepository.Seed(context.Background()); err != nil {
			log.Fatal("Failed to seed demo clients: %v", err)
		}
		log.Info("Demo client seed checked")
	}

	// Инициализируем клиент Gemini (опционально)
	var suggestionClient assistantService.SuggestionClient
	if cfg.Assistant.GeminiAPIKey != "" {
		gemini, err := geminiClient.NewClient(context.Background(), cfg.Assistant.GeminiAPIKey)
		if err != nil {
			log.Error("Failed to initialize Gemini client, assistant goes offline: %v", err)
		} else {
			defer gemini.Close()
			suggestionClient = gemini
			log.Info("Gemini assistant client initialized")
		}
	} else {
		log.Warn("GEMINI_API_KEY is not set, assistant works in offline mode")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	assistantSvc := assistantService.NewService(suggestionClient, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, clientRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, settingsRepository, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler()
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, clientSvc, log)
	getProfile := getProfileHandler.NewHandler(clientSvc, settingsSvc, log)
	updateProfile := updateProfileHandler.NewHandler(clientSvc, log)
	suggestService := suggestServiceHandler.NewHandler(assistantSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Telegram.DemoUserID))

	// ============================================================
	// CLIENT ROUTES (идентичность из заголовков mini-app)
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/me/profile", getProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/me/profile", updateProfile.Handle).Methods(http.MethodPut)
	api.HandleFunc("/assistant/suggest", suggestService.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (только для авторизованных администраторов)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(settingsSvc, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openStore открывает key-value хранилище выбранного в конфигурации бэкенда
// Возвращает функцию освобождения ресурсов подключения
func openStore(cfg *config.Config, log *logger.Logger) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, noop, fmt.Errorf("ping redis at %s: %w", cfg.Redis.Addr, err)
		}

		log.Info("Connected to Redis at %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return kv.NewRedisStore(client), func() { client.Close() }, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ping postgres: %w", err)
		}

		log.Info("Connected to PostgreSQL (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return kv.NewPostgresStore(db), func() { db.Close() }, nil

	case config.BackendMemory:
		log.Warn("Using in-memory storage, data will be lost on restart")
		return kv.NewMemoryStore(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
