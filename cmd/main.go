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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/get_booking"
	getTakenSlotsHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/get_taken_slots"
	getUserBookingsHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/list_bookings"
	transitionBookingHandler "github.com/m04kA/HSP-BookingService/internal/api/handlers/transition_booking"
	"github.com/m04kA/HSP-BookingService/internal/api/middleware"
	"github.com/m04kA/HSP-BookingService/internal/config"
	bookingRepo "github.com/m04kA/HSP-BookingService/internal/infra/storage/booking"
	catalogServiceClient "github.com/m04kA/HSP-BookingService/internal/integrations/catalogservice"
	notifyServiceClient "github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
	userServiceClient "github.com/m04kA/HSP-BookingService/internal/integrations/userservice"
	"github.com/m04kA/HSP-BookingService/internal/notifier"
	bookingsService "github.com/m04kA/HSP-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/HSP-BookingService/internal/usecase/create_booking"
	getTakenSlotsUC "github.com/m04kA/HSP-BookingService/internal/usecase/get_taken_slots"
	transitionBookingUC "github.com/m04kA/HSP-BookingService/internal/usecase/transition_booking"
	"github.com/m04kA/HSP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/HSP-BookingService/pkg/logger"
	"github.com/m04kA/HSP-BookingService/pkg/metrics"
	"github.com/m04kA/HSP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/HSP-BookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting HSP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s, CatalogService=%s, NotifyService=%s)",
		cfg.UserService.URL, cfg.CatalogService.URL, cfg.NotifyService.URL)

	// Диспетчер уведомлений: отправка после фиксации транзакции,
	// вне контекста запроса
	notifyDispatcher := notifier.NewDispatcher(
		notifyClient,
		log,
		cfg.NotifyService.QueueSize,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
	)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogClient,
		userClient,
		txMgr,
		log,
	)

	getTakenSlotsUseCase := getTakenSlotsUC.NewUseCase(bookingRepository, log)

	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		userClient,
		txMgr,
		notifyDispatcher,
		transitionBookingUC.Policy{
			AllowRejectAfterAccept: cfg.Lifecycle.AllowRejectAfterAccept,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getTakenSlots := getTakenSlotsHandler.NewHandler(getTakenSlotsUseCase, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые слоты услуги на дату
	api.HandleFunc("/services/{serviceId}/taken-slots", getTakenSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Переход статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся доставки поставленных в очередь уведомлений
	notifyDispatcher.Close()

	log.Info("Server stopped gracefully")
}
