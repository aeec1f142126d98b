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

	cancelBookingHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/create_booking"
	editBookingHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/edit_booking"
	getAvailabilityHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_booking"
	getRestaurantBookingsHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_restaurant_bookings"
	getRestaurantStatsHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_restaurant_stats"
	getTimeSlotsHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_timeslots"
	getUserBookingsHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/get_user_bookings"
	manageTablesHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/manage_tables"
	manageTimeSlotsHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/manage_timeslots"
	updateBookingStatusHandler "github.com/rpires71/PK-BookingService/internal/api/handlers/update_booking_status"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/config"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
	tableRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/table"
	timeslotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/internal/integrations/mailer"
	userServiceClient "github.com/rpires71/PK-BookingService/internal/integrations/userservice"
	bookingsService "github.com/rpires71/PK-BookingService/internal/service/bookings"
	notifierService "github.com/rpires71/PK-BookingService/internal/service/notifier"
	reportsService "github.com/rpires71/PK-BookingService/internal/service/reports"
	tablesService "github.com/rpires71/PK-BookingService/internal/service/tables"
	timeslotsService "github.com/rpires71/PK-BookingService/internal/service/timeslots"
	cancelBookingUC "github.com/rpires71/PK-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/rpires71/PK-BookingService/internal/usecase/create_booking"
	editBookingUC "github.com/rpires71/PK-BookingService/internal/usecase/edit_booking"
	getAvailabilityUC "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
	"github.com/rpires71/PK-BookingService/pkg/dbmetrics"
	"github.com/rpires71/PK-BookingService/pkg/logger"
	"github.com/rpires71/PK-BookingService/pkg/metrics"
	"github.com/rpires71/PK-BookingService/pkg/simpletxmanager"
	"github.com/rpires71/PK-BookingService/pkg/txmanager"
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

	log.Info("Starting PK-BookingService...")
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
	log.Info("User service client initialized (url=%s, timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	var mailClient notifierService.MailClient
	if cfg.SMTP.Enabled {
		mailClient = mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
		log.Info("SMTP client initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Info("SMTP disabled, booking emails will only be logged")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		tableRepository    *tableRepo.Repository
		timeslotRepository *timeslotRepo.Repository
		txMgr              *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notifierSvc := notifierService.NewService(mailClient, userClient, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	timeslotsSvc := timeslotsService.NewService(timeslotRepository, log)
	reportsSvc := reportsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		timeslotRepository,
		notifierSvc,
		txMgr,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		timeslotRepository,
		notifierSvc,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		timeslotRepository,
		notifierSvc,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		timeslotRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(timeslotsSvc, getAvailabilityUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(reportsSvc, log)
	getRestaurantStats := getRestaurantStatsHandler.NewHandler(reportsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	manageTables := manageTablesHandler.NewHandler(tablesSvc, log)
	manageTimeSlots := manageTimeSlotsHandler.NewHandler(timeslotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Identity парсит заголовки X-User-ID / X-User-Role на всех роутах
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity)

	// ============================================================
	// PUBLIC ROUTES (гости и пользователи)
	// ============================================================

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Список слотов времени
	api.HandleFunc("/timeslots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (гостевое или от пользователя)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Просмотр, изменение и отмена брони по номеру
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", editBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-User-Role: staff)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffOnly)

	// Смена статуса брони
	staff.HandleFunc("/bookings/{reference}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Бронирования и статистика ресторана
	staff.HandleFunc("/restaurant/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/restaurant/stats", getRestaurantStats.Handle).Methods(http.MethodGet)

	// Управление столиками
	staff.HandleFunc("/tables", manageTables.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/tables", manageTables.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{tableId}", manageTables.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{tableId}", manageTables.HandleUpdate).Methods(http.MethodPatch)
	staff.HandleFunc("/tables/{tableId}", manageTables.HandleDelete).Methods(http.MethodDelete)

	// Управление слотами времени
	staff.HandleFunc("/timeslots", manageTimeSlots.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/timeslots/{timeslotId}", manageTimeSlots.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/timeslots/{timeslotId}", manageTimeSlots.HandleUpdate).Methods(http.MethodPatch)
	staff.HandleFunc("/timeslots/{timeslotId}", manageTimeSlots.HandleDelete).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}
